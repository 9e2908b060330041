package persistence

import (
	"context"

	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
	sharedPersistence "github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/persistence"
)

type userRecord struct {
	Username string                             `json:"Username"`
	Hash     string                             `json:"Hash"`
	Salt     string                             `json:"Salt"`
	Meetings []sharedPersistence.ScheduleRecord `json:"Meetings"`
}

// JSONUserRepository stores every user in one JSON file.
type JSONUserRepository struct {
	file *sharedPersistence.SnapshotFile[userRecord]
}

// NewJSONUserRepository creates a repository backed by the file at path.
func NewJSONUserRepository(path string) *JSONUserRepository {
	return &JSONUserRepository{file: sharedPersistence.NewSnapshotFile[userRecord](path)}
}

// LoadAll reads every user from the file.
func (r *JSONUserRepository) LoadAll(ctx context.Context) ([]*domain.User, error) {
	records, err := r.file.Load()
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, domain.RehydrateUser(
			rec.Username,
			rec.Hash,
			rec.Salt,
			sharedPersistence.FromScheduleRecords(rec.Meetings),
		))
	}
	return users, nil
}

// SaveAll rewrites the file with users.
func (r *JSONUserRepository) SaveAll(ctx context.Context, users []*domain.User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{
			Username: u.Username(),
			Hash:     u.Hash(),
			Salt:     u.Salt(),
			Meetings: sharedPersistence.ToScheduleRecords(u.Schedule()),
		})
	}
	return r.file.Save(records)
}
