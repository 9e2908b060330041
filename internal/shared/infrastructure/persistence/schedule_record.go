package persistence

import (
	"time"

	"github.com/felixgeelhaar/meetdesk/internal/shared/domain"
)

// ScheduleRecord is the stored form of a schedule entry. The same shape is
// used for a user's meetings and a meeting's attendees.
type ScheduleRecord struct {
	Name     string    `json:"Name"`
	TimeFrom time.Time `json:"TimeFrom"`
	TimeTo   time.Time `json:"TimeTo"`
}

// ToScheduleRecords converts entries to their stored form.
func ToScheduleRecords(entries []domain.ScheduleEntry) []ScheduleRecord {
	records := make([]ScheduleRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, ScheduleRecord{Name: e.Name, TimeFrom: e.From, TimeTo: e.To})
	}
	return records
}

// FromScheduleRecords converts stored records back to entries.
func FromScheduleRecords(records []ScheduleRecord) []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.NewScheduleEntry(r.Name, domain.Interval{From: r.TimeFrom, To: r.TimeTo}))
	}
	return entries
}

// FormatTime is the SQLite text encoding for instants.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTime decodes an instant written by FormatTime.
func ParseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// ParseInterval decodes a pair of instants written by FormatTime.
func ParseInterval(from, to string) (domain.Interval, error) {
	start, err := ParseTime(from)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := ParseTime(to)
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.Interval{From: start, To: end}, nil
}
