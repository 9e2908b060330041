package domain

import "context"

// UserRepository persists the whole user collection at once.
type UserRepository interface {
	// LoadAll returns every stored user in stored order.
	LoadAll(ctx context.Context) ([]*User, error)
	// SaveAll replaces the stored collection with users.
	SaveAll(ctx context.Context, users []*User) error
}

// CredentialHasher derives and checks password hashes. Hashes and salts are
// opaque strings to the domain.
type CredentialHasher interface {
	NewSalt() (string, error)
	Derive(password, salt string) (string, error)
	Verify(password, hash, salt string) bool
}
