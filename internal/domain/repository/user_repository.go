package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matched the key.
	ErrUserNotFound = errors.New("user not found")
	// ErrCredentialsMismatch is returned when no user matched the
	// email/password pair.
	ErrCredentialsMismatch = errors.New("credentials mismatch")
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a user and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// FindByCredentials retrieves the user matching the email/password pair.
	// The comparison is plaintext equality, exactly as the source system does
	// it. Returns ErrCredentialsMismatch when nothing matched.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Exists reports whether a user row with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update overwrites every mutable column of the user row. The source
	// reports success even when no row matched; that behavior is kept.
	Update(ctx context.Context, id int64, user *entity.User) error

	// Delete removes the user row. Also idempotent, per the source.
	Delete(ctx context.Context, id int64) error
}
