package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"
)

// RegisterInput represents a new user signup.
type RegisterInput struct {
	Name      string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	RoleID    int64  `json:"idrol"`
	Phone     string `json:"telefono"`
	BirthDate string `json:"fecha_naci"`
}

// LoginInput represents a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUsecase defines the interface for user account use cases.
type UserUsecase interface {
	// Register creates a user account and returns it with the generated ID.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login retrieves the user matching the credentials. The password
	// comparison is plaintext equality against the stored column, inherited
	// from the source system.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// List retrieves every user.
	List(ctx context.Context) ([]*entity.User, error)

	// Update overwrites the user's mutable fields. Matching zero rows is
	// still reported as success, as the source does.
	Update(ctx context.Context, id int64, user *entity.User) error

	// Delete removes the user. Also idempotent.
	Delete(ctx context.Context, id int64) error
}
