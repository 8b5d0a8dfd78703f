package impl

import (
	"context"
	"log/slog"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a user account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.logger.Info("Registering user", "email", input.Email)

	user := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		RoleID:    input.RoleID,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	return user, nil
}

// Login retrieves the user matching the credentials. The comparison happens
// in the store as plaintext column equality; the source system never hashed
// passwords and existing rows must keep working.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByCredentials(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialsMismatch) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to login")
	}

	return user, nil
}

// List retrieves every user.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Update overwrites the user's mutable fields. A miss is still a success;
// the source responds 200 regardless and clients depend on it.
func (srv *userService) Update(ctx context.Context, id int64, user *entity.User) error {
	if err := srv.userRepo.Update(ctx, id, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// Delete removes the user. Also idempotent.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
