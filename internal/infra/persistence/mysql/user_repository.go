package mysql

import (
	"context"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a user and fills in the generated ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert user")
	}

	user.ID = userM.ID

	return nil
}

// FindByCredentials retrieves the user matching the email/password pair.
// The comparison is plaintext column equality, exactly as the source system
// does it.
func (repo *userRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		First(&userM, "email = ? AND password = ?", email, password).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialsMismatch
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find user by credentials")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("idusuario").
		Find(&userModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find all users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Exists reports whether a user row with the given ID exists.
func (repo *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("idusuario = ?", id).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewPersistenceError(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Update overwrites every mutable column of the user row. Success is
// reported even when no row matched; the source behaves the same way.
func (repo *userRepository) Update(ctx context.Context, id int64, user *entity.User) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("idusuario = ?", id).
		Updates(map[string]any{
			"nombre":     user.Name,
			"email":      user.Email,
			"password":   user.Password,
			"idrol":      user.RoleID,
			"telefono":   user.Phone,
			"fecha_naci": user.BirthDate,
		}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to update user")
	}

	return nil
}

// Delete removes the user row. Also idempotent, per the source.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("idusuario = ?", id).
		Delete(&model.UserModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to delete user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		RoleID:    data.RoleID,
		Phone:     data.Phone,
		BirthDate: data.BirthDate,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		RoleID:    data.RoleID,
		Phone:     data.Phone,
		BirthDate: data.BirthDate,
	}
}
