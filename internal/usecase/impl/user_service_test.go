package impl

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, testLogger())

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
		RoleID:   2,
		Phone:    "987654321",
	}

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 11
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, int64(2), user.RoleID)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := &entity.User{ID: 11, Email: "ana@example.com", Name: "Ana"}

	fx.userRepo.EXPECT().
		FindByCredentials(ctx, "ana@example.com", "secret").
		Return(expected, nil)

	user, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByCredentials(ctx, "ana@example.com", "wrong").
		Return(nil, repository.ErrCredentialsMismatch)

	user, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestUserService_Update_MissIsStillSuccess(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{Name: "Ana", Email: "ana@example.com"}

	fx.userRepo.EXPECT().
		Update(ctx, int64(404), user).
		Return(nil)

	err := fx.service.Update(ctx, 404, user)
	require.NoError(t, err)
}

func TestUserService_Delete_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(nil)

	err := fx.service.Delete(ctx, 404)
	require.NoError(t, err)
}

func TestUserService_List(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: 1}, {ID: 2}}

	fx.userRepo.EXPECT().
		FindAll(ctx).
		Return(expected, nil)

	users, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
