package impl

import (
	"context"
	"testing"
	"time"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := NewReviewService(reviewRepo, testLogger())

	return reviewServiceFixtures{
		service:    service,
		reviewRepo: reviewRepo,
	}
}

func TestReviewService_Add_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.AddReviewInput{
		UserID:    3,
		ProductID: 7,
		Rating:    5,
		Comment:   "Excelente pizza",
	}

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) {
			review.ID = 21
			review.Date = time.Now()
		}).
		Return(nil)

	review, err := fx.service.Add(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, int64(21), review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.Date.IsZero())
}

func TestReviewService_Add_ProductMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.AddReviewInput{UserID: 3, ProductID: 404, Rating: 4}

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrProductNotFound)

	review, err := fx.service.Add(ctx, input)
	assert.Nil(t, review)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestReviewService_ListByProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	expected := []*entity.Review{
		{ID: 1, ProductID: 7, Rating: 5, UserName: "Ana"},
		{ID: 2, ProductID: 7, Rating: 3, UserName: "Luis"},
	}

	fx.reviewRepo.EXPECT().
		ListByProduct(ctx, int64(7)).
		Return(expected, nil)

	reviews, err := fx.service.ListByProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}
