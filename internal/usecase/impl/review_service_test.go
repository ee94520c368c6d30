package impl

import (
	"context"
	"testing"
	"time"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/domain/service"
	mockRepo "opinalocal/internal/mocks/repository"
	mockSvc "opinalocal/internal/mocks/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewReviewService(txManager, publisher, newDiscardLogger())

	return reviewServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func TestReviewService_Submit_ComputesOverallFromScores(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	actor := &entity.User{ID: userID, Name: "Ana"}
	restaurant := &entity.Restaurant{ID: restaurantID, Name: "Casa Lupe"}
	input := &usecase.SubmitReviewInput{
		RestaurantID: restaurantID,
		Text:         "Great tacos",
		Standard:     map[string]int{entity.StandardCategoryFood: 5, entity.StandardCategoryService: 4},
		Custom:       map[string]int{"Cleanliness": 3},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(actor, nil)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(restaurant, nil)
		categoryRepo.EXPECT().
			FindByName(ctx, "Cleanliness").
			Return(&entity.Category{Name: "Cleanliness", Status: entity.CategoryStatusApproved}, nil)
		reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	var published *service.NotificationEvent
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			published = event
		}).
		Return(nil)

	review, err := fx.service.Submit(ctx, userID, input)

	require.NoError(t, err)
	assert.InDelta(t, 4.0, review.OverallRating, 0.0001)
	assert.Equal(t, userID, review.UserID)
	require.NotNil(t, published)
	assert.Equal(t, service.EventReviewCreated, published.Kind)
	assert.Equal(t, userID.String(), published.ActorID)
	assert.Equal(t, "Ana", published.ActorName)
	assert.Equal(t, "Casa Lupe", published.Restaurant)
	assert.Equal(t, review.ID.String(), published.ReviewID)
}

func TestReviewService_Submit_EmptyText(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Submit(context.Background(), uuid.New(), &usecase.SubmitReviewInput{
		RestaurantID: uuid.New(),
		Standard:     map[string]int{entity.StandardCategoryFood: 5},
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_Submit_NoRatingsStoresZeroOverall(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	review, err := fx.service.Submit(ctx, userID, &usecase.SubmitReviewInput{
		RestaurantID: restaurantID,
		Text:         "Just stopped by for the view",
	})

	require.NoError(t, err)
	assert.Zero(t, review.OverallRating)
	assert.Empty(t, review.Ratings.Standard)
	assert.Empty(t, review.Ratings.Custom)
}

func TestReviewService_Submit_ScoreOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Submit(context.Background(), uuid.New(), &usecase.SubmitReviewInput{
		RestaurantID: uuid.New(),
		Text:         "Too enthusiastic",
		Standard:     map[string]int{entity.StandardCategoryFood: 6},
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrRatingOutOfRange))
}

func TestReviewService_Submit_UnknownStandardCategory(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Submit(context.Background(), uuid.New(), &usecase.SubmitReviewInput{
		RestaurantID: uuid.New(),
		Text:         "Odd category",
		Standard:     map[string]int{"Vibes": 4},
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownCategory))
}

func TestReviewService_Submit_UnregisteredCustomCategoryIsKept(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		categoryRepo.EXPECT().
			FindByName(ctx, "Vegan Options").
			Return(nil, repository.ErrCategoryNotFound)
		reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	review, err := fx.service.Submit(ctx, userID, &usecase.SubmitReviewInput{
		RestaurantID: restaurantID,
		Text:         "They should really add this category",
		Custom:       map[string]int{"Vegan Options": 4},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Vegan Options": 4}, review.Ratings.Custom)
	assert.InDelta(t, 4.0, review.OverallRating, 0.0001)
}

func TestReviewService_Submit_CanonicalizesCustomCasing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		categoryRepo.EXPECT().
			FindByName(ctx, "wi-fi").
			Return(&entity.Category{Name: "Wi-Fi", Status: entity.CategoryStatusApproved}, nil)
		reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil)

	review, err := fx.service.Submit(ctx, userID, &usecase.SubmitReviewInput{
		RestaurantID: restaurantID,
		Text:         "Fast connection",
		Custom:       map[string]int{"wi-fi": 5},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Wi-Fi": 5}, review.Ratings.Custom)
	assert.NotContains(t, review.Ratings.Custom, "wi-fi")
}

func TestReviewService_Submit_RestaurantNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	review, err := fx.service.Submit(ctx, userID, &usecase.SubmitReviewInput{
		RestaurantID: restaurantID,
		Text:         "Ghost restaurant",
		Standard:     map[string]int{entity.StandardCategoryFood: 3},
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestReviewService_Get_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)
	})

	review, err := fx.service.Get(ctx, reviewID)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_ListRecent_UnknownTimeframe(t *testing.T) {
	fx := createTestReviewService(t)

	reviews, err := fx.service.ListRecent(context.Background(), usecase.ReviewTimeframe("year"))

	assert.Error(t, err)
	assert.Nil(t, reviews)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "unknown timeframe")
}

func TestReviewService_ListRecent_Week(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	recent := []*entity.Review{{ID: uuid.New()}}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		reviewRepo.EXPECT().ListRecent(ctx, mock.AnythingOfType("time.Time")).Return(recent, nil)
	})

	reviews, err := fx.service.ListRecent(ctx, usecase.TimeframeWeek)

	require.NoError(t, err)
	assert.Equal(t, recent, reviews)
}

func TestReviewService_ListRecent_TodayStartsAtLocalMidnight(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	var since time.Time
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		reviewRepo.EXPECT().
			ListRecent(ctx, mock.AnythingOfType("time.Time")).
			Run(func(ctx context.Context, cutoff time.Time) {
				since = cutoff
			}).
			Return(nil, nil)
	})

	_, err := fx.service.ListRecent(ctx, usecase.TimeframeToday)

	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, 0, since.Minute())
	assert.Equal(t, 0, since.Second())
	assert.Equal(t, now.Location(), since.Location())
	assert.False(t, since.After(now))
}

func TestReviewService_Summary_SuppressesUnapprovedCategories(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	reviews := []*entity.Review{
		{
			ID:            uuid.New(),
			OverallRating: 4,
			Ratings: entity.Ratings{
				Standard: map[string]int{entity.StandardCategoryFood: 5},
				Custom:   map[string]int{"Cleanliness": 3, "Vegan Options": 4},
			},
		},
		{
			ID:            uuid.New(),
			OverallRating: 3,
			Ratings: entity.Ratings{
				Standard: map[string]int{entity.StandardCategoryFood: 3},
			},
		},
	}
	approvedStatus := entity.CategoryStatusApproved
	approved := []*entity.Category{
		{Name: entity.StandardCategoryFood, Status: entity.CategoryStatusApproved},
		{Name: "Cleanliness", Status: entity.CategoryStatusApproved},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		reviewRepo.EXPECT().ListByRestaurant(ctx, restaurantID).Return(reviews, nil)
		categoryRepo.EXPECT().List(ctx, &approvedStatus).Return(approved, nil)
	})

	summary, err := fx.service.Summary(ctx, restaurantID)

	require.NoError(t, err)
	assert.InDelta(t, 3.5, summary.Overall, 0.0001)
	assert.Equal(t, 2, summary.ReviewCount)

	names := make([]string, 0, len(summary.Categories))
	for _, entry := range summary.Categories {
		names = append(names, entry.Category)
	}
	assert.Contains(t, names, entity.StandardCategoryFood)
	assert.Contains(t, names, "Cleanliness")
	assert.NotContains(t, names, "Vegan Options")
}

func TestReviewService_Summary_RestaurantNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	summary, err := fx.service.Summary(ctx, restaurantID)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}
