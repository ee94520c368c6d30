package impl

import (
	"context"
	"testing"

	"opinalocal/internal/domain/entity"
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

// notifyServiceFixtures holds all test dependencies for notify service tests.
type notifyServiceFixtures struct {
	service         usecase.NotifyUsecase
	txManager       *mockRepo.MockTransactionManager
	notificationSvc *mockSvc.MockNotificationService
	mailer          *mockSvc.MockMailer
}

func createTestNotifyService(t *testing.T) notifyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := NewNotifyService(txManager, notificationSvc, mailer, newDiscardLogger())

	return notifyServiceFixtures{
		service:         service,
		txManager:       txManager,
		notificationSvc: notificationSvc,
		mailer:          mailer,
	}
}

func optedIn(id uuid.UUID, email string) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       email,
		Preferences: entity.DefaultNotificationPreferences(),
	}
}

func TestNotifyService_ProcessEvent_ReviewCreated_FansOutToPriorReviewers(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	actorID := uuid.New()
	reviewerID := uuid.New()
	optedOutID := uuid.New()
	event := &service.NotificationEvent{
		Kind:         service.EventReviewCreated,
		ActorID:      actorID.String(),
		ActorName:    "Ana",
		RestaurantID: restaurantID.String(),
		Restaurant:   "Casa Lupe",
		ReviewID:     uuid.New().String(),
	}

	optedOut := &entity.User{
		ID:          optedOutID,
		Email:       "quiet@example.com",
		Preferences: entity.NotificationPreferences{NewReview: false},
	}

	// Resolution pass.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		reviewRepo.EXPECT().
			DistinctReviewerIDs(ctx, restaurantID).
			Return([]uuid.UUID{actorID, reviewerID, optedOutID}, nil)
		userRepo.EXPECT().FindByID(ctx, reviewerID).Return(optedIn(reviewerID, "ben@example.com"), nil)
		userRepo.EXPECT().FindByID(ctx, optedOutID).Return(optedOut, nil)
	})

	// Push subscription pass.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().
			ListByUsers(ctx, []uuid.UUID{reviewerID}).
			Return([]*entity.PushSubscription{{UserID: reviewerID, FCMToken: "token-1"}}, nil)
	})

	// A single token takes the direct send path instead of a batch.
	fx.notificationSvc.EXPECT().
		SendSingleNotification(ctx, "token-1", "New review of Casa Lupe", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, "ben@example.com", "New review of Casa Lupe", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotifyService_ProcessEvent_CommentCreated_PreferenceOffSkipsDelivery(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	authorID := uuid.New()
	event := &service.NotificationEvent{
		Kind:      service.EventCommentCreated,
		ActorID:   uuid.New().String(),
		ActorName: "Ben",
		ReviewID:  reviewID.String(),
		CommentID: uuid.New().String(),
	}

	author := &entity.User{
		ID:          authorID,
		Email:       "ana@example.com",
		Preferences: entity.NotificationPreferences{Comment: false},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, UserID: authorID}, nil)
		userRepo.EXPECT().FindByID(ctx, authorID).Return(author, nil)
	})

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
	fx.notificationSvc.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyService_ProcessEvent_CategoryApproved_DeliversToCreatorAndPrunesTokens(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	creatorID := uuid.New()
	event := &service.NotificationEvent{
		Kind:       service.EventCategoryApproved,
		CategoryID: categoryID.String(),
		Category:   "Vegan Options",
	}

	category := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: creatorID.String(),
		Status:    entity.CategoryStatusApproved,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(category, nil)
		userRepo.EXPECT().FindByID(ctx, creatorID).Return(optedIn(creatorID, "creator@example.com"), nil)
	})

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().
			ListByUsers(ctx, []uuid.UUID{creatorID}).
			Return([]*entity.PushSubscription{
				{UserID: creatorID, FCMToken: "token-live"},
				{UserID: creatorID, FCMToken: "token-stale"},
			}, nil)
	})

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-live", "token-stale"}, "Your category was approved", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)

	// Pruning pass for the token Firebase reported as unregistered.
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().DeleteByTokens(ctx, []string{"token-stale"}).Return(nil)
	})

	fx.mailer.EXPECT().
		Send(ctx, "creator@example.com", "Your category was approved", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotifyService_ProcessEvent_SeededCategoryHasNoRecipients(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	event := &service.NotificationEvent{
		Kind:       service.EventCategoryApproved,
		CategoryID: categoryID.String(),
		Category:   "Cleanliness",
	}

	seeded := &entity.Category{
		ID:        categoryID,
		Name:      "Cleanliness",
		CreatedBy: entity.CategoryCreatorAdmin,
		Status:    entity.CategoryStatusApproved,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(seeded, nil)
	})

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
	fx.notificationSvc.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyService_ProcessEvent_UnknownKindIsNotRetryable(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	event := &service.NotificationEvent{Kind: "newsletter.sent"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {})

	err := fx.service.ProcessEvent(ctx, event)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrRetryable))
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestNotifyService_ProcessEvent_MalformedRestaurantIDIsNotRetryable(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	event := &service.NotificationEvent{
		Kind:         service.EventReviewCreated,
		RestaurantID: "not-a-uuid",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {})

	err := fx.service.ProcessEvent(ctx, event)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrRetryable))
}

func TestNotifyService_ProcessEvent_VanishedReviewIsNotRetryable(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	event := &service.NotificationEvent{
		Kind:     service.EventCommentCreated,
		ReviewID: reviewID.String(),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)
	})

	err := fx.service.ProcessEvent(ctx, event)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrRetryable))
}

func TestNotifyService_ProcessEvent_DatabaseErrorIsRetryable(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	event := &service.NotificationEvent{
		Kind:         service.EventReviewCreated,
		RestaurantID: uuid.New().String(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection refused")).
		Once()

	err := fx.service.ProcessEvent(ctx, event)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrRetryable))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNotifyService_ProcessEvent_PushFailureDoesNotFailEvent(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	authorID := uuid.New()
	event := &service.NotificationEvent{
		Kind:      service.EventCommentCreated,
		ActorID:   uuid.New().String(),
		ActorName: "Ben",
		ReviewID:  reviewID.String(),
		CommentID: uuid.New().String(),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, UserID: authorID}, nil)
		userRepo.EXPECT().FindByID(ctx, authorID).Return(optedIn(authorID, "ana@example.com"), nil)
	})

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().
			ListByUsers(ctx, []uuid.UUID{authorID}).
			Return([]*entity.PushSubscription{{UserID: authorID, FCMToken: "token-1"}}, nil)
	})

	fx.notificationSvc.EXPECT().
		SendSingleNotification(ctx, "token-1", "New comment on your review", mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("fcm unavailable"))
	fx.mailer.EXPECT().
		Send(ctx, "ana@example.com", "New comment on your review", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotifyService_ProcessEvent_RecipientWithoutEmailSkipsMailer(t *testing.T) {
	fx := createTestNotifyService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	authorID := uuid.New()
	event := &service.NotificationEvent{
		Kind:      service.EventCommentCreated,
		ActorID:   uuid.New().String(),
		ReviewID:  reviewID.String(),
		CommentID: uuid.New().String(),
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, UserID: authorID}, nil)
		userRepo.EXPECT().FindByID(ctx, authorID).Return(optedIn(authorID, ""), nil)
	})

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().ListByUsers(ctx, []uuid.UUID{authorID}).Return(nil, nil)
	})

	err := fx.service.ProcessEvent(ctx, event)

	require.NoError(t, err)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
