package impl

import (
	"context"
	"testing"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	mockRepo "opinalocal/internal/mocks/repository"
	mockSvc "opinalocal/internal/mocks/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	tokenSvc  *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(txManager, tokenSvc, newDiscardLogger())

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		tokenSvc:  tokenSvc,
	}
}

func TestUserService_ExchangeSession_FirstSignIn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SessionInput{
		ProviderUID: "provider-uid-1",
		Email:       "ana@example.com",
		Name:        "Ana",
		PhotoURL:    "https://cdn.example.com/ana.png",
	}

	var created *entity.User

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByProviderUID(ctx, "provider-uid-1").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				created = user
			}).
			Return(nil)
	})

	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), "user").
		Return("access-token", nil)

	output, err := fx.service.ExchangeSession(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.Equal(t, "provider-uid-1", created.ProviderUID)
	assert.Equal(t, entity.DefaultNotificationPreferences(), created.Preferences)
	assert.Equal(t, created, output.User)
}

func TestUserService_ExchangeSession_ReturningUserRefreshesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:          userID,
		ProviderUID: "provider-uid-1",
		Email:       "old@example.com",
		Name:        "Old Name",
		Role:        entity.RoleAdmin,
		Preferences: entity.NotificationPreferences{Comment: false},
	}
	input := &usecase.SessionInput{
		ProviderUID: "provider-uid-1",
		Email:       "new@example.com",
		Name:        "New Name",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByProviderUID(ctx, "provider-uid-1").Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	fx.tokenSvc.EXPECT().GenerateToken(userID, "admin").Return("access-token", nil)

	output, err := fx.service.ExchangeSession(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "New Name", output.User.Name)
	// Preferences are the user's own settings, never overwritten by sign-in.
	assert.False(t, output.User.Preferences.Comment)
}

func TestUserService_ExchangeSession_UnchangedProfileSkipsUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:          uuid.New(),
		ProviderUID: "provider-uid-1",
		Email:       "ana@example.com",
		Name:        "Ana",
		Role:        entity.RoleUser,
	}
	input := &usecase.SessionInput{
		ProviderUID: "provider-uid-1",
		Email:       "ana@example.com",
		Name:        "Ana",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByProviderUID(ctx, "provider-uid-1").Return(existing, nil)
	})

	fx.tokenSvc.EXPECT().GenerateToken(existing.ID, "user").Return("access-token", nil)

	_, err := fx.service.ExchangeSession(ctx, input)

	require.NoError(t, err)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "user not found")
}

func TestUserService_UpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:       userID,
		Name:     "Old Name",
		PhotoURL: "https://cdn.example.com/old.png",
	}
	newName := "New Name"
	input := &usecase.UpdateProfileInput{Name: &newName}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "https://cdn.example.com/old.png", user.PhotoURL)
}

func TestUserService_UpdatePreferences_ReplacesAllOptIns(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:          userID,
		Preferences: entity.DefaultNotificationPreferences(),
	}
	input := &usecase.PreferencesInput{
		Comment:          true,
		NewReview:        false,
		CategoryApproval: false,
		Newsletter:       true,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdatePreferences(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, user.Preferences.Comment)
	assert.False(t, user.Preferences.NewReview)
	assert.False(t, user.Preferences.CategoryApproval)
	assert.True(t, user.Preferences.Newsletter)
}

func TestUserService_RegisterPushSubscription_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.PushSubscriptionInput{
		FCMToken: "fcm-token-1",
		Platform: "ios",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		subRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PushSubscription")).Return(nil)
	})

	subscription, err := fx.service.RegisterPushSubscription(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, subscription.UserID)
	assert.Equal(t, "fcm-token-1", subscription.FCMToken)
	assert.Equal(t, "ios", subscription.Platform)
}

func TestUserService_RegisterPushSubscription_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.PushSubscriptionInput{FCMToken: "fcm-token-1"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	subscription, err := fx.service.RegisterPushSubscription(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, subscription)
}

func TestUserService_ExchangeSession_FindError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SessionInput{
		ProviderUID: "provider-uid-1",
		Email:       "ana@example.com",
		Name:        "Ana",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByProviderUID(ctx, "provider-uid-1").Return(nil, errors.New("db error"))
	})

	output, err := fx.service.ExchangeSession(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to find user by provider UID")
}

func TestUserService_GetUserByEmail_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	found := &entity.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(found, nil)
	})

	user, err := fx.service.GetUserByEmail(ctx, "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, found, user)
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetUserByEmail(ctx, "ghost@example.com")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListPushSubscriptions_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	registered := []*entity.PushSubscription{
		{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token-1", Platform: "ios"},
		{ID: uuid.New(), UserID: userID, FCMToken: "fcm-token-2", Platform: "web"},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().ListByUser(ctx, userID).Return(registered, nil)
	})

	subscriptions, err := fx.service.ListPushSubscriptions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, registered, subscriptions)
}

func TestUserService_UnregisterPushSubscription_DeletesOwnToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().
			ListByUser(ctx, userID).
			Return([]*entity.PushSubscription{{UserID: userID, FCMToken: "fcm-token-1"}}, nil)
		subRepo.EXPECT().DeleteByToken(ctx, "fcm-token-1").Return(nil)
	})

	err := fx.service.UnregisterPushSubscription(ctx, userID, "fcm-token-1")

	require.NoError(t, err)
}

func TestUserService_UnregisterPushSubscription_IgnoresForeignToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	subRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewPushSubscriptionRepository().Return(subRepo)
		subRepo.EXPECT().
			ListByUser(ctx, userID).
			Return([]*entity.PushSubscription{{UserID: userID, FCMToken: "fcm-token-1"}}, nil)
	})

	err := fx.service.UnregisterPushSubscription(ctx, userID, "someone-elses-token")

	require.NoError(t, err)
	subRepo.AssertNotCalled(t, "DeleteByToken", mock.Anything, mock.Anything)
}
