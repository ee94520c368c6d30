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

// restaurantServiceFixtures holds all test dependencies for restaurant service tests.
type restaurantServiceFixtures struct {
	service   usecase.RestaurantUsecase
	txManager *mockRepo.MockTransactionManager
	qrSvc     *mockSvc.MockQRCodeService
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	service := NewRestaurantService(txManager, qrSvc, newDiscardLogger())

	return restaurantServiceFixtures{
		service:   service,
		txManager: txManager,
		qrSvc:     qrSvc,
	}
}

func TestRestaurantService_Register_StartsUnvalidatedAndGrantsOwnership(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	creator := uuid.New()
	input := &usecase.RegisterRestaurantInput{
		Name: "Casa Lupe",
		Address: entity.Address{
			Street: "12 Mercado St",
			City:   "Oaxaca",
		},
	}

	var grantedOwnership *entity.Ownership

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		ownershipRepo := mockRepo.NewMockOwnershipRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewOwnershipRepository().Return(ownershipRepo)
		restaurantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)
		ownershipRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Ownership")).
			Run(func(ctx context.Context, ownership *entity.Ownership) {
				grantedOwnership = ownership
			}).
			Return(nil)
	})

	restaurant, err := fx.service.Register(ctx, creator, input)

	require.NoError(t, err)
	assert.False(t, restaurant.IsValidated)
	assert.Equal(t, creator, restaurant.CreatedBy)
	require.NotNil(t, grantedOwnership)
	assert.Equal(t, creator, grantedOwnership.UserID)
	assert.Equal(t, restaurant.ID, grantedOwnership.RestaurantID)
}

func TestRestaurantService_Get_ComputesRatingFromReviews(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	restaurant := &entity.Restaurant{ID: restaurantID, Name: "Casa Lupe"}
	reviews := []*entity.Review{
		{ID: uuid.New(), OverallRating: 4},
		{ID: uuid.New(), OverallRating: 5},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(restaurant, nil)
		reviewRepo.EXPECT().ListByRestaurant(ctx, restaurantID).Return(reviews, nil)
	})

	result, err := fx.service.Get(ctx, restaurantID)

	require.NoError(t, err)
	assert.Equal(t, restaurant, result.Restaurant)
	assert.InDelta(t, 4.5, result.Rating.Overall, 0.0001)
	assert.Equal(t, 2, result.Rating.ReviewCount)
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	result, err := fx.service.Get(ctx, restaurantID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_Search_ProximityFilter(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	near := &repository.RestaurantSearchResult{
		Restaurant: &entity.Restaurant{
			ID:       uuid.New(),
			Name:     "Near Taqueria",
			Location: &entity.Location{Lat: 40.7130, Lng: -74.0060},
		},
		AverageRating: 4.0,
		ReviewCount:   3,
	}
	far := &repository.RestaurantSearchResult{
		Restaurant: &entity.Restaurant{
			ID:       uuid.New(),
			Name:     "Far Taqueria",
			Location: &entity.Location{Lat: 41.8781, Lng: -87.6298},
		},
	}
	noLocation := &repository.RestaurantSearchResult{
		Restaurant: &entity.Restaurant{
			ID:   uuid.New(),
			Name: "Unmapped Taqueria",
		},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().
			Search(ctx, "taqueria", (*bool)(nil)).
			Return([]*repository.RestaurantSearchResult{near, far, noLocation}, nil)
	})

	lat, lng, radius := 40.7128, -74.0060, 5.0
	results, err := fx.service.Search(ctx, &usecase.SearchRestaurantsInput{
		Query:    "taqueria",
		Lat:      &lat,
		Lng:      &lng,
		RadiusKm: &radius,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.Restaurant, results[0].Restaurant)
	assert.InDelta(t, 4.0, results[0].Rating.Overall, 0.0001)
	assert.Equal(t, 3, results[0].Rating.ReviewCount)
}

func TestRestaurantService_Search_NoProximityKeepsAllRows(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	rows := []*repository.RestaurantSearchResult{
		{Restaurant: &entity.Restaurant{ID: uuid.New(), Name: "First"}},
		{Restaurant: &entity.Restaurant{ID: uuid.New(), Name: "Second"}},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().Search(ctx, "t", (*bool)(nil)).Return(rows, nil)
	})

	results, err := fx.service.Search(ctx, &usecase.SearchRestaurantsInput{Query: "t"})

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRestaurantService_Update_NotOwner(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	requester := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	newName := "Renamed"

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		ownershipRepo := mockRepo.NewMockOwnershipRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewOwnershipRepository().Return(ownershipRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		ownershipRepo.EXPECT().Exists(ctx, requester.ID, restaurantID).Return(false, nil)
	})

	restaurant, err := fx.service.Update(ctx, restaurantID, requester, &usecase.UpdateRestaurantInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, restaurant)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRestaurantOwner))
}

func TestRestaurantService_Update_OwnerPatchesFields(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	requester := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	existing := &entity.Restaurant{
		ID:       restaurantID,
		Name:     "Old Name",
		PhotoURL: "https://cdn.example.com/old.png",
	}
	newName := "New Name"

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		ownershipRepo := mockRepo.NewMockOwnershipRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewOwnershipRepository().Return(ownershipRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(existing, nil)
		ownershipRepo.EXPECT().Exists(ctx, requester.ID, restaurantID).Return(true, nil)
		restaurantRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	restaurant, err := fx.service.Update(ctx, restaurantID, requester, &usecase.UpdateRestaurantInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", restaurant.Name)
	assert.Equal(t, "https://cdn.example.com/old.png", restaurant.PhotoURL)
}

func TestRestaurantService_Update_AdminSkipsOwnershipCheck(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	existing := &entity.Restaurant{ID: restaurantID, Name: "Old Name"}
	newName := "New Name"

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(existing, nil)
		restaurantRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	restaurant, err := fx.service.Update(ctx, restaurantID, admin, &usecase.UpdateRestaurantInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", restaurant.Name)
}

func TestRestaurantService_Validate_Success(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	validated := &entity.Restaurant{ID: restaurantID, IsValidated: true}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().Validate(ctx, restaurantID).Return(validated, nil)
	})

	restaurant, err := fx.service.Validate(ctx, restaurantID)

	require.NoError(t, err)
	assert.True(t, restaurant.IsValidated)
}

func TestRestaurantService_Validate_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().Validate(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	restaurant, err := fx.service.Validate(ctx, restaurantID)

	assert.Error(t, err)
	assert.Nil(t, restaurant)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_AddOwner_UserNotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.AddOwner(ctx, restaurantID, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestRestaurantService_RemoveOwner_DeletesGrant(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		ownershipRepo := mockRepo.NewMockOwnershipRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		factory.EXPECT().NewOwnershipRepository().Return(ownershipRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
		ownershipRepo.EXPECT().Delete(ctx, userID, restaurantID).Return(nil)
	})

	err := fx.service.RemoveOwner(ctx, restaurantID, userID)

	assert.NoError(t, err)
}

func TestRestaurantService_RemoveOwner_RestaurantNotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	err := fx.service.RemoveOwner(ctx, restaurantID, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_ListOwned_ResolvesRestaurants(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	userID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	ownerships := []*entity.Ownership{
		{UserID: userID, RestaurantID: firstID},
		{UserID: userID, RestaurantID: secondID},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		ownershipRepo := mockRepo.NewMockOwnershipRepository(t)
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewOwnershipRepository().Return(ownershipRepo)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		ownershipRepo.EXPECT().ListByUser(ctx, userID).Return(ownerships, nil)
		restaurantRepo.EXPECT().FindByID(ctx, firstID).Return(&entity.Restaurant{ID: firstID}, nil)
		restaurantRepo.EXPECT().FindByID(ctx, secondID).Return(&entity.Restaurant{ID: secondID}, nil)
	})

	restaurants, err := fx.service.ListOwned(ctx, userID)

	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, firstID, restaurants[0].ID)
	assert.Equal(t, secondID, restaurants[1].ID)
}

func TestRestaurantService_ShareQR_Success(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&entity.Restaurant{ID: restaurantID}, nil)
	})

	fx.qrSvc.EXPECT().GenerateRestaurantQR(restaurantID).Return(pngBytes, nil)

	png, err := fx.service.ShareQR(ctx, restaurantID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestRestaurantService_ShareQR_RestaurantNotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
		factory.EXPECT().NewRestaurantRepository().Return(restaurantRepo)
		restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
	})

	png, err := fx.service.ShareQR(ctx, restaurantID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}
