package impl

import (
	"context"
	"testing"

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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service   usecase.CategoryUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewCategoryService(txManager, publisher, newDiscardLogger())

	return categoryServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func TestCategoryService_Create_StartsPending(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	creator := uuid.New().String()
	input := &usecase.CreateCategoryInput{Name: "Vegan Options"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByName(ctx, "Vegan Options").Return(nil, repository.ErrCategoryNotFound)
		categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	})

	category, err := fx.service.Create(ctx, creator, input)

	require.NoError(t, err)
	assert.Equal(t, "Vegan Options", category.Name)
	assert.Equal(t, creator, category.CreatedBy)
	assert.Equal(t, entity.CategoryStatusPending, category.Status)
}

func TestCategoryService_Create_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	existing := &entity.Category{ID: uuid.New(), Name: "Vegan Options"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByName(ctx, "Vegan Options").Return(existing, nil)
	})

	category, err := fx.service.Create(ctx, "someone", &usecase.CreateCategoryInput{Name: "Vegan Options"})

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryExists))
}

func TestCategoryService_Create_UniqueIndexRace(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByName(ctx, "Vegan Options").Return(nil, repository.ErrCategoryNotFound)
		categoryRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Category")).
			Return(repository.ErrCategoryNameTaken)
	})

	category, err := fx.service.Create(ctx, "someone", &usecase.CreateCategoryInput{Name: "Vegan Options"})

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryExists))
}

func TestCategoryService_List_FiltersByStatus(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	status := entity.CategoryStatusApproved
	approved := []*entity.Category{
		{ID: uuid.New(), Name: "Food", Status: entity.CategoryStatusApproved},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().List(ctx, &status).Return(approved, nil)
	})

	categories, err := fx.service.List(ctx, &status)

	require.NoError(t, err)
	assert.Equal(t, approved, categories)
}

func TestCategoryService_SetStatus_InvalidValue(t *testing.T) {
	fx := createTestCategoryService(t)

	category, err := fx.service.SetStatus(context.Background(), uuid.New(), "archived")

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategoryStatus))
	// No transaction was opened; the mock manager would fail on an
	// unexpected Execute call.
}

func TestCategoryService_SetStatus_ApprovalPublishesEvent(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	creator := uuid.New().String()
	pending := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: creator,
		Status:    entity.CategoryStatusPending,
	}
	approved := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: creator,
		Status:    entity.CategoryStatusApproved,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(pending, nil)
		categoryRepo.EXPECT().UpdateStatus(ctx, categoryID, entity.CategoryStatusApproved).Return(approved, nil)
	})

	var published *service.NotificationEvent
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			published = event
		}).
		Return(nil)

	category, err := fx.service.SetStatus(ctx, categoryID, "approved")

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryStatusApproved, category.Status)
	require.NotNil(t, published)
	assert.Equal(t, service.EventCategoryApproved, published.Kind)
	assert.Equal(t, categoryID.String(), published.CategoryID)
	assert.Equal(t, "Vegan Options", published.Category)
}

func TestCategoryService_SetStatus_AlreadyApprovedStaysSilent(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	approved := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: uuid.New().String(),
		Status:    entity.CategoryStatusApproved,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(approved, nil)
		categoryRepo.EXPECT().UpdateStatus(ctx, categoryID, entity.CategoryStatusApproved).Return(approved, nil)
	})

	_, err := fx.service.SetStatus(ctx, categoryID, "approved")

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestCategoryService_SetStatus_SeededCategoryStaysSilent(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	pending := &entity.Category{
		ID:        categoryID,
		Name:      "Cleanliness",
		CreatedBy: entity.CategoryCreatorAdmin,
		Status:    entity.CategoryStatusPending,
	}
	approved := &entity.Category{
		ID:        categoryID,
		Name:      "Cleanliness",
		CreatedBy: entity.CategoryCreatorAdmin,
		Status:    entity.CategoryStatusApproved,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(pending, nil)
		categoryRepo.EXPECT().UpdateStatus(ctx, categoryID, entity.CategoryStatusApproved).Return(approved, nil)
	})

	_, err := fx.service.SetStatus(ctx, categoryID, "approved")

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestCategoryService_SetStatus_RejectionStaysSilent(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	pending := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: uuid.New().String(),
		Status:    entity.CategoryStatusPending,
	}
	rejected := &entity.Category{
		ID:        categoryID,
		Name:      "Vegan Options",
		CreatedBy: pending.CreatedBy,
		Status:    entity.CategoryStatusRejected,
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(pending, nil)
		categoryRepo.EXPECT().UpdateStatus(ctx, categoryID, entity.CategoryStatusRejected).Return(rejected, nil)
	})

	category, err := fx.service.SetStatus(ctx, categoryID, "rejected")

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryStatusRejected, category.Status)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
}

func TestCategoryService_SetStatus_CategoryNotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)
	})

	category, err := fx.service.SetStatus(ctx, categoryID, "approved")

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
