package impl

import (
	"context"
	"log/slog"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/domain/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Create inserts a pending category. Names are compared case-insensitively;
// the database unique index on the lowercased name is the final arbiter under
// concurrent submissions.
func (srv *categoryService) Create(ctx context.Context, creator string, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedBy: creator,
		Status:    entity.CategoryStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		_, err := categoryRepo.FindByName(ctx, input.Name)
		if err == nil {
			return errors.Wrap(domainerrors.ErrCategoryExists, "category name already taken")
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category name")
		}

		if err := categoryRepo.Create(ctx, category); err != nil {
			if errors.Is(err, repository.ErrCategoryNameTaken) {
				return errors.Wrap(domainerrors.ErrCategoryExists, "category name already taken")
			}

			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.logger.Info("Category created",
		slog.String("categoryID", category.ID.String()),
		slog.String("name", category.Name))

	return category, nil
}

// List retrieves categories, optionally filtered by status.
func (srv *categoryService) List(ctx context.Context, status *entity.CategoryStatus) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCategoryRepository().List(ctx, status)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Search performs a case-insensitive substring match on names.
func (srv *categoryService) Search(ctx context.Context, query string) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCategoryRepository().Search(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to search categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search categories")
	}

	return categories, nil
}

// SetStatus transitions a category's moderation status. Any valid target
// status is accepted from any current status. An actual change to approved on
// a user-suggested category publishes a category.approved event after the
// transaction commits; seeded categories never notify.
func (srv *categoryService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Category, error) {
	target := entity.CategoryStatus(status)
	if !target.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCategoryStatus, "unknown status value")
	}

	var (
		category *entity.Category
		notify   bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		previous, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		updated, err := categoryRepo.UpdateStatus(ctx, id, target)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
			}

			return errors.Wrap(err, "failed to update category status")
		}

		notify = previous.Status != entity.CategoryStatusApproved &&
			updated.Status == entity.CategoryStatusApproved &&
			!updated.IsSeeded()
		category = updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set category status")
	}

	srv.logger.Info("Category status updated",
		slog.String("categoryID", id.String()),
		slog.String("status", category.Status.String()))

	if notify {
		publishEvent(ctx, srv.logger, srv.publisher, &service.NotificationEvent{
			Kind:       service.EventCategoryApproved,
			CategoryID: category.ID.String(),
			Category:   category.Name,
		})
	}

	return category, nil
}
