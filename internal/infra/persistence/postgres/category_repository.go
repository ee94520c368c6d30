package postgres

import (
	"context"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByName retrieves a category by exact name, compared case-insensitively.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// List retrieves categories, optionally filtered by status.
func (repo *categoryRepository) List(ctx context.Context, status *entity.CategoryStatus) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// Search performs a case-insensitive substring match on names.
func (repo *categoryRepository) Search(ctx context.Context, query string) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search categories")
	}

	return toCategoryDomainSlice(categoryModels), nil
}

// Create persists a new category. The unique index on lower(name) is the
// final arbiter against concurrent duplicate creation.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategoryNameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// UpdateStatus sets the category's moderation status unconditionally.
func (repo *categoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CategoryStatus) (*entity.Category, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		Status:    entity.CategoryStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

func toCategoryDomainSlice(models []*model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(models))
	for _, categoryM := range models {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedBy: data.CreatedBy,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
	}
}
