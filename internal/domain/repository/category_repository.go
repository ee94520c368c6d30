package repository

import (
	"context"
	"errors"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken is returned when an insert collides with the
	// case-insensitive unique index on category names.
	ErrCategoryNameTaken = errors.New("category name already taken")
)

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by exact name, compared
	// case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List retrieves categories, optionally filtered by status. A nil
	// filter returns every category.
	List(ctx context.Context, status *entity.CategoryStatus) ([]*entity.Category, error)

	// Search performs a case-insensitive substring match on names.
	Search(ctx context.Context, query string) ([]*entity.Category, error)

	// Create persists a new category. Returns ErrCategoryNameTaken when the
	// storage-level unique constraint rejects the name; the constraint is
	// the final arbiter against concurrent duplicate creation.
	Create(ctx context.Context, category *entity.Category) error

	// UpdateStatus sets the category's moderation status unconditionally.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CategoryStatus) (*entity.Category, error)
}
