package usecase

import (
	"context"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput carries a new category suggestion.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryUsecase defines the interface for category registry use cases.
type CategoryUsecase interface {
	// Create inserts a pending category. Returns a conflict error when the
	// name already exists, compared case-insensitively.
	Create(ctx context.Context, creator string, input *CreateCategoryInput) (*entity.Category, error)

	// List retrieves categories, optionally filtered by status.
	List(ctx context.Context, status *entity.CategoryStatus) ([]*entity.Category, error)

	// Search performs a case-insensitive substring match on names.
	Search(ctx context.Context, query string) ([]*entity.Category, error)

	// SetStatus transitions a category's moderation status. An actual
	// change to approved publishes a notification event for the creator.
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Category, error)
}
