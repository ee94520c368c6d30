package repository

import (
	"context"
	"errors"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByReview retrieves a review's comments, newest first.
	ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
