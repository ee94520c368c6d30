package usecase

import (
	"context"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput carries a new comment on a review.
type AddCommentInput struct {
	Text string `json:"text" validate:"required"`
}

// CommentUsecase defines the interface for comment use cases.
type CommentUsecase interface {
	// Add persists a comment and publishes a comment.created event to the
	// review's author unless the author is the commenter.
	Add(ctx context.Context, reviewID, userID uuid.UUID, input *AddCommentInput) (*entity.Comment, error)

	// ListByReview retrieves a review's comments, newest first.
	ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error)

	// Delete permanently removes a comment. Route middleware restricts
	// this to administrators.
	Delete(ctx context.Context, id uuid.UUID) error
}
