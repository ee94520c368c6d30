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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Add persists a comment on a review. After the transaction commits, a
// comment.created event is published for the review's author unless the
// author commented on their own review.
func (srv *commentService) Add(ctx context.Context, reviewID, userID uuid.UUID, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if input.Text == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "comment text is required")
	}

	comment := &entity.Comment{
		ID:       uuid.New(),
		ReviewID: reviewID,
		UserID:   userID,
		Text:     input.Text,
	}

	var (
		actor  *entity.User
		notify bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		review, err := repoFactory.NewReviewRepository().FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		foundUser, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		actor = foundUser

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to create comment")
		}

		notify = review.UserID != userID

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}

	srv.logger.Debug("Comment added",
		slog.String("commentID", comment.ID.String()),
		slog.String("reviewID", reviewID.String()))

	if notify {
		publishEvent(ctx, srv.logger, srv.publisher, &service.NotificationEvent{
			Kind:      service.EventCommentCreated,
			ActorID:   actor.ID.String(),
			ActorName: actor.Name,
			ReviewID:  reviewID.String(),
			CommentID: comment.ID.String(),
		})
	}

	return comment, nil
}

// ListByReview retrieves a review's comments, newest first.
func (srv *commentService) ListByReview(ctx context.Context, reviewID uuid.UUID) ([]*entity.Comment, error) {
	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCommentRepository().ListByReview(ctx, reviewID)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		comments = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review comments")
	}

	return comments, nil
}

// Delete permanently removes a comment.
func (srv *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCommentRepository().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	srv.logger.Info("Comment deleted", slog.String("commentID", id.String()))

	return nil
}
