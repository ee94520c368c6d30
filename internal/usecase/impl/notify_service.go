package impl

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"opinalocal/internal/domain/entity"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/domain/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Firebase batch size limit
const firebaseBatchSize = 500

// emailTemplate is parsed once at process start and shared read-only by every
// dispatch.
var emailTemplate = template.Must(template.New("notification").Parse(
	`<div><h2>{{.Title}}</h2><p>{{.Body}}</p></div>`))

// notifyService implements the NotifyUsecase interface. It runs in the
// notify worker, consuming events the API published after commit.
type notifyService struct {
	txManager       repository.TransactionManager
	notificationSvc service.NotificationService
	mailer          service.Mailer
	logger          *slog.Logger
}

// NewNotifyService is the constructor for notifyService.
func NewNotifyService(
	txManager repository.TransactionManager,
	notificationSvc service.NotificationService,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.NotifyUsecase {
	return &notifyService{
		txManager:       txManager,
		notificationSvc: notificationSvc,
		mailer:          mailer,
		logger:          logger,
	}
}

// delivery is one resolved notification ready to go out on both channels.
type delivery struct {
	recipients []*entity.User
	title      string
	body       string
	data       map[string]string
}

// ProcessEvent resolves the event's recipients, re-checks each recipient's
// preference for the event kind at delivery time, and sends push and email.
// Database failures are reported as retryable; a malformed or unknown event
// is acknowledged so the queue does not redeliver it forever.
func (srv *notifyService) ProcessEvent(ctx context.Context, event *service.NotificationEvent) error {
	var d *delivery

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resolved, err := srv.resolve(ctx, repoFactory, event)
		if err != nil {
			return err
		}
		d = resolved

		return nil
	})
	if err != nil {
		if isPermanent(err) {
			srv.logger.Warn("Dropping unprocessable notification event",
				slog.String("kind", event.Kind),
				slog.Any("error", err))

			return errors.Wrap(err, "unprocessable notification event")
		}

		return errors.Wrapf(usecase.ErrRetryable, "failed to resolve recipients: %v", err)
	}

	if len(d.recipients) == 0 {
		srv.logger.Debug("No recipients after preference filtering", slog.String("kind", event.Kind))

		return nil
	}

	srv.sendPush(ctx, d)
	srv.sendEmail(ctx, d)

	return nil
}

// permanentError marks resolution failures that redelivery cannot fix.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err: err} }

func isPermanent(err error) bool {
	var pe *permanentError

	return errors.As(err, &pe)
}

// resolve turns an event into recipients and rendered content. Recipients
// whose preference for the event kind is off are filtered out here, against
// the preference value current at delivery time.
func (srv *notifyService) resolve(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.NotificationEvent) (*delivery, error) {
	switch event.Kind {
	case service.EventReviewCreated:
		return srv.resolveReviewCreated(ctx, repoFactory, event)
	case service.EventCommentCreated:
		return srv.resolveCommentCreated(ctx, repoFactory, event)
	case service.EventCategoryApproved:
		return srv.resolveCategoryApproved(ctx, repoFactory, event)
	default:
		return nil, permanent(fmt.Errorf("unknown event kind: %s", event.Kind))
	}
}

// resolveReviewCreated fans out to everyone who previously reviewed the
// restaurant, excluding the new review's author.
func (srv *notifyService) resolveReviewCreated(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.NotificationEvent) (*delivery, error) {
	restaurantID, err := uuid.Parse(event.RestaurantID)
	if err != nil {
		return nil, permanent(fmt.Errorf("invalid restaurant ID %q: %w", event.RestaurantID, err))
	}

	reviewerIDs, err := repoFactory.NewReviewRepository().DistinctReviewerIDs(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviewers")
	}

	userRepo := repoFactory.NewUserRepository()
	recipients := make([]*entity.User, 0, len(reviewerIDs))
	for _, reviewerID := range reviewerIDs {
		if reviewerID.String() == event.ActorID {
			continue
		}
		user, err := userRepo.FindByID(ctx, reviewerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to find reviewer")
		}
		if !user.Preferences.NewReview {
			continue
		}
		recipients = append(recipients, user)
	}

	return &delivery{
		recipients: recipients,
		title:      fmt.Sprintf("New review of %s", event.Restaurant),
		body:       fmt.Sprintf("%s posted a new review of %s.", event.ActorName, event.Restaurant),
		data: map[string]string{
			"kind":          event.Kind,
			"restaurant_id": event.RestaurantID,
			"review_id":     event.ReviewID,
		},
	}, nil
}

// resolveCommentCreated notifies the review's author. The publisher already
// skips self-comments; the author lookup here covers reviews deleted between
// publish and delivery.
func (srv *notifyService) resolveCommentCreated(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.NotificationEvent) (*delivery, error) {
	reviewID, err := uuid.Parse(event.ReviewID)
	if err != nil {
		return nil, permanent(fmt.Errorf("invalid review ID %q: %w", event.ReviewID, err))
	}

	review, err := repoFactory.NewReviewRepository().FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, permanent(fmt.Errorf("review %s no longer exists", event.ReviewID))
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	var recipients []*entity.User
	if review.UserID.String() != event.ActorID {
		author, err := repoFactory.NewUserRepository().FindByID(ctx, review.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, errors.Wrap(err, "failed to find review author")
			}
		} else if author.Preferences.Comment {
			recipients = append(recipients, author)
		}
	}

	return &delivery{
		recipients: recipients,
		title:      "New comment on your review",
		body:       fmt.Sprintf("%s commented on your review.", event.ActorName),
		data: map[string]string{
			"kind":       event.Kind,
			"review_id":  event.ReviewID,
			"comment_id": event.CommentID,
		},
	}, nil
}

// resolveCategoryApproved notifies the category's creator. Seeded categories
// carry the admin sentinel instead of a user ID and never notify.
func (srv *notifyService) resolveCategoryApproved(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.NotificationEvent) (*delivery, error) {
	categoryID, err := uuid.Parse(event.CategoryID)
	if err != nil {
		return nil, permanent(fmt.Errorf("invalid category ID %q: %w", event.CategoryID, err))
	}

	category, err := repoFactory.NewCategoryRepository().FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, permanent(fmt.Errorf("category %s no longer exists", event.CategoryID))
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	var recipients []*entity.User
	if !category.IsSeeded() {
		creatorID, err := uuid.Parse(category.CreatedBy)
		if err != nil {
			return nil, permanent(fmt.Errorf("invalid category creator %q: %w", category.CreatedBy, err))
		}

		creator, err := repoFactory.NewUserRepository().FindByID(ctx, creatorID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, errors.Wrap(err, "failed to find category creator")
			}
		} else if creator.Preferences.CategoryApproval {
			recipients = append(recipients, creator)
		}
	}

	return &delivery{
		recipients: recipients,
		title:      "Your category was approved",
		body:       fmt.Sprintf("The category %q you suggested is now available to reviewers.", category.Name),
		data: map[string]string{
			"kind":        event.Kind,
			"category_id": event.CategoryID,
		},
	}, nil
}

// sendPush delivers to every device token of the recipients in Firebase-sized
// batches. Tokens the provider reports as no longer registered are pruned.
// Push failures are logged, never retried through the queue.
func (srv *notifyService) sendPush(ctx context.Context, d *delivery) {
	userIDs := make([]uuid.UUID, 0, len(d.recipients))
	for _, recipient := range d.recipients {
		userIDs = append(userIDs, recipient.ID)
	}

	var subscriptions []*entity.PushSubscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPushSubscriptionRepository().ListByUsers(ctx, userIDs)
		if err != nil {
			return errors.Wrap(err, "failed to list push subscriptions")
		}
		subscriptions = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to load push subscriptions", slog.Any("error", err))

		return
	}
	if len(subscriptions) == 0 {
		return
	}

	tokens := make([]string, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		tokens = append(tokens, subscription.FCMToken)
	}

	// A lone token goes through the direct send API. Unregistered-token
	// pruning only applies to batch delivery reports.
	if len(tokens) == 1 {
		if err := srv.notificationSvc.SendSingleNotification(ctx, tokens[0], d.title, d.body, d.data); err != nil {
			srv.logger.Error("Push send failed", slog.Any("error", err))
		}

		return
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		successCount, failureCount, batchInvalid, err := srv.notificationSvc.SendBatchNotification(ctx, batch, d.title, d.body, d.data)
		if err != nil {
			srv.logger.Error("Push batch failed",
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err))

			continue
		}

		invalidTokens = append(invalidTokens, batchInvalid...)
		srv.logger.Debug("Push batch sent",
			slog.Int("success", successCount),
			slog.Int("failure", failureCount))
	}

	if len(invalidTokens) > 0 {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewPushSubscriptionRepository().DeleteByTokens(ctx, invalidTokens)
		})
		if err != nil {
			srv.logger.Error("Failed to prune invalid push tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err))
		}
	}
}

// sendEmail delivers one email per recipient. Failures are logged and do not
// affect the other recipients.
func (srv *notifyService) sendEmail(ctx context.Context, d *delivery) {
	var rendered bytes.Buffer
	if err := emailTemplate.Execute(&rendered, struct{ Title, Body string }{d.title, d.body}); err != nil {
		srv.logger.Error("Failed to render notification email", slog.Any("error", err))

		return
	}

	htmlBody := rendered.String()
	for _, recipient := range d.recipients {
		if recipient.Email == "" {
			continue
		}
		if err := srv.mailer.Send(ctx, recipient.Email, d.title, htmlBody); err != nil {
			srv.logger.Error("Failed to send notification email",
				slog.String("userID", recipient.ID.String()),
				slog.Any("error", err))
		}
	}
}
