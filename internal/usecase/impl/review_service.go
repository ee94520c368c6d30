package impl

import (
	"context"
	"log/slog"
	"time"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/rating"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/domain/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit validates and persists a new review. The stored overall rating is
// the mean of every submitted score; any client-supplied overall value never
// reaches this layer. A review that rates no category at all is valid and
// stores an overall rating of 0. After the transaction commits, a
// review.created event is published for the restaurant's prior reviewers.
func (srv *reviewService) Submit(ctx context.Context, userID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if input.Text == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "review text is required")
	}
	for name, score := range input.Standard {
		if !entity.IsStandardCategory(name) {
			return nil, domainerrors.ErrUnknownCategory.WithDetails("unknown standard category: " + name)
		}
		if score < 1 || score > 5 {
			return nil, domainerrors.ErrRatingOutOfRange.WithDetails("score out of range for category: " + name)
		}
	}
	for name, score := range input.Custom {
		if score < 1 || score > 5 {
			return nil, domainerrors.ErrRatingOutOfRange.WithDetails("score out of range for category: " + name)
		}
	}

	var (
		review     *entity.Review
		actor      *entity.User
		restaurant *entity.Restaurant
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		actor = foundUser

		foundRestaurant, err := repoFactory.NewRestaurantRepository().FindByID(ctx, input.RestaurantID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}
		restaurant = foundRestaurant

		custom, err := canonicalizeCustom(ctx, repoFactory, input.Custom)
		if err != nil {
			return err
		}

		ratings := entity.Ratings{
			Standard: input.Standard,
			Custom:   custom,
		}
		review = &entity.Review{
			ID:            uuid.New(),
			UserID:        userID,
			RestaurantID:  input.RestaurantID,
			Text:          input.Text,
			Photos:        input.Photos,
			VisitDate:     input.VisitDate,
			Ratings:       ratings,
			OverallRating: ratings.Mean(),
		}

		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit review")
	}

	srv.logger.Info("Review submitted",
		slog.String("reviewID", review.ID.String()),
		slog.String("restaurantID", review.RestaurantID.String()))

	publishEvent(ctx, srv.logger, srv.publisher, &service.NotificationEvent{
		Kind:         service.EventReviewCreated,
		ActorID:      actor.ID.String(),
		ActorName:    actor.Name,
		RestaurantID: restaurant.ID.String(),
		Restaurant:   restaurant.Name,
		ReviewID:     review.ID.String(),
	})

	return review, nil
}

// canonicalizeCustom rekeys custom ratings to the registry's stored casing so
// a rating on "wi-fi" lands in the same summary bucket as an approved
// "Wi-Fi". Custom names are open-ended: a name with no registry match is kept
// exactly as submitted. On a casing collision the first resolved score wins.
func canonicalizeCustom(ctx context.Context, repoFactory repository.RepositoryFactory, custom map[string]int) (map[string]int, error) {
	if len(custom) == 0 {
		return custom, nil
	}

	categoryRepo := repoFactory.NewCategoryRepository()
	canonical := make(map[string]int, len(custom))
	for name, score := range custom {
		category, err := categoryRepo.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				canonical[name] = score

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve category name")
		}
		if _, ok := canonical[category.Name]; !ok {
			canonical[category.Name] = score
		}
	}

	return canonical, nil
}

// Get retrieves one review.
func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

// ListByRestaurant retrieves a restaurant's reviews, newest first.
func (srv *reviewService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().ListByRestaurant(ctx, restaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant reviews")
	}

	return reviews, nil
}

// ListByUser retrieves a user's reviews, newest first.
func (srv *reviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// ListRecent retrieves reviews created within the timeframe, newest first.
func (srv *reviewService) ListRecent(ctx context.Context, timeframe usecase.ReviewTimeframe) ([]*entity.Review, error) {
	now := time.Now()

	var since time.Time
	switch timeframe {
	case usecase.TimeframeToday:
		// Calendar day in the server's zone, not a rolling 24h window.
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case usecase.TimeframeWeek:
		since = now.AddDate(0, 0, -7)
	case usecase.TimeframeMonth:
		since = now.AddDate(0, -1, 0)
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown timeframe")
	}

	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewReviewRepository().ListRecent(ctx, since)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent reviews")
	}

	return reviews, nil
}

// Summary recomputes the restaurant's rating breakdown from its current
// review set. Per-category averages are restricted to currently approved
// category names; a category rejected after use disappears from the summary
// without touching the stored reviews.
func (srv *reviewService) Summary(ctx context.Context, restaurantID uuid.UUID) (*usecase.CategorySummary, error) {
	var summary *usecase.CategorySummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRestaurantRepository().FindByID(ctx, restaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		reviews, err := repoFactory.NewReviewRepository().ListByRestaurant(ctx, restaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		approvedStatus := entity.CategoryStatusApproved
		categories, err := repoFactory.NewCategoryRepository().List(ctx, &approvedStatus)
		if err != nil {
			return errors.Wrap(err, "failed to list approved categories")
		}
		approved := make(map[string]struct{}, len(categories))
		for _, category := range categories {
			approved[category.Name] = struct{}{}
		}

		summary = &usecase.CategorySummary{
			Overall:     rating.OverallRating(reviews),
			ReviewCount: rating.ReviewCount(reviews),
			Categories:  rating.Summarize(reviews, approved),
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return summary, nil
}
