package postgres

import (
	"context"
	"encoding/json"
	"time"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByRestaurant retrieves a restaurant's reviews, newest first.
func (repo *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by restaurant")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListByUser retrieves a user's reviews, newest first.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// ListRecent retrieves reviews created at or after the given time, newest first.
func (repo *reviewRepository) ListRecent(ctx context.Context, since time.Time) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent reviews")
	}

	return toReviewDomainSlice(reviewModels), nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// DistinctReviewerIDs returns the IDs of users who have reviewed the
// restaurant, each ID once.
func (repo *reviewRepository) DistinctReviewerIDs(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Distinct("user_id").
		Where("restaurant_id = ?", restaurantID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list distinct reviewer IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	var ratings entity.Ratings
	if len(data.Ratings) > 0 {
		_ = json.Unmarshal(data.Ratings, &ratings)
	}

	var photos []string
	if len(data.Photos) > 0 {
		_ = json.Unmarshal(data.Photos, &photos)
	}

	return &entity.Review{
		ID:            data.ID,
		UserID:        data.UserID,
		RestaurantID:  data.RestaurantID,
		Text:          data.Text,
		Photos:        photos,
		VisitDate:     data.VisitDate,
		Ratings:       ratings,
		OverallRating: data.OverallRating,
		CreatedAt:     data.CreatedAt,
	}
}

func toReviewDomainSlice(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	ratings, _ := json.Marshal(data.Ratings)

	var photos datatypes.JSON
	if len(data.Photos) > 0 {
		photos, _ = json.Marshal(data.Photos)
	}

	return &model.ReviewModel{
		ID:            data.ID,
		UserID:        data.UserID,
		RestaurantID:  data.RestaurantID,
		Text:          data.Text,
		Photos:        photos,
		VisitDate:     data.VisitDate,
		Ratings:       datatypes.JSON(ratings),
		OverallRating: data.OverallRating,
		CreatedAt:     data.CreatedAt,
	}
}
