package postgres

import (
	"context"
	"encoding/json"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// FindByID retrieves a single restaurant by its unique ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// List retrieves restaurants, optionally filtered by validation status.
func (repo *restaurantRepository) List(ctx context.Context, validated *bool) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if validated != nil {
		query = query.Where("is_validated = ?", *validated)
	}

	if err := query.Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// restaurantSearchRow carries the model columns plus the review aggregate
// computed by the search query's join.
type restaurantSearchRow struct {
	model.RestaurantModel
	AverageRating float64
	ReviewCount   int
}

// Search matches the query case-insensitively against names and display
// addresses, joining each restaurant's review aggregate in the same query.
func (repo *restaurantRepository) Search(ctx context.Context, query string, validated *bool) ([]*repository.RestaurantSearchResult, error) {
	var rows []*restaurantSearchRow

	pattern := "%" + query + "%"
	q := repo.db.WithContext(ctx).
		Table("restaurants").
		Select("restaurants.*, COALESCE(AVG(reviews.overall_rating), 0) AS average_rating, COUNT(reviews.id) AS review_count").
		Joins("LEFT JOIN reviews ON reviews.restaurant_id = restaurants.id").
		Where("restaurants.name ILIKE ? OR restaurants.full_address ILIKE ?", pattern, pattern).
		Group("restaurants.id").
		Order("restaurants.name ASC")

	if validated != nil {
		q = q.Where("restaurants.is_validated = ?", *validated)
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	results := make([]*repository.RestaurantSearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, &repository.RestaurantSearchResult{
			Restaurant:    toRestaurantDomain(&row.RestaurantModel),
			AverageRating: row.AverageRating,
			ReviewCount:   row.ReviewCount,
		})
	}

	return results, nil
}

// Create persists a new restaurant.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid creator reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// Update modifies an existing restaurant.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]interface{}{
			"name":         restaurantM.Name,
			"address":      restaurantM.Address,
			"full_address": restaurantM.FullAddress,
			"location":     restaurantM.Location,
			"photo_url":    restaurantM.PhotoURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// Validate sets the validation flag. Re-validating an already validated
// restaurant leaves the row untouched and is still a success.
func (repo *restaurantRepository) Validate(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ? AND is_validated = false", id).
		Update("is_validated", true)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to validate restaurant")
	}

	// RowsAffected 0 covers both "already validated" and "unknown ID";
	// the follow-up read distinguishes them.
	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	var address entity.Address
	if len(data.Address) > 0 {
		_ = json.Unmarshal(data.Address, &address)
	}
	address.FullAddress = data.FullAddress

	var location *entity.Location
	if len(data.Location) > 0 {
		var loc entity.Location
		if err := json.Unmarshal(data.Location, &loc); err == nil {
			location = &loc
		}
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		Address:     address,
		Location:    location,
		PhotoURL:    data.PhotoURL,
		IsValidated: data.IsValidated,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	address, _ := json.Marshal(data.Address)

	var location datatypes.JSON
	if data.Location != nil {
		location, _ = json.Marshal(data.Location)
	}

	return &model.RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     datatypes.JSON(address),
		FullAddress: data.Address.FullAddress,
		Location:    location,
		PhotoURL:    data.PhotoURL,
		IsValidated: data.IsValidated,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
