package impl

import (
	"context"
	"log/slog"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/rating"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/domain/service"
	"opinalocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager repository.TransactionManager
	qrSvc     service.QRCodeService
	logger    *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	txManager repository.TransactionManager,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager: txManager,
		qrSvc:     qrSvc,
		logger:    logger,
	}
}

// Register persists a new restaurant. Every submission starts unvalidated
// regardless of what the client sent; the creator is granted ownership.
func (srv *restaurantService) Register(ctx context.Context, creator uuid.UUID, input *usecase.RegisterRestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		ID:          uuid.New(),
		Name:        input.Name,
		Address:     input.Address,
		Location:    input.Location,
		PhotoURL:    input.PhotoURL,
		IsValidated: false,
		CreatedBy:   creator,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRestaurantRepository().Create(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to create restaurant")
		}

		ownership := &entity.Ownership{
			UserID:       creator,
			RestaurantID: restaurant.ID,
		}
		if err := repoFactory.NewOwnershipRepository().Create(ctx, ownership); err != nil {
			return errors.Wrap(err, "failed to grant creator ownership")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register restaurant")
	}

	srv.logger.Info("Restaurant registered",
		slog.String("restaurantID", restaurant.ID.String()),
		slog.String("createdBy", creator.String()))

	return restaurant, nil
}

// Get retrieves one restaurant together with its rating, recomputed from the
// current review set on every call.
func (srv *restaurantService) Get(ctx context.Context, id uuid.UUID) (*usecase.RestaurantWithRating, error) {
	var result *usecase.RestaurantWithRating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurant, err := repoFactory.NewRestaurantRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		reviews, err := repoFactory.NewReviewRepository().ListByRestaurant(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}

		result = &usecase.RestaurantWithRating{
			Restaurant: restaurant,
			Rating: entity.RestaurantRating{
				Overall:     rating.OverallRating(reviews),
				ReviewCount: rating.ReviewCount(reviews),
			},
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get restaurant")
	}

	return result, nil
}

// List retrieves restaurants, optionally filtered by validation status.
func (srv *restaurantService) List(ctx context.Context, validated *bool) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRestaurantRepository().List(ctx, validated)
		if err != nil {
			return errors.Wrap(err, "failed to list restaurants")
		}
		restaurants = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// Search matches names and addresses and pairs each hit with the review
// aggregate computed by the query. When a coordinate and radius are provided,
// hits without coordinates or outside the radius are dropped.
func (srv *restaurantService) Search(ctx context.Context, input *usecase.SearchRestaurantsInput) ([]*usecase.RestaurantWithRating, error) {
	var rows []*repository.RestaurantSearchResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRestaurantRepository().Search(ctx, input.Query, input.Validated)
		if err != nil {
			return errors.Wrap(err, "failed to search restaurants")
		}
		rows = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	proximity := input.Lat != nil && input.Lng != nil && input.RadiusKm != nil

	results := make([]*usecase.RestaurantWithRating, 0, len(rows))
	for _, row := range rows {
		if proximity {
			if row.Restaurant.Location == nil {
				continue
			}
			center := entity.Location{Lat: *input.Lat, Lng: *input.Lng}
			if geo.Distance(center.Point(), row.Restaurant.Location.Point()) > *input.RadiusKm*1000 {
				continue
			}
		}

		results = append(results, &usecase.RestaurantWithRating{
			Restaurant: row.Restaurant,
			Rating: entity.RestaurantRating{
				Overall:     row.AverageRating,
				ReviewCount: row.ReviewCount,
			},
		})
	}

	return results, nil
}

// Update applies a partial patch. The requester must own the restaurant or
// hold the admin role.
func (srv *restaurantService) Update(ctx context.Context, id uuid.UUID, requester *entity.User, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	var restaurant *entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		found, err := restaurantRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		if !requester.IsAdmin() {
			owns, err := repoFactory.NewOwnershipRepository().Exists(ctx, requester.ID, id)
			if err != nil {
				return errors.Wrap(err, "failed to check ownership")
			}
			if !owns {
				return errors.Wrap(domainerrors.ErrNotRestaurantOwner, "requester does not own restaurant")
			}
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Address != nil {
			found.Address = *input.Address
		}
		if input.Location != nil {
			found.Location = input.Location
		}
		if input.PhotoURL != nil {
			found.PhotoURL = *input.PhotoURL
		}

		if err := restaurantRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update restaurant")
		}
		restaurant = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

// Validate marks the restaurant validated. The flag never reverts, and
// validating an already-validated restaurant succeeds without change.
func (srv *restaurantService) Validate(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant *entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRestaurantRepository().Validate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to validate restaurant")
		}
		restaurant = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate restaurant")
	}

	srv.logger.Info("Restaurant validated", slog.String("restaurantID", id.String()))

	return restaurant, nil
}

// AddOwner grants a user edit rights over a restaurant. Granting an existing
// owner again is a no-op.
func (srv *restaurantService) AddOwner(ctx context.Context, restaurantID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRestaurantRepository().FindByID(ctx, restaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		ownership := &entity.Ownership{
			UserID:       userID,
			RestaurantID: restaurantID,
		}
		if err := repoFactory.NewOwnershipRepository().Create(ctx, ownership); err != nil {
			return errors.Wrap(err, "failed to create ownership")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to add owner")
	}

	return nil
}

// RemoveOwner revokes a user's edit rights over a restaurant. Revoking an
// absent grant is a no-op.
func (srv *restaurantService) RemoveOwner(ctx context.Context, restaurantID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRestaurantRepository().FindByID(ctx, restaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		if err := repoFactory.NewOwnershipRepository().Delete(ctx, userID, restaurantID); err != nil {
			return errors.Wrap(err, "failed to delete ownership")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove owner")
	}

	return nil
}

// ListOwned retrieves the restaurants a user owns.
func (srv *restaurantService) ListOwned(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownerships, err := repoFactory.NewOwnershipRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list ownerships")
		}

		restaurantRepo := repoFactory.NewRestaurantRepository()
		restaurants = make([]*entity.Restaurant, 0, len(ownerships))
		for _, ownership := range ownerships {
			restaurant, err := restaurantRepo.FindByID(ctx, ownership.RestaurantID)
			if err != nil {
				return errors.Wrap(err, "failed to find owned restaurant")
			}
			restaurants = append(restaurants, restaurant)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned restaurants")
	}

	return restaurants, nil
}

// ShareQR renders the PNG QR code pointing at the restaurant's public page.
func (srv *restaurantService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewRestaurantRepository().FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
			}

			return errors.Wrap(err, "failed to find restaurant")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to share restaurant")
	}

	png, err := srv.qrSvc.GenerateRestaurantQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
