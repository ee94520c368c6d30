// Command seed populates a fresh database with the platform categories, an
// administrator account, and a handful of sample listings for local
// development.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"opinalocal/config"
	"opinalocal/internal/domain/entity"
	"opinalocal/internal/domain/repository"
	logs "opinalocal/internal/infra/log"
	"opinalocal/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const adminProviderUID = "admin-sample-uid"

var seededCategories = []string{
	entity.StandardCategoryFood,
	entity.StandardCategoryService,
	entity.StandardCategoryAmbience,
	entity.StandardCategoryPrice,
	"Cleanliness",
	"Speed",
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger, shutdowner fx.Shutdowner) {
	go func() {
		if err := seed(ctx, txManager, logger); err != nil {
			logger.Error("Seeding failed", slog.Any("error", err))
			if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
				os.Exit(1)
			}

			return
		}

		logger.Info("Seeding completed")
		if err := shutdowner.Shutdown(); err != nil {
			os.Exit(1)
		}
	}()
}

func seed(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger) error {
	return txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := seedCategories(ctx, repoFactory, logger); err != nil {
			return err
		}

		admin, created, err := seedAdminUser(ctx, repoFactory, logger)
		if err != nil {
			return err
		}
		if !created {
			// Sample data follows the admin account; an existing admin
			// means the database was seeded before.
			return nil
		}

		return seedSampleRestaurants(ctx, repoFactory, admin, logger)
	})
}

func seedCategories(ctx context.Context, repoFactory repository.RepositoryFactory, logger *slog.Logger) error {
	categoryRepo := repoFactory.NewCategoryRepository()
	for _, name := range seededCategories {
		_, err := categoryRepo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrapf(err, "failed to look up category %q", name)
		}

		category := &entity.Category{
			ID:        uuid.New(),
			Name:      name,
			CreatedBy: entity.CategoryCreatorAdmin,
			Status:    entity.CategoryStatusApproved,
			CreatedAt: time.Now(),
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			return errors.Wrapf(err, "failed to create category %q", name)
		}
		logger.Info("Seeded category", slog.String("name", name))
	}

	return nil
}

func seedAdminUser(ctx context.Context, repoFactory repository.RepositoryFactory, logger *slog.Logger) (*entity.User, bool, error) {
	userRepo := repoFactory.NewUserRepository()

	existing, err := userRepo.FindByProviderUID(ctx, adminProviderUID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up admin user")
	}

	now := time.Now()
	admin := &entity.User{
		ID:          uuid.New(),
		ProviderUID: adminProviderUID,
		Email:       "admin@opinalocal.com",
		Name:        "OpinaLocal Admin",
		Role:        entity.RoleAdmin,
		Preferences: entity.DefaultNotificationPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, false, errors.Wrap(err, "failed to create admin user")
	}
	logger.Info("Seeded admin user", slog.String("id", admin.ID.String()))

	return admin, true, nil
}

func seedSampleRestaurants(ctx context.Context, repoFactory repository.RepositoryFactory, admin *entity.User, logger *slog.Logger) error {
	restaurantRepo := repoFactory.NewRestaurantRepository()
	reviewRepo := repoFactory.NewReviewRepository()
	now := time.Now()

	samples := []*entity.Restaurant{
		{
			ID:   uuid.New(),
			Name: "Restaurante Dona Maria",
			Address: entity.Address{
				Street:      "Rua da Consolação, 123",
				City:        "São Paulo",
				State:       "SP",
				PostalCode:  "01234-567",
				FullAddress: "Rua da Consolação, 123 - Consolação, São Paulo - SP",
			},
			Location:    &entity.Location{Lat: -23.5505, Lng: -46.6333},
			IsValidated: true,
			CreatedBy:   admin.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:   uuid.New(),
			Name: "Pizzaria Napoli",
			Address: entity.Address{
				Street:      "Rua Augusta, 456",
				City:        "São Paulo",
				State:       "SP",
				PostalCode:  "01234-567",
				FullAddress: "Rua Augusta, 456 - Bela Vista, São Paulo - SP",
			},
			Location:    &entity.Location{Lat: -23.5489, Lng: -46.6388},
			IsValidated: true,
			CreatedBy:   admin.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:   uuid.New(),
			Name: "Café Central",
			Address: entity.Address{
				Street:      "Av. Paulista, 789",
				City:        "São Paulo",
				State:       "SP",
				PostalCode:  "01234-567",
				FullAddress: "Av. Paulista, 789 - Bela Vista, São Paulo - SP",
			},
			Location:    &entity.Location{Lat: -23.5618, Lng: -46.6565},
			IsValidated: true,
			CreatedBy:   admin.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, restaurant := range samples {
		if err := restaurantRepo.Create(ctx, restaurant); err != nil {
			return errors.Wrapf(err, "failed to create restaurant %q", restaurant.Name)
		}
	}
	logger.Info("Seeded sample restaurants", slog.Int("count", len(samples)))

	reviews := []*entity.Review{
		{
			ID:           uuid.New(),
			UserID:       admin.ID,
			RestaurantID: samples[0].ID,
			Text:         "Excellent home-style cooking. The dish of the day is always fresh, and the staff make you feel at home.",
			Photos:       []string{},
			VisitDate:    time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			Ratings: entity.Ratings{
				Standard: map[string]int{
					entity.StandardCategoryFood:     5,
					entity.StandardCategoryService:  4,
					entity.StandardCategoryAmbience: 4,
					entity.StandardCategoryPrice:    4,
				},
				Custom: map[string]int{"Cleanliness": 5},
			},
			CreatedAt: now,
		},
		{
			ID:           uuid.New(),
			UserID:       admin.ID,
			RestaurantID: samples[1].ID,
			Text:         "Great pizza with a thin, crispy crust and fresh ingredients. Relaxed spot, perfect for families.",
			Photos:       []string{},
			VisitDate:    time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
			Ratings: entity.Ratings{
				Standard: map[string]int{
					entity.StandardCategoryFood:     4,
					entity.StandardCategoryService:  4,
					entity.StandardCategoryAmbience: 4,
					entity.StandardCategoryPrice:    3,
				},
				Custom: map[string]int{"Speed": 4},
			},
			CreatedAt: now,
		},
	}

	for _, review := range reviews {
		review.OverallRating = review.Ratings.Mean()
		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create sample review")
		}
	}
	logger.Info("Seeded sample reviews", slog.Int("count", len(reviews)))

	return nil
}
