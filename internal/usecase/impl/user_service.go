// Package impl contains the application-specific business rules implementations.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// ExchangeSession maps a provider-asserted identity to a platform account,
// creating the account on first sign-in, and issues an access token.
func (srv *userService) ExchangeSession(ctx context.Context, input *usecase.SessionInput) (*usecase.SessionOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByProviderUID(ctx, input.ProviderUID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user by provider UID")
			}

			// First sign-in: provision the account with default preferences.
			newUser := &entity.User{
				ID:          uuid.New(),
				ProviderUID: input.ProviderUID,
				Email:       input.Email,
				Name:        input.Name,
				PhotoURL:    input.PhotoURL,
				Role:        entity.RoleUser,
				Preferences: entity.DefaultNotificationPreferences(),
			}
			if err := userRepo.Create(ctx, newUser); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			user = newUser

			return nil
		}

		// Returning user: refresh the profile fields asserted by the provider.
		if found.Email != input.Email || found.Name != input.Name || found.PhotoURL != input.PhotoURL {
			found.Email = input.Email
			found.Name = input.Name
			found.PhotoURL = input.PhotoURL
			if err := userRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to refresh user profile")
			}
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange session")
	}

	accessToken, err := srv.tokenSvc.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Info("Session exchanged", slog.String("userID", user.ID.String()))

	return &usecase.SessionOutput{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// GetUser retrieves a user's public profile.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// GetUserByEmail retrieves a user's public profile by email address.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user by email")
	}

	return user, nil
}

// UpdateProfile updates the caller's mutable profile fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.PhotoURL != nil {
			found.PhotoURL = *input.PhotoURL
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UpdatePreferences replaces the caller's notification preferences.
func (srv *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.PreferencesInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		found.Preferences = entity.NotificationPreferences{
			Comment:          input.Comment,
			NewReview:        input.NewReview,
			CategoryApproval: input.CategoryApproval,
			Newsletter:       input.Newsletter,
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update preferences")
	}

	return user, nil
}

// RegisterPushSubscription registers an FCM device token for the caller.
// Re-registering an existing token moves it to the caller instead of
// duplicating it.
func (srv *userService) RegisterPushSubscription(ctx context.Context, userID uuid.UUID, input *usecase.PushSubscriptionInput) (*entity.PushSubscription, error) {
	subscription := &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: input.FCMToken,
		Platform: input.Platform,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.NewPushSubscriptionRepository().Upsert(ctx, subscription); err != nil {
			return errors.Wrap(err, "failed to upsert push subscription")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register push subscription")
	}

	srv.logger.Debug("Push subscription registered",
		slog.String("userID", userID.String()),
		slog.String("platform", subscription.Platform))

	return subscription, nil
}

// ListPushSubscriptions retrieves the caller's registered device tokens.
func (srv *userService) ListPushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptions []*entity.PushSubscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPushSubscriptionRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list push subscriptions")
		}
		subscriptions = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions")
	}

	return subscriptions, nil
}

// UnregisterPushSubscription removes one of the caller's device tokens. Only
// tokens the caller registered are removed; a token held by another account
// is left untouched and the call still succeeds.
func (srv *userService) UnregisterPushSubscription(ctx context.Context, userID uuid.UUID, token string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.NewPushSubscriptionRepository()

		owned, err := subRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list push subscriptions")
		}
		for _, subscription := range owned {
			if subscription.FCMToken != token {
				continue
			}

			return errors.Wrap(subRepo.DeleteByToken(ctx, token), "failed to delete push subscription")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to unregister push subscription")
	}

	srv.logger.Debug("Push subscription unregistered", slog.String("userID", userID.String()))

	return nil
}
