// Package usecase defines the application-layer interfaces and their
// input/output DTOs. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionInput carries the identity asserted by the external provider.
// The delivery layer trusts the assertion; this boundary only maps it to a
// platform account.
type SessionInput struct {
	ProviderUID string `json:"provider_uid" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	PhotoURL    string `json:"photo_url"`
}

// SessionOutput is the result of a session exchange.
type SessionOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UpdateProfileInput carries the mutable profile fields. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photo_url"`
}

// PreferencesInput carries a full replacement of the user's notification
// opt-ins.
type PreferencesInput struct {
	Comment          bool `json:"comment"`
	NewReview        bool `json:"new_review"`
	CategoryApproval bool `json:"category_approval"`
	Newsletter       bool `json:"newsletter"`
}

// PushSubscriptionInput registers one device token for the caller.
type PushSubscriptionInput struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform"`
}

// UserUsecase defines the interface for user and session management use cases.
type UserUsecase interface {
	// ExchangeSession upserts the user identified by the provider UID
	// (created on first sign-in) and returns a signed access token.
	ExchangeSession(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// GetUser retrieves a user's public profile.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetUserByEmail retrieves a user's public profile by email address.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile updates the caller's mutable profile fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// UpdatePreferences replaces the caller's notification preferences.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *PreferencesInput) (*entity.User, error)

	// RegisterPushSubscription registers an FCM device token for the caller.
	RegisterPushSubscription(ctx context.Context, userID uuid.UUID, input *PushSubscriptionInput) (*entity.PushSubscription, error)

	// ListPushSubscriptions retrieves the caller's registered device tokens.
	ListPushSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// UnregisterPushSubscription removes one of the caller's device tokens.
	// Unregistering a token that is not registered is a no-op success.
	UnregisterPushSubscription(ctx context.Context, userID uuid.UUID, token string) error
}
