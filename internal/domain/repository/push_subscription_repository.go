package repository

import (
	"context"
	"errors"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a push subscription is not found.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// PushSubscriptionRepository defines the operations for device push
// subscription persistence.
type PushSubscriptionRepository interface {
	// ListByUser retrieves every subscription registered by one user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// ListByUsers retrieves the subscriptions of many users at once, used
	// when fanning a notification out to a recipient set.
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error)

	// Upsert persists a subscription, replacing an existing record with the
	// same FCM token so a device re-registering does not duplicate.
	Upsert(ctx context.Context, subscription *entity.PushSubscription) error

	// DeleteByToken removes the subscription carrying the given FCM token.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByTokens removes many subscriptions at once, used to prune
	// tokens the push provider reported as no longer registered.
	DeleteByTokens(ctx context.Context, tokens []string) error
}
