package repository

import (
	"context"

	"opinalocal/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnershipRepository records which users own which restaurants. Ownership
// gates restaurant profile updates.
type OwnershipRepository interface {
	// Exists reports whether the user owns the restaurant.
	Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)

	// ListByUser retrieves the ownership records of one user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ownership, error)

	// Create persists a new ownership record. Creating a record that
	// already exists is a no-op success.
	Create(ctx context.Context, ownership *entity.Ownership) error

	// Delete removes an ownership record. Removing an absent record is a
	// no-op success.
	Delete(ctx context.Context, userID, restaurantID uuid.UUID) error
}
