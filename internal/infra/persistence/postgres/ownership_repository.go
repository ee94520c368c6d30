package postgres

import (
	"context"

	"opinalocal/internal/domain/entity"
	domainerrors "opinalocal/internal/domain/errors"
	"opinalocal/internal/domain/repository"
	"opinalocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ownershipRepository implements the repository.OwnershipRepository interface.
type ownershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository is the constructor for ownershipRepository.
func NewOwnershipRepository(db *gorm.DB) repository.OwnershipRepository {
	return &ownershipRepository{
		db: db,
	}
}

// Exists reports whether the user owns the restaurant.
func (repo *ownershipRepository) Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OwnershipModel{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check ownership")
	}

	return count > 0, nil
}

// ListByUser retrieves the ownership records of one user.
func (repo *ownershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ownership, error) {
	var ownershipModels []*model.OwnershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&ownershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ownerships by user")
	}

	ownerships := make([]*entity.Ownership, 0, len(ownershipModels))
	for _, ownershipM := range ownershipModels {
		ownerships = append(ownerships, &entity.Ownership{
			UserID:       ownershipM.UserID,
			RestaurantID: ownershipM.RestaurantID,
			CreatedAt:    ownershipM.CreatedAt,
		})
	}

	return ownerships, nil
}

// Create persists a new ownership record. A duplicate pair is ignored.
func (repo *ownershipRepository) Create(ctx context.Context, ownership *entity.Ownership) error {
	ownershipM := &model.OwnershipModel{
		UserID:       ownership.UserID,
		RestaurantID: ownership.RestaurantID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ownershipM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or restaurant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ownership")
	}

	ownership.CreatedAt = ownershipM.CreatedAt

	return nil
}

// Delete removes an ownership record. Deleting an absent pair succeeds.
func (repo *ownershipRepository) Delete(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.OwnershipModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ownership")
	}

	return nil
}
