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

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// ListByUser retrieves every subscription registered by one user.
func (repo *pushSubscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions by user")
	}

	return toPushSubscriptionDomainSlice(subscriptionModels), nil
}

// ListByUsers retrieves the subscriptions of many users at once.
func (repo *pushSubscriptionRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions by users")
	}

	return toPushSubscriptionDomainSlice(subscriptionModels), nil
}

// Upsert persists a subscription, replacing an existing record with the same
// FCM token so a device re-registering does not duplicate.
func (repo *pushSubscriptionRepository) Upsert(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := &model.PushSubscriptionModel{
		ID:       subscription.ID,
		UserID:   subscription.UserID,
		FCMToken: subscription.FCMToken,
		Platform: subscription.Platform,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform"}),
		}).
		Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// DeleteByToken removes the subscription carrying the given FCM token.
func (repo *pushSubscriptionRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("fcm_token = ?", token).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteByTokens removes many subscriptions at once. Unknown tokens are
// silently skipped; pruning is best effort.
func (repo *pushSubscriptionRepository) DeleteByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete push subscriptions")
	}

	return nil
}

// --- Mapper Functions ---

func toPushSubscriptionDomainSlice(models []*model.PushSubscriptionModel) []*entity.PushSubscription {
	subscriptions := make([]*entity.PushSubscription, 0, len(models))
	for _, subscriptionM := range models {
		subscriptions = append(subscriptions, &entity.PushSubscription{
			ID:        subscriptionM.ID,
			UserID:    subscriptionM.UserID,
			FCMToken:  subscriptionM.FCMToken,
			Platform:  subscriptionM.Platform,
			CreatedAt: subscriptionM.CreatedAt,
		})
	}

	return subscriptions
}
