package implementation

import (
	"context"
	"time"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

func (r *subscriptionRepositoryImpl) Create(ctx context.Context, sub *entity.UserSubscription) error {
	modelSub := &model.Subscription{
		Id:           sub.Id,
		UserId:       sub.UserId,
		Status:       string(sub.Status),
		MonthlyPrice: sub.MonthlyPrice,
	}
	return r.db.WithContext(ctx).Create(modelSub).Error
}

func (r *subscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error) {
	var modelSub model.Subscription
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelSub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&modelSub), nil
}

func (r *subscriptionRepositoryImpl) FindOperative(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	return r.FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByStatusIn{Statuses: []entity.SubscriptionStatus{
			entity.SubscriptionStatusActive,
			entity.SubscriptionStatusPendingCancellation,
		}},
		specification.OperativeOrder{},
	)
}

func (r *subscriptionRepositoryImpl) FindLatest(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	return r.FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OperativeOrder{},
	)
}

// UpdateStatus writes status and updated_at in one statement so a caller
// never observes one without the other. The status guard rides in the WHERE
// clause rather than a read-then-write: the billing batch may cancel the row
// between the caller's read and this write, and a cancelled subscription
// must stay cancelled. Setting the same status again is a legal no-op
// transition; only the timestamp advances.
func (r *subscriptionRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND status <> ?", id, string(entity.SubscriptionStatusCancelled)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func (r *subscriptionRepositoryImpl) mapToEntity(ms *model.Subscription) *entity.UserSubscription {
	return &entity.UserSubscription{
		Id:           ms.Id,
		UserId:       ms.UserId,
		Status:       entity.SubscriptionStatus(ms.Status),
		MonthlyPrice: ms.MonthlyPrice,
		CreatedAt:    ms.CreatedAt,
		UpdatedAt:    ms.UpdatedAt,
	}
}
