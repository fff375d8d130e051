// FILE: internal/repository/implementation/cancellation_repository_impl.go
package implementation

import (
	"context"
	"fmt"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cancellationRepositoryImpl struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) contract.CancellationRepository {
	return &cancellationRepositoryImpl{db: db}
}

// CreateIfAbsent relies on the (user_id, subscription_id) unique index:
// ON CONFLICT DO NOTHING makes two racing first calls converge on a single
// row, and the loser re-reads the stored record instead of erroring. The
// stored variant is authoritative from that point on.
func (r *cancellationRepositoryImpl) CreateIfAbsent(ctx context.Context, record *entity.Cancellation) (*entity.Cancellation, error) {
	modelRecord := &model.Cancellation{
		Id:               record.Id,
		UserId:           record.UserId,
		SubscriptionId:   record.SubscriptionId,
		DownsellVariant:  string(record.DownsellVariant),
		AcceptedDownsell: record.AcceptedDownsell,
		Reason:           record.Reason,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "subscription_id"}},
			DoNothing: true,
		}).
		Create(modelRecord)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		return r.mapToEntity(modelRecord), nil
	}

	// Lost the race: someone else inserted first, their row wins.
	existing, err := r.FindForSubscription(ctx, record.UserId, record.SubscriptionId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("cancellation row vanished after insert conflict for user %s", record.UserId)
	}
	return existing, nil
}

func (r *cancellationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cancellation, error) {
	var modelRecord model.Cancellation
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelRecord).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&modelRecord), nil
}

func (r *cancellationRepositoryImpl) FindLatestByUser(ctx context.Context, userId uuid.UUID) (*entity.Cancellation, error) {
	return r.FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
}

func (r *cancellationRepositoryImpl) FindForSubscription(ctx context.Context, userId, subscriptionId uuid.UUID) (*entity.Cancellation, error) {
	return r.FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.BySubscriptionID{SubscriptionID: subscriptionId},
	)
}

func (r *cancellationRepositoryImpl) UpdateReason(ctx context.Context, userId, subscriptionId uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Model(&model.Cancellation{}).
		Where("user_id = ? AND subscription_id = ?", userId, subscriptionId).
		Update("reason", reason).Error
}

// MarkAccepted is conditional on accepted_downsell still being false, which
// makes acceptance monotonic: a second call matches zero rows and changes
// nothing.
func (r *cancellationRepositoryImpl) MarkAccepted(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Cancellation{}).
		Where("id = ? AND accepted_downsell = ?", id, false).
		Update("accepted_downsell", true)
	return result.RowsAffected, result.Error
}

func (r *cancellationRepositoryImpl) mapToEntity(mc *model.Cancellation) *entity.Cancellation {
	return &entity.Cancellation{
		Id:               mc.Id,
		UserId:           mc.UserId,
		SubscriptionId:   mc.SubscriptionId,
		DownsellVariant:  entity.DownsellVariant(mc.DownsellVariant),
		AcceptedDownsell: mc.AcceptedDownsell,
		Reason:           mc.Reason,
		CreatedAt:        mc.CreatedAt,
		UpdatedAt:        mc.UpdatedAt,
	}
}
