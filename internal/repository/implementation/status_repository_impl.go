package implementation

import (
	"context"
	"encoding/json"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statusRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) contract.StatusRepository {
	return &statusRepositoryImpl{db: db}
}

// UpsertMigrateStatus writes only the supplied fields: the ON CONFLICT
// assignment list is built from the non-nil pointers, so a later improvement
// submit never clobbers the earlier survey counts.
func (r *statusRepositoryImpl) UpsertMigrateStatus(ctx context.Context, userId uuid.UUID, fields contract.MigrateStatusUpsert) error {
	record := model.MigrateStatus{UserId: userId}
	assignments := map[string]interface{}{}

	if fields.EmployedThroughMM != nil {
		record.EmployedThroughMM = *fields.EmployedThroughMM
		assignments["employed_through_mm"] = *fields.EmployedThroughMM
	}
	if fields.AppliedCount != nil {
		record.AppliedCount = *fields.AppliedCount
		assignments["applied_count"] = *fields.AppliedCount
	}
	if fields.ContactsCount != nil {
		record.ContactsCount = *fields.ContactsCount
		assignments["contacts_count"] = *fields.ContactsCount
	}
	if fields.InterviewsCount != nil {
		record.InterviewsCount = *fields.InterviewsCount
		assignments["interviews_count"] = *fields.InterviewsCount
	}
	if fields.Improvement != nil {
		record.Improvement = *fields.Improvement
		assignments["improvement"] = *fields.Improvement
	}
	if fields.RawAnswers != nil {
		raw, err := json.Marshal(fields.RawAnswers)
		if err != nil {
			return err
		}
		record.RawAnswers = raw
		assignments["raw_answers"] = raw
	}

	if len(assignments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(&record).Error
}

func (r *statusRepositoryImpl) GetMigrateStatus(ctx context.Context, userId uuid.UUID) (*entity.MigrateStatus, error) {
	var record model.MigrateStatus
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	status := &entity.MigrateStatus{
		UserId:            record.UserId,
		EmployedThroughMM: record.EmployedThroughMM,
		AppliedCount:      record.AppliedCount,
		ContactsCount:     record.ContactsCount,
		InterviewsCount:   record.InterviewsCount,
		Improvement:       record.Improvement,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
	if len(record.RawAnswers) > 0 {
		_ = json.Unmarshal(record.RawAnswers, &status.RawAnswers)
	}
	return status, nil
}

func (r *statusRepositoryImpl) UpsertUserStatus(ctx context.Context, userId uuid.UUID, fields contract.UserStatusUpsert) (*entity.UserStatus, error) {
	record := model.UserStatus{UserId: userId}
	assignments := map[string]interface{}{}

	if fields.HasImmigrationLawyer != nil {
		record.HasImmigrationLawyer = fields.HasImmigrationLawyer
		assignments["has_immigration_lawyer"] = *fields.HasImmigrationLawyer
	}
	if fields.FutureVisaApplyingFor != nil {
		record.FutureVisaApplyingFor = fields.FutureVisaApplyingFor
		assignments["future_visa_applying_for"] = *fields.FutureVisaApplyingFor
	}

	if len(assignments) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(assignments),
			}).
			Create(&record).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetUserStatus(ctx, userId)
}

func (r *statusRepositoryImpl) GetUserStatus(ctx context.Context, userId uuid.UUID) (*entity.UserStatus, error) {
	var record model.UserStatus
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &entity.UserStatus{
		UserId:                record.UserId,
		HasImmigrationLawyer:  record.HasImmigrationLawyer,
		FutureVisaApplyingFor: record.FutureVisaApplyingFor,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}, nil
}
