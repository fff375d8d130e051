package service

import (
	"context"
	"strconv"
	"strings"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/unitofwork"
)

const maxImprovementLen = 2000

type IStatusService interface {
	UpsertMigrateStatus(ctx context.Context, req *dto.MigrateStatusRequest) error
	SaveImprovement(ctx context.Context, req *dto.ImprovementRequest) error
	UpsertUserStatus(ctx context.Context, req *dto.UserStatusRequest) (*dto.UserStatusResponse, error)
}

type statusService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatusService(uowFactory unitofwork.RepositoryFactory) IStatusService {
	return &statusService{
		uowFactory: uowFactory,
	}
}

func (s *statusService) UpsertMigrateStatus(ctx context.Context, req *dto.MigrateStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	employed := strings.EqualFold(strings.TrimSpace(req.FoundWithMM), "yes")
	applied := ParseBucketMax(req.AppliedCount)
	emailed := ParseBucketMax(req.EmailedCount)
	interviews := ParseBucketMax(req.InterviewCount)

	return uow.StatusRepository().UpsertMigrateStatus(ctx, user.Id, contract.MigrateStatusUpsert{
		EmployedThroughMM: &employed,
		AppliedCount:      &applied,
		ContactsCount:     &emailed,
		InterviewsCount:   &interviews,
		RawAnswers: map[string]interface{}{
			"found_with_mm":   req.FoundWithMM,
			"applied_count":   req.AppliedCount,
			"emailed_count":   req.EmailedCount,
			"interview_count": req.InterviewCount,
		},
	})
}

// SaveImprovement touches only the improvement column; survey counts written
// earlier stay as they are.
func (s *statusService) SaveImprovement(ctx context.Context, req *dto.ImprovementRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	improvement := strings.TrimSpace(req.Improvement)
	if runes := []rune(improvement); len(runes) > maxImprovementLen {
		improvement = string(runes[:maxImprovementLen])
	}

	return uow.StatusRepository().UpsertMigrateStatus(ctx, user.Id, contract.MigrateStatusUpsert{
		Improvement: &improvement,
	})
}

func (s *statusService) UpsertUserStatus(ctx context.Context, req *dto.UserStatusRequest) (*dto.UserStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	lawyer := req.Lawyer()
	visa := req.Visa()
	if visa != nil {
		trimmed := strings.TrimSpace(*visa)
		if trimmed == "" {
			visa = nil
		} else {
			visa = &trimmed
		}
	}

	if lawyer == nil && visa == nil {
		// Nothing to change; return the current row so the client can
		// verify what is stored.
		existing, err := uow.StatusRepository().GetUserStatus(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		res := &dto.UserStatusResponse{Noop: true}
		if existing != nil {
			res.HasImmigrationLawyer = existing.HasImmigrationLawyer
			res.FutureVisaApplyingFor = existing.FutureVisaApplyingFor
		}
		return res, nil
	}

	updated, err := uow.StatusRepository().UpsertUserStatus(ctx, user.Id, contract.UserStatusUpsert{
		HasImmigrationLawyer:  lawyer,
		FutureVisaApplyingFor: visa,
	})
	if err != nil {
		return nil, err
	}

	return &dto.UserStatusResponse{
		HasImmigrationLawyer:  updated.HasImmigrationLawyer,
		FutureVisaApplyingFor: updated.FutureVisaApplyingFor,
	}, nil
}

// ParseBucketMax maps a UI bucket to the maximum value it covers:
// "0" -> 0, "1–5" -> 5, "6–20" -> 20, "20+" -> 20. Both the en dash the UI
// sends and a plain hyphen are accepted. Unparseable input maps to 0.
func ParseBucketMax(bucket string) int {
	v := strings.TrimSpace(bucket)
	if v == "" {
		return 0
	}

	for _, dash := range []string{"–", "-"} {
		if strings.Contains(v, dash) {
			parts := strings.SplitN(v, dash, 2)
			upper := strings.TrimSuffix(strings.TrimSpace(parts[1]), "+")
			if n, err := strconv.Atoi(upper); err == nil {
				return n
			}
			return 0
		}
	}

	if strings.HasSuffix(v, "+") {
		if n, err := strconv.Atoi(strings.TrimSuffix(v, "+")); err == nil {
			return n
		}
		return 0
	}

	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return 0
}
