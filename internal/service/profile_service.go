package service

import (
	"context"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/flow"
	"migratemate-retention-be/internal/repository/unitofwork"
	"migratemate-retention-be/pkg/utils"
)

type IProfileService interface {
	GetProfile(ctx context.Context, email string) (*dto.ProfileResponse, error)
	GetOffer(ctx context.Context, email string) (*dto.OfferResponse, error)
	GetOfferForPlan(planCents int) *dto.OfferResponse
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) GetProfile(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	sub, err := uow.SubscriptionRepository().FindLatest(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.ProfileResponse{
		Email:  user.Email,
		UserId: user.Id,
	}

	if sub != nil {
		profileSub := &dto.ProfileSubscription{
			Status:            string(sub.Status),
			MonthlyPriceCents: sub.MonthlyPrice,
			CreatedAt:         sub.CreatedAt,
		}
		if sub.Status != entity.SubscriptionStatusCancelled {
			next := utils.NextBillingDate(sub.CreatedAt)
			profileSub.NextBillingDate = &next
		}
		res.Subscription = profileSub
	}

	return res, nil
}

// GetOffer prices the downsell against the user's latest subscription.
func (s *profileService) GetOffer(ctx context.Context, email string) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	sub, err := uow.SubscriptionRepository().FindLatest(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}

	return s.GetOfferForPlan(sub.MonthlyPrice), nil
}

func (s *profileService) GetOfferForPlan(planCents int) *dto.OfferResponse {
	offer := flow.ComputeOffer(planCents)
	return &dto.OfferResponse{
		PlanCents:       offer.PlanCents,
		DiscountedCents: offer.DiscountedCents,
		OffCents:        offer.OffCents,
	}
}
