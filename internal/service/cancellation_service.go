// FILE: internal/service/cancellation_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/flow"
	"migratemate-retention-be/internal/pkg/logger"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/unitofwork"
	"migratemate-retention-be/pkg/events"
	pktNats "migratemate-retention-be/pkg/nats"
	"migratemate-retention-be/pkg/store"

	"github.com/google/uuid"
)

const maxReasonLen = 2000

type ICancellationService interface {
	AssignOrGetVariant(ctx context.Context, email string) (*dto.VariantResponse, error)
	AcceptDownsell(ctx context.Context, email string) (*dto.AcceptDownsellResponse, error)
	SubmitReason(ctx context.Context, req *dto.SubmitReasonRequest) error
	MarkPendingCancellation(ctx context.Context, email string) (*dto.MarkPendingCancellationResponse, error)
	NextStep(ctx context.Context, email string) (*dto.NextStepResponse, error)
	UpdateSession(ctx context.Context, req *dto.UpdateFlowSessionRequest) error
}

type cancellationService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionRepo    contract.FlowSessionRepository
	bus            IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCancellationService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo contract.FlowSessionRepository,
	bus IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICancellationService {
	return &cancellationService{
		uowFactory:     uowFactory,
		sessionRepo:    sessionRepo,
		bus:            bus,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// AssignOrGetVariant is the read-or-create entry point of the experiment.
// The stored row always wins; the hash is only consulted when no row exists
// yet, so a later hash change can never rewrite history.
func (s *cancellationService) AssignOrGetVariant(ctx context.Context, email string) (*dto.VariantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	sub, err := uow.SubscriptionRepository().FindOperative(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	if sub == nil {
		// No eligible subscription: report the stable intended arm but
		// write nothing.
		return &dto.VariantResponse{
			DownsellVariant:  string(flow.VariantForUser(user.Id)),
			AcceptedDownsell: false,
		}, nil
	}

	record, err := uow.CancellationRepository().FindForSubscription(ctx, user.Id, sub.Id)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record, err = uow.CancellationRepository().CreateIfAbsent(ctx, &entity.Cancellation{
			Id:               uuid.New(),
			UserId:           user.Id,
			SubscriptionId:   sub.Id,
			DownsellVariant:  flow.VariantForUser(user.Id),
			AcceptedDownsell: false,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("Cancellation", "Assigned downsell variant", map[string]interface{}{
			"user_id": user.Id.String(),
			"variant": string(record.DownsellVariant),
		})
	}

	return &dto.VariantResponse{
		DownsellVariant:  string(record.DownsellVariant),
		AcceptedDownsell: record.AcceptedDownsell,
	}, nil
}

func (s *cancellationService) AcceptDownsell(ctx context.Context, email string) (*dto.AcceptDownsellResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record, err := uow.CancellationRepository().FindLatestByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoCancellationRecord
	}

	if record.AcceptedDownsell {
		return &dto.AcceptDownsellResponse{AlreadyAccepted: true, RecordId: record.Id}, nil
	}

	changed, err := uow.CancellationRepository().MarkAccepted(ctx, record.Id)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		// A concurrent accept beat us; same outcome either way.
		return &dto.AcceptDownsellResponse{AlreadyAccepted: true, RecordId: record.Id}, nil
	}

	s.publishDomainEvent(ctx, events.DownsellAccepted(user.Id.String(), record.Id.String()))
	s.publishMailEvent(ctx, dto.CancellationEventMessage{
		Type:   dto.EventDownsellAccepted,
		Email:  user.Email,
		UserId: user.Id.String(),
	})

	return &dto.AcceptDownsellResponse{AlreadyAccepted: false, RecordId: record.Id}, nil
}

// SubmitReason stores "<category>: <details>" on the cancellation record and
// flips the subscription to pending_cancellation in the same transaction.
// Either both land or the caller gets an error and may retry; both halves
// are idempotent on their own.
func (s *cancellationService) SubmitReason(ctx context.Context, req *dto.SubmitReasonRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	sub, err := uow.SubscriptionRepository().FindOperative(ctx, user.Id)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNoSubscription
	}

	reason := combineReason(req.Reason, req.Details)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.CancellationRepository().UpdateReason(ctx, user.Id, sub.Id, reason); err != nil {
		_ = uow.Rollback()
		return err
	}
	changed, err := uow.SubscriptionRepository().UpdateStatus(ctx, sub.Id, entity.SubscriptionStatusPendingCancellation)
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if changed == 0 {
		// The billing batch cancelled the row after our read; nothing left
		// to transition, and the reason must not land against it either.
		_ = uow.Rollback()
		return ErrNoEligibleSub
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.markSessionReasonDone(ctx, user.Email)

	s.publishDomainEvent(ctx, events.SubscriptionPendingCancellation(user.Id.String(), sub.Id.String()))
	s.publishMailEvent(ctx, dto.CancellationEventMessage{
		Type:           dto.EventReasonRecorded,
		Email:          user.Email,
		UserId:         user.Id.String(),
		SubscriptionId: sub.Id.String(),
		Reason:         reason,
	})

	return nil
}

func (s *cancellationService) MarkPendingCancellation(ctx context.Context, email string) (*dto.MarkPendingCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	sub, err := uow.SubscriptionRepository().FindOperative(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoEligibleSub
	}

	changed, err := uow.SubscriptionRepository().UpdateStatus(ctx, sub.Id, entity.SubscriptionStatusPendingCancellation)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, ErrNoEligibleSub
	}

	return &dto.MarkPendingCancellationResponse{SubscriptionId: sub.Id}, nil
}

// NextStep merges durable truth with session hints and runs the pure router.
// Variant and acceptance always come from the store; a variant lookup
// failure degrades to arm A instead of blocking the user.
func (s *cancellationService) NextStep(ctx context.Context, email string) (*dto.NextStepResponse, error) {
	facts := flow.Facts{Variant: entity.VariantA}

	variant, err := s.AssignOrGetVariant(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Warn("Cancellation", "Variant lookup failed, routing as arm A", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		facts.Variant = entity.DownsellVariant(variant.DownsellVariant)
		facts.AcceptedDownsell = variant.AcceptedDownsell
	}

	session, found, err := s.sessionRepo.Get(ctx, normalizeEmail(email))
	if err != nil {
		s.logger.Warn("Cancellation", "Session store unreachable, using durable facts only", map[string]interface{}{
			"error": err.Error(),
		})
	} else if found {
		facts.JobFound = session.JobFound
		facts.FoundThroughPlatform = session.FoundThroughPlatform
		facts.HasLawyer = session.HasLawyer
		facts.DownsellDeclined = session.DownsellDeclined
		facts.SurveyDone = session.SurveyDone
		facts.ImprovementDone = session.ImprovementDone
		facts.VisaDone = session.VisaDone
		facts.ReasonDone = session.ReasonDone
	}

	return &dto.NextStepResponse{Step: string(flow.Resolve(facts))}, nil
}

func (s *cancellationService) UpdateSession(ctx context.Context, req *dto.UpdateFlowSessionRequest) error {
	email := normalizeEmail(req.Email)

	session, found, err := s.sessionRepo.Get(ctx, email)
	if err != nil {
		return err
	}
	if !found {
		session = &store.FlowSession{Email: email}
	}

	if req.JobFound != nil {
		session.JobFound = req.JobFound
	}
	if req.FoundThroughPlatform != nil {
		session.FoundThroughPlatform = req.FoundThroughPlatform
	}
	if req.HasLawyer != nil {
		session.HasLawyer = req.HasLawyer
	}
	if req.DownsellDeclined != nil {
		session.DownsellDeclined = *req.DownsellDeclined
	}
	if req.SurveyDone != nil {
		session.SurveyDone = *req.SurveyDone
	}
	if req.ImprovementDone != nil {
		session.ImprovementDone = *req.ImprovementDone
	}
	if req.VisaDone != nil {
		session.VisaDone = *req.VisaDone
	}
	if req.ReasonDone != nil {
		session.ReasonDone = *req.ReasonDone
	}

	return s.sessionRepo.Save(ctx, session)
}

func (s *cancellationService) markSessionReasonDone(ctx context.Context, email string) {
	session, found, err := s.sessionRepo.Get(ctx, normalizeEmail(email))
	if err != nil || !found {
		return
	}
	session.ReasonDone = true
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.logger.Warn("Cancellation", "Failed to update session after reason submit", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *cancellationService) publishDomainEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("Cancellation", fmt.Sprintf("Failed to publish %s event", evt.EventType()), map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *cancellationService) publishMailEvent(ctx context.Context, msg dto.CancellationEventMessage) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, msg); err != nil {
		s.logger.Warn("Cancellation", "Failed to enqueue mail event", map[string]interface{}{
			"error": err.Error(),
			"type":  msg.Type,
		})
	}
}

// combineReason joins the dropdown category with optional free text and caps
// the result at 2000 runes, matching the reason column contract.
func combineReason(category, details string) string {
	reason := strings.TrimSpace(category)
	if d := strings.TrimSpace(details); d != "" {
		reason = reason + ": " + d
	}
	if runes := []rune(reason); len(runes) > maxReasonLen {
		reason = string(runes[:maxReasonLen])
	}
	return reason
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
