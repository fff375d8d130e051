package integration

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"migratemate-retention-be/internal/dto"
	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/internal/pkg/logger"
	"migratemate-retention-be/internal/repository/memory"
	"migratemate-retention-be/internal/repository/unitofwork"
	"migratemate-retention-be/internal/service"
	"migratemate-retention-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	require.NoError(t, gormDB.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Cancellation{},
		&model.MigrateStatus{},
		&model.UserStatus{},
	))

	return gormDB
}

func newCancellationService(t *testing.T, db *gorm.DB) service.ICancellationService {
	t.Helper()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sessionRepo := memory.NewFlowSessionRepository(time.Hour)
	sysLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	return service.NewCancellationService(uowFactory, sessionRepo, nil, nil, sysLogger)
}

func seedUserWithSubscription(t *testing.T, db *gorm.DB, priceCents int) (string, uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	email := "retention-test-" + uuid.New().String() + "@example.com"
	user := &entity.User{Id: uuid.New(), Email: email}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	sub := &entity.UserSubscription{
		Id:           uuid.New(),
		UserId:       user.Id,
		Status:       entity.SubscriptionStatusActive,
		MonthlyPrice: priceCents,
	}
	require.NoError(t, uow.SubscriptionRepository().Create(ctx, sub))

	return email, user.Id, sub.Id
}

func TestVariantSingleAssignment(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	email, userId, subId := seedUserWithSubscription(t, db, 2500)

	first, err := svc.AssignOrGetVariant(ctx, email)
	require.NoError(t, err)
	assert.Contains(t, []string{"A", "B"}, first.DownsellVariant)
	assert.False(t, first.AcceptedDownsell)

	// Every subsequent call returns the stored arm, never a recompute.
	for i := 0; i < 5; i++ {
		res, err := svc.AssignOrGetVariant(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, first.DownsellVariant, res.DownsellVariant)
	}

	// Exactly one record exists for the pair.
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	record, err := uow.CancellationRepository().FindForSubscription(ctx, userId, subId)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, first.DownsellVariant, string(record.DownsellVariant))
}

func TestVariantAssignmentUnderConcurrency(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	email, _, _ := seedUserWithSubscription(t, db, 2500)

	const n = 8
	results := make([]string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			res, err := svc.AssignOrGetVariant(ctx, email)
			if assert.NoError(t, err) {
				results[i] = res.DownsellVariant
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Equal(t, results[0], results[i], "all concurrent callers must see one variant")
	}
}

func TestAcceptDownsellIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	email, _, _ := seedUserWithSubscription(t, db, 2900)

	_, err := svc.AssignOrGetVariant(ctx, email)
	require.NoError(t, err)

	first, err := svc.AcceptDownsell(ctx, email)
	require.NoError(t, err)
	assert.False(t, first.AlreadyAccepted)

	second, err := svc.AcceptDownsell(ctx, email)
	require.NoError(t, err)
	assert.True(t, second.AlreadyAccepted)
	assert.Equal(t, first.RecordId, second.RecordId)

	// Acceptance is reflected on subsequent variant reads and never regresses.
	res, err := svc.AssignOrGetVariant(ctx, email)
	require.NoError(t, err)
	assert.True(t, res.AcceptedDownsell)
}

func TestAcceptDownsellWithoutRecord(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	ctxEmail := "retention-norec-" + uuid.New().String() + "@example.com"
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{Id: uuid.New(), Email: ctxEmail}))

	_, err := svc.AcceptDownsell(ctx, ctxEmail)
	assert.ErrorIs(t, err, service.ErrNoCancellationRecord)
}

func TestSubmitReasonTransitionsSubscription(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	email, userId, subId := seedUserWithSubscription(t, db, 2500)

	_, err := svc.AssignOrGetVariant(ctx, email)
	require.NoError(t, err)

	err = svc.SubmitReason(ctx, &dto.SubmitReasonRequest{
		Email:   email,
		Reason:  "Too expensive",
		Details: "switching to a cheaper plan",
	})
	require.NoError(t, err)

	// Both halves landed: reason on the record, status on the subscription.
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	record, err := uow.CancellationRepository().FindForSubscription(ctx, userId, subId)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Too expensive: switching to a cheaper plan", record.Reason)

	got, err := uow.SubscriptionRepository().FindOperative(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.SubscriptionStatusPendingCancellation, got.Status)

	// Re-submitting is safe: same final state.
	require.NoError(t, svc.SubmitReason(ctx, &dto.SubmitReasonRequest{
		Email:  email,
		Reason: "Too expensive",
	}))
}

func TestUpdateStatusNeverRevivesCancelled(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	email := "retention-cancelled-" + uuid.New().String() + "@example.com"
	user := &entity.User{Id: uuid.New(), Email: email}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	sub := &entity.UserSubscription{
		Id:           uuid.New(),
		UserId:       user.Id,
		Status:       entity.SubscriptionStatusCancelled,
		MonthlyPrice: 2500,
	}
	require.NoError(t, uow.SubscriptionRepository().Create(ctx, sub))

	// The guard lives in the UPDATE itself: a write racing the billing
	// batch's cancel must match zero rows, not flip the state back.
	changed, err := uow.SubscriptionRepository().UpdateStatus(ctx, sub.Id, entity.SubscriptionStatusPendingCancellation)
	require.NoError(t, err)
	assert.Zero(t, changed)

	got, err := uow.SubscriptionRepository().FindLatest(ctx, user.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.SubscriptionStatusCancelled, got.Status)
}

func TestMarkPendingCancellationIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	email, _, subId := seedUserWithSubscription(t, db, 2500)

	first, err := svc.MarkPendingCancellation(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, subId, first.SubscriptionId)

	second, err := svc.MarkPendingCancellation(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, subId, second.SubscriptionId)
}

func TestProfileAndOffer(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	email, _, _ := seedUserWithSubscription(t, db, 2500)

	profileSvc := service.NewProfileService(unitofwork.NewRepositoryFactory(db))

	profile, err := profileSvc.GetProfile(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, profile.Subscription)
	assert.Equal(t, 2500, profile.Subscription.MonthlyPriceCents)
	assert.Equal(t, string(entity.SubscriptionStatusActive), profile.Subscription.Status)
	require.NotNil(t, profile.Subscription.NextBillingDate)
	assert.True(t, profile.Subscription.NextBillingDate.After(profile.Subscription.CreatedAt))

	offer, err := profileSvc.GetOffer(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, 1500, offer.DiscountedCents)
	assert.Equal(t, 1000, offer.OffCents)
}

func TestStatusUpserts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	email, userId, _ := seedUserWithSubscription(t, db, 2500)

	statusSvc := service.NewStatusService(unitofwork.NewRepositoryFactory(db))

	require.NoError(t, statusSvc.UpsertMigrateStatus(ctx, &dto.MigrateStatusRequest{
		Email:          email,
		FoundWithMM:    "yes",
		AppliedCount:   "6–20",
		EmailedCount:   "1–5",
		InterviewCount: "0",
	}))

	// The improvement upsert must not clobber the counts written above.
	require.NoError(t, statusSvc.SaveImprovement(ctx, &dto.ImprovementRequest{
		Email:       email,
		Improvement: "More roles outside tech hubs",
	}))

	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	status, err := uow.StatusRepository().GetMigrateStatus(ctx, userId)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.EmployedThroughMM)
	assert.Equal(t, 20, status.AppliedCount)
	assert.Equal(t, 5, status.ContactsCount)
	assert.Equal(t, 0, status.InterviewsCount)
	assert.Equal(t, "More roles outside tech hubs", status.Improvement)

	// User status: camelCase alias accepted, second partial upsert keeps
	// the first field.
	hasLawyer := true
	res, err := statusSvc.UpsertUserStatus(ctx, &dto.UserStatusRequest{
		Email:                     email,
		HasImmigrationLawyerCamel: &hasLawyer,
	})
	require.NoError(t, err)
	require.NotNil(t, res.HasImmigrationLawyer)
	assert.True(t, *res.HasImmigrationLawyer)

	visa := "O-1"
	res, err = statusSvc.UpsertUserStatus(ctx, &dto.UserStatusRequest{
		Email:                 email,
		FutureVisaApplyingFor: &visa,
	})
	require.NoError(t, err)
	require.NotNil(t, res.HasImmigrationLawyer, "earlier answer must survive the partial upsert")
	assert.True(t, *res.HasImmigrationLawyer)
	require.NotNil(t, res.FutureVisaApplyingFor)
	assert.Equal(t, "O-1", *res.FutureVisaApplyingFor)

	// No fields at all: noop response echoing the stored row.
	res, err = statusSvc.UpsertUserStatus(ctx, &dto.UserStatusRequest{Email: email})
	require.NoError(t, err)
	assert.True(t, res.Noop)
}

func TestUserNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newCancellationService(t, db)
	ctx := context.Background()

	_, err := svc.AssignOrGetVariant(ctx, "nobody-"+uuid.New().String()+"@example.com")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
