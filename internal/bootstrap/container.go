package bootstrap

import (
	"context"
	"log"
	"time"

	"migratemate-retention-be/internal/config"
	"migratemate-retention-be/internal/controller"
	"migratemate-retention-be/internal/pkg/logger"
	"migratemate-retention-be/internal/pkg/mailer"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/memory"
	"migratemate-retention-be/internal/repository/redisstore"
	"migratemate-retention-be/internal/repository/unitofwork"
	"migratemate-retention-be/internal/service"

	pktNats "migratemate-retention-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const cancellationEventsTopic = "CANCELLATION_EVENTS"

type Container struct {
	// Controllers
	CancellationController controller.ICancellationController
	ProfileController      controller.IProfileController
	StatusController       controller.IStatusController
	HealthController       controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS domain event publisher; the flow works without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Flow-Session Store (memory by default, redis when configured)
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo contract.FlowSessionRepository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Session.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewFlowSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Flow Session Store: REDIS")
	} else {
		sessionRepo = memory.NewFlowSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Flow Session Store: MEMORY")
	}

	// 4. Services
	publisherService := service.NewPublisherService(cancellationEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cancellationEventsTopic, emailService)

	cancellationService := service.NewCancellationService(uowFactory, sessionRepo, publisherService, natsPub, sysLogger)
	profileService := service.NewProfileService(uowFactory)
	statusService := service.NewStatusService(uowFactory)

	// 5. Controllers
	return &Container{
		CancellationController: controller.NewCancellationController(cancellationService),
		ProfileController:      controller.NewProfileController(profileService),
		StatusController:       controller.NewStatusController(statusService),
		HealthController:       controller.NewHealthController(uowFactory),
		ConsumerService:        consumerService,
	}
}
