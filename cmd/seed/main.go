package main

import (
	"context"
	"log"

	"migratemate-retention-be/internal/config"
	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/repository/unitofwork"
	"migratemate-retention-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Demo users for local wizard testing: one on each plan price.
var seedUsers = []struct {
	email      string
	priceCents int
}{
	{"user1@example.com", 2500},
	{"user2@example.com", 2900},
	{"user3@example.com", 2500},
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	ctx := context.Background()

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, su := range seedUsers {
		existing, err := uow.UserRepository().FindByEmail(ctx, su.email)
		if err != nil {
			log.Fatalf("Seed lookup failed: %v", err)
		}
		if existing != nil {
			log.Printf("%s %s already present, skipping", yellow("SKIP"), su.email)
			continue
		}

		user := &entity.User{Id: uuid.New(), Email: su.email}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			log.Fatalf("Seed user failed: %v", err)
		}

		sub := &entity.UserSubscription{
			Id:           uuid.New(),
			UserId:       user.Id,
			Status:       entity.SubscriptionStatusActive,
			MonthlyPrice: su.priceCents,
		}
		if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
			log.Fatalf("Seed subscription failed: %v", err)
		}

		log.Printf("%s %s ($%d.%02d/mo)", green("SEEDED"), su.email, su.priceCents/100, su.priceCents%100)
	}

	log.Println(green("Seed complete"))
}
