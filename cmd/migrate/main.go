package main

import (
	"log"

	"migratemate-retention-be/internal/config"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Cancellation{},
		&model.MigrateStatus{},
		&model.UserStatus{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
