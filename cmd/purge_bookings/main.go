package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadSandboxConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.BookingRetention)
	n, err := repository.NewBookingRepository(db).DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("purge bookings failed: %v", err)
	}

	log.Printf("booking purge completed: deleted=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
}
