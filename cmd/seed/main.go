package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"staybook/internal/database"
	"staybook/internal/domain"

	"gorm.io/gorm/clause"
)

var properties = []domain.Property{
	{ID: "lake-house", Name: "Lake House", Description: "Timber house on a quiet lake with a private jetty.", Price: 180},
	{ID: "city-loft", Name: "City Loft", Description: "Open plan loft two minutes from the central station.", Price: 1250.5},
	{ID: "alpine-cabin", Name: "Alpine Cabin", Description: "Ski-in cabin with a wood stove and mountain views.", Price: 240},
	{ID: "beach-hut", Name: "Beach Hut", Description: "Small hut right on the sand. No reviews yet.", Price: 95},
}

var reviewers = []string{"Asel", "Bekzat", "Dina", "Marta", "Tom"}

var comments = []string{
	"Spotless and exactly as described.",
	"Great location, a bit noisy at night.",
	"Host was quick to answer every question.",
	"Would happily stay again.",
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func main() {
	webDSN := getEnv("DATABASE_URL", "staybook.db")
	sandboxDSN := getEnv("SANDBOX_DATABASE_URL", "sandbox.db")

	webDB, err := database.Connect(webDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	sandboxDB, err := database.Connect(sandboxDSN)
	if err != nil {
		log.Fatal("sandbox DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := webDB.AutoMigrate(&domain.Property{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := sandboxDB.AutoMigrate(&domain.StoredReview{}, &domain.StoredBooking{}); err != nil {
		log.Fatal("sandbox AutoMigrate failed:", err)
	}

	// ================== PROPERTIES ==================
	log.Println("Upserting properties...")
	for i := range properties {
		p := properties[i]
		err := webDB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "updated_at"}),
		}).Create(&p).Error
		if err != nil {
			log.Fatalf("upsert property %s failed: %v", p.ID, err)
		}
	}

	// ================== REVIEWS ==================
	log.Println("Cleaning old reviews...")
	if err := sandboxDB.Exec("DELETE FROM reviews").Error; err != nil {
		log.Fatalf("clean reviews failed: %v", err)
	}

	log.Println("Creating reviews...")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	total := 0
	for _, p := range properties {
		if p.ID == "beach-hut" {
			continue
		}
		for j := 0; j < 2+rng.Intn(3); j++ {
			rv := domain.StoredReview{
				ID:         fmt.Sprintf("%s-r%d", p.ID, j+1),
				PropertyID: p.ID,
				User:       reviewers[rng.Intn(len(reviewers))],
				Rating:     float64(6+rng.Intn(5)) / 2,
				Comment:    comments[rng.Intn(len(comments))],
				Date:       time.Now().AddDate(0, 0, -rng.Intn(365)).Format("2006-01-02"),
			}
			if err := sandboxDB.Create(&rv).Error; err != nil {
				log.Fatalf("create review %s failed: %v", rv.ID, err)
			}
			total++
		}
	}

	log.Printf("Seed completed: properties=%d reviews=%d", len(properties), total)
}
