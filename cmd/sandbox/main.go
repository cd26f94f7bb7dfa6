package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/middleware"
	"staybook/internal/modules/sandbox"
	"staybook/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.LoadSandboxConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.StoredReview{}, &domain.StoredBooking{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	svc := sandbox.NewService(repository.NewReviewRepository(db), repository.NewBookingRepository(db))
	h := sandbox.NewHandler(svc)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins), middleware.RequestID(), middleware.ErrorLogger())
	h.RegisterRoutes(r.Group("/api"))

	log.Printf("sandbox backend listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
