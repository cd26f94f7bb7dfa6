package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/apiclient"
	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/middleware"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/property"
	"staybook/internal/modules/review"
	"staybook/internal/repository"
	"staybook/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.LoadWebConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.Property{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)

	propertyRepo := repository.NewPropertyRepository(db)

	reviewService := review.NewService(api)
	reviewHandler := review.NewHandler(reviewService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService, reviewService)

	bookingStore := booking.NewStore(api, cfg.SessionTTL)
	bookingHandler := booking.NewHandler(bookingStore, cfg.CookieSecure)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.ErrorLogger())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/properties")
	})

	pages := r.Group("/")
	{
		propertyHandler.RegisterRoutes(pages, r.Group("/api/v1"))
		reviewHandler.RegisterRoutes(pages)
		bookingHandler.RegisterRoutes(pages)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
