package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/saveursmaghreb/storefront/config"
	"github.com/saveursmaghreb/storefront/database"
	"github.com/saveursmaghreb/storefront/models"
	"github.com/saveursmaghreb/storefront/router"
	"github.com/saveursmaghreb/storefront/services"
	"github.com/saveursmaghreb/storefront/utils"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	requiredEnvVars := []string{
		"STRIPE_SECRET_KEY",
		"STRIPE_WEBHOOK_SECRET",
		"GMAIL_USER",
		"GMAIL_PASSWORD",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Printf("Warning: Required environment variable %s is not set", envVar)
		}
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := services.GetStripeService().ValidateConfig(); err != nil {
		utils.ErrorLogger.Printf("Stripe configuration incomplete: %v", err)
	}
	if err := services.GetMailerService().ValidateConfig(); err != nil {
		utils.ErrorLogger.Printf("Mailer configuration incomplete: %v", err)
	}

	r := router.SetupRouter(db)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Order{},
		&models.User{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Error migrating database: %v", err)
	}

	if err := database.EnsureConstraints(db); err != nil {
		utils.ErrorLogger.Fatalf("Error ensuring database constraints: %v", err)
	}
}
