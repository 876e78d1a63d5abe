package main

import (
	"log"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/api/routes"
	"carrier-booking-api-server/internal/auth"
	"carrier-booking-api-server/internal/carrier"
	"carrier-booking-api-server/internal/database"
	"carrier-booking-api-server/internal/s3"
	"carrier-booking-api-server/internal/socket"
	"carrier-booking-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, the config loader falls back to the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	auth.SetSecret(cfg.JWT.Secret)

	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	mongoStore := store.NewMongoStore(db)

	if err := database.SeedSuperAdmin(mongoStore); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	carrierClient := carrier.NewClient(cfg.Carrier)
	wsHub := socket.NewHub()

	router := routes.SetupRouter(
		cfg,
		mongoStore,
		mongoStore,
		mongoStore,
		mongoStore,
		mongoStore,
		carrierClient,
		s3Uploader,
		wsHub,
	)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
