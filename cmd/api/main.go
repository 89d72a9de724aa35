package main

import (
	"github.com/hirehive-labs/careers-portal/internal/blobstore"
	"github.com/hirehive-labs/careers-portal/internal/config"
	"github.com/hirehive-labs/careers-portal/internal/database"
	"github.com/hirehive-labs/careers-portal/internal/handlers"
	"github.com/hirehive-labs/careers-portal/internal/services"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	log.Info("Database connection established")

	// 3. Object Store Client
	var store blobstore.Store
	if cfg.HasObjectStore() {
		store, err = blobstore.NewS3Store(cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
		if err != nil {
			log.WithError(err).Fatal("Failed to initialize object store client")
		}
		log.WithField("bucket", cfg.S3Bucket).Info("Object store client initialized")
	} else {
		store = blobstore.NewMemoryStore()
		log.Warn("No S3 credentials configured, resumes will be kept in memory")
	}

	// 4. Initialize Core Services (Dependencies)
	uploadService := services.NewUploadService(store)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, uploadService)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 6. Setup Router & Run
	r := handlers.NewRouter(jobHandler, applicationHandler)

	log.WithField("port", cfg.HTTPPort).Info("Server starting")
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("Server failed to start")
	}
}
