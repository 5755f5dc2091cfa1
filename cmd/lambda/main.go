package main

import (
	"context"
	"log"
	"time"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"

	"dreamdwell/internal/config"
	"dreamdwell/internal/database"
	"dreamdwell/internal/database/migration"
	"dreamdwell/internal/lambda"
	"dreamdwell/internal/repository/postgres"
	"dreamdwell/internal/service"
	"dreamdwell/internal/storage"
)

// The one-shot transport. The function environment always runs against the
// Postgres backing; STORE is ignored here.
func main() {
	cfg := config.Load()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		cancel()
		log.Fatalf("failed to migrate database: %v", err)
	}
	cancel()

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	propSvc := service.NewPropertyService(postgres.NewPropertyPostgres(db))
	upSvc := service.NewUploadService(objStore, time.Duration(cfg.UploadExpirySec)*time.Second)

	awslambda.Start(lambda.NewHandler(propSvc, upSvc).Handle)
}
