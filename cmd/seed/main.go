package main

import (
	"log"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/seed"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
