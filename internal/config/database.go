package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fadilmartias/job-board/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = &DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		}
	})
	return dbConfig
}

// ConnectDB opens the Postgres connection, sizes the pool for the
// environment, and migrates the schema. TranslateError is required so
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func ConnectDB() (*gorm.DB, error) {
	dbCfg := LoadDBConfig()
	appCfg := LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Name,
		dbCfg.Port,
		dbCfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if appCfg.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema. Shared with the seed command and the test
// helpers so every environment gets identical constraints.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.HiringManager{}, "Companies", &model.HiringManagerCompany{}); err != nil {
		return fmt.Errorf("join table setup failed: %w", err)
	}
	err := db.AutoMigrate(
		&model.Company{},
		&model.HiringManager{},
		&model.HiringManagerCompany{},
		&model.Candidate{},
		&model.Role{},
		&model.Application{},
		&model.Message{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
