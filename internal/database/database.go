package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mcarvalho/portfolio-api/internal/config"
	"github.com/mcarvalho/portfolio-api/internal/models"
)

var db *gorm.DB

// Connect opens the process-wide connection pool. Called once at startup.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db = conn
	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("database connection established")
	return conn, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.SiteSettings{},
		&models.Tag{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

// SetDB sets the database instance (used for testing)
func SetDB(conn *gorm.DB) {
	db = conn
}
