package database

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/config"
	"github.com/mcarvalho/portfolio-api/internal/constants"
	"github.com/mcarvalho/portfolio-api/internal/models"
)

// Seed ensures the admin user and the default site settings row exist.
// Both writes are idempotent, so running it on every startup is safe.
func Seed(conn *gorm.DB, cfg *config.Config) error {
	var admin models.User
	err := conn.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), constants.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin = models.User{
			Email:        cfg.AdminEmail,
			PasswordHash: string(hash),
			Name:         "Admin User",
			Role:         models.RoleAdmin,
		}
		if err := conn.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		log.Info().Str("email", admin.Email).Msg("admin user created")
	case err != nil:
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	var settings models.SiteSettings
	err = conn.First(&settings, "id = ?", models.SiteSettingsID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.DefaultSiteSettings()
		if err := conn.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to create site settings: %w", err)
		}
		log.Info().Msg("default site settings created")
	case err != nil:
		return fmt.Errorf("failed to look up site settings: %w", err)
	}

	return nil
}
