package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/constants"
	"github.com/mcarvalho/portfolio-api/internal/models"
	"github.com/mcarvalho/portfolio-api/internal/repository"
	"github.com/mcarvalho/portfolio-api/internal/utils"
)

const testJWTSecret = "test-secret"

func setupAuthService(t *testing.T) (*AuthService, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), constants.BcryptCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(user).Error)

	return NewAuthService(repository.NewUserRepository(db), testJWTSecret, time.Hour), user
}

func TestAuthService_Login(t *testing.T) {
	svc, seeded := setupAuthService(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		user, token, err := svc.Login("admin@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, seeded.ID, user.ID)

		claims, err := utils.ParseToken(token, testJWTSecret)
		require.NoError(t, err)
		require.Equal(t, seeded.ID, claims.UserID)
		require.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, _, wrongPass := svc.Login("admin@example.com", "nope")
		_, _, unknown := svc.Login("ghost@example.com", "nope")
		require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		require.ErrorIs(t, unknown, ErrInvalidCredentials)
	})
}

func TestAuthService_GetUser(t *testing.T) {
	svc, seeded := setupAuthService(t)

	user, err := svc.GetUser(seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.Email, user.Email)

	_, err = svc.GetUser(uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, seeded := setupAuthService(t)

	t.Run("rejects short passwords before touching the store", func(t *testing.T) {
		err := svc.ChangePassword(seeded.ID, "correct-horse", "short")
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects a wrong old password", func(t *testing.T) {
		err := svc.ChangePassword(seeded.ID, "wrong", "long-enough-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rotates the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(seeded.ID, "correct-horse", "long-enough-password"))

		_, _, err := svc.Login("admin@example.com", "correct-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login("admin@example.com", "long-enough-password")
		require.NoError(t, err)
	})
}
