package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

func recordProjectError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondProjectError(c, err)
	return w
}

func TestRespondProjectError_DuplicateKey(t *testing.T) {
	err := fmt.Errorf("failed to create project: %w", gorm.ErrDuplicatedKey)
	w := recordProjectError(t, err)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondProjectError_UnknownError(t *testing.T) {
	err := fmt.Errorf("failed to list projects: %w", errors.New("connection reset"))
	w := recordProjectError(t, err)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

// A unique index violation reported by the driver itself, without gorm's
// error translation, still answers 400.
func TestRespondProfileError_DriverUniqueViolation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tag{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.Create(&models.Tag{Name: "Go", Slug: "go"}).Error)
	insertErr := db.Create(&models.Tag{Name: "Golang", Slug: "go"}).Error
	require.Error(t, insertErr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondProfileError(c, fmt.Errorf("failed to create site settings: %w", insertErr))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
