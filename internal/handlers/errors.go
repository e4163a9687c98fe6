package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/mcarvalho/portfolio-api/internal/errors"
)

// respondStoreError handles errors the service sentinels do not cover.
// Constraint violations are caused by the request, such as two concurrent
// creates colliding on a unique index, and answer 400; everything else is
// a server fault.
func respondStoreError(c *gin.Context, err error) {
	if isConstraintViolation(err) {
		apierrors.BadRequest(c, "Request conflicts with existing data")
		return
	}
	apierrors.InternalError(c, "")
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	// Paths outside the dialector's error translation surface driver
	// messages as plain strings.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "violates check constraint")
}
