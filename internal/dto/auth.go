package dto

import (
	"github.com/google/uuid"

	"github.com/mcarvalho/portfolio-api/internal/models"
)

// UserDTO represents a user in API responses, password projected out.
type UserDTO struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// LoginResponse pairs the authenticated user with its bearer token.
type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
