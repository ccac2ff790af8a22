package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// RegisterRequest is the payload for creating a new account. Role defaults
// to student when omitted.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest applies a partial profile update. Omitted fields keep
// their prior value; bio may be supplied as an empty string to clear it.
type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	Bio  *string `json:"bio" validate:"omitempty,max=500"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse bundles the public profile with a fresh token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// TokenResponse carries a refreshed access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// NewUserResponse converts a User model into its public DTO.
func NewUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Role:      string(model.Role),
		Bio:       model.Bio,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}
