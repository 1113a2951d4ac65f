package dto

import (
	"time"

	"resumebuilder_backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest is a partial update: empty fields are left untouched.
type UpdateProfileRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=100"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

// AuthResponse is the user envelope returned by register, login and profile.
// Token is empty everywhere except login.
type AuthResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfileImageURL  string    `json:"profileImageUrl"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	EmailVerified    bool      `json:"emailVerified"`
	Token            string    `json:"token,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewAuthResponse(user *models.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		ProfileImageURL:  user.ProfileImageURL,
		SubscriptionPlan: string(user.SubscriptionPlan),
		EmailVerified:    user.EmailVerified,
		Token:            token,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}
