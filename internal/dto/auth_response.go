// File: internal/dto/auth_response.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse is returned by both login and register; registration ends in a
// full login, so the shapes are identical.
// swagger:model dto.AuthResponse
type AuthResponse struct {
	UserID       uuid.UUID `json:"userId" example:"3c4c2b3e-5a33-4f6c-9f0a-6d9a1b2c3d4e"`
	Email        string    `json:"email" example:"alice@example.com"`
	Username     string    `json:"username" example:"alice"`
	FirstName    string    `json:"firstName" example:"Alice"`
	LastName     string    `json:"lastName" example:"Liddell"`
	Role         string    `json:"role" example:"User"`
	Token        string    `json:"token" example:"eyJhbGciOi..."`
	RefreshToken string    `json:"refreshToken" example:"7cf9f4a2-..."`
	ExpiresAt    time.Time `json:"expiresAt" example:"2025-05-09T15:04:05Z"`
}
