// File: internal/dto/profile_response.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileResponse carries the public fields of a user; never the password
// hash and never session data.
// swagger:model dto.ProfileResponse
type ProfileResponse struct {
	ID          uuid.UUID  `json:"id" example:"3c4c2b3e-5a33-4f6c-9f0a-6d9a1b2c3d4e"`
	Email       string     `json:"email" example:"alice@example.com"`
	Username    string     `json:"username" example:"alice"`
	FirstName   string     `json:"firstName" example:"Alice"`
	LastName    string     `json:"lastName" example:"Liddell"`
	Role        string     `json:"role" example:"User"`
	IsActive    bool       `json:"isActive" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" example:"2025-05-09T15:04:05Z"`
	CreatedAt   time.Time  `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}
