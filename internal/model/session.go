// File: internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session records one issued token. Rows are created at login and never
// updated; a session dies by expiry or by the is_revoked flag.
type Session struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Token        string    `db:"token" json:"token"`
	RefreshToken string    `db:"refresh_token" json:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	IsRevoked    bool      `db:"is_revoked" json:"is_revoked"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
