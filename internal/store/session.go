package store

import (
	"context"
	"fmt"
	"time"

	"smart-city/internal/model"
)

// CreateSession inserts a session row and fills in the generated id and
// created_at. Sessions are insert-only.
func CreateSession(ctx context.Context, db Querier, s *model.Session) error {
	row := db.QueryRow(ctx,
		`INSERT INTO sessions (user_id, token, refresh_token, expires_at, is_revoked)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.UserID,
		s.Token,
		s.RefreshToken,
		s.ExpiresAt,
		s.IsRevoked,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("CreateSession: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose expiry has passed and returns
// how many rows went away.
func DeleteExpiredSessions(ctx context.Context, db Querier, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM sessions WHERE expires_at < $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredSessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
