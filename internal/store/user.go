package store

import (
	"context"
	"fmt"
	"time"

	"smart-city/internal/model"

	"github.com/google/uuid"
)

const userColumns = `id, email, username, password_hash, first_name, last_name, role, is_active, last_login_at, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetActiveUserByEmail(ctx context.Context, db Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1 AND is_active`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetActiveUserByEmail: %w", err)
	}
	return u, nil
}

func GetActiveUserByID(ctx context.Context, db Querier, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1 AND is_active`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetActiveUserByID: %w", err)
	}
	return u, nil
}

// UserExists reports whether any user, active or not, already holds the email
// or the username.
func UserExists(ctx context.Context, db Querier, email, username string) (bool, error) {
	var exists bool
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		email,
		username,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("UserExists: %w", err)
	}
	return exists, nil
}

// CreateUser inserts the user and fills in the generated id and created_at.
// A unique-index collision comes back as ErrDuplicate; the indexes, not the
// pre-check, decide uniqueness.
func CreateUser(ctx context.Context, db Querier, u *model.User) error {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, username, password_hash, first_name, last_name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Role,
		u.IsActive,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("CreateUser: %w", ErrDuplicate)
		}
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

func UpdateUserLastLogin(ctx context.Context, db Querier, userID uuid.UUID, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserLastLogin: %w", err)
	}
	return nil
}
