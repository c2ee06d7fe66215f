// File: internal/service/auth.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smart-city/internal/cache"
	"smart-city/internal/config"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/model"
	"smart-city/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileCacheTTL = 5 * time.Minute

func profileCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

// Login verifies the credentials, issues a token and records the session.
// The session insert and the last-login update share one transaction; a
// failed login leaves no trace.
func Login(ctx context.Context, db database.DB, cfg *config.Config, email, password string) (*dto.AuthResponse, error) {
	user, err := store.GetActiveUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := IssueAccessToken(user, cfg, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken := uuid.NewString()

	session := &model.Session{
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := store.CreateSession(ctx, tx, session); err != nil {
		return nil, err
	}
	if err := store.UpdateUserLastLogin(ctx, tx, user.ID, timeNow().UTC()); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		UserID:       user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Register creates the user and immediately runs the full login flow, so a
// successful registration always hands back a usable session. The existence
// pre-check only buys a friendlier message; the unique indexes settle races.
func Register(ctx context.Context, db database.DB, cfg *config.Config, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := store.UserExists(ctx, db, req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := store.CreateUser(ctx, db, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return Login(ctx, db, cfg, req.Email, req.Password)
}

// GetProfile returns the public fields of an active user, read through the
// cache when one is wired in.
func GetProfile(ctx context.Context, db database.DB, c cache.Cache, userID uuid.UUID) (*dto.ProfileResponse, error) {
	key := profileCacheKey(userID)
	if c != nil {
		if cached, err := c.Get(ctx, key).Result(); err == nil {
			resp := &dto.ProfileResponse{}
			if err := json.Unmarshal([]byte(cached), resp); err == nil {
				return resp, nil
			}
		}
	}

	user, err := store.GetActiveUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}

	if c != nil {
		if data, err := json.Marshal(resp); err == nil {
			c.Set(ctx, key, data, profileCacheTTL)
		}
	}
	return resp, nil
}
