package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-city/internal/database"
	"smart-city/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// rowFunc adapts a closure to the Scan-only row shape.
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func errRow(err error) rowFunc {
	return func(...any) error { return err }
}

func TestGetActiveUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		lastLogin := time.Now().Add(-time.Hour)
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				gotArgs = args
				return rowFunc(func(dest ...any) error {
					*dest[0].(*uuid.UUID) = id
					*dest[1].(*string) = "alice@example.com"
					*dest[2].(*string) = "alice"
					*dest[3].(*string) = "hash"
					*dest[4].(*string) = "Alice"
					*dest[5].(*string) = "Liddell"
					*dest[6].(*string) = model.RoleUser
					*dest[7].(*bool) = true
					*dest[8].(**time.Time) = &lastLogin
					*dest[9].(*time.Time) = time.Now()
					return nil
				})
			},
		}

		u, err := GetActiveUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, id, u.ID)
		require.Equal(t, "alice", u.Username)
		require.NotNil(t, u.LastLoginAt)
		require.True(t, u.LastLoginAt.Equal(lastLogin))
		require.Contains(t, gotSQL, "is_active")
		require.Equal(t, []any{"alice@example.com"}, gotArgs)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return errRow(pgx.ErrNoRows) },
		}
		_, err := GetActiveUserByEmail(context.Background(), db, "ghost@example.com")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestGetActiveUserByID(t *testing.T) {
	id := uuid.New()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{id}, args)
			return rowFunc(func(dest ...any) error {
				*dest[0].(*uuid.UUID) = id
				*dest[1].(*string) = "alice@example.com"
				*dest[2].(*string) = "alice"
				*dest[3].(*string) = "hash"
				*dest[4].(*string) = "Alice"
				*dest[5].(*string) = "Liddell"
				*dest[6].(*string) = model.RoleUser
				*dest[7].(*bool) = true
				*dest[8].(**time.Time) = nil
				*dest[9].(*time.Time) = time.Now()
				return nil
			})
		},
	}
	u, err := GetActiveUserByID(context.Background(), db, id)
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Nil(t, u.LastLoginAt)
}

func TestUserExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"a@x.com", "alice"}, args)
				return rowFunc(func(dest ...any) error {
					*dest[0].(*bool) = true
					return nil
				})
			},
		}
		exists, err := UserExists(context.Background(), db, "a@x.com", "alice")
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return errRow(errors.New("boom")) },
		}
		_, err := UserExists(context.Background(), db, "a@x.com", "alice")
		require.Error(t, err)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		created := time.Now()
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "RETURNING id, created_at")
				require.Len(t, args, 7)
				return rowFunc(func(dest ...any) error {
					*dest[0].(*uuid.UUID) = id
					*dest[1].(*time.Time) = created
					return nil
				})
			},
		}
		u := &model.User{Email: "a@x.com", Username: "alice", Role: model.RoleUser, IsActive: true}
		require.NoError(t, CreateUser(context.Background(), db, u))
		require.Equal(t, id, u.ID)
		require.True(t, u.CreatedAt.Equal(created))
	})

	t.Run("unique violation", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return errRow(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
		}
		err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("other error passes through", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return errRow(&pgconn.PgError{Code: "23503"})
			},
		}
		err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestUpdateUserLastLogin(t *testing.T) {
	id := uuid.New()
	at := time.Now()
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "last_login_at")
			require.Equal(t, []any{at, id}, args)
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, UpdateUserLastLogin(context.Background(), db, id, at))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("down")
	}
	require.Error(t, UpdateUserLastLogin(context.Background(), db, id, at))
}
