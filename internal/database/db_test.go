package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "") })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Begin(context.Background()) })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	called := map[string]bool{}
	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		called["exec"] = true
		return pgconn.CommandTag{}, nil
	}
	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		called["query"] = true
		return fakeRows{}, nil
	}
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		called["queryRow"] = true
		return nil
	}
	db.BeginFn = func(context.Context) (pgx.Tx, error) {
		called["begin"] = true
		return &FakeTx{}, nil
	}
	db.PingFn = func(context.Context) error {
		called["ping"] = true
		return errors.New("down")
	}
	db.CloseFn = func() { called["close"] = true }

	_, err := db.Exec(context.Background(), "")
	require.NoError(t, err)
	_, err = db.Query(context.Background(), "")
	require.NoError(t, err)
	db.QueryRow(context.Background(), "")
	_, err = db.Begin(context.Background())
	require.NoError(t, err)
	require.EqualError(t, db.Ping(context.Background()), "down")
	db.Close()

	for _, k := range []string{"exec", "query", "queryRow", "begin", "ping", "close"} {
		require.True(t, called[k], k)
	}
}

func TestFakeTx(t *testing.T) {
	tx := &FakeTx{}
	require.Panics(t, func() { tx.Exec(context.Background(), "") })
	require.Panics(t, func() { tx.QueryRow(context.Background(), "") })
	require.Panics(t, func() { tx.Query(context.Background(), "") })
	require.Panics(t, func() { tx.Begin(context.Background()) })

	// Commit and Rollback default to no-ops so happy paths stay short.
	require.NoError(t, tx.Commit(context.Background()))
	require.NoError(t, tx.Rollback(context.Background()))

	tx.CommitFn = func(context.Context) error { return errors.New("commit") }
	tx.RollbackFn = func(context.Context) error { return errors.New("rollback") }
	require.EqualError(t, tx.Commit(context.Background()), "commit")
	require.EqualError(t, tx.Rollback(context.Background()), "rollback")
}
