package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flagro/FillerWordsDetector/internal/ports/persistence"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)

	return NewDB(conn)
}

func countItems(t *testing.T, db *DB) int {
	t.Helper()
	var count int
	require.NoError(t, db.Get(context.Background(), &count, `SELECT COUNT(*) FROM items`))
	return count
}

func TestWithTransaction_Commit(t *testing.T) {
	db := openTestDB(t)

	err := db.WithTransaction(context.Background(), func(ctx context.Context, tx persistence.Transaction) error {
		if err := tx.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "first"); err != nil {
			return err
		}

		// Запись видна внутри транзакции
		var name string
		if err := tx.Get(ctx, &name, `SELECT name FROM items WHERE name = ?`, "first"); err != nil {
			return err
		}
		assert.Equal(t, "first", name)

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countItems(t, db))
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := db.WithTransaction(context.Background(), func(ctx context.Context, tx persistence.Transaction) error {
		if err := tx.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "doomed"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Откат - запись не видна снаружи
	assert.Equal(t, 0, countItems(t, db))
}

func TestExecWithResult_RowsAffected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "a"))
	require.NoError(t, db.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "b"))

	affected, err := db.ExecWithResult(ctx, `DELETE FROM items`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
