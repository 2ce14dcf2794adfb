package database

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/testutil"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db, DialectSQLite, testutil.MakeNoopLogger()))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, db, DialectSQLite, testutil.MakeNoopLogger()))

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'tasks')`,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMigrate_SQLiteConstraints(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db, DialectSQLite, testutil.MakeNoopLogger()))

	_, err := db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ('a@b.c', 'h')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ('A@B.C', 'h')`)
	assert.Error(t, err, "email must be unique regardless of case")

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (owner_id, title, priority) VALUES (1, 'ok', 'urgent')`)
	assert.Error(t, err, "priority outside the allowed set")

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (owner_id, title) VALUES (99, 'orphan')`)
	assert.Error(t, err, "owner must exist")

	var priority, status string
	_, err = db.ExecContext(ctx, `INSERT INTO tasks (owner_id, title) VALUES (1, 'defaults')`)
	require.NoError(t, err)
	err = db.QueryRowContext(ctx, `SELECT priority, status FROM tasks WHERE title = 'defaults'`).Scan(&priority, &status)
	require.NoError(t, err)
	assert.Equal(t, "medium", priority)
	assert.Equal(t, "todo", status)
}

func TestMigrate_SQLiteDeletingUserRemovesTasks(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db, DialectSQLite, testutil.MakeNoopLogger()))

	_, err := db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ('gone@b.c', 'h'), ('kept@b.c', 'h')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO tasks (owner_id, title) VALUES (1, 'first'), (1, 'second'), (2, 'other')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM users WHERE id = 1`)
	require.NoError(t, err)

	var remaining, others int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM tasks WHERE owner_id = 1`).Scan(&remaining))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM tasks WHERE owner_id = 2`).Scan(&others))
	assert.Zero(t, remaining)
	assert.Equal(t, 1, others)
}

func TestMigrate_LogsThroughAppLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, 0, "json")

	require.NoError(t, Migrate(context.Background(), openSQLite(t), DialectSQLite, log))

	out := buf.String()
	assert.Contains(t, out, `"msg":"Migrations: OK`)
	assert.Contains(t, out, "00001_create_users.sql")
	assert.Contains(t, out, "00002_create_tasks.sql")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	err := Migrate(context.Background(), nil, "mysql", testutil.MakeNoopLogger())
	assert.ErrorContains(t, err, "unsupported")
}
