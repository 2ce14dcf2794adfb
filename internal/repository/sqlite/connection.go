package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dtroode/tasklist-server/database"
	"github.com/dtroode/tasklist-server/internal/logger"
)

const foreignKeysPragma = "_pragma=foreign_keys(1)"

var errForeignKeysDisabled = errors.New("sqlite foreign key enforcement is disabled")

// Connection wraps the single database/sql handle shared by the sqlite repositories.
type Connection struct {
	*sql.DB
}

// NewConnection opens the database with foreign key enforcement on and applies migrations.
// Task ownership relies on the users(id) cascade, so startup fails if enforcement is off.
func NewConnection(ctx context.Context, dsn string, log *logger.Logger) (*Connection, error) {
	db, err := sql.Open("sqlite", withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite serializes writers; one connection avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := checkForeignKeys(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := database.Migrate(ctx, db, database.DialectSQLite, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{DB: db}, nil
}

// withForeignKeys adds the foreign_keys pragma unless the DSN already sets it.
// The driver applies DSN pragmas to every connection it opens.
func withForeignKeys(dsn string) string {
	if strings.Contains(strings.ToLower(dsn), "foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + foreignKeysPragma
	}
	return dsn + "?" + foreignKeysPragma
}

func checkForeignKeys(ctx context.Context, db *sql.DB) error {
	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		return errForeignKeysDisabled
	}
	return nil
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
