// Package repository selects the storage backend configured for the server.
package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/tasklist-server/internal/config"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
	"github.com/dtroode/tasklist-server/internal/repository/postgres"
	"github.com/dtroode/tasklist-server/internal/repository/sqlite"
)

// Stores groups the repositories sharing one storage handle.
type Stores struct {
	Users model.UserStore
	Tasks model.TaskStore

	closer io.Closer
}

// Close releases the underlying storage handle.
func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open connects to the backend named by driver, applies migrations and builds the repositories.
func Open(ctx context.Context, driver, dsn string, log *logger.Logger) (*Stores, error) {
	switch driver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  postgres.NewUserRepository(conn),
			Tasks:  postgres.NewTaskRepository(conn),
			closer: conn,
		}, nil
	case config.DriverSQLite:
		conn, err := sqlite.NewConnection(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  sqlite.NewUserRepository(conn),
			Tasks:  sqlite.NewTaskRepository(conn),
			closer: conn,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
