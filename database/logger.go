package database

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dtroode/tasklist-server/internal/logger"
)

// gooseLogger sends goose progress output to the application logger.
type gooseLogger struct {
	log *logger.Logger
}

var _ goose.Logger = (*gooseLogger)(nil)

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info("Migrations: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal("Migrations: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
