package app

import (
	"strings"

	"github.com/attendify/attendify/internal/store"
	"github.com/attendify/attendify/internal/store/postgres"
	"github.com/attendify/attendify/internal/store/sqlite"
)

// NewStore picks a backend from the DSN: postgres:// URLs get the Postgres
// store, anything else is treated as a SQLite file path (or :memory:).
func NewStore(dsn, migrationsDir string) (store.AttendanceStore, error) {
	if strings.HasPrefix(dsn, "postgres") {
		return postgres.NewPostgresStore(dsn, migrationsDir)
	}
	return sqlite.NewSQLiteStore(dsn, migrationsDir)
}
