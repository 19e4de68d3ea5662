// internal/store/sqlite/store.go
package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/attendify/attendify/internal/models"
	"github.com/attendify/attendify/internal/store"
)

type SQLiteStore struct {
	store.BaseStore
}

func NewSQLiteStore(dsn, migrationsDir string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// One connection serializes writers on top of busy_timeout and keeps
	// :memory: databases on a single schema.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	s := &SQLiteStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			return query
		},
	}}

	if migrationsDir != "" {
		if err := s.ApplyMigrations(migrationsDir); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return s, nil
}

func (s *SQLiteStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, translateToSQLite)
}

// translateToSQLite converts Postgres SQL to SQLite dialect
func translateToSQLite(sql string) string {
	replacements := map[string]string{
		"BIGSERIAL PRIMARY KEY": "INTEGER PRIMARY KEY AUTOINCREMENT",
		"BIGINT":                "INTEGER",
		"now()":                 "CURRENT_TIMESTAMP",
	}
	result := sql
	for from, to := range replacements {
		result = strings.ReplaceAll(result, from, to)
	}
	return result
}

func (s *SQLiteStore) CreateUser(user *models.User) (int64, error) {
	res, err := s.DB.Exec(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
	`, user.Username, user.PasswordHash)
	if err != nil {
		return 0, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new user id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) CreateClass(class *models.Class) (int64, error) {
	res, err := s.DB.Exec(`
		INSERT INTO classes (user_id, subject_name, day_of_week, time_slot, professor, room_number)
		VALUES (?, ?, ?, ?, ?, ?)
	`, class.UserID, class.Subject, class.DayOfWeek, class.TimeSlot, class.Professor, class.Room)
	if err != nil {
		return 0, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new class id: %w", err)
	}
	return id, nil
}

// mapError translates driver errors into the store's typed sentinels so
// callers never see sqlite3 internals.
func mapError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return fmt.Errorf("sqlite error: %w", err)
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return store.ErrDuplicateUsername
	case sqliteErr.Code == sqlite3.ErrBusy, sqliteErr.Code == sqlite3.ErrLocked:
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	default:
		return fmt.Errorf("sqlite error: %w", err)
	}
}
