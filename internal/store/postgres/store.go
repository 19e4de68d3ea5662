package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/attendify/attendify/internal/models"
	"github.com/attendify/attendify/internal/store"
)

type PostgresStore struct {
	store.BaseStore
}

func NewPostgresStore(dsn, migrationsDir string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{BaseStore: store.BaseStore{
		DB: db,
		Converter: func(query string) string {
			out := query
			for i := 1; strings.Contains(out, "?"); i++ {
				out = strings.Replace(out, "?", fmt.Sprintf("$%d", i), 1)
			}
			return out
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

func (s *PostgresStore) ApplyMigrations(dir string) error {
	return s.BaseStore.ApplyMigrations(dir, nil)
}

func (s *PostgresStore) CreateUser(user *models.User) (int64, error) {
	var id int64
	err := s.DB.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, user.Username, user.PasswordHash).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (s *PostgresStore) CreateClass(class *models.Class) (int64, error) {
	var id int64
	err := s.DB.QueryRow(`
		INSERT INTO classes (user_id, subject_name, day_of_week, time_slot, professor, room_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, class.UserID, class.Subject, class.DayOfWeek, class.TimeSlot, class.Professor, class.Room).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// pq error classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation    = "23505"
	classConnectionFailure = "08"
)

func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("postgres error: %w", err)
	}

	switch {
	case string(pqErr.Code) == codeUniqueViolation:
		return store.ErrDuplicateUsername
	case strings.HasPrefix(string(pqErr.Code), classConnectionFailure):
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	default:
		return fmt.Errorf("postgres error: %w", err)
	}
}
