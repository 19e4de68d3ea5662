package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/attendify/attendify/internal/models"
)

var (
	// ErrDuplicateUsername is returned when an insert hits the unique
	// constraint on users.username.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrUnavailable covers lock timeouts and connection-level failures.
	// Callers may treat it as transient; every other error is terminal.
	ErrUnavailable = errors.New("store unavailable")
)

type AttendanceStore interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateUser(user *models.User) (int64, error)
	GetUserByUsername(username string) (*models.User, error)

	CreateClass(class *models.Class) (int64, error)
	ListClasses(userID int64) ([]models.Class, error)
	ListClassesForDay(userID int64, day string) ([]models.Class, error)
	DeleteClass(classID int64) error

	UpsertAttendance(record *models.AttendanceRecord) error
	ListAttendanceForDate(userID int64, date string) ([]models.AttendanceRecord, error)

	FetchOverallStats(userID int64) (OverallRow, error)
	FetchSubjectStats(userID int64) ([]SubjectRow, error)
}

// dayOrder sorts classes in calendar order, Monday first
const dayOrder = `CASE day_of_week
		WHEN 'Monday' THEN 1
		WHEN 'Tuesday' THEN 2
		WHEN 'Wednesday' THEN 3
		WHEN 'Thursday' THEN 4
		WHEN 'Friday' THEN 5
		WHEN 'Saturday' THEN 6
		WHEN 'Sunday' THEN 7
	END`

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := s.Converter(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`)

	err := s.DB.Get(&user, query, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListClasses returns the user's full timetable ordered by calendar day,
// then by time slot compared lexically. The lexical tie-break is a behavior
// contract carried over from the desktop app, not an oversight.
func (s *BaseStore) ListClasses(userID int64) ([]models.Class, error) {
	var classes []models.Class
	query := s.Converter(`
		SELECT
			id,
			user_id,
			subject_name,
			day_of_week,
			time_slot,
			COALESCE(professor, '') AS professor,
			COALESCE(room_number, '') AS room_number
		FROM classes
		WHERE user_id = ?
		ORDER BY ` + dayOrder + `, time_slot
	`)

	err := s.DB.Select(&classes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	return classes, nil
}

func (s *BaseStore) ListClassesForDay(userID int64, day string) ([]models.Class, error) {
	var classes []models.Class
	query := s.Converter(`
		SELECT
			id,
			user_id,
			subject_name,
			day_of_week,
			time_slot,
			COALESCE(professor, '') AS professor,
			COALESCE(room_number, '') AS room_number
		FROM classes
		WHERE user_id = ? AND day_of_week = ?
		ORDER BY time_slot
	`)

	err := s.DB.Select(&classes, query, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for day: %w", err)
	}

	return classes, nil
}

// DeleteClass removes a class; attendance rows go with it via the cascading
// foreign key. Deleting an id that does not exist is a no-op.
func (s *BaseStore) DeleteClass(classID int64) error {
	query := s.Converter(`DELETE FROM classes WHERE id = ?`)
	if _, err := s.DB.Exec(query, classID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}

// UpsertAttendance records the status for (class, date), overwriting any
// prior status for the same pair instead of duplicating it.
func (s *BaseStore) UpsertAttendance(record *models.AttendanceRecord) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO attendance (class_id, user_id, date, status)
		VALUES (:class_id, :user_id, :date, :status)
		ON CONFLICT(class_id, date) DO UPDATE SET
		status = excluded.status
	`, record)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

func (s *BaseStore) ListAttendanceForDate(userID int64, date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	query := s.Converter(`
		SELECT
			a.id,
			a.class_id,
			a.user_id,
			a.date,
			a.status,
			c.subject_name
		FROM attendance a
		JOIN classes c ON a.class_id = c.id
		WHERE a.user_id = ? AND a.date = ?
	`)

	err := s.DB.Select(&records, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return records, nil
}

func (s *BaseStore) FetchOverallStats(userID int64) (OverallRow, error) {
	var row OverallRow
	query := s.Converter(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) AS present
		FROM attendance
		WHERE user_id = ?
	`)

	err := s.DB.Get(&row, query, userID)
	if err != nil {
		return OverallRow{}, fmt.Errorf("failed to fetch overall stats: %w", err)
	}
	return row, nil
}

// FetchSubjectStats groups by subject name, so two timetable slots sharing a
// subject contribute to the same row. Subjects never marked are left out.
func (s *BaseStore) FetchSubjectStats(userID int64) ([]SubjectRow, error) {
	var rows []SubjectRow
	query := s.Converter(`
		SELECT
			c.subject_name,
			COUNT(a.id) AS total,
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present
		FROM classes c
		LEFT JOIN attendance a ON c.id = a.class_id
		WHERE c.user_id = ?
		GROUP BY c.subject_name
		HAVING COUNT(a.id) > 0
		ORDER BY c.subject_name
	`)

	err := s.DB.Select(&rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject stats: %w", err)
	}

	return rows, nil
}
