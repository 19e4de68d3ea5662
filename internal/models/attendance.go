package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"

	// StatusUnmarked never hits the database: a class with no record for a
	// date is unmarked, which is not the same thing as Absent.
	StatusUnmarked = "Unmarked"
)

// DateLayout is the wire and storage format for attendance dates.
const DateLayout = "2006-01-02"

// AttendanceRecord is the status of one class on one calendar date.
// At most one record exists per (class, date); marking again overwrites.
type AttendanceRecord struct {
	ID      int64  `db:"id" json:"id"`
	ClassID int64  `db:"class_id" json:"class_id"`
	UserID  int64  `db:"user_id" json:"user_id"`
	Date    string `db:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `db:"status" json:"status" validate:"required,oneof=Present Absent"`

	// Subject is filled by lookups that join against classes.
	Subject string `db:"subject_name" json:"subject_name,omitempty"`
}

func (a *AttendanceRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
