package models

import (
	"github.com/go-playground/validator/v10"
)

// Weekdays holds the canonical day names in calendar order, Monday first.
// Day matching is case-sensitive everywhere: "monday" is not a valid day.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayIndex maps a canonical day name to its calendar position (Monday=1).
// Unknown names map to 0.
var DayIndex = func() map[string]int {
	m := make(map[string]int, len(Weekdays))
	for i, day := range Weekdays {
		m[day] = i + 1
	}
	return m
}()

func IsValidDay(day string) bool {
	return DayIndex[day] != 0
}

// Class is one recurring weekly timetable slot owned by a single user.
// TimeSlot is a free-text descriptor ("09:00-10:00"); it is ordered as a
// plain string, never parsed.
type Class struct {
	ID        int64  `db:"id" json:"id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	Subject   string `db:"subject_name" json:"subject_name" validate:"required"`
	DayOfWeek string `db:"day_of_week" json:"day_of_week" validate:"required"`
	TimeSlot  string `db:"time_slot" json:"time_slot" validate:"required"`
	Professor string `db:"professor" json:"professor,omitempty"`
	Room      string `db:"room_number" json:"room_number,omitempty"`
}

func (c *Class) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
