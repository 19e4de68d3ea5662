package app

import (
	"github.com/attendify/attendify/internal/models"
)

// AddClass appends a slot to the user's weekly timetable and returns its id.
// Subject, day and time slot are required; professor and room are optional.
// Identical entries may coexist, there is no dedup check.
func (s *Service) AddClass(userID int64, subject, day, timeSlot, professor, room string) (int64, error) {
	if subject == "" {
		return 0, newRequiredError("subject_name")
	}
	if day == "" {
		return 0, newRequiredError("day_of_week")
	}
	if timeSlot == "" {
		return 0, newRequiredError("time_slot")
	}
	if !models.IsValidDay(day) {
		return 0, ErrInvalidDay
	}

	class := &models.Class{
		UserID:    userID,
		Subject:   subject,
		DayOfWeek: day,
		TimeSlot:  timeSlot,
		Professor: professor,
		Room:      room,
	}
	if err := class.Validate(); err != nil {
		return 0, err
	}

	id, err := s.Store.CreateClass(class)
	if err != nil {
		return 0, translateStoreErr(err)
	}

	return id, nil
}

// Classes returns the full timetable, calendar day first, then time slot as
// a string.
func (s *Service) Classes(userID int64) ([]models.Class, error) {
	classes, err := s.Store.ListClasses(userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return classes, nil
}

func (s *Service) ClassesForDay(userID int64, day string) ([]models.Class, error) {
	if !models.IsValidDay(day) {
		return nil, ErrInvalidDay
	}

	classes, err := s.Store.ListClassesForDay(userID, day)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return classes, nil
}

// DeleteClass removes a timetable slot and, through the cascade, all of its
// attendance records. Deleting an id that is already gone succeeds.
func (s *Service) DeleteClass(classID int64) error {
	return translateStoreErr(s.Store.DeleteClass(classID))
}
