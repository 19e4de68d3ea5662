package app

import (
	"time"

	"github.com/attendify/attendify/internal/models"
)

// MarkAttendance records a status for (class, date). Marking the same pair
// again overwrites the previous status. An empty date means today.
func (s *Service) MarkAttendance(classID, userID int64, status, date string) error {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	if status != models.StatusPresent && status != models.StatusAbsent {
		return &ValidationError{Field: "status", Reason: "must be Present or Absent"}
	}

	record := &models.AttendanceRecord{
		ClassID: classID,
		UserID:  userID,
		Date:    date,
		Status:  status,
	}
	if err := record.Validate(); err != nil {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	return translateStoreErr(s.Store.UpsertAttendance(record))
}

// AttendanceForDate returns the user's records for one exact date, each
// carrying the subject name of its class.
func (s *Service) AttendanceForDate(userID int64, date string) ([]models.AttendanceRecord, error) {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	records, err := s.Store.ListAttendanceForDate(userID, date)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return records, nil
}

// ClassStatus pairs a scheduled class with its state on a given date.
// Status is Present, Absent or Unmarked; a class with no record for the
// date is Unmarked, which is not the same as Absent.
type ClassStatus struct {
	Class  models.Class `json:"class"`
	Status string       `json:"status"`
}

type DaySummary struct {
	Day      string        `json:"day"`
	Date     string        `json:"date"`
	Total    int           `json:"total"`
	Attended int           `json:"attended"`
	Absent   int           `json:"absent"`
	Classes  []ClassStatus `json:"classes"`
}

// DayOverview joins the schedule for a weekday with the attendance records
// of a date: the dashboard's counters and per-class states come out of this
// one in-memory join.
func (s *Service) DayOverview(userID int64, day, date string) (*DaySummary, error) {
	classes, err := s.ClassesForDay(userID, day)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceForDate(userID, date)
	if err != nil {
		return nil, err
	}

	statusByClass := make(map[int64]string, len(records))
	for _, record := range records {
		statusByClass[record.ClassID] = record.Status
	}

	summary := &DaySummary{
		Day:     day,
		Date:    date,
		Total:   len(classes),
		Classes: make([]ClassStatus, 0, len(classes)),
	}
	for _, class := range classes {
		status, ok := statusByClass[class.ID]
		if !ok {
			status = models.StatusUnmarked
		}
		switch status {
		case models.StatusPresent:
			summary.Attended++
		case models.StatusAbsent:
			summary.Absent++
		}
		summary.Classes = append(summary.Classes, ClassStatus{Class: class, Status: status})
	}

	return summary, nil
}

// TodayOverview is DayOverview for the current weekday and date.
func (s *Service) TodayOverview(userID int64) (*DaySummary, error) {
	now := time.Now()
	return s.DayOverview(userID, now.Weekday().String(), now.Format(models.DateLayout))
}
