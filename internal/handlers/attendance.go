package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/attendify/attendify/internal/app"
	"github.com/attendify/attendify/internal/metrics"
	"github.com/attendify/attendify/internal/models"
	"github.com/attendify/attendify/internal/rating"
)

type addClassRequest struct {
	Subject   string `json:"subject_name"`
	DayOfWeek string `json:"day_of_week"`
	TimeSlot  string `json:"time_slot"`
	Professor string `json:"professor"`
	Room      string `json:"room_number"`
}

func (h *Handler) HandleAddClass(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusCreated
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	var req addClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = http.StatusBadRequest
		writeJSON(w, status, map[string]string{"error": "invalid request body"})
		return
	}

	classID, err := h.service.AddClass(userID, req.Subject, req.DayOfWeek, req.TimeSlot, req.Professor, req.Room)
	if err != nil {
		status = writeError(w, err)
		return
	}

	writeJSON(w, status, map[string]int64{"class_id": classID})
}

// HandleListClasses returns the whole timetable, or one day of it when the
// day query parameter is present.
func (h *Handler) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	var classes []models.Class
	if day := r.URL.Query().Get("day"); day != "" {
		classes, err = h.service.ClassesForDay(userID, day)
	} else {
		classes, err = h.service.Classes(userID)
	}
	if err != nil {
		status = writeError(w, err)
		return
	}

	writeJSON(w, status, classes)
}

func (h *Handler) HandleDeleteClass(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusNoContent
	defer observe(start, r, &status)

	classID, err := pathID(r, "classID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	if err := h.service.DeleteClass(classID); err != nil {
		status = writeError(w, err)
		return
	}

	w.WriteHeader(status)
}

type markAttendanceRequest struct {
	ClassID int64  `json:"class_id"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

func (h *Handler) HandleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	var req markAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = http.StatusBadRequest
		writeJSON(w, status, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.service.MarkAttendance(req.ClassID, userID, req.Status, req.Date); err != nil {
		status = writeError(w, err)
		return
	}

	metrics.AttendanceMarksTotal.WithLabelValues(req.Status).Inc()
	writeJSON(w, status, map[string]string{"result": "ok"})
}

func (h *Handler) HandleAttendanceForDate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	records, err := h.service.AttendanceForDate(userID, r.URL.Query().Get("date"))
	if err != nil {
		status = writeError(w, err)
		return
	}

	writeJSON(w, status, records)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	summary, err := h.service.TodayOverview(userID)
	if err != nil {
		status = writeError(w, err)
		return
	}

	writeJSON(w, status, summary)
}

type statsResponse struct {
	Overall  overallWithRating  `json:"overall"`
	Subjects []app.SubjectStats `json:"subjects"`
}

type overallWithRating struct {
	app.OverallStats
	Rating rating.Band `json:"rating"`
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	userID, err := pathID(r, "userID")
	if err != nil {
		status = writeError(w, err)
		return
	}

	overall, err := h.service.OverallStats(userID)
	if err != nil {
		status = writeError(w, err)
		return
	}

	subjects, err := h.service.SubjectStats(userID)
	if err != nil {
		status = writeError(w, err)
		return
	}

	scale := rating.Scale{
		GoodThreshold: h.service.Config.Stats.GoodThreshold,
		WarnThreshold: h.service.Config.Stats.WarnThreshold,
	}

	writeJSON(w, status, statsResponse{
		Overall: overallWithRating{
			OverallStats: *overall,
			Rating:       scale.Rate(overall.Percentage),
		},
		Subjects: subjects,
	})
}
