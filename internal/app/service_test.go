package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendify/attendify/internal/models"
	"github.com/attendify/attendify/internal/store/sqlite"
)

// newTestService wires the service to an in-memory SQLite store with the
// real migrations applied, so these tests exercise the full stack below the
// HTTP layer.
func newTestService(t *testing.T) (*Service, func()) {
	st, err := sqlite.NewSQLiteStore(":memory:", "../../migrations")
	require.NoError(t, err, "Failed to create store")

	svc := &Service{
		Config: &Config{},
		Store:  st,
	}
	svc.Config.Auth.MinPasswordLength = 4
	svc.Config.Stats.GoodThreshold = 75
	svc.Config.Stats.WarnThreshold = 60

	cleanup := func() {
		require.NoError(t, svc.Close())
	}
	return svc, cleanup
}

func TestSignUpAndAuthenticate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)

	t.Run("roundtrip returns the same id", func(t *testing.T) {
		got, err := svc.Authenticate("alice", "pass1")
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("password is never stored in plaintext", func(t *testing.T) {
		user, err := svc.Store.GetUserByUsername("alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotContains(t, user.PasswordHash, "pass1")
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.SignUp("alice", "other")
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPwd := svc.Authenticate("alice", "nope")
		_, unknown := svc.Authenticate("bob", "pass1")
		assert.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, ErrInvalidCredentials)
		assert.Equal(t, wrongPwd, unknown)
	})

	t.Run("empty fields are rejected before the store", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.SignUp("", "pass1")
		assert.ErrorAs(t, err, &verr)
		_, err = svc.SignUp("carol", "")
		assert.ErrorAs(t, err, &verr)
	})
}

func TestAddClassValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)

	t.Run("valid class", func(t *testing.T) {
		id, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "Dr. Ada", "B12")
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))
	})

	t.Run("day names are case-sensitive", func(t *testing.T) {
		_, err := svc.AddClass(userID, "Math", "monday", "09:00-10:00", "", "")
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("unknown day", func(t *testing.T) {
		_, err := svc.AddClass(userID, "Math", "Funday", "09:00-10:00", "", "")
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("required fields", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.AddClass(userID, "", "Monday", "09:00-10:00", "", "")
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "subject_name", verr.Field)

		_, err = svc.AddClass(userID, "Math", "Monday", "", "", "")
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "time_slot", verr.Field)
	})

	t.Run("identical entries may coexist", func(t *testing.T) {
		_, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "Dr. Ada", "B12")
		require.NoError(t, err)

		classes, err := svc.Classes(userID)
		require.NoError(t, err)
		assert.Len(t, classes, 2)
	})
}

func TestMarkAttendance(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)
	classID, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "", "")
	require.NoError(t, err)

	t.Run("status is restricted", func(t *testing.T) {
		var verr *ValidationError
		err := svc.MarkAttendance(classID, userID, "Late", "2024-01-01")
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("marking twice keeps one record with the latest status", func(t *testing.T) {
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, "2024-01-01"))
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusAbsent, "2024-01-01"))

		records, err := svc.AttendanceForDate(userID, "2024-01-01")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.StatusAbsent, records[0].Status)
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, ""))

		records, err := svc.AttendanceForDate(userID, "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.StatusPresent, records[0].Status)
	})
}

func TestDayOverview(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)

	mathID, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "", "")
	require.NoError(t, err)
	chemID, err := svc.AddClass(userID, "Chemistry", "Monday", "11:00-12:00", "", "")
	require.NoError(t, err)
	_, err = svc.AddClass(userID, "History", "Monday", "14:00-15:00", "", "")
	require.NoError(t, err)
	_, err = svc.AddClass(userID, "Art", "Tuesday", "09:00-10:00", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAttendance(mathID, userID, models.StatusPresent, "2024-01-01"))
	require.NoError(t, svc.MarkAttendance(chemID, userID, models.StatusAbsent, "2024-01-01"))

	summary, err := svc.DayOverview(userID, "Monday", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total, "Tuesday class must not count")
	assert.Equal(t, 1, summary.Attended)
	assert.Equal(t, 1, summary.Absent)

	require.Len(t, summary.Classes, 3)
	statusBySubject := map[string]string{}
	for _, cs := range summary.Classes {
		statusBySubject[cs.Class.Subject] = cs.Status
	}
	assert.Equal(t, models.StatusPresent, statusBySubject["Math"])
	assert.Equal(t, models.StatusAbsent, statusBySubject["Chemistry"])
	assert.Equal(t, models.StatusUnmarked, statusBySubject["History"],
		"a class with no record is unmarked, not absent")
}

func TestOverallStats(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)

	t.Run("no records means all zeros", func(t *testing.T) {
		stats, err := svc.OverallStats(userID)
		require.NoError(t, err)
		assert.Equal(t, &OverallStats{Total: 0, Present: 0, Absent: 0, Percentage: 0}, stats)
	})

	t.Run("single present mark is 100 percent", func(t *testing.T) {
		classID, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "", "")
		require.NoError(t, err)
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, "2024-01-01"))

		stats, err := svc.OverallStats(userID)
		require.NoError(t, err)
		assert.Equal(t, &OverallStats{Total: 1, Present: 1, Absent: 0, Percentage: 100.0}, stats)
	})

	t.Run("percentage rounds to two decimals", func(t *testing.T) {
		classID, err := svc.AddClass(userID, "Math", "Wednesday", "09:00-10:00", "", "")
		require.NoError(t, err)
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusAbsent, "2024-01-03"))
		require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusAbsent, "2024-01-10"))

		stats, err := svc.OverallStats(userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Total)
		assert.Equal(t, 33.33, stats.Percentage)
	})
}

func TestSubjectStats(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)
	classID, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "", "")
	require.NoError(t, err)

	// mark Present, overwrite with Absent, then Present a week later
	require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, "2024-01-01"))
	require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusAbsent, "2024-01-01"))
	require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, "2024-01-08"))

	t.Run("upsert plus later mark yields 50 percent", func(t *testing.T) {
		stats, err := svc.SubjectStats(userID)
		require.NoError(t, err)
		assert.Equal(t, []SubjectStats{
			{Subject: "Math", Total: 2, Present: 1, Absent: 1, Percentage: 50.0},
		}, stats)
	})

	t.Run("present and absent always sum to total", func(t *testing.T) {
		stats, err := svc.SubjectStats(userID)
		require.NoError(t, err)
		for _, s := range stats {
			assert.Equal(t, s.Total, s.Present+s.Absent, s.Subject)
		}
	})

	t.Run("never-marked subjects are omitted", func(t *testing.T) {
		_, err := svc.AddClass(userID, "Zoology", "Friday", "09:00-10:00", "", "")
		require.NoError(t, err)

		stats, err := svc.SubjectStats(userID)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "Math", stats[0].Subject)
	})
}

func TestDeleteClassFlow(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	userID, err := svc.SignUp("alice", "pass1")
	require.NoError(t, err)
	classID, err := svc.AddClass(userID, "Math", "Monday", "09:00-10:00", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.MarkAttendance(classID, userID, models.StatusPresent, "2024-01-01"))

	require.NoError(t, svc.DeleteClass(classID))

	classes, err := svc.Classes(userID)
	require.NoError(t, err)
	assert.Empty(t, classes)

	stats, err := svc.OverallStats(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total, "cascade must drop attendance from stats")

	assert.NoError(t, svc.DeleteClass(classID), "repeat delete is a no-op")
}
