package app

import (
	"math"
)

type OverallStats struct {
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Percentage float64 `json:"percentage"`
}

type SubjectStats struct {
	Subject    string  `json:"subject"`
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// OverallStats aggregates every attendance record the user ever created,
// all classes and dates cumulative. Zero records yields all zeros rather
// than a division error.
func (s *Service) OverallStats(userID int64) (*OverallStats, error) {
	row, err := s.Store.FetchOverallStats(userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	return &OverallStats{
		Total:      row.Total,
		Present:    row.Present,
		Absent:     row.Total - row.Present,
		Percentage: percentage(row.Present, row.Total),
	}, nil
}

// SubjectStats aggregates per subject name, alphabetically. Subjects without
// a single record are omitted entirely.
func (s *Service) SubjectStats(userID int64) ([]SubjectStats, error) {
	rows, err := s.Store.FetchSubjectStats(userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	stats := make([]SubjectStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, SubjectStats{
			Subject:    row.Subject,
			Total:      row.Total,
			Present:    row.Present,
			Absent:     row.Total - row.Present,
			Percentage: percentage(row.Present, row.Total),
		})
	}

	return stats, nil
}

// percentage rounds present/total to two decimal places, 0 when total is 0.
func percentage(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}
