package store

type DatabaseType string

const (
	DBTypePostgres DatabaseType = "postgres"
	DBTypeSQLite   DatabaseType = "sqlite"
)

type DBConfig struct {
	DSN  string
	Type DatabaseType
}

// OverallRow is the raw cumulative attendance count for one user.
type OverallRow struct {
	Total   int64 `db:"total"`
	Present int64 `db:"present"`
}

// SubjectRow is the raw per-subject attendance count for one user.
type SubjectRow struct {
	Subject string `db:"subject_name"`
	Total   int64  `db:"total"`
	Present int64  `db:"present"`
}
