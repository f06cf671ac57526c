package sqlite

import (
	"database/sql"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    ok BOOLEAN NOT NULL,
    summary TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	_, err := db.Exec(createRunsTable)
	return err
}
