// Package journal records pipeline stage invocations in a local SQLite
// database. Journaling is best effort: a broken journal never aborts a
// pipeline run.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS stage_runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	stage       TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	outcome     TEXT,
	error       TEXT
);
`

// Journal is a stage-run journal. A nil *Journal is valid and records
// nothing.
type Journal struct {
	db *sql.DB
}

// Entry is one recorded stage invocation.
type Entry struct {
	RunID      string
	Stage      string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string
	Error      string
}

// NewRunID returns a fresh pipeline run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Open opens (or creates) the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// Begin records the start of a stage and returns the entry id for End.
// Returns 0 on failure.
func (j *Journal) Begin(runID, stage string) int64 {
	if j == nil {
		return 0
	}
	res, err := j.db.Exec(
		`INSERT INTO stage_runs (run_id, stage, started_at) VALUES (?, ?, ?)`,
		runID, stage, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Warn().Err(err).Str("stage", stage).Msg("journal write failed")
		return 0
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0
	}
	return id
}

// End records the outcome of a stage begun with Begin.
func (j *Journal) End(entryID int64, stageErr error) {
	if j == nil || entryID == 0 {
		return
	}
	outcome, errText := "ok", ""
	if stageErr != nil {
		outcome, errText = "error", stageErr.Error()
	}
	_, err := j.db.Exec(
		`UPDATE stage_runs SET finished_at = ?, outcome = ?, error = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), outcome, errText, entryID,
	)
	if err != nil {
		log.Warn().Err(err).Msg("journal write failed")
	}
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	rows, err := j.db.Query(
		`SELECT run_id, stage, started_at, finished_at, outcome, error
		 FROM stage_runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var started string
		var finished, outcome, errText sql.NullString
		if err := rows.Scan(&e.RunID, &e.Stage, &started, &finished, &outcome, &errText); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		e.StartedAt, _ = time.Parse(time.RFC3339, started)
		if finished.Valid {
			e.FinishedAt, _ = time.Parse(time.RFC3339, finished.String)
		}
		e.Outcome = outcome.String
		e.Error = errText.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
