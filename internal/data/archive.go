package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// archiveRepo implements the Archive repository
type archiveRepo struct {
	db *sql.DB
}

// NewArchiveRepo opens (or creates) the archive database
func NewArchiveRepo(dbPath string) (repo.ArchiveRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Pipelines write concurrently; a single connection serialises them
	db.SetMaxOpenConns(1)

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pulses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			summary TEXT NOT NULL,
			mood TEXT NOT NULL,
			top_ticker TEXT NOT NULL DEFAULT '',
			msg_count INTEGER NOT NULL,
			generated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pulses_session ON pulses(session_id, generated_at)`,
		`CREATE TABLE IF NOT EXISTS session_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL DEFAULT 0,
			stop_reason TEXT NOT NULL DEFAULT '',
			received INTEGER NOT NULL DEFAULT 0,
			dropped INTEGER NOT NULL DEFAULT 0,
			escalated INTEGER NOT NULL DEFAULT 0,
			broadcast INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_runs_started ON session_runs(started_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &archiveRepo{db: db}, nil
}

// StartRun records a new pipeline run
func (r *archiveRepo) StartRun(ctx context.Context, sessionID string, startedAt time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO session_runs (session_id, started_at) VALUES (?, ?)
	`, sessionID, startedAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to start run: %w", err)
	}
	return result.LastInsertId()
}

// FinishRun closes a run
func (r *archiveRepo) FinishRun(ctx context.Context, runID int64, endedAt time.Time, reason string, stats domain.SessionStats) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE session_runs
		SET ended_at = ?, stop_reason = ?, received = ?, dropped = ?, escalated = ?, broadcast = ?
		WHERE id = ?
	`, endedAt.Unix(), reason, stats.Received, stats.Dropped, stats.Escalated, stats.Broadcast, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// ListRuns lists the most recent runs
func (r *archiveRepo) ListRuns(ctx context.Context, limit int) ([]*domain.SessionRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, started_at, ended_at, stop_reason, received, dropped, escalated, broadcast
		FROM session_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.SessionRun
	for rows.Next() {
		var run domain.SessionRun
		var startedAt, endedAt int64
		if err := rows.Scan(&run.ID, &run.SessionID, &startedAt, &endedAt, &run.StopReason,
			&run.Stats.Received, &run.Stats.Dropped, &run.Stats.Escalated, &run.Stats.Broadcast); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = time.Unix(startedAt, 0)
		if endedAt > 0 {
			run.EndedAt = time.Unix(endedAt, 0)
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// SavePulse archives a pulse summary
func (r *archiveRepo) SavePulse(ctx context.Context, pulse *domain.PulseSummary) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pulses (session_id, summary, mood, top_ticker, msg_count, generated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		pulse.SessionID,
		pulse.Summary,
		string(pulse.Mood),
		pulse.TopTicker,
		pulse.MessageCount,
		pulse.GeneratedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save pulse: %w", err)
	}
	return nil
}

// ListPulses lists a session's pulses
func (r *archiveRepo) ListPulses(ctx context.Context, sessionID string, limit int) ([]*domain.PulseSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, summary, mood, top_ticker, msg_count, generated_at
		FROM pulses
		WHERE session_id = ?
		ORDER BY generated_at DESC, id DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pulses: %w", err)
	}
	defer rows.Close()

	var pulses []*domain.PulseSummary
	for rows.Next() {
		var p domain.PulseSummary
		var mood string
		var generatedAt int64
		if err := rows.Scan(&p.SessionID, &p.Summary, &mood, &p.TopTicker, &p.MessageCount, &generatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pulse: %w", err)
		}
		p.Mood = domain.Mood(mood)
		p.GeneratedAt = time.Unix(generatedAt, 0)
		pulses = append(pulses, &p)
	}

	return pulses, rows.Err()
}

// Cleanup removes pulses and finished runs older than before
func (r *archiveRepo) Cleanup(ctx context.Context, before time.Time) (int64, error) {
	cutoff := before.Unix()

	result, err := r.db.ExecContext(ctx, `DELETE FROM pulses WHERE generated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup pulses: %w", err)
	}
	pulses, _ := result.RowsAffected()

	result, err = r.db.ExecContext(ctx, `
		DELETE FROM session_runs WHERE ended_at > 0 AND ended_at < ?
	`, cutoff)
	if err != nil {
		return pulses, fmt.Errorf("failed to cleanup runs: %w", err)
	}
	runs, _ := result.RowsAffected()

	return pulses + runs, nil
}

// Close closes the database connection
func (r *archiveRepo) Close() error {
	return r.db.Close()
}
