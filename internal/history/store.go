// Package history persists analysis runs so rankings can be listed and
// shown again without re-reading the spreadsheet.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound indicates no stored ranking matches the query.
var ErrNotFound = errors.New("not found")

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the run history database.
type Store struct {
	db   *sql.DB
	path string
}

// Run summarizes one stored analysis.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Groups      int       `json:"groups"`
}

// StoredRanking is a group ranking loaded back from the history.
type StoredRanking struct {
	RunID        string               `json:"run_id"`
	Source       string               `json:"source"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Group        string               `json:"group"`
	TotalRecords int                  `json:"total_records"`
	Error        string               `json:"error,omitempty"`
	Entries      []models.RankedEntry `json:"entries"`
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		source TEXT NOT NULL DEFAULT '',
		success INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		generated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS group_results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		group_name TEXT NOT NULL,
		total_records INTEGER NOT NULL,
		columns TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, group_name)
	);

	CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		group_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		achievement REAL NOT NULL,
		raw_value TEXT NOT NULL,
		PRIMARY KEY (run_id, group_name, position)
	);

	CREATE INDEX IF NOT EXISTS idx_group_results_group ON group_results(group_name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores a result in one transaction and returns the new run id.
func (s *Store) Save(ctx context.Context, source string, r *models.AnalysisResult) (string, error) {
	runID := uuid.NewString()
	if source == "" {
		source = r.Source
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if err := execBuilder(ctx, tx, sq.Insert("runs").
		Columns("id", "source", "success", "error", "generated_at").
		Values(runID, source, r.Success, r.Error, r.Timestamp.UTC().Format(timeLayout))); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, g := range r.Groups() {
		if err := execBuilder(ctx, tx, sq.Insert("group_results").
			Columns("run_id", "group_name", "total_records", "columns", "message", "error").
			Values(runID, g.Name, g.TotalRecords, strings.Join(g.ColumnsUsed, ","), g.Message, g.Error)); err != nil {
			return "", fmt.Errorf("insert group %q: %w", g.Name, err)
		}
		if len(g.Ranking) == 0 {
			continue
		}

		ins := sq.Insert("entries").Columns("run_id", "group_name", "position", "name", "achievement", "raw_value")
		for _, e := range g.Ranking {
			raw, err := json.Marshal(e.RawValue)
			if err != nil {
				return "", fmt.Errorf("encode raw value: %w", err)
			}
			ins = ins.Values(runID, g.Name, e.Position, e.Name, e.AchievementPercent, string(raw))
		}
		if err := execBuilder(ctx, tx, ins); err != nil {
			return "", fmt.Errorf("insert entries for %q: %w", g.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// ListRuns returns the most recent runs first; limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	q := sq.Select("r.id", "r.source", "r.success", "r.error", "r.generated_at", "COUNT(g.group_name)").
		From("runs r").
		LeftJoin("group_results g ON g.run_id = r.id").
		GroupBy("r.seq").
		OrderBy("r.seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run Run
			ts  string
		)
		if err := rows.Scan(&run.ID, &run.Source, &run.Success, &run.Error, &ts, &run.Groups); err != nil {
			return nil, err
		}
		if run.GeneratedAt, err = time.Parse(timeLayout, ts); err != nil {
			return nil, fmt.Errorf("run %s: bad timestamp: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestRanking loads the most recently stored ranking for group, limited to
// top entries (top <= 0 loads all).
func (s *Store) LatestRanking(ctx context.Context, group string, top int) (*StoredRanking, error) {
	query, args, err := sq.Select("r.id", "r.source", "r.generated_at", "g.total_records", "g.error").
		From("group_results g").
		Join("runs r ON r.id = g.run_id").
		Where(sq.Eq{"g.group_name": group}).
		OrderBy("r.seq DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	out := &StoredRanking{Group: group, Entries: []models.RankedEntry{}}
	var ts string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&out.RunID, &out.Source, &ts, &out.TotalRecords, &out.Error)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ranking for %q: %w", group, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if out.GeneratedAt, err = time.Parse(timeLayout, ts); err != nil {
		return nil, fmt.Errorf("run %s: bad timestamp: %w", out.RunID, err)
	}

	q := sq.Select("position", "name", "achievement", "raw_value").
		From("entries").
		Where(sq.Eq{"run_id": out.RunID, "group_name": group}).
		OrderBy("position")
	if top > 0 {
		q = q.Limit(uint64(top))
	}
	query, args, err = q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e   models.RankedEntry
			raw string
		)
		if err := rows.Scan(&e.Position, &e.Name, &e.AchievementPercent, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &e.RawValue); err != nil {
			return nil, fmt.Errorf("decode raw value: %w", err)
		}
		out.Entries = append(out.Entries, e)
	}
	return out, rows.Err()
}

func execBuilder(ctx context.Context, tx *sql.Tx, b sq.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
