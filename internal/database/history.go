package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/passmeter/internal/model"
)

// FileName is the database file name inside the data directory.
const FileName = "passmeter.db"

// timestampLayout is fixed width so that stored timestamps sort chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrAuditNotFound is returned when no audit run has the requested ID.
var ErrAuditNotFound = errors.New("audit run not found")

// HistoryDB stores audit summaries.
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file when missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

func (hdb *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audit_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		digest TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		total INTEGER NOT NULL,
		average_score REAL NOT NULL,
		average_entropy REAL NOT NULL,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audit_runs_source ON audit_runs(source);
	CREATE INDEX IF NOT EXISTS idx_audit_runs_timestamp ON audit_runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// AuditRecord is the metadata of a stored audit run, used for listings
// without decoding the full summary.
type AuditRecord struct {
	ID             int64     `json:"id"`
	Source         string    `json:"source"`
	Digest         string    `json:"digest"`
	Timestamp      time.Time `json:"timestamp"`
	Total          int       `json:"total"`
	AverageScore   float64   `json:"average_score"`
	AverageEntropy float64   `json:"average_entropy"`
}

// SaveAudit stores a summary and sets its ID.
func (hdb *HistoryDB) SaveAudit(ctx context.Context, summary *model.AuditSummary) (int64, error) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize audit summary: %w", err)
	}

	startedAt := summary.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	query := `
	INSERT INTO audit_runs (source, digest, timestamp, total, average_score, average_entropy, summary_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		summary.Source,
		summary.Digest,
		startedAt.UTC().Format(timestampLayout),
		summary.Total,
		summary.AverageScore,
		summary.AverageEntropy,
		string(summaryJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save audit summary: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get audit id: %w", err)
	}
	summary.ID = id
	return id, nil
}

// GetAudit returns the summary with the given ID, or ErrAuditNotFound.
func (hdb *HistoryDB) GetAudit(ctx context.Context, id int64) (*model.AuditSummary, error) {
	query := `
	SELECT id, summary_json FROM audit_runs
	WHERE id = ?
	`

	summary, err := scanSummary(hdb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrAuditNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit summary: %w", err)
	}
	return summary, nil
}

// GetLatestAudits returns up to limit summaries for source, newest first.
func (hdb *HistoryDB) GetLatestAudits(ctx context.Context, source string, limit int) ([]*model.AuditSummary, error) {
	query := `
	SELECT id, summary_json FROM audit_runs
	WHERE source = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, source, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit history: %w", err)
	}
	defer rows.Close()

	var summaries []*model.AuditSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read audit summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// ListAudits returns the metadata of every run for source, newest first.
// An empty source lists all runs.
func (hdb *HistoryDB) ListAudits(ctx context.Context, source string) ([]AuditRecord, error) {
	query := `
	SELECT id, source, digest, timestamp, total, average_score, average_entropy
	FROM audit_runs
	WHERE ? = '' OR source = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, source, source)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var rec AuditRecord
		var timestamp string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Digest, &timestamp,
			&rec.Total, &rec.AverageScore, &rec.AverageEntropy); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		rec.Timestamp = parseTimestamp(timestamp)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListSources returns every audited source in alphabetical order.
func (hdb *HistoryDB) ListSources(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT source FROM audit_runs
	ORDER BY source
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, source)
	}
	return sources, rows.Err()
}

// DeleteAudit removes the run with the given ID, or returns ErrAuditNotFound.
func (hdb *HistoryDB) DeleteAudit(ctx context.Context, id int64) error {
	result, err := hdb.db.ExecContext(ctx, "DELETE FROM audit_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrAuditNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*model.AuditSummary, error) {
	var (
		id          int64
		summaryJSON string
	)
	if err := row.Scan(&id, &summaryJSON); err != nil {
		return nil, err
	}

	var summary model.AuditSummary
	if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse audit summary: %w", err)
	}
	summary.ID = id
	return &summary, nil
}

// timestampFormats contains the timestamp formats that may be stored.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
