// SQLite journal lifecycle and invocation persistence.
// Implements: prd002-journal-backend R2 (Journal interface), R3 (schema),
//
//	R4 (JSONL source of truth), R5 (startup loading);
//	prd006-configuration-directories R2 (DataDir creation).
package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

// Compile-time interface check: Journal must implement types.Journal.
var _ types.Journal = (*Journal)(nil)

// createdAtFormat is RFC 3339 with fixed-width nanoseconds. The width is
// load-bearing: created_at values are TEXT and must sort lexically in time
// order, which truncated fractional seconds would break.
const createdAtFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Journal implements types.Journal using SQLite as the query engine and a
// JSONL file as the source of truth. The JSONL file survives across
// attachments; the SQLite database is rebuilt from it on every Attach.
type Journal struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewJournal creates a new journal instance. The journal is not attached;
// call Attach with a Config to initialize.
func NewJournal() *Journal {
	return &Journal{}
}

// Attach initializes the journal with the given configuration. Creates
// DataDir if it does not exist, initializes the SQLite schema, and loads
// invocations.jsonl into SQLite.
// Returns ErrAlreadyAttached if already attached.
func (j *Journal) Attach(config types.Config) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// Remove any existing database file; the JSONL file is the source of
	// truth and the schema is rebuilt fresh on each attach (R5.1).
	dbPath := filepath.Join(dataDir, "journal.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if _, err := db.Exec(createInvocations); err != nil {
		db.Close()
		return err
	}

	j.db = db
	j.config = config
	j.config.DataDir = dataDir

	// Create invocations.jsonl if absent (R4.4), then load it (R5.2).
	if err := j.initJSONLFile(); err != nil {
		db.Close()
		return err
	}
	if err := j.loadJSONL(); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	j.attached = true
	return nil
}

// Detach releases database resources. Idempotent: detaching a detached
// journal succeeds.
func (j *Journal) Detach() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return nil
	}
	j.attached = false

	if j.db != nil {
		if err := j.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		j.db = nil
	}
	return nil
}

// Record persists one handler invocation. Generates a UUID v7 invocation ID,
// inserts the row into SQLite, and rewrites invocations.jsonl atomically.
// Returns the generated ID.
func (j *Journal) Record(handler string, env types.Envelope) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return "", types.ErrJournalDetached
	}
	if err := env.Validate(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}

	dataText, err := json.Marshal(env.Data)
	if err != nil {
		return "", fmt.Errorf("encoding invocation data: %w", err)
	}

	now := time.Now().UTC()
	_, err = j.db.Exec(
		"INSERT INTO invocations (invocation_id, handler, status, timestamp, data, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id.String(), handler, env.Status, env.Timestamp, string(dataText), now.Format(createdAtFormat),
	)
	if err != nil {
		return "", fmt.Errorf("inserting invocation: %w", err)
	}

	if err := j.persistJSONL(); err != nil {
		// The JSONL file is the source of truth: a row it doesn't have must
		// not be visible in SQLite either.
		_, _ = j.db.Exec("DELETE FROM invocations WHERE invocation_id = ?", id.String())
		return "", fmt.Errorf("persisting invocations.jsonl: %w", err)
	}
	return id.String(), nil
}

// Get retrieves an invocation by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if no row exists.
func (j *Journal) Get(id string) (*types.Invocation, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	if !j.attached {
		return nil, types.ErrJournalDetached
	}

	row := j.db.QueryRow(
		"SELECT invocation_id, handler, status, timestamp, data, created_at FROM invocations WHERE invocation_id = ?",
		id,
	)
	inv, err := hydrateInvocation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting invocation %s: %w", id, err)
	}
	return inv, nil
}

// List returns invocations ordered newest first. A limit of zero or less
// returns every invocation.
func (j *Journal) List(limit int) ([]*types.Invocation, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if !j.attached {
		return nil, types.ErrJournalDetached
	}

	// UUID v7 IDs are time-ordered and lexically sortable, so the ID alone
	// gives newest-first ordering without relying on created_at strings.
	query := "SELECT invocation_id, handler, status, timestamp, data, created_at FROM invocations ORDER BY invocation_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invocations: %w", err)
	}
	defer rows.Close()

	var invocations []*types.Invocation
	for rows.Next() {
		inv, err := hydrateInvocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		invocations = append(invocations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invocations: %w", err)
	}
	return invocations, nil
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateInvocation converts a database row into a *types.Invocation.
func hydrateInvocation(s scanner) (*types.Invocation, error) {
	var (
		inv       types.Invocation
		dataText  sql.NullString
		createdAt string
	)
	if err := s.Scan(&inv.InvocationID, &inv.Handler, &inv.Status, &inv.Timestamp, &dataText, &createdAt); err != nil {
		return nil, err
	}

	if dataText.Valid && dataText.String != "" {
		if err := json.Unmarshal([]byte(dataText.String), &inv.Data); err != nil {
			return nil, fmt.Errorf("decoding invocation data: %w", err)
		}
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	inv.CreatedAt = ts
	return &inv, nil
}

// jsonlPath returns the path to invocations.jsonl inside DataDir.
func (j *Journal) jsonlPath() string {
	return filepath.Join(j.config.DataDir, invocationsFile)
}

// initJSONLFile creates an empty invocations.jsonl if the file does not
// exist (prd002-journal-backend R4.4).
func (j *Journal) initJSONLFile() error {
	path := j.jsonlPath()
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return os.WriteFile(path, nil, 0o644)
}

// loadJSONL reads invocations.jsonl and inserts the records into SQLite.
// Loading is transactional: all succeed or the database remains empty
// (prd002-journal-backend R5.3). Malformed lines are skipped; unknown fields
// in records are silently ignored.
func (j *Journal) loadJSONL() error {
	records, err := readJSONL(j.jsonlPath())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		var row invocationJSON
		if err := json.Unmarshal(rec, &row); err != nil {
			// Structurally invalid record; skip like a malformed line.
			continue
		}
		dataText, err := json.Marshal(row.Data)
		if err != nil {
			return fmt.Errorf("re-encoding record data: %w", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO invocations (invocation_id, handler, status, timestamp, data, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			row.InvocationID, row.Handler, row.Status, row.Timestamp, string(dataText), row.CreatedAt,
		); err != nil {
			return fmt.Errorf("loading invocation %s: %w", row.InvocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// persistJSONL writes all invocations to invocations.jsonl atomically.
// Caller must hold the write lock. Ordering is oldest first so appended
// history reads naturally.
func (j *Journal) persistJSONL() error {
	rows, err := j.db.Query(
		"SELECT invocation_id, handler, status, timestamp, data, created_at FROM invocations ORDER BY invocation_id ASC",
	)
	if err != nil {
		return fmt.Errorf("querying invocations: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var (
			row      invocationJSON
			dataText sql.NullString
		)
		if err := rows.Scan(&row.InvocationID, &row.Handler, &row.Status, &row.Timestamp, &dataText, &row.CreatedAt); err != nil {
			return fmt.Errorf("scanning invocation: %w", err)
		}
		if dataText.Valid && dataText.String != "" {
			if err := json.Unmarshal([]byte(dataText.String), &row.Data); err != nil {
				return fmt.Errorf("decoding invocation data: %w", err)
			}
		}
		rec, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating invocations: %w", err)
	}

	return writeJSONL(j.jsonlPath(), records)
}
