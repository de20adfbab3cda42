package library

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	cover_color TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'reading',
	rating      INTEGER NOT NULL DEFAULT 0,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_category ON records(category);
`

// Store persists reading records in SQLite.
type Store struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (or creates) the reading-log database at path and bootstraps
// the schema. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("data path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// List returns every record ordered by creation time.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, category, cover_color, status, rating, notes, created_at, updated_at
		FROM records ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created, updated int64
		if err := rows.Scan(&r.ID, &r.Title, &r.Author, &r.Category, &r.CoverColor, &r.Status, &r.Rating, &r.Notes, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.CreatedAt = fromMillis(created)
		r.UpdatedAt = fromMillis(updated)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Get fetches a single record by id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	var r Record
	var created, updated int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, category, cover_color, status, rating, notes, created_at, updated_at
		FROM records WHERE id = ?`, id).
		Scan(&r.ID, &r.Title, &r.Author, &r.Category, &r.CoverColor, &r.Status, &r.Rating, &r.Notes, &created, &updated)
	if err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	r.CreatedAt = fromMillis(created)
	r.UpdatedAt = fromMillis(updated)
	return r, nil
}

// Add inserts a record. A missing ID is generated, a missing status
// defaults to reading, and timestamps are stamped here.
func (s *Store) Add(ctx context.Context, r Record) (Record, error) {
	if strings.TrimSpace(r.Title) == "" {
		return Record{}, fmt.Errorf("title is required")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusReading
	}
	now := time.Now()
	r.CreatedAt = now.UTC()
	r.UpdatedAt = now.UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, title, author, category, cover_color, status, rating, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Author, r.Category, r.CoverColor, r.Status, r.Rating, r.Notes, toMillis(r.CreatedAt), toMillis(r.UpdatedAt))
	if err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}
	return r, nil
}

// Update rewrites an existing record's editable fields.
func (s *Store) Update(ctx context.Context, r Record) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("record id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE records SET title = ?, author = ?, category = ?, cover_color = ?, status = ?, rating = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		r.Title, r.Author, r.Category, r.CoverColor, r.Status, r.Rating, r.Notes, toMillis(time.Now()), r.ID)
	if err != nil {
		return fmt.Errorf("update record %s: %w", r.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update record %s: %w", r.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("record %s not found", r.ID)
	}
	return nil
}

// Delete removes a record. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

// MarkFinished flips a record to finished and stores the rating.
func (s *Store) MarkFinished(ctx context.Context, id string, rating int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE records SET status = ?, rating = ?, updated_at = ? WHERE id = ?`,
		StatusFinished, rating, toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("mark finished %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark finished %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("record %s not found", id)
	}
	return nil
}

// CountByCategory tallies records per category. Records without a category
// are counted under the empty string; the caller decides how to label them.
func (s *Store) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM records GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}
	return counts, nil
}

// Poll assembles a snapshot of records and category counts in one pass.
func (s *Store) Poll(ctx context.Context) (Snapshot, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	counts, err := s.CountByCategory(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Records: records, Counts: counts}, nil
}
