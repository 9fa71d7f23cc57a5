// Package store persists incidents in a local SQLite database. Species and
// tag lists are stored as JSON text columns; filtering on them happens with
// LIKE, which is accurate enough for the facet sizes involved.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rpradhan/wildtrace/internal/model"
)

// Store wraps the incidents database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS incidents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT,
			district TEXT,
			description TEXT NOT NULL,
			source TEXT,
			species TEXT NOT NULL DEFAULT '[]',
			tags TEXT NOT NULL DEFAULT '[]',
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_incidents_district ON incidents(district)`,
		`CREATE INDEX IF NOT EXISTS idx_incidents_date ON incidents(date)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Create inserts an incident and returns it with ID and timestamps set.
func (s *Store) Create(ctx context.Context, inc model.Incident) (model.Incident, error) {
	now := time.Now().UTC()
	inc.CreatedAt = now
	inc.UpdatedAt = now

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO incidents (date, district, description, source, species, tags, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inc.Date, inc.District, inc.Description, inc.Source,
		marshalList(inc.Species), marshalList(inc.Tags), inc.Notes,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return model.Incident{}, fmt.Errorf("inserting incident: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Incident{}, fmt.Errorf("reading insert id: %w", err)
	}
	inc.ID = id
	return inc, nil
}

// Get returns the incident with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (model.Incident, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, district, description, source, species, tags, notes, created_at, updated_at
		 FROM incidents WHERE id = ?`, id)

	inc, err := scanIncident(row)
	if err == sql.ErrNoRows {
		return model.Incident{}, fmt.Errorf("incident %d not found", id)
	}
	if err != nil {
		return model.Incident{}, fmt.Errorf("reading incident %d: %w", id, err)
	}
	return inc, nil
}

// Update replaces the mutable fields of an existing incident.
func (s *Store) Update(ctx context.Context, inc model.Incident) (model.Incident, error) {
	inc.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`UPDATE incidents SET date=?, district=?, description=?, source=?, species=?, tags=?, notes=?, updated_at=?
		 WHERE id=?`,
		inc.Date, inc.District, inc.Description, inc.Source,
		marshalList(inc.Species), marshalList(inc.Tags), inc.Notes,
		inc.UpdatedAt.Format(time.RFC3339), inc.ID,
	)
	if err != nil {
		return model.Incident{}, fmt.Errorf("updating incident %d: %w", inc.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Incident{}, fmt.Errorf("incident %d not found", inc.ID)
	}
	return inc, nil
}

// Delete removes an incident.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting incident %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("incident %d not found", id)
	}
	return nil
}

// Filter narrows a List call. Zero values mean "no constraint".
type Filter struct {
	District string
	Species  string
	Tag      string
	DateFrom string
	DateTo   string
	Search   string
	Limit    int
}

// List returns incidents matching the filter, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]model.Incident, error) {
	query := `SELECT id, date, district, description, source, species, tags, notes, created_at, updated_at
		 FROM incidents WHERE 1=1`
	var args []any

	if f.District != "" {
		query += ` AND district = ?`
		args = append(args, f.District)
	}
	if f.Species != "" {
		query += ` AND species LIKE ?`
		args = append(args, `%"`+f.Species+`"%`)
	}
	if f.Tag != "" {
		query += ` AND tags LIKE ?`
		args = append(args, `%"`+f.Tag+`"%`)
	}
	if f.DateFrom != "" {
		query += ` AND date >= ?`
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		query += ` AND date <= ?`
		args = append(args, f.DateTo)
	}
	if f.Search != "" {
		query += ` AND (description LIKE ? OR notes LIKE ?)`
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}

	query += ` ORDER BY date DESC, id DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incidents: %w", err)
	}
	defer rows.Close()

	var incidents []model.Incident
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning incident: %w", err)
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

// SpeciesCounts returns how many incidents mention each species, for the
// filter facets. Counts are computed over the JSON lists in Go since the
// lists are tiny.
func (s *Store) SpeciesCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT species FROM incidents`)
	if err != nil {
		return nil, fmt.Errorf("reading species lists: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning species list: %w", err)
		}
		for _, sp := range unmarshalList(raw) {
			counts[sp]++
		}
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIncident(row scanner) (model.Incident, error) {
	var inc model.Incident
	var species, tags, createdAt, updatedAt string

	err := row.Scan(&inc.ID, &inc.Date, &inc.District, &inc.Description, &inc.Source,
		&species, &tags, &inc.Notes, &createdAt, &updatedAt)
	if err != nil {
		return model.Incident{}, err
	}

	inc.Species = unmarshalList(species)
	inc.Tags = unmarshalList(tags)
	inc.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	inc.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return inc, nil
}

func marshalList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}

func unmarshalList(raw string) []string {
	var list []string
	_ = json.Unmarshal([]byte(raw), &list)
	return list
}
