package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVenuesQuery := `
	CREATE TABLE IF NOT EXISTS venues (
		venue_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		venue_type TEXT NOT NULL DEFAULT '',
		lat REAL,
		lng REAL,
		affinity REAL NOT NULL DEFAULT 0,
		rating REAL,
		popularity REAL,
		keywords TEXT
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_venues_affinity
	ON venues(affinity DESC);
	`

	statements := []string{
		createVenuesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VenueSeed struct {
	VenueID    string   `json:"venue_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Affinity   float64  `json:"affinity"`
	Rating     *float64 `json:"rating"`
	Popularity *float64 `json:"popularity"`
	Keywords   []string `json:"keywords"`
}

// loadVenueSeeds reads and validates a venue seed file shared by the
// SQLite and Postgres seeding paths.
func loadVenueSeeds(jsonPath string) ([]VenueSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []VenueSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	rows := make([]VenueSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.VenueID)
		if id == "" {
			return nil, fmt.Errorf("item at index %d: venue_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("item at index %d: name cannot be empty", i+1)
		}

		if item.Affinity < 0 || item.Affinity > 100 {
			return nil, fmt.Errorf("venue_id=%q: affinity %v out of [0,100]", id, item.Affinity)
		}

		item.VenueID = id
		item.Name = name
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the database with venue data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadVenueSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed venues: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed venues: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO venues (
		venue_id,
		name,
		venue_type,
		lat,
		lng,
		affinity,
		rating,
		popularity,
		keywords
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed venues: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range rows {
		var keywordsJSON any
		if len(v.Keywords) > 0 {
			b, err := json.Marshal(v.Keywords)
			if err != nil {
				return fmt.Errorf("seed venues: marshal keywords for %q: %w", v.VenueID, err)
			}
			keywordsJSON = string(b)
		}

		if _, err := stmt.Exec(
			v.VenueID, v.Name, v.Type,
			nullable(v.Lat), nullable(v.Lng),
			v.Affinity, nullable(v.Rating), nullable(v.Popularity),
			keywordsJSON,
		); err != nil {
			return fmt.Errorf("seed venues: insert venue_id=%q: %w", v.VenueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed venues: commit tx: %w", err)
	}

	return nil
}

func nullable(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
