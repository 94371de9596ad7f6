package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Initialize the Postgres venues schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS venues (
		venue_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		venue_type TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		affinity DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION,
		popularity DOUBLE PRECISION,
		keywords TEXT
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create venues table: %w", err)
	}

	index := `
	CREATE INDEX IF NOT EXISTS idx_venues_affinity
	ON venues(affinity DESC);
	`
	if _, err := db.Exec(index); err != nil {
		return fmt.Errorf("init postgres schema: create affinity index: %w", err)
	}

	return nil
}

// Populate the Postgres venues table from the same seed file format as the
// SQLite path, using an upsert so reseeding is idempotent.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadVenueSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed venues (postgres): %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed venues (postgres): begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO venues (
		venue_id, name, venue_type, lat, lng, affinity, rating, popularity, keywords
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (venue_id) DO UPDATE SET
		name = EXCLUDED.name,
		venue_type = EXCLUDED.venue_type,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		affinity = EXCLUDED.affinity,
		rating = EXCLUDED.rating,
		popularity = EXCLUDED.popularity,
		keywords = EXCLUDED.keywords;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed venues (postgres): prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, v := range rows {
		var keywordsJSON any
		if len(v.Keywords) > 0 {
			b, err := json.Marshal(v.Keywords)
			if err != nil {
				return fmt.Errorf("seed venues (postgres): marshal keywords for %q: %w", v.VenueID, err)
			}
			keywordsJSON = string(b)
		}

		if _, err := stmt.Exec(
			v.VenueID, v.Name, v.Type,
			nullable(v.Lat), nullable(v.Lng),
			v.Affinity, nullable(v.Rating), nullable(v.Popularity),
			keywordsJSON,
		); err != nil {
			return fmt.Errorf("seed venues (postgres): upsert venue_id=%q: %w", v.VenueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed venues (postgres): commit tx: %w", err)
	}

	return nil
}
