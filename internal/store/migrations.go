package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS swimmers (
			id                 TEXT PRIMARY KEY,
			name               TEXT NOT NULL,
			birth_date         TEXT,
			height_cm          REAL,
			weight_kg          REAL,
			resting_hr_bpm     REAL,
			category           TEXT,
			general_goal       TEXT,
			medical_conditions TEXT,
			updated_at         TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id               TEXT PRIMARY KEY,
			swimmer_id       TEXT NOT NULL REFERENCES swimmers(id),
			start_ms         INTEGER NOT NULL,
			kind             TEXT NOT NULL,
			duration_minutes REAL,
			distance_meters  REAL,
			rpe              INTEGER,
			fatigue          TEXT,
			heart_rate       REAL,
			notes            TEXT,
			blocks_json      TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_swimmer_start
			ON sessions(swimmer_id, start_ms DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return nil
}
