// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Pressure readings
CREATE TABLE IF NOT EXISTS pressure_reading (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    systolic INTEGER NOT NULL CHECK (systolic > 0),
    diastolic INTEGER NOT NULL CHECK (diastolic > 0),
    feeling TEXT,
    recorded_at TIMESTAMP NOT NULL
);

-- Composite index backing both per-user queries (newest-first history
-- and the since-timestamp stats window).
CREATE INDEX IF NOT EXISTS idx_pressure_reading_user_time ON pressure_reading(user_id, recorded_at);
`
