// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema is a single flat collection:

  - pressure_reading: one row per recorded measurement

Rows are append/delete only. The CHECK constraints mirror the write-time
validation: systolic and diastolic are always positive in a stored row.

# Indexes

  - pressure_reading.(user_id, recorded_at): composite index serving the
    newest-first history query and the since-timestamp stats window

The SQL is written to run unchanged on both supported database types
(sqlite and postgres).
*/
package db
