// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pressure-log/models"
)

// SQLStore implements Store on top of database/sql. The same statements
// run on both supported drivers (sqlite and postgres).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(ctx context.Context, reading models.PressureReading) (string, error) {
	id := uuid.NewString()

	var feeling sql.NullString
	if reading.Feeling != nil {
		feeling = sql.NullString{String: *reading.Feeling, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pressure_reading (id, user_id, systolic, diastolic, feeling, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, reading.UserID, reading.Systolic, reading.Diastolic, feeling, reading.Timestamp)
	if err != nil {
		return "", fmt.Errorf("failed to insert reading: %w", err)
	}

	return id, nil
}

func (s *SQLStore) QueryByUser(ctx context.Context, userID string, limit int) ([]models.PressureReading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, systolic, diastolic, feeling, recorded_at
		FROM pressure_reading
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

func (s *SQLStore) QueryByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PressureReading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, systolic, diastolic, feeling, recorded_at
		FROM pressure_reading
		WHERE user_id = $1 AND recorded_at >= $2
	`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

func (s *SQLStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pressure_reading WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reading: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}

func scanReadings(rows *sql.Rows) ([]models.PressureReading, error) {
	readings := []models.PressureReading{}
	for rows.Next() {
		var r models.PressureReading
		var feeling sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.Systolic, &r.Diastolic, &feeling, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		if feeling.Valid {
			r.Feeling = &feeling.String
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate readings: %w", err)
	}

	return readings, nil
}
