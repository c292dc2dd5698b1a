// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/pressure-log/models"
)

// Store is the persistence contract the handlers depend on. It is
// constructed once at process start and injected, so tests can substitute
// an in-memory implementation.
type Store interface {
	// Append inserts a new reading and returns the store-assigned id.
	// It never overwrites or merges with prior records.
	Append(ctx context.Context, reading models.PressureReading) (string, error)

	// QueryByUser returns at most limit readings for the user, newest
	// first. An empty slice (not an error) when none exist.
	QueryByUser(ctx context.Context, userID string, limit int) ([]models.PressureReading, error)

	// QueryByUserSince returns all readings for the user recorded at or
	// after since, in no particular order.
	QueryByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PressureReading, error)

	// DeleteByID permanently removes a reading. A missing id is reported
	// via found=false, not an error.
	DeleteByID(ctx context.Context, id string) (found bool, err error)
}
