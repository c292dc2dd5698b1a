// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"

	"github.com/danielhkuo/pressure-log/models"
)

// Notifier announces a freshly stored reading to an external channel.
// Callers treat it as best-effort: errors are logged and dropped, never
// surfaced to the request that triggered the announcement.
type Notifier interface {
	Announce(ctx context.Context, reading models.PressureReading, category models.Category) error
}

// Nop is the Notifier used when no alert channel is configured.
type Nop struct{}

func (Nop) Announce(ctx context.Context, reading models.PressureReading, category models.Category) error {
	return nil
}
