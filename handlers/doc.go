// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pressure Log API.

# Handler Type

ReadingHandler carries the injected store, notifier, and config:

	readingHandler := handlers.NewReadingHandler(st, notifier, cfg)

# Reading Lifecycle

A reading has exactly two states, present and deleted:

	POST   /submit             → Submit (validate, stamp time, persist, notify)
	GET    /readings/{userId}  → ListRecent (newest first, ≤10)
	GET    /stats/{userId}     → WeeklyStats (7-day averages)
	DELETE /readings/{id}      → Remove (idempotent from the caller's view)

Validation runs before any I/O; store failures surface as 500 with a
generic message; the new-reading notification is fire-and-forget and can
never fail the submit response.

# Assessment Classifier

The threshold classifier is implemented in assessment.go:

	category := handlers.Classify(systolic, diastolic)

Rules short-circuit top to bottom: zero input → no assessment, then Low,
High, Elevated, High-Normal, Normal.

# Statistics Aggregator

The mean aggregator is implemented in stats.go:

	summary := handlers.Aggregate(readings)

Integer averages, rounded half away from zero; the empty window yields
all zeros. The stats window is all readings since local midnight seven
days ago.
*/
package handlers
