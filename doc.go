// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pressure Log API server.

Pressure Log is a small family blood-pressure tracker: named profiles
record systolic/diastolic readings, browse recent history, and get a
rolling 7-day average. New readings can be announced to a Telegram chat.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:pressure.db go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ALLOWED_ORIGINS (-origins): CORS origin allow-list
  - DISPLAY_TZ (-tz): Timezone for formatted dates (default: Asia/Bangkok)
  - TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID: new-reading alerts

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers plus the assessment classifier and
    statistics aggregator
  - store: persistence contract and SQL implementation
  - notify: best-effort Telegram alerts for new readings
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS allow-list, logging, JSON helpers
  - models: request/response/domain types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
