// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AllowedOrigins: CORS origin allow-list (default: empty, no cross-origin)
  - TelegramBotToken / TelegramChatID: alert channel (optional, both or none)
  - DisplayTZ: timezone for formatted dates (default: Asia/Bangkok)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-origins        Comma-separated origin allow-list
	-tz             Display timezone
	-telegram-token Telegram bot token
	-telegram-chat  Telegram chat ID

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	ALLOWED_ORIGINS    → -origins
	DISPLAY_TZ         → -tz
	TELEGRAM_BOT_TOKEN → -telegram-token
	TELEGRAM_CHAT_ID   → -telegram-chat

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - TELEGRAM_CHAT_ID must be numeric and must accompany TELEGRAM_BOT_TOKEN

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(st, notifier, cfg)
*/
package cliparse
