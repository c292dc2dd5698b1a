// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify sends best-effort alerts about new readings.

# Contract

	type Notifier interface {
		Announce(ctx, reading, category) error
	}

The submit handler fires Announce on its own goroutine after the store
write succeeds. A failed or slow announcement never fails or delays the
HTTP response; the caller logs the error and moves on.

# Implementations

  - Telegram: posts a one-line summary of the reading (values, assessment
    category, feeling) to a configured chat via the Bot API.
  - Nop: used when TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID are not set.

Construction:

	n, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
*/
package notify
