// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/danielhkuo/pressure-log/models"
)

// sender is the slice of the Telegram bot API we use. Tests substitute a
// fake.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram announces new readings to a fixed chat.
type Telegram struct {
	s      sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Telegram{s: api, chatID: chatID}, nil
}

func (t *Telegram) Announce(ctx context.Context, reading models.PressureReading, category models.Category) error {
	// The bot API has no context support; honor cancellation before the call
	if err := ctx.Err(); err != nil {
		return err
	}

	text := fmt.Sprintf("New reading for %s: %d/%d mmHg", reading.UserID, reading.Systolic, reading.Diastolic)
	if category != models.CategoryNone {
		text += fmt.Sprintf(" (%s)", category)
	}
	if reading.Feeling != nil && *reading.Feeling != "" {
		text += fmt.Sprintf(" (feeling: %s)", *reading.Feeling)
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.s.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram alert: %w", err)
	}

	return nil
}
