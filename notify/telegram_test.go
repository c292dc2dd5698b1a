// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/danielhkuo/pressure-log/models"
)

type fakeSender struct {
	sent    []tgbotapi.Chattable
	sendErr error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func testReading(feeling string) models.PressureReading {
	r := models.PressureReading{
		ID:        "abc",
		UserID:    "Pad",
		Systolic:  150,
		Diastolic: 95,
		Timestamp: time.Now(),
	}
	if feeling != "" {
		r.Feeling = &feeling
	}
	return r
}

func TestAnnounceMessageText(t *testing.T) {
	f := &fakeSender{}
	tg := &Telegram{s: f, chatID: 42}

	err := tg.Announce(context.Background(), testReading("dizzy"), models.CategoryHigh)
	if err != nil {
		t.Fatalf("Announce failed: %v", err)
	}

	if len(f.sent) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(f.sent))
	}

	msg, ok := f.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("Expected MessageConfig, got %T", f.sent[0])
	}
	if msg.ChatID != 42 {
		t.Errorf("Expected chat id 42, got %d", msg.ChatID)
	}
	for _, want := range []string{"Pad", "150/95", "High", "dizzy"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("Expected message to contain %q, got %q", want, msg.Text)
		}
	}
}

func TestAnnounceOmitsEmptyCategory(t *testing.T) {
	f := &fakeSender{}
	tg := &Telegram{s: f, chatID: 42}

	if err := tg.Announce(context.Background(), testReading(""), models.CategoryNone); err != nil {
		t.Fatalf("Announce failed: %v", err)
	}

	msg := f.sent[0].(tgbotapi.MessageConfig)
	if strings.Contains(msg.Text, "(") {
		t.Errorf("Expected no category or feeling suffix, got %q", msg.Text)
	}
}

func TestAnnounceSendError(t *testing.T) {
	f := &fakeSender{sendErr: errors.New("telegram down")}
	tg := &Telegram{s: f, chatID: 42}

	err := tg.Announce(context.Background(), testReading(""), models.CategoryNormal)
	if err == nil {
		t.Error("Expected error when send fails")
	}
}

func TestAnnounceHonorsCancelledContext(t *testing.T) {
	f := &fakeSender{}
	tg := &Telegram{s: f, chatID: 42}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tg.Announce(ctx, testReading(""), models.CategoryNormal); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if len(f.sent) != 0 {
		t.Errorf("Expected no send after cancellation, got %d", len(f.sent))
	}
}

func TestNopNotifier(t *testing.T) {
	if err := (Nop{}).Announce(context.Background(), testReading(""), models.CategoryHigh); err != nil {
		t.Errorf("Nop notifier returned error: %v", err)
	}
}
