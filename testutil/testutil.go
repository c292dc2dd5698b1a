// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/pressure-log/cliparse"
	"github.com/danielhkuo/pressure-log/models"
)

// FakeStore is an in-memory Store implementation for handler tests. Error
// fields can be set to simulate store failures.
type FakeStore struct {
	mu       sync.Mutex
	readings []models.PressureReading
	nextID   int

	AppendErr error
	QueryErr  error
	DeleteErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Append(ctx context.Context, reading models.PressureReading) (string, error) {
	if f.AppendErr != nil {
		return "", f.AppendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	reading.ID = fmt.Sprintf("reading-%d", f.nextID)
	f.readings = append(f.readings, reading)
	return reading.ID, nil
}

func (f *FakeStore) QueryByUser(ctx context.Context, userID string, limit int) ([]models.PressureReading, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.PressureReading{}
	for _, r := range f.readings {
		if r.UserID == userID {
			matched = append(matched, r)
		}
	}

	// Newest first
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *FakeStore) QueryByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PressureReading, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.PressureReading{}
	for _, r := range f.readings {
		if r.UserID == userID && !r.Timestamp.Before(since) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *FakeStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	if f.DeleteErr != nil {
		return false, f.DeleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, r := range f.readings {
		if r.ID == id {
			f.readings = append(f.readings[:i], f.readings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Count reports how many readings the fake store holds.
func (f *FakeStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.readings)
}

// FakeNotifier records announcements and signals each one on Announced, so
// tests can wait for the fire-and-forget goroutine.
type FakeNotifier struct {
	mu        sync.Mutex
	calls     []models.PressureReading
	Announced chan models.Category

	AnnounceErr error
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{Announced: make(chan models.Category, 16)}
}

func (f *FakeNotifier) Announce(ctx context.Context, reading models.PressureReading, category models.Category) error {
	f.mu.Lock()
	f.calls = append(f.calls, reading)
	f.mu.Unlock()

	f.Announced <- category

	return f.AnnounceErr
}

// Calls returns a copy of the announced readings.
func (f *FakeNotifier) Calls() []models.PressureReading {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PressureReading{}, f.calls...)
}

// WaitForAnnouncement blocks until an announcement arrives or the timeout
// elapses.
func (f *FakeNotifier) WaitForAnnouncement(t *testing.T, timeout time.Duration) models.Category {
	t.Helper()

	select {
	case category := <-f.Announced:
		return category
	case <-time.After(timeout):
		t.Fatal("Timed out waiting for notification")
		return models.CategoryNone
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    ":memory:",
		DatabaseType:   models.DatabaseSQLite,
		AllowedOrigins: []string{"http://localhost:5173"},
		DisplayTZ:      "UTC",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
