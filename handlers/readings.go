// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pressure-log/cliparse"
	"github.com/danielhkuo/pressure-log/middleware"
	"github.com/danielhkuo/pressure-log/models"
	"github.com/danielhkuo/pressure-log/notify"
	"github.com/danielhkuo/pressure-log/store"
)

const (
	// historyLimit caps ListRecent; the clients render at most this many rows
	historyLimit = 10

	// statsWindowDays is the stats window: all readings since local
	// midnight this many days ago
	statsWindowDays = 7

	// dateLayout renders timestamps in the display timezone, short
	// day/month style like the clients expect
	dateLayout = "02/01/2006 15:04"

	notifyTimeout = 10 * time.Second
)

type ReadingHandler struct {
	store    store.Store
	notifier notify.Notifier
	cfg      cliparse.Config
	loc      *time.Location
	now      func() time.Time
}

func NewReadingHandler(st store.Store, notifier notify.Notifier, cfg cliparse.Config) *ReadingHandler {
	loc, err := time.LoadLocation(cfg.DisplayTZ)
	if err != nil {
		slog.Warn("invalid display timezone, falling back to UTC", "tz", cfg.DisplayTZ, "error", err)
		loc = time.UTC
	}

	return &ReadingHandler{
		store:    st,
		notifier: notifier,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
	}
}

// Submit handles POST /submit
func (h *ReadingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReadingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validation happens before any I/O
	if req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}
	if req.Systolic <= 0 || req.Diastolic <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "systolic and diastolic must be positive")
		return
	}

	// The service stamps the timestamp; it is never client-supplied
	reading := models.PressureReading{
		UserID:    req.UserID,
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		Feeling:   req.Feeling,
		Timestamp: h.now(),
	}

	id, err := h.store.Append(r.Context(), reading)
	if err != nil {
		slog.Error("failed to save reading", "user_id", req.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save reading")
		return
	}
	reading.ID = id

	category := Classify(reading.Systolic, reading.Diastolic)

	slog.Info("reading saved",
		"reading_id", id,
		"user_id", reading.UserID,
		"assessment", string(category),
	)

	// Fire-and-forget: the announcement runs on its own goroutine with its
	// own deadline so a slow or failing sink never delays this response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.Announce(ctx, reading, category); err != nil {
			slog.Warn("reading notification failed", "reading_id", id, "error", err)
		}
	}()

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitReadingResponse{
		Message: "Reading saved",
		NewEntry: models.ReadingEntry{
			ID:         id,
			Systolic:   reading.Systolic,
			Diastolic:  reading.Diastolic,
			Feeling:    reading.Feeling,
			Date:       h.formatDate(reading.Timestamp),
			Assessment: category,
		},
	})
}

// ListRecent handles GET /readings/{userId}
func (h *ReadingHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	readings, err := h.store.QueryByUser(r.Context(), userID, historyLimit)
	if err != nil {
		slog.Error("failed to query readings", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load readings")
		return
	}

	entries := make([]models.ReadingEntry, 0, len(readings))
	for _, reading := range readings {
		entries = append(entries, models.ReadingEntry{
			ID:         reading.ID,
			Systolic:   reading.Systolic,
			Diastolic:  reading.Diastolic,
			Feeling:    reading.Feeling,
			Date:       h.formatDate(reading.Timestamp),
			Ago:        humanize.Time(reading.Timestamp),
			Assessment: Classify(reading.Systolic, reading.Diastolic),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// WeeklyStats handles GET /stats/{userId}
func (h *ReadingHandler) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	readings, err := h.store.QueryByUserSince(r.Context(), userID, h.windowStart())
	if err != nil {
		slog.Error("failed to query stats window", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Failed to compute statistics (check the user_id/recorded_at index)")
		return
	}

	summary := Aggregate(readings)

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		AvgSys: summary.AvgSystolic,
		AvgDia: summary.AvgDiastolic,
		Count:  summary.Count,
	})
}

// Remove handles DELETE /readings/{id}
func (h *ReadingHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	found, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete reading", "reading_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete reading")
		return
	}

	// Deleting an id that is already gone still succeeds from the
	// caller's perspective
	if !found {
		slog.Info("delete requested for missing reading", "reading_id", id)
	} else {
		slog.Info("reading deleted", "reading_id", id)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteReadingResponse{
		Message: "Reading deleted",
	})
}

// windowStart is local midnight statsWindowDays days before now.
func (h *ReadingHandler) windowStart() time.Time {
	year, month, day := h.now().In(h.loc).AddDate(0, 0, -statsWindowDays).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, h.loc)
}

func (h *ReadingHandler) formatDate(ts time.Time) string {
	return ts.In(h.loc).Format(dateLayout)
}
