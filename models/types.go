// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Category is the assessment band for a single reading.
type Category string

// Assessment categories, ordered from lowest to highest severity.
// CategoryNone means one of the values was zero and no assessment applies.
const (
	CategoryNone       Category = ""
	CategoryLow        Category = "Low"
	CategoryNormal     Category = "Normal"
	CategoryHighNormal Category = "High-Normal"
	CategoryElevated   Category = "Elevated"
	CategoryHigh       Category = "High"
)

// Request types

type SubmitReadingRequest struct {
	UserID    string  `json:"userId"`
	Systolic  int     `json:"systolic"`
	Diastolic int     `json:"diastolic"`
	Feeling   *string `json:"feeling,omitempty"`
}

// Response types

// ReadingEntry is the wire form of a stored reading. Date is the
// timestamp rendered in the deployment's display timezone; Ago is a
// humanized relative age for list views.
type ReadingEntry struct {
	ID         string   `json:"id"`
	Systolic   int      `json:"systolic"`
	Diastolic  int      `json:"diastolic"`
	Feeling    *string  `json:"feeling,omitempty"`
	Date       string   `json:"date"`
	Ago        string   `json:"ago,omitempty"`
	Assessment Category `json:"assessment,omitempty"`
}

type SubmitReadingResponse struct {
	Message  string       `json:"message"`
	NewEntry ReadingEntry `json:"newEntry"`
}

type StatsResponse struct {
	AvgSys int `json:"avgSys"`
	AvgDia int `json:"avgDia"`
	Count  int `json:"count"`
}

type DeleteReadingResponse struct {
	Message string `json:"message"`
}

// Domain types

// PressureReading is the sole persisted entity. Records are append/delete
// only: numeric fields are never mutated after creation. Feeling is
// optional free text supplied by the client's suggestion list.
type PressureReading struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Feeling   *string   `json:"feeling,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
