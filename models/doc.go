// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitReadingRequest: userId, systolic, diastolic, feeling (optional)

# Response Types

Types for JSON responses:

  - SubmitReadingResponse: message, newEntry
  - ReadingEntry: id, systolic, diastolic, feeling, date, ago, assessment
  - StatsResponse: avgSys, avgDia, count
  - DeleteReadingResponse: message
  - ErrorResponse: error, message

# Domain Types

  - PressureReading: one recorded systolic/diastolic measurement for a
    user at a point in time. Append/delete only, never updated in place.

# Constants

Assessment categories:

	CategoryNone       = ""
	CategoryLow        = "Low"
	CategoryNormal     = "Normal"
	CategoryHighNormal = "High-Normal"
	CategoryElevated   = "Elevated"
	CategoryHigh       = "High"

Database types:

	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
*/
package models
