// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"

	"github.com/danielhkuo/pressure-log/models"
)

// Summary holds the integer averages over a window of readings.
type Summary struct {
	AvgSystolic  int
	AvgDiastolic int
	Count        int
}

// Aggregate computes the arithmetic mean systolic/diastolic over the given
// readings. Order-insensitive, no I/O. Empty input yields all zeros.
// Averages round half away from zero, which matches what the clients
// display for these always-positive values.
func Aggregate(readings []models.PressureReading) Summary {
	count := len(readings)
	if count == 0 {
		return Summary{}
	}

	var totalSys, totalDia int
	for _, r := range readings {
		totalSys += r.Systolic
		totalDia += r.Diastolic
	}

	return Summary{
		AvgSystolic:  int(math.Round(float64(totalSys) / float64(count))),
		AvgDiastolic: int(math.Round(float64(totalDia) / float64(count))),
		Count:        count,
	}
}
