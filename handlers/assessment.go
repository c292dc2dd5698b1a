// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "github.com/danielhkuo/pressure-log/models"

// Classify maps a systolic/diastolic pair to an assessment category.
// Rules are evaluated top to bottom and short-circuit on the first match;
// the order checks the extremes before the moderate ranges. A zero on
// either side means "no data" and yields CategoryNone.
func Classify(systolic, diastolic int) models.Category {
	switch {
	case systolic == 0 || diastolic == 0:
		return models.CategoryNone
	case systolic < 90 || diastolic < 60:
		return models.CategoryLow
	case systolic > 140 || diastolic > 90:
		return models.CategoryHigh
	case systolic >= 130 || diastolic >= 85:
		return models.CategoryElevated
	case systolic >= 120 && diastolic >= 80:
		return models.CategoryHighNormal
	default:
		return models.CategoryNormal
	}
}
