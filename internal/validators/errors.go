// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired          = errors.New("name is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrPasswordRequired      = errors.New("password is required")
	ErrPasswordTooShort      = errors.New("password is too short")
	ErrPasswordMismatch      = errors.New("password confirmation does not match")
	ErrInvalidAge            = errors.New("invalid age")
	ErrInvalidHeight         = errors.New("invalid height")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidGender         = errors.New("invalid gender")
	ErrActivityLevelRequired = errors.New("activity level is required")
	ErrGoalRequired          = errors.New("goal is required")
	ErrInvalidDuration       = errors.New("invalid duration in weeks")
	ErrInvalidDailyCalories  = errors.New("invalid daily calories")
	ErrInvalidDate           = errors.New("invalid date")
	ErrNoMeasurements        = errors.New("at least one measurement is required")
	ErrNegativeMeasurement   = errors.New("measurements cannot be negative")
	ErrEmptyMessage          = errors.New("message is required")
	ErrInvalidProgress       = errors.New("progress must be between 0 and 100")
	ErrPlanNameRequired      = errors.New("plan name is required")
)
