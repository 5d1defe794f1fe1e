// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/glow-up-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldCurrentPassword      = "current_password"
	FieldAge                  = "age"
	FieldGender               = "gender"
	FieldHeight               = "height"
	FieldWeight               = "weight"
	FieldActivityLevel        = "activity_level"
	FieldFitnessGoal          = "fitness_goal"
	FieldGoal                 = "goal"
	FieldDurationWeeks        = "duration_weeks"
	FieldDailyCalories        = "daily_calories"
	FieldDate                 = "date"
	FieldMeasurements         = "measurements"
	FieldMessage              = "message"
	FieldProgress             = "progress"
)

// Limits mirrored from the web client's form controls.
const (
	MinPasswordLength = 6
	MinAge            = 13
	MaxAge            = 100
	MinHeight         = 100.0
	MaxHeight         = 250.0
	MinWeight         = 30.0
	MaxWeight         = 300.0
	MinWeeks          = 1
	MaxWeeks          = 52
	MaxDailyCalories  = 10000
	MinProgress       = 0
	MaxProgress       = 100

	ProgressDateLayout = time.DateOnly
)

var allowedGenders = []string{"male", "female", "other"}

// FormValidator implements Validator for every form the client submits:
// RegisterForm, LoginRequest, ChangePasswordForm, User (profile edit),
// CalorieRequest, ProgressEntryRequest, WorkoutPlan, NutritionPlan,
// WorkoutProgressRequest, WorkoutGenerationRequest,
// NutritionGenerationRequest and ChatRequest.
// Value and pointer forms are accepted.
type FormValidator struct {
}

// NewFormValidator constructs a FormValidator and returns it as Validator.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for unknown types and ErrUnknownField for a field name the type does not
// have. With no fields a default set per type is validated, in the order the
// views show the fields.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.ChangePasswordForm:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordForm:
		return v.validateChangePassword(*value, fields...)
	case models.ProfileUpdate:
		return v.validateProfile(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfile(*value, fields...)
	case models.CalorieRequest:
		return v.validateCalorieRequest(value, fields...)
	case *models.CalorieRequest:
		return v.validateCalorieRequest(*value, fields...)
	case models.ProgressEntryRequest:
		return v.validateProgressEntry(value, fields...)
	case *models.ProgressEntryRequest:
		return v.validateProgressEntry(*value, fields...)
	case models.WorkoutPlan:
		return v.validateWorkoutPlan(value, fields...)
	case *models.WorkoutPlan:
		return v.validateWorkoutPlan(*value, fields...)
	case models.NutritionPlan:
		return v.validateNutritionPlan(value, fields...)
	case *models.NutritionPlan:
		return v.validateNutritionPlan(*value, fields...)
	case models.WorkoutProgressRequest:
		return v.validateWorkoutProgress(value, fields...)
	case *models.WorkoutProgressRequest:
		return v.validateWorkoutProgress(*value, fields...)
	case models.WorkoutGenerationRequest:
		return v.validateWorkoutGeneration(value, fields...)
	case *models.WorkoutGenerationRequest:
		return v.validateWorkoutGeneration(*value, fields...)
	case models.NutritionGenerationRequest:
		return v.validateNutritionGeneration(value, fields...)
	case *models.NutritionGenerationRequest:
		return v.validateNutritionGeneration(*value, fields...)
	case models.ChatRequest:
		return v.validateChat(value, fields...)
	case *models.ChatRequest:
		return v.validateChat(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegisterForm(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPasswordConfirmation, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPasswordConfirmation:
			if form.Password != form.PasswordConfirmation {
				return ErrPasswordMismatch
			}
		case FieldPassword:
			if err := validatePassword(form.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			// length is not checked: accounts may predate the minimum
			if request.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateChangePassword(form models.ChangePasswordForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldPasswordConfirmation, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if form.CurrentPassword == "" {
				return ErrPasswordRequired
			}
		case FieldPasswordConfirmation:
			if form.NewPassword != form.NewPasswordConfirm {
				return ErrPasswordMismatch
			}
		case FieldPassword:
			if err := validatePassword(form.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfile checks a profile edit. Zero values clear the field and are
// accepted.
func (v *FormValidator) validateProfile(user models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAge, FieldGender, FieldHeight, FieldWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrNameRequired
			}
		case FieldAge:
			if user.Age != 0 && (user.Age < MinAge || user.Age > MaxAge) {
				return ErrInvalidAge
			}
		case FieldGender:
			if user.Gender != "" && !containsFold(allowedGenders, user.Gender) {
				return ErrInvalidGender
			}
		case FieldHeight:
			if user.Height != 0 && (user.Height < MinHeight || user.Height > MaxHeight) {
				return ErrInvalidHeight
			}
		case FieldWeight:
			if user.Weight != 0 && (user.Weight < MinWeight || user.Weight > MaxWeight) {
				return ErrInvalidWeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateCalorieRequest(request models.CalorieRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAge, FieldGender, FieldHeight, FieldWeight, FieldActivityLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldAge:
			if request.Age <= 0 {
				return ErrInvalidAge
			}
		case FieldGender:
			if request.Gender != "male" && request.Gender != "female" {
				return ErrInvalidGender
			}
		case FieldHeight:
			if request.Height <= 0 {
				return ErrInvalidHeight
			}
		case FieldWeight:
			if request.Weight <= 0 {
				return ErrInvalidWeight
			}
		case FieldActivityLevel:
			if strings.TrimSpace(request.ActivityLevel) == "" {
				return ErrActivityLevelRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateProgressEntry(request models.ProgressEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldMeasurements}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if _, err := time.Parse(ProgressDateLayout, request.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldMeasurements:
			if !request.HasMeasurement() {
				return ErrNoMeasurements
			}
			for _, m := range []float64{
				request.Weight, request.BodyFat, request.MuscleMass,
				request.Chest, request.Waist, request.Hips, request.Arms, request.Thighs,
			} {
				if m < 0 {
					return ErrNegativeMeasurement
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateWorkoutPlan(plan models.WorkoutPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDurationWeeks}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(plan.Name) == "" {
				return ErrPlanNameRequired
			}
		case FieldDurationWeeks:
			if plan.DurationWeeks != 0 && (plan.DurationWeeks < MinWeeks || plan.DurationWeeks > MaxWeeks) {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNutritionPlan accepts an unset calorie target; the backend fills it
// in for generated plans.
func (v *FormValidator) validateNutritionPlan(plan models.NutritionPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDailyCalories}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(plan.Name) == "" {
				return ErrPlanNameRequired
			}
		case FieldDailyCalories:
			if plan.DailyCalories < 0 || plan.DailyCalories > MaxDailyCalories {
				return ErrInvalidDailyCalories
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateWorkoutProgress(request models.WorkoutProgressRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProgress}
	}

	for _, f := range fields {
		switch f {
		case FieldProgress:
			if request.Progress < MinProgress || request.Progress > MaxProgress {
				return ErrInvalidProgress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateWorkoutGeneration(request models.WorkoutGenerationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFitnessGoal, FieldActivityLevel, FieldDurationWeeks}
	}

	for _, f := range fields {
		switch f {
		case FieldFitnessGoal:
			if strings.TrimSpace(request.FitnessGoal) == "" {
				return ErrGoalRequired
			}
		case FieldActivityLevel:
			if strings.TrimSpace(request.ActivityLevel) == "" {
				return ErrActivityLevelRequired
			}
		case FieldDurationWeeks:
			if request.DurationWeeks < MinWeeks || request.DurationWeeks > MaxWeeks {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateNutritionGeneration(request models.NutritionGenerationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGoal, FieldDailyCalories}
	}

	for _, f := range fields {
		switch f {
		case FieldGoal:
			if strings.TrimSpace(request.Goal) == "" {
				return ErrGoalRequired
			}
		case FieldDailyCalories:
			if request.DailyCalories <= 0 || request.DailyCalories > MaxDailyCalories {
				return ErrInvalidDailyCalories
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateChat(request models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(request.Message) == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
