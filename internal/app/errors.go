// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the result type every client operation returns and the
// classification of failures into user-facing messages.
//
// Operations never let an error escape to the views. They return a
// [Result] whose [Error] carries a [Kind] and a message ready for display.
package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/validators"
)

// Kind classifies a failure.
type Kind string

const (
	// KindValidation is a local input problem detected before any request.
	KindValidation Kind = "validation"
	// KindServer is a non-2xx response other than 401.
	KindServer Kind = "server"
	// KindConnectivity is a request that received no response.
	KindConnectivity Kind = "connectivity"
	// KindUnauthorized is a 401 response; the session has already ended.
	KindUnauthorized Kind = "unauthorized"
	// KindUnknown is any other failure.
	KindUnknown Kind = "unknown"
)

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status for server and unauthorized failures.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Describe classifies err with two-tier message selection: the message the
// backend put in the response body, else fallback. A nil err yields nil.
func Describe(err error, fallback string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var respErr *adapter.ResponseError
	switch {
	case errors.As(err, &respErr):
		msg := respErr.Message
		if msg == "" {
			msg = fallback
		}
		return &Error{Kind: responseKind(respErr.StatusCode), Message: msg, Status: respErr.StatusCode, Err: err}
	case errors.Is(err, adapter.ErrNoResponse):
		return &Error{Kind: KindConnectivity, Message: fallback, Err: err}
	default:
		return &Error{Kind: KindUnknown, Message: fallback, Err: err}
	}
}

// DescribeDetailed classifies err with the four tiers used by registration:
// the body message; else "Error <status>" for a response without a usable
// body; else the connectivity message when no response arrived; else
// fallback.
func DescribeDetailed(err error, fallback string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var respErr *adapter.ResponseError
	switch {
	case errors.As(err, &respErr):
		msg := respErr.Message
		if msg == "" {
			msg = fmt.Sprintf(MsgServerStatus, respErr.StatusCode)
		}
		return &Error{Kind: responseKind(respErr.StatusCode), Message: msg, Status: respErr.StatusCode, Err: err}
	case errors.Is(err, adapter.ErrNoResponse):
		return &Error{Kind: KindConnectivity, Message: MsgNoConnection, Err: err}
	default:
		return &Error{Kind: KindUnknown, Message: fallback, Err: err}
	}
}

func responseKind(status int) Kind {
	if status == http.StatusUnauthorized {
		return KindUnauthorized
	}
	return KindServer
}

// validationMessages maps validator sentinels to the text the views show.
var validationMessages = []struct {
	err error
	msg string
}{
	{validators.ErrPasswordMismatch, MsgPasswordMismatch},
	{validators.ErrPasswordTooShort, MsgPasswordTooShort},
	{validators.ErrPasswordRequired, MsgPasswordRequired},
	{validators.ErrNameRequired, MsgNameRequired},
	{validators.ErrEmailRequired, MsgEmailRequired},
	{validators.ErrInvalidEmail, MsgInvalidEmail},
	{validators.ErrInvalidAge, MsgInvalidAge},
	{validators.ErrInvalidHeight, MsgInvalidHeight},
	{validators.ErrInvalidWeight, MsgInvalidWeight},
	{validators.ErrInvalidGender, MsgInvalidGender},
	{validators.ErrActivityLevelRequired, MsgActivityRequired},
	{validators.ErrGoalRequired, MsgGoalRequired},
	{validators.ErrInvalidDuration, MsgInvalidDuration},
	{validators.ErrInvalidDailyCalories, MsgInvalidCalories},
	{validators.ErrInvalidDate, MsgInvalidDate},
	{validators.ErrNoMeasurements, MsgNoMeasurements},
	{validators.ErrNegativeMeasurement, MsgNegativeMeasurement},
	{validators.ErrEmptyMessage, MsgEmptyMessage},
	{validators.ErrInvalidProgress, MsgInvalidProgress},
	{validators.ErrPlanNameRequired, MsgPlanNameRequired},
}

// Validation wraps a validator error as a KindValidation failure with the
// matching user message. A nil err yields nil.
func Validation(err error) *Error {
	if err == nil {
		return nil
	}

	for _, m := range validationMessages {
		if errors.Is(err, m.err) {
			return &Error{Kind: KindValidation, Message: m.msg, Err: err}
		}
	}

	return &Error{Kind: KindValidation, Message: MsgInvalidData, Err: err}
}

// Unknown wraps err as a KindUnknown failure with message.
func Unknown(err error, message string) *Error {
	return &Error{Kind: KindUnknown, Message: message, Err: err}
}
