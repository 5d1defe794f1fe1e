// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/glow-up-client/internal/app"
)

// errorText picks the line shown under a form for a failed result.
func errorText(err *app.Error) string {
	if err == nil {
		return ""
	}
	if err.Kind == app.KindUnauthorized {
		return app.MsgSessionExpired
	}
	return err.Message
}

func parseIntField(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func parseFloatField(v string) (float64, bool) {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	if v == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}
