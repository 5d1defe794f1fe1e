// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultAPIURL is the production backend. Override at build time with
// -ldflags "-X github.com/MKhiriev/glow-up-client/internal/config.defaultAPIURL=...".
var defaultAPIURL = "https://glow-up-ai-backend-production.up.railway.app/api"

const (
	defaultRequestTimeout = 30 * time.Second
	defaultLogLevel       = "info"
	appDirName            = "glowup"
)

func defaults() *StructuredConfig {
	dir := appDir()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    defaultAPIURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: filepath.Join(dir, "client.db")},
		},
		Log: Log{
			File:  filepath.Join(dir, "client.log"),
			Level: defaultLogLevel,
		},
	}
}

// appDir returns the per-user directory for client files, falling back to the
// working directory when no config dir can be determined.
func appDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "."
	}
	return filepath.Join(base, appDirName)
}
