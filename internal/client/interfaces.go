// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/glow-up-client/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by App. It doubles as the
// navigator the session manager uses when the server ends the session.
type UI interface {
	service.Navigator

	// Run blocks until the user quits, starting on startPage.
	Run(ctx context.Context, startPage string) error
}
