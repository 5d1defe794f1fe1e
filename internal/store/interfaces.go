// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the client's durable state: a local SQLite database
// holding the one value that must survive a restart, the session token.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository persists the bearer token under a single fixed key.
type TokenRepository interface {
	// GetToken returns the persisted token, or [ErrTokenNotFound].
	GetToken(ctx context.Context) (string, error)

	// SaveToken stores token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes the persisted token. Deleting an absent token is
	// not an error.
	DeleteToken(ctx context.Context) error
}
