// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/glow-up-client/internal/config"
	"github.com/MKhiriev/glow-up-client/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// TokenRepository persists the session token between runs.
	TokenRepository TokenRepository

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "NewClientStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewClientStoragesFromDB(db, logger)
}

// NewClientStoragesFromDB wires the repositories on an already migrated
// connection.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) (*ClientStorages, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDatabase
	}

	return &ClientStorages{
		TokenRepository: NewTokenRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
