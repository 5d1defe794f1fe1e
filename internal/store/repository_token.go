// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/glow-up-client/internal/logger"
)

type tokenRepository struct {
	db     *DB
	logger *logger.Logger

	now func() time.Time
}

// NewTokenRepository returns the SQLite-backed [TokenRepository].
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *tokenRepository) GetToken(ctx context.Context) (string, error) {
	query, args, err := buildGetStateQuery(tokenKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.GetToken").Msg("failed to read session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if token == "" {
		return "", ErrTokenNotFound
	}

	return token, nil
}

func (r *tokenRepository) SaveToken(ctx context.Context, token string) error {
	query, args, err := buildUpsertStateQuery(tokenKey, token, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.SaveToken").Msg("failed to persist session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) DeleteToken(ctx context.Context) error {
	query, args, err := buildDeleteStateQuery(tokenKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tokenRepository.DeleteToken").Msg("failed to delete session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
