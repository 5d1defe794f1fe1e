// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrTokenNotFound is returned by [TokenRepository.GetToken] when no session
// token is persisted.
var ErrTokenNotFound = errors.New("session token not found")

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrNilDatabase is returned when a storage is built without a connection.
	ErrNilDatabase = errors.New("database connection is nil")
)
