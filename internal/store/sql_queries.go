// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	clientStateTable = "client_state"
	tokenKey         = "token"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetStateQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(clientStateTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertStateQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(clientStateTable).
		Columns("name", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return psql.
		Delete(clientStateTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}
