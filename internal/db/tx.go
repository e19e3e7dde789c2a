// Package db holds small helpers shared by the SQLite-backed stores.
package db

import (
	"context"
	"database/sql"
	"strings"
)

// WithTx runs fn in a transaction, committing only when fn succeeds.
func WithTx(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Nullable stores v, or NULL when v is the zero value.
func Nullable[T comparable](v T) sql.Null[T] {
	var zero T
	return sql.Null[T]{V: v, Valid: v != zero}
}

// Multi-valued columns (artists) hold their values joined by the ASCII
// unit separator, which never occurs in tags.
const listSep = "\x1f"

func JoinList(values []string) string { return strings.Join(values, listSep) }

// SplitList reverses JoinList. The empty string is an empty list.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}
