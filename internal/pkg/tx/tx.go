// Package tx carries an open database transaction through a context.
package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type key string

const KeyTx key = "tx"

// Querier is the part of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func WithTx(ctx context.Context, t *sqlx.Tx) context.Context {
	return context.WithValue(ctx, KeyTx, t)
}

func FromContext(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(KeyTx).(*sqlx.Tx)
	return t, ok && t != nil
}
