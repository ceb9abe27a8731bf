// Package repokit holds the seams SQL repos are written against
package repokit

import (
	"context"

	"ingestlab/internal/platform/store"
)

type (
	// Queryer runs statements on a pool or inside a transaction
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can open transactions
	TxRunner = store.TxRunner
)

// Binder binds a domain repo to a Queryer, so one repo type serves pools and transactions
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics on a nil q, a repo without a connection is a wiring bug
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// BindTx runs fn in one transaction with the repo bound to it
func BindTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
