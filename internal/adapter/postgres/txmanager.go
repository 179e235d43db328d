package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs service callbacks inside one PostgreSQL transaction carried
// by the context. Read Committed is enough: application rows are guarded by
// their version column.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx commits when fn returns nil and rolls back on error or panic; a
// panic is re-raised after the rollback.
//
// A call made with a context that already carries a transaction joins it:
// fn runs in the outer transaction and the outermost call decides the
// outcome.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback must reach the server even when ctx is already cancelled.
	rollback := func() error { return tx.Rollback(context.WithoutCancel(ctx)) }

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %w)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
