package postgres

import (
	"context"
	"fmt"
)

// TxManager runs units of work in a single transaction carried by the
// context. Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

// NewTxManager creates a TxManager on top of db.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx calls fn inside a Read Committed transaction and commits if fn
// returns nil. An error or panic from fn rolls back; the panic is re-raised.
// A call made while ctx already carries a transaction joins it, so only the
// outermost call commits or rolls back.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
