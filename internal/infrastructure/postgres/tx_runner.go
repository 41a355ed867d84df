package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.NotificationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunNotification ejecuta fn con un NotificationRepository atado a la tx y hace Commit o Rollback.
// La lectura del último NID y la inserción quedan en la misma transacción.
func (r *TxRunner) RunNotification(ctx context.Context, fn func(repo repository.NotificationRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serializa la numeración entre procesos que compartan la base.
	if _, err := tx.Exec(ctx, `LOCK TABLE notification IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return storeErr("lock notification", err)
	}

	if err := fn(NewNotificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}
