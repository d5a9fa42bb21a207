package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SnapshotTx es lo que usan las escrituras de la réplica; pgx.Tx lo cumple.
type SnapshotTx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var _ SnapshotTx = (pgx.Tx)(nil)

// SnapshotWriter vuelca una instantánea del backend en la réplica local.
type SnapshotWriter struct {
	tx       *TxRunner
	orders   *OrderRepo
	products *ProductRepo
	expenses *ExpenseRepo
}

// NewSnapshotWriter construye el escritor sobre el pool.
func NewSnapshotWriter(pool *pgxpool.Pool) *SnapshotWriter {
	return &SnapshotWriter{
		tx:       NewTxRunner(pool),
		orders:   NewOrderRepository(pool),
		products: NewProductRepository(pool),
		expenses: NewExpenseRepository(pool),
	}
}

// WriteSnapshot reemplaza la réplica por la instantánea en una única transacción.
// Lo que el backend ya no devuelve se borra.
func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, records []entity.Order, products []entity.Product, expenses []entity.Expense) error {
	err := w.tx.Run(ctx, func(tx pgx.Tx) error {
		return w.write(ctx, tx, records, products, expenses)
	})
	if err != nil {
		return fmt.Errorf("postgres.WriteSnapshot: %w", err)
	}
	return nil
}

func (w *SnapshotWriter) write(ctx context.Context, tx SnapshotTx, records []entity.Order, products []entity.Product, expenses []entity.Expense) error {
	if err := w.orders.Replace(ctx, tx, records); err != nil {
		return err
	}
	if err := w.products.Replace(ctx, tx, products); err != nil {
		return err
	}
	return w.expenses.Replace(ctx, tx, expenses)
}
