package refresh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// SnapshotSink recibe la instantánea completa del backend.
type SnapshotSink interface {
	WriteSnapshot(ctx context.Context, records []entity.Order, products []entity.Product, expenses []entity.Expense) error
}

// SyncJob copia órdenes, facturas, productos y gastos del backend a la réplica local.
type SyncJob struct {
	orders   repository.OrderSource
	products repository.ProductSource
	expenses repository.ExpenseSource
	sink     SnapshotSink
	log      *logger.Logger
}

// NewSyncJob construye el job.
func NewSyncJob(orders repository.OrderSource, products repository.ProductSource, expenses repository.ExpenseSource, sink SnapshotSink, log *logger.Logger) *SyncJob {
	return &SyncJob{orders: orders, products: products, expenses: expenses, sink: sink, log: log}
}

func (j *SyncJob) Name() string { return "snapshot_sync" }

// Run descarga los cuatro listados en paralelo; si alguno falla no se escribe nada.
func (j *SyncJob) Run(ctx context.Context) error {
	var (
		orders, invoices []entity.Order
		products         []entity.Product
		expenses         []entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = j.orders.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		invoices, err = j.orders.ListInvoices(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = j.products.ListProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = j.expenses.ListExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh.SyncJob: %w", err)
	}

	records := make([]entity.Order, 0, len(orders)+len(invoices))
	records = append(records, orders...)
	records = append(records, invoices...)
	if err := j.sink.WriteSnapshot(ctx, records, products, expenses); err != nil {
		return fmt.Errorf("refresh.SyncJob: %w", err)
	}
	j.log.Info().
		Int("orders", len(orders)).
		Int("invoices", len(invoices)).
		Int("products", len(products)).
		Int("expenses", len(expenses)).
		Msg("réplica sincronizada")
	return nil
}
