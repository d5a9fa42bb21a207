package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

var _ repository.OrderSource = (*OrderRepo)(nil)

// OrderRepo lee órdenes y facturas de sales_records. Las líneas viven en JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListOrders devuelve las órdenes, más recientes primero.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, entity.KindOrder)
}

// ListInvoices devuelve las facturas, más recientes primero.
func (r *OrderRepo) ListInvoices(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, entity.KindInvoice)
}

func (r *OrderRepo) list(ctx context.Context, kind entity.OrderKind) ([]entity.Order, error) {
	query := `
		SELECT id, kind, invoice_number, customer_name, payment_method,
		       cash_amount, momo_amount, total_amount, items, created_at
		FROM sales_records WHERE kind = $1
		ORDER BY created_at DESC NULLS LAST`
	rows, err := r.q.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var (
			o                 entity.Order
			k                 string
			cash, momo, total *string
			items             []byte
			createdAt         *time.Time
		)
		if err := rows.Scan(&o.ID, &k, &o.InvoiceNumber, &o.CustomerName, &o.PaymentMethod,
			&cash, &momo, &total, &items, &createdAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		o.Kind = entity.OrderKind(k)
		o.CashAmount = numberOrEmpty(cash)
		o.MomoAmount = numberOrEmpty(momo)
		o.TotalAmount = numberOrEmpty(total)
		o.CreatedAt = timeOrZero(createdAt)
		if o.Items, err = decodeItems(items); err != nil {
			return nil, fmt.Errorf("items %s %s: %w", kind, o.ID, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", kind, err)
	}
	return out, nil
}

// Replace deja sales_records igual a la instantánea: borra los registros de cada
// tipo que ya no vienen del backend e inserta o actualiza el resto.
func (r *OrderRepo) Replace(ctx context.Context, tx SnapshotTx, records []entity.Order) error {
	for _, kind := range []entity.OrderKind{entity.KindOrder, entity.KindInvoice} {
		ids := []string{}
		for _, o := range records {
			if o.Kind == kind {
				ids = append(ids, o.ID)
			}
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM sales_records WHERE kind = $1 AND NOT (id = ANY($2))`,
			string(kind), ids); err != nil {
			return fmt.Errorf("prune sales_records %s: %w", kind, err)
		}
	}
	return r.upsert(ctx, tx, records)
}

func (r *OrderRepo) upsert(ctx context.Context, tx SnapshotTx, records []entity.Order) error {
	query := `
		INSERT INTO sales_records (id, kind, invoice_number, customer_name, payment_method,
		                           cash_amount, momo_amount, total_amount, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (kind, id) DO UPDATE SET
			invoice_number = EXCLUDED.invoice_number,
			customer_name  = EXCLUDED.customer_name,
			payment_method = EXCLUDED.payment_method,
			cash_amount    = EXCLUDED.cash_amount,
			momo_amount    = EXCLUDED.momo_amount,
			total_amount   = EXCLUDED.total_amount,
			items          = EXCLUDED.items,
			created_at     = EXCLUDED.created_at`
	batch := &pgx.Batch{}
	for _, o := range records {
		items, err := encodeItems(o.Items)
		if err != nil {
			return fmt.Errorf("items %s: %w", o.ID, err)
		}
		batch.Queue(query, o.ID, string(o.Kind), o.InvoiceNumber, o.CustomerName, o.PaymentMethod,
			nullableNumber(o.CashAmount), nullableNumber(o.MomoAmount), nullableNumber(o.TotalAmount),
			items, nullableTime(o.CreatedAt))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert sales_records: %w", err)
	}
	return nil
}

// ── Líneas en JSONB ─────────────────────────────────────────────────────────

type storedItem struct {
	Product     *storedProductRef `json:"product,omitempty"`
	ProductName string            `json:"productName,omitempty"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Price       entity.RawNumber  `json:"price"`
	Quantity    entity.RawNumber  `json:"quantity"`
}

type storedProductRef struct {
	Name  string           `json:"name"`
	Price entity.RawNumber `json:"price"`
}

func encodeItems(items []entity.LineItem) ([]byte, error) {
	stored := make([]storedItem, 0, len(items))
	for _, it := range items {
		s := storedItem{
			ProductName: it.ProductName,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
		}
		if it.Product != nil {
			s.Product = &storedProductRef{Name: it.Product.Name, Price: it.Product.Price}
		}
		stored = append(stored, s)
	}
	return json.Marshal(stored)
}

func decodeItems(raw []byte) ([]entity.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var stored []storedItem
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	items := make([]entity.LineItem, 0, len(stored))
	for _, s := range stored {
		it := entity.LineItem{
			ProductName: s.ProductName,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Quantity:    s.Quantity,
		}
		if s.Product != nil {
			it.Product = &entity.ProductRef{Name: s.Product.Name, Price: s.Product.Price}
		}
		items = append(items, it)
	}
	return items, nil
}
