package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

var _ repository.ProductSource = (*ProductRepo)(nil)

// ProductRepo lee el catálogo con existencias.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListProducts devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, name, category, quantity, retail_price, wholesale_price, created_at
		FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var (
			p         entity.Product
			createdAt *time.Time
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity,
			&p.Price.Retail, &p.Price.Wholesale, &createdAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.CreatedAt = timeOrZero(createdAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows products: %w", err)
	}
	return out, nil
}

// Replace deja products igual a la instantánea dentro de tx.
func (r *ProductRepo) Replace(ctx context.Context, tx SnapshotTx, products []entity.Product) error {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM products WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("prune products: %w", err)
	}
	query := `
		INSERT INTO products (id, name, category, quantity, retail_price, wholesale_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			quantity = EXCLUDED.quantity,
			retail_price = EXCLUDED.retail_price,
			wholesale_price = EXCLUDED.wholesale_price,
			created_at = EXCLUDED.created_at`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.ID, p.Name, p.Category, p.Quantity, p.Price.Retail, p.Price.Wholesale, nullableTime(p.CreatedAt))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert products: %w", err)
	}
	return nil
}
