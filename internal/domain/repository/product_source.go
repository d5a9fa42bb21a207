package repository

import (
	"context"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// ProductSource define el puerto de lectura del catálogo con existencias.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
