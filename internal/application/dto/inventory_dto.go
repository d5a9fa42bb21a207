package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO producto del catálogo con su existencia.
type ProductDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
}

// LowStockRequest parámetros para GET /api/inventory/low-stock.
type LowStockRequest struct {
	Threshold int `query:"threshold" validate:"omitempty,min=1,max=100000"` // default configurado (10)
}

// LowStockDTO respuesta de GET /api/inventory/low-stock.
type LowStockDTO struct {
	Threshold int          `json:"threshold"`
	Count     int          `json:"count"`
	Products  []ProductDTO `json:"products"`
}

// InventoryOverviewDTO respuesta de GET /api/inventory/overview.
type InventoryOverviewDTO struct {
	ProductCount  int      `json:"product_count"`
	StockTotal    int      `json:"stock_total"`
	LowStockCount int      `json:"low_stock_count"`
	Threshold     int      `json:"threshold"`
	Categories    []string `json:"categories"`
}

// ProductListRequest parámetros para GET /api/inventory/products.
type ProductListRequest struct {
	Category string `query:"category" validate:"omitempty,max=100"`
	Search   string `query:"search" validate:"omitempty,max=200"`
	PageRequest
}

// ProductListDTO listado paginado de productos.
type ProductListDTO struct {
	Items []ProductDTO `json:"items"`
	Page  PageResponse `json:"page"`
}

// ReplenishmentSuggestionDTO producto bajo el umbral con la cantidad sugerida de pedido.
type ReplenishmentSuggestionDTO struct {
	Product      ProductDTO      `json:"product"`
	SoldLast30d  decimal.Decimal `json:"sold_last_30d"`
	SuggestedQty decimal.Decimal `json:"suggested_qty"`
}
