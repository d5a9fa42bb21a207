package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su existencia actual.
type Product struct {
	ID        string
	Name      string
	Category  string
	Quantity  int // unidades disponibles
	Price     ProductPrice
	CreatedAt time.Time
}

// ProductPrice agrupa los precios de venta al detal y al por mayor.
type ProductPrice struct {
	Retail    decimal.Decimal
	Wholesale decimal.Decimal
}
