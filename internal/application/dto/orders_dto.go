package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentOrdersRequest parámetros para GET /api/orders/recent.
// Sin from/to se listan las últimas 24 horas.
type RecentOrdersRequest struct {
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"` // inclusivo hasta 23:59:59
	Search   string `query:"search" validate:"omitempty,max=200"`
	SearchBy string `query:"search_by" validate:"omitempty,oneof=all invoice name"`
	Sort     string `query:"sort" validate:"omitempty,oneof=date payment"`
	PageRequest
}

// LineItemDTO línea de una orden con la identidad ya resuelta.
type LineItemDTO struct {
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderDTO orden para el listado del tablero.
type OrderDTO struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	CashAmount    decimal.Decimal `json:"cash_amount"`
	MomoAmount    decimal.Decimal `json:"momo_amount"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []LineItemDTO   `json:"items"`
}

// RecentOrdersDTO respuesta de GET /api/orders/recent.
type RecentOrdersDTO struct {
	From     time.Time           `json:"from"`
	To       time.Time           `json:"to"`
	Items    []OrderDTO          `json:"items"`
	Page     PageResponse        `json:"page"`
	Payments PaymentBreakdownDTO `json:"payments"` // del conjunto filtrado completo
}
