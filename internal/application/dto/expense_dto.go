package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseSummaryRequest parámetros para GET /api/expenses/summary.
type ExpenseSummaryRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseDTO gasto registrado.
type ExpenseDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// ExpenseSummaryDTO respuesta de GET /api/expenses/summary.
type ExpenseSummaryDTO struct {
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	Items      []ExpenseDTO               `json:"items"`
}
