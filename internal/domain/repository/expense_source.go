package repository

import (
	"context"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// ExpenseSource define el puerto de lectura de gastos.
type ExpenseSource interface {
	ListExpenses(ctx context.Context) ([]entity.Expense, error)
}
