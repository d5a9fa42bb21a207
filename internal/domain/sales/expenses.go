package sales

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// ExpenseSummary totaliza los gastos de un rango.
type ExpenseSummary struct {
	Total      decimal.Decimal
	Count      int
	ByCategory map[string]decimal.Decimal
	Expenses   []entity.Expense
}

// UncategorizedExpense agrupa los gastos sin categoría.
const UncategorizedExpense = "uncategorized"

// SummarizeExpenses filtra por fecha [from, to] (nil no restringe) y suma montos.
func SummarizeExpenses(expenses []entity.Expense, from, to *time.Time) ExpenseSummary {
	out := ExpenseSummary{
		Total:      decimal.Zero,
		ByCategory: map[string]decimal.Decimal{},
		Expenses:   []entity.Expense{},
	}
	for _, e := range expenses {
		if from != nil && e.Date.Before(*from) {
			continue
		}
		if to != nil && e.Date.After(*to) {
			continue
		}
		amount := ParseNumber(e.Amount)
		cat := strings.TrimSpace(e.Category)
		if cat == "" {
			cat = UncategorizedExpense
		}
		out.Total = out.Total.Add(amount)
		out.ByCategory[cat] = out.ByCategory[cat].Add(amount)
		out.Count++
		out.Expenses = append(out.Expenses, e)
	}
	return out
}
