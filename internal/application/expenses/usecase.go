// Package expenses resume los gastos registrados por la tienda.
package expenses

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/period"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

// UseCase resumen de gastos por rango de fechas.
type UseCase struct {
	expenses repository.ExpenseSource
	loc      *time.Location
}

// NewUseCase construye el caso de uso.
func NewUseCase(expenses repository.ExpenseSource, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{expenses: expenses, loc: loc}
}

// Summary filtra los gastos por [from, to] (to inclusivo) y los totaliza.
// Los gastos se devuelven del más reciente al más antiguo.
func (uc *UseCase) Summary(ctx context.Context, req dto.ExpenseSummaryRequest) (*dto.ExpenseSummaryDTO, error) {
	from, to, err := period.ParseRange(req.From, req.To, uc.loc)
	if err != nil {
		return nil, err
	}
	all, err := uc.expenses.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("expenses.Summary: %w", err)
	}

	s := sales.SummarizeExpenses(all, from, to)
	sort.SliceStable(s.Expenses, func(i, j int) bool {
		return s.Expenses[i].Date.After(s.Expenses[j].Date)
	})

	out := &dto.ExpenseSummaryDTO{
		Total:      s.Total.Round(2),
		Count:      s.Count,
		ByCategory: make(map[string]decimal.Decimal, len(s.ByCategory)),
		Items:      make([]dto.ExpenseDTO, 0, len(s.Expenses)),
	}
	for cat, amount := range s.ByCategory {
		out.ByCategory[cat] = amount.Round(2)
	}
	for _, e := range s.Expenses {
		out.Items = append(out.Items, dto.NewExpenseDTO(e))
	}
	return out, nil
}
