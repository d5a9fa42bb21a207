package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

var _ repository.ExpenseSource = (*ExpenseRepo)(nil)

// ExpenseRepo lee gastos.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	query := `
		SELECT id, description, amount, category, spent_at, notes
		FROM expenses ORDER BY spent_at DESC NULLS LAST`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []entity.Expense
	for rows.Next() {
		var (
			e      entity.Expense
			amount *string
			date   *time.Time
		)
		if err := rows.Scan(&e.ID, &e.Description, &amount, &e.Category, &date, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Amount = numberOrEmpty(amount)
		e.Date = timeOrZero(date)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows expenses: %w", err)
	}
	return out, nil
}

// Replace deja expenses igual a la instantánea dentro de tx.
func (r *ExpenseRepo) Replace(ctx context.Context, tx SnapshotTx, expenses []entity.Expense) error {
	ids := make([]string, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("prune expenses: %w", err)
	}
	query := `
		INSERT INTO expenses (id, description, amount, category, spent_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			description = EXCLUDED.description,
			amount = EXCLUDED.amount,
			category = EXCLUDED.category,
			spent_at = EXCLUDED.spent_at,
			notes = EXCLUDED.notes`
	batch := &pgx.Batch{}
	for _, e := range expenses {
		batch.Queue(query, e.ID, e.Description, nullableNumber(e.Amount), e.Category, nullableTime(e.Date), e.Notes)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert expenses: %w", err)
	}
	return nil
}
