package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// ── Helpers de test ─────────────────────────────────────────────────────────

func item(name string, price, qty string) entity.LineItem {
	return entity.LineItem{
		Product:  &entity.ProductRef{Name: name},
		Price:    entity.RawNumber(price),
		Quantity: entity.RawNumber(qty),
	}
}

func order(id string, at time.Time, items ...entity.LineItem) entity.Order {
	return entity.Order{ID: id, CreatedAt: at, Items: items}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, context ...interface{}) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s %v", want, got.String(), context)
}
