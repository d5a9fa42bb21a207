package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// ── Helpers de test ─────────────────────────────────────────────────────────

type fakeOrderSource struct {
	orders   []entity.Order
	invoices []entity.Order
	err      error
}

func (f *fakeOrderSource) ListOrders(context.Context) ([]entity.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrderSource) ListInvoices(context.Context) ([]entity.Order, error) {
	return f.invoices, f.err
}

type fakeProductSource struct {
	products []entity.Product
	err      error
}

func (f *fakeProductSource) ListProducts(context.Context) ([]entity.Product, error) {
	return f.products, f.err
}

type fakeRenderer struct {
	got SalesReport
}

func (r *fakeRenderer) Format() string      { return FormatXML }
func (r *fakeRenderer) ContentType() string { return "application/xml" }
func (r *fakeRenderer) Render(rep SalesReport) ([]byte, error) {
	r.got = rep
	return []byte("<report/>"), nil
}

func line(name, price, qty string) entity.LineItem {
	return entity.LineItem{ProductName: name, Price: entity.RawNumber(price), Quantity: entity.RawNumber(qty)}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
