package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

func reportFixture() *fakeOrderSource {
	return &fakeOrderSource{
		orders: []entity.Order{
			{ID: "1", CreatedAt: time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC), PaymentMethod: "cash", Items: []entity.LineItem{line("A", "10", "1")}},
			{ID: "2", CreatedAt: time.Date(2024, 9, 8, 9, 0, 0, 0, time.UTC), PaymentMethod: "cash", Items: []entity.LineItem{line("B", "20", "2")}},
			{ID: "3", CreatedAt: time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC), PaymentMethod: "momo", Items: []entity.LineItem{line("A", "10", "5")}},
		},
		invoices: []entity.Order{
			{ID: "i1", CreatedAt: time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC), TotalAmount: "15"},
		},
	}
}

func TestReportUseCase_TimeSeriesSemanal(t *testing.T) {
	uc := NewReportUseCase(reportFixture(), Settings{}, logger.Nop())

	out, err := uc.TimeSeries(context.Background(), dto.TimeSeriesRequest{Timeframe: "weekly", Year: 2024, Month: 9})

	require.NoError(t, err)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}, out.Labels)
	assert.Equal(t, "10", out.Values[0].String())
	assert.Equal(t, "40", out.Values[1].String())
	assert.Equal(t, "50", out.Total.String())
	assert.Equal(t, "Week 2", out.Performance.BestPeriod)
	assert.Equal(t, []string{"A", "B"}, out.Products)
}

func TestReportUseCase_TopProductsConRango(t *testing.T) {
	uc := NewReportUseCase(reportFixture(), Settings{}, logger.Nop())

	out, err := uc.TopProducts(context.Background(), dto.TopProductsRequest{From: "2024-10-01", To: "2024-10-31"})

	require.NoError(t, err)
	require.Len(t, out.Top, 1)
	assert.Equal(t, "A", out.Best.Name)
	assert.Equal(t, "50", out.Best.TotalAmount.String())

	_, err = uc.TopProducts(context.Background(), dto.TopProductsRequest{From: "2024-11-01", To: "2024-10-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportUseCase_SalesWindow(t *testing.T) {
	uc := NewReportUseCase(reportFixture(), Settings{}, logger.Nop())
	uc.now = fixedClock(time.Date(2024, 10, 2, 12, 0, 0, 0, time.UTC))

	out, err := uc.SalesWindow(context.Background(), dto.SalesWindowRequest{})

	require.NoError(t, err)
	assert.Equal(t, 24, out.WindowHours)
	assert.Equal(t, "15", out.Current.String())
	assert.Equal(t, "100", out.PercentageChange.String())
}

func TestReportUseCase_Export(t *testing.T) {
	r := &fakeRenderer{}
	uc := NewReportUseCase(reportFixture(), Settings{}, logger.Nop(), r)
	uc.now = fixedClock(time.Date(2024, 10, 2, 12, 0, 0, 0, time.UTC))

	rep, err := uc.Export(context.Background(), dto.TimeSeriesRequest{Timeframe: "daily", Year: 2024, Month: 9}, "XML")

	require.NoError(t, err)
	assert.Equal(t, "sales-september-2024.xml", rep.Filename)
	assert.Equal(t, "application/xml", rep.ContentType)
	assert.Equal(t, "<report/>", string(rep.Body))
	assert.Equal(t, "September 2024", r.got.Period)
	assert.Equal(t, "50", r.got.Series.Total.String())
	assert.Equal(t, "50", r.got.Payments.Cash.String(), "pagos limitados al período")
	assert.Equal(t, "0", r.got.Payments.Momo.String())
	assert.Equal(t, "B", r.got.Products.Best.Name)

	_, err = uc.Export(context.Background(), dto.TimeSeriesRequest{}, "csv")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
