package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

type fakeGauges struct {
	lowStock, newOrders int
}

func (g *fakeGauges) SetLowStock(n int)  { g.lowStock = n }
func (g *fakeGauges) SetNewOrders(n int) { g.newOrders = n }

type fakeStock struct {
	out *dto.LowStockDTO
	err error
}

func (f *fakeStock) LowStock(context.Context, int) (*dto.LowStockDTO, error) { return f.out, f.err }

type fakeNotifications struct {
	count  int
	reset  bool
	maxAge time.Duration
	err    error
}

func (f *fakeNotifications) Count(context.Context) (*dto.NotificationCountDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.NotificationCountDTO{NewCount: f.count}, nil
}

func (f *fakeNotifications) ResetIfStale(_ context.Context, maxAge time.Duration) (bool, error) {
	f.maxAge = maxAge
	return f.reset, f.err
}

func TestLowStockJob(t *testing.T) {
	g := &fakeGauges{}
	job := NewLowStockJob(&fakeStock{out: &dto.LowStockDTO{Threshold: 10, Count: 2, Products: []dto.ProductDTO{{Name: "A"}, {Name: "B"}}}}, g, logger.Nop())

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 2, g.lowStock)
	assert.Equal(t, "low_stock", job.Name())

	job = NewLowStockJob(&fakeStock{err: errors.New("down")}, g, logger.Nop())
	assert.Error(t, job.Run(context.Background()))
}

func TestNewOrdersJob(t *testing.T) {
	g := &fakeGauges{}
	job := NewNewOrdersJob(&fakeNotifications{count: 4}, g, logger.Nop())

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 4, g.newOrders)
}

func TestNotificationResetJob(t *testing.T) {
	g := &fakeGauges{newOrders: 7}
	n := &fakeNotifications{reset: true}
	job := NewNotificationResetJob(n, g, 0)

	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 24*time.Hour, n.maxAge)
	assert.Equal(t, 0, g.newOrders)
}
