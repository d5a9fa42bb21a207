package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/memory"
)

func TestWatermarkRepository_GetSinMarca(t *testing.T) {
	repo := memory.NewWatermarkRepository()
	w, err := repo.Get(context.Background(), "orders")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestWatermarkRepository_SaveYGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWatermarkRepository()
	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, "orders", entity.Watermark{LastSeenAt: at, LastSeenID: "o-1"}))
	w, err := repo.Get(ctx, "orders")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, w.LastSeenAt.Equal(at))
	assert.Equal(t, "o-1", w.LastSeenID)

	other, err := repo.Get(ctx, "invoices")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestLock_Exclusivo(t *testing.T) {
	ctx := context.Background()
	l := memory.NewLock()

	ok, err := l.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx))
	ok, err = l.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
