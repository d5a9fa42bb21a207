package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

func TestNewItemsSince(t *testing.T) {
	records := []entity.Order{
		order("1", day(2024, 1, 1)),
		order("2", day(2024, 1, 2)),
		order("3", day(2024, 1, 3)),
	}

	assert.Equal(t, 3, sales.NewItemsSince(entity.Watermark{}, records), "marca cero cuenta todo")
	assert.Equal(t, 1, sales.NewItemsSince(entity.Watermark{LastSeenAt: day(2024, 1, 2)}, records), "estrictamente después")
	assert.Equal(t, 0, sales.NewItemsSince(entity.Watermark{LastSeenAt: day(2024, 2, 1)}, records))
}

func TestLatest(t *testing.T) {
	records := []entity.Order{
		order("1", day(2024, 1, 2)),
		order("2", day(2024, 1, 5)),
		order("3", day(2024, 1, 3)),
	}
	w := sales.Latest(records)
	assert.Equal(t, "2", w.LastSeenID)
	assert.Equal(t, day(2024, 1, 5), w.LastSeenAt)

	assert.True(t, sales.Latest(nil).IsZero())
}
