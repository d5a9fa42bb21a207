package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocks-dashboard-api/pkg/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "GH₵ 0.00"},
		{"5", "GH₵ 5.00"},
		{"1234.5", "GH₵ 1,234.50"},
		{"1234567.891", "GH₵ 1,234,567.89"},
		{"-42.1", "GH₵ -42.10"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "3", money.Quantity(decimal.NewFromInt(3)))
	assert.Equal(t, "1,200", money.Quantity(decimal.NewFromInt(1200)))
	assert.Equal(t, "2.5", money.Quantity(decimal.RequireFromString("2.5")))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+12.50%", money.Percent(decimal.RequireFromString("12.5")))
	assert.Equal(t, "-3.00%", money.Percent(decimal.NewFromInt(-3)))
	assert.Equal(t, "0.00%", money.Percent(decimal.Zero))
}
