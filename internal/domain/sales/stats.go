package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// DefaultComparisonWindow es la ventana de la tarjeta "ventas últimas 24h".
const DefaultComparisonWindow = 24 * time.Hour

var hundred = decimal.NewFromInt(100)

// PercentageChange compara dos magnitudes con la forma simétrica acotada:
//
//	(0, 0)  -> 0
//	(x, 0)  -> 100
//	resto   -> (max-min)/max*100, tope 100; positivo si current > previous.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if current.IsZero() && previous.IsZero() {
		return decimal.Zero
	}
	if previous.IsZero() {
		return hundred
	}
	hi, lo := current, previous
	if lo.GreaterThan(hi) {
		hi, lo = lo, hi
	}
	if hi.IsZero() {
		return decimal.Zero
	}
	pct := hi.Sub(lo).Div(hi).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	if current.GreaterThan(previous) {
		return pct
	}
	return pct.Neg()
}

// PeriodPerformance resume el desempeño de una serie de buckets.
type PeriodPerformance struct {
	TotalRevenue      decimal.Decimal
	TotalQuantity     decimal.Decimal
	LineCount         int
	AverageOrderValue decimal.Decimal // ingresos / líneas
	BestPeriod        string          // primer bucket con ingreso máximo
	WorstPeriod       string          // primer bucket con ingreso mínimo > 0
}

// Performance deriva el resumen de desempeño de un TimeBucketSummary.
// Sin actividad, BestPeriod y WorstPeriod quedan vacíos.
func Performance(s TimeBucketSummary) PeriodPerformance {
	out := PeriodPerformance{
		TotalRevenue:      decimal.Zero,
		TotalQuantity:     decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	best, worst := -1, -1
	for i, v := range s.Values {
		out.TotalRevenue = out.TotalRevenue.Add(v)
		if i < len(s.Quantities) {
			out.TotalQuantity = out.TotalQuantity.Add(s.Quantities[i])
		}
		if i < len(s.Counts) {
			out.LineCount += s.Counts[i]
		}
		if !v.IsPositive() {
			continue
		}
		if best < 0 || v.GreaterThan(s.Values[best]) {
			best = i
		}
		if worst < 0 || v.LessThan(s.Values[worst]) {
			worst = i
		}
	}
	if out.LineCount > 0 {
		out.AverageOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.LineCount)))
	}
	if best >= 0 && best < len(s.Labels) {
		out.BestPeriod = s.Labels[best]
	}
	if worst >= 0 && worst < len(s.Labels) {
		out.WorstPeriod = s.Labels[worst]
	}
	return out
}

// WindowComparison compara la ventana actual con la inmediatamente anterior.
type WindowComparison struct {
	Window        time.Duration
	Current       decimal.Decimal
	Previous      decimal.Decimal
	CurrentCount  int
	PreviousCount int
	Change        decimal.Decimal // PercentageChange(Current, Previous)
}

// CompareWindows suma OrderTotal de los registros en [now-w, now] contra
// [now-2w, now-w). window <= 0 usa DefaultComparisonWindow.
func CompareWindows(records []entity.Order, now time.Time, window time.Duration) WindowComparison {
	if window <= 0 {
		window = DefaultComparisonWindow
	}
	out := WindowComparison{Window: window, Current: decimal.Zero, Previous: decimal.Zero}
	curStart := now.Add(-window)
	prevStart := now.Add(-2 * window)
	for _, r := range records {
		t := r.CreatedAt
		switch {
		case !t.Before(curStart) && !t.After(now):
			out.Current = out.Current.Add(OrderTotal(r))
			out.CurrentCount++
		case !t.Before(prevStart) && t.Before(curStart):
			out.Previous = out.Previous.Add(OrderTotal(r))
			out.PreviousCount++
		}
	}
	out.Change = PercentageChange(out.Current, out.Previous)
	return out
}
