package sales

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// Timeframe es la granularidad de los buckets de tiempo.
type Timeframe string

const (
	TimeframeMonthly Timeframe = "monthly"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeDaily   Timeframe = "daily"
)

// WeekBuckets es la cantidad fija de semanas que se reportan por mes.
const WeekBuckets = 5

// AllProducts es el filtro de producto que no restringe nada.
const AllProducts = "all"

// ParseTimeframe interpreta el selector de granularidad (sin distinguir mayúsculas).
func ParseTimeframe(s string) (Timeframe, bool) {
	switch Timeframe(strings.ToLower(strings.TrimSpace(s))) {
	case TimeframeMonthly:
		return TimeframeMonthly, true
	case TimeframeWeekly:
		return TimeframeWeekly, true
	case TimeframeDaily:
		return TimeframeDaily, true
	}
	return "", false
}

// TimeQuery parametriza AggregateByTime.
// Month se ignora en monthly. Product vacío o "all" no filtra.
// Location nil equivale a UTC.
type TimeQuery struct {
	Timeframe Timeframe
	Year      int
	Month     time.Month
	Product   string
	Location  *time.Location
}

func (q TimeQuery) normalize() TimeQuery {
	if tf, ok := ParseTimeframe(string(q.Timeframe)); ok {
		q.Timeframe = tf
	} else {
		q.Timeframe = TimeframeMonthly
	}
	if q.Month < time.January || q.Month > time.December {
		q.Month = time.January
	}
	if q.Location == nil {
		q.Location = time.UTC
	}
	q.Product = strings.TrimSpace(q.Product)
	if strings.EqualFold(q.Product, AllProducts) {
		q.Product = ""
	}
	return q
}

// TimeBucketSummary es el resultado de AggregateByTime. Labels, Values,
// Quantities y Counts son paralelos (un elemento por bucket).
type TimeBucketSummary struct {
	Timeframe  Timeframe
	Year       int
	Month      time.Month
	Product    string
	Labels     []string
	Values     []decimal.Decimal // ingresos por bucket
	Quantities []decimal.Decimal
	Counts     []int // ocurrencias de líneas por bucket
	Total      decimal.Decimal
	Average    decimal.Decimal // sobre buckets > 0
	Highest    decimal.Decimal
	Lowest     decimal.Decimal // sobre buckets > 0
}

// AggregateByTime agrupa los registros en buckets de calendario.
//
//   - monthly: registros del año; 12 buckets (enero..diciembre).
//   - weekly: registros del año y mes; Week N con
//     N = ceil((díaDelMes + díaSemanaDelPrimero) / 7), domingo = 0.
//     Se reportan exactamente 5 semanas; un registro en la semana 6 no entra
//     en ningún bucket.
//   - daily: registros del año y mes; un bucket por día del mes.
//
// Sin filtro de producto el ingreso de un registro es la suma de todas sus
// líneas; con filtro sólo cuentan las líneas de ese producto.
func AggregateByTime(records []entity.Order, q TimeQuery) TimeBucketSummary {
	q = q.normalize()
	labels := bucketLabels(q)
	n := len(labels)

	out := TimeBucketSummary{
		Timeframe:  q.Timeframe,
		Year:       q.Year,
		Month:      q.Month,
		Product:    q.Product,
		Labels:     labels,
		Values:     zeros(n),
		Quantities: zeros(n),
		Counts:     make([]int, n),
	}
	if q.Timeframe == TimeframeMonthly {
		out.Month = 0
	}

	firstWeekday := int(time.Date(q.Year, q.Month, 1, 0, 0, 0, 0, q.Location).Weekday())

	for _, r := range records {
		t := r.CreatedAt.In(q.Location)
		if t.Year() != q.Year {
			continue
		}
		if q.Timeframe != TimeframeMonthly && t.Month() != q.Month {
			continue
		}

		idx := -1
		switch q.Timeframe {
		case TimeframeMonthly:
			idx = int(t.Month()) - 1
		case TimeframeWeekly:
			week := (t.Day() + firstWeekday + 6) / 7
			if week <= WeekBuckets {
				idx = week - 1
			}
		case TimeframeDaily:
			idx = t.Day() - 1
		}
		if idx < 0 || idx >= n {
			continue
		}

		for _, it := range r.Items {
			l := NormalizeLine(it)
			if q.Product != "" && l.ProductKey != q.Product {
				continue
			}
			out.Values[idx] = out.Values[idx].Add(l.LineTotal)
			out.Quantities[idx] = out.Quantities[idx].Add(l.Quantity)
			out.Counts[idx]++
		}
	}

	out.Total, out.Average, out.Highest, out.Lowest = bucketStats(out.Values)
	return out
}

// bucketStats calcula total, promedio, máximo y mínimo.
// Promedio y mínimo ignoran los buckets en cero.
func bucketStats(values []decimal.Decimal) (total, average, highest, lowest decimal.Decimal) {
	total, average, highest, lowest = decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	nonZero := 0
	sumNonZero := decimal.Zero
	for i, v := range values {
		total = total.Add(v)
		if i == 0 || v.GreaterThan(highest) {
			highest = v
		}
		if v.IsPositive() {
			if nonZero == 0 || v.LessThan(lowest) {
				lowest = v
			}
			sumNonZero = sumNonZero.Add(v)
			nonZero++
		}
	}
	if nonZero > 0 {
		average = sumNonZero.Div(decimal.NewFromInt(int64(nonZero)))
	}
	return total, average, highest, lowest
}

func bucketLabels(q TimeQuery) []string {
	switch q.Timeframe {
	case TimeframeWeekly:
		labels := make([]string, WeekBuckets)
		for i := range labels {
			labels[i] = "Week " + strconv.Itoa(i+1)
		}
		return labels
	case TimeframeDaily:
		days := DaysInMonth(q.Year, q.Month)
		labels := make([]string, days)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return labels
	default:
		labels := make([]string, 12)
		for i := range labels {
			labels[i] = time.Month(i + 1).String()
		}
		return labels
	}
}

// DaysInMonth devuelve la cantidad de días del mes indicado.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
