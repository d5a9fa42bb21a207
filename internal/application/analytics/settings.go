package analytics

import (
	"strconv"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/period"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

// Settings valores por defecto de los agregados.
type Settings struct {
	Location          *time.Location
	LowStockThreshold int
	TopN              int
}

func (s Settings) withDefaults() Settings {
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.LowStockThreshold <= 0 {
		s.LowStockThreshold = sales.DefaultLowStockThreshold
	}
	if s.TopN <= 0 {
		s.TopN = sales.DefaultTopN
	}
	return s
}

// timeQuery completa los parámetros de la serie: timeframe monthly y
// año/mes actuales en la zona configurada.
func timeQuery(req dto.TimeSeriesRequest, now time.Time, loc *time.Location) sales.TimeQuery {
	local := now.In(loc)
	tf, ok := sales.ParseTimeframe(req.Timeframe)
	if !ok {
		tf = sales.TimeframeMonthly
	}
	year := req.Year
	if year == 0 {
		year = local.Year()
	}
	month := time.Month(req.Month)
	if month == 0 {
		month = local.Month()
	}
	return sales.TimeQuery{
		Timeframe: tf,
		Year:      year,
		Month:     month,
		Product:   req.Product,
		Location:  loc,
	}
}

// periodLabel etiqueta del período consultado: el año en monthly, "Mes Año" en el resto.
func periodLabel(q sales.TimeQuery) string {
	if q.Timeframe == sales.TimeframeMonthly {
		return strconv.Itoa(q.Year)
	}
	return period.MonthLabel(q.Year, q.Month)
}
