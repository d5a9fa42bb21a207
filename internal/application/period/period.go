// Package period interpreta rangos de fechas de los query params (YYYY-MM-DD).
package period

import (
	"fmt"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
)

// DateLayout formato de fecha aceptado en query params.
const DateLayout = "2006-01-02"

// ParseRange interpreta from/to en la zona indicada. Un extremo vacío queda nil.
// to es inclusivo hasta el final del día.
func ParseRange(fromStr, toStr string, loc *time.Location) (from, to *time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if fromStr != "" {
		f, err := time.ParseInLocation(DateLayout, fromStr, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: from inválido: %v", domain.ErrInvalidInput, err)
		}
		from = &f
	}
	if toStr != "" {
		t, err := time.ParseInLocation(DateLayout, toStr, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: to inválido: %v", domain.ErrInvalidInput, err)
		}
		t = EndOfDay(t)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: from no puede ser posterior a to", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// EndOfDay devuelve el último nanosegundo del día de t.
func EndOfDay(t time.Time) time.Time {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// MonthLabel etiqueta legible del mes, ej: "March 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}
