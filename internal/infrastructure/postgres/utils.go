package postgres

import (
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// nullableTime devuelve nil para el tiempo cero (columna NULL).
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// nullableNumber guarda el RawNumber vacío como NULL.
func nullableNumber(n entity.RawNumber) *string {
	if n.IsEmpty() {
		return nil
	}
	s := n.String()
	return &s
}

func numberOrEmpty(s *string) entity.RawNumber {
	if s == nil {
		return ""
	}
	return entity.RawNumber(*s)
}
