package sales

import "github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"

// NewItemsSince cuenta los registros creados estrictamente después de la marca.
// Una marca cero cuenta todos los registros.
func NewItemsSince(w entity.Watermark, current []entity.Order) int {
	if w.IsZero() {
		return len(current)
	}
	n := 0
	for _, r := range current {
		if r.CreatedAt.After(w.LastSeenAt) {
			n++
		}
	}
	return n
}

// Latest devuelve la marca del registro más reciente de la lista.
// Lista vacía: marca cero.
func Latest(current []entity.Order) entity.Watermark {
	var w entity.Watermark
	for _, r := range current {
		if w.IsZero() || r.CreatedAt.After(w.LastSeenAt) {
			w = entity.Watermark{LastSeenAt: r.CreatedAt, LastSeenID: r.ID}
		}
	}
	return w
}
