package sales

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// SearchField indica sobre qué campo busca Search.
type SearchField string

const (
	SearchAll     SearchField = "all"
	SearchInvoice SearchField = "invoice"
	SearchName    SearchField = "name"
)

// InRange devuelve los registros con createdAt en [from, to]. Un límite nil no restringe.
func InRange(records []entity.Order, from, to *time.Time) []entity.Order {
	out := make([]entity.Order, 0, len(records))
	for _, r := range records {
		if from != nil && r.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && r.CreatedAt.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Search filtra por número de factura y/o nombre de cliente, sin distinguir
// mayúsculas. Consulta vacía devuelve todo.
func Search(records []entity.Order, query string, by SearchField) []entity.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]entity.Order{}, records...)
	}
	out := []entity.Order{}
	for _, r := range records {
		inv := strings.Contains(strings.ToLower(r.InvoiceNumber), q)
		name := strings.Contains(strings.ToLower(r.CustomerName), q)
		switch by {
		case SearchInvoice:
			if inv {
				out = append(out, r)
			}
		case SearchName:
			if name {
				out = append(out, r)
			}
		default:
			if inv || name {
				out = append(out, r)
			}
		}
	}
	return out
}

// SortByCreatedDesc ordena una copia de los registros del más reciente al más antiguo.
func SortByCreatedDesc(records []entity.Order) []entity.Order {
	out := append([]entity.Order{}, records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortByPaymentMethod ordena una copia por método de pago (alfabético, estable).
func SortByPaymentMethod(records []entity.Order) []entity.Order {
	out := append([]entity.Order{}, records...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].PaymentMethod) < strings.ToLower(out[j].PaymentMethod)
	})
	return out
}
