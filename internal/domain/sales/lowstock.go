package sales

import (
	"strings"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// DefaultLowStockThreshold es el umbral único de stock bajo.
const DefaultLowStockThreshold = 10

// LowStock devuelve los productos con Quantity < threshold, en el orden de entrada.
func LowStock(products []entity.Product, threshold int) []entity.Product {
	out := []entity.Product{}
	for _, p := range products {
		if p.Quantity < threshold {
			out = append(out, p)
		}
	}
	return out
}

// StockTotal suma las unidades disponibles de todos los productos.
func StockTotal(products []entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.Quantity
	}
	return total
}

// Categories devuelve las categorías distintas en orden de primera aparición.
func Categories(products []entity.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
