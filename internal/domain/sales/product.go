package sales

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// DefaultTopN es el tamaño del ranking cuando no se indica otro.
const DefaultTopN = 4

// ProductQuery parametriza AggregateByProduct.
type ProductQuery struct {
	Product string // "" o "all": todos
	TopN    int    // <= 0: DefaultTopN
}

// ProductSummary acumula las ventas de un producto.
// Orders cuenta ocurrencias de líneas, no órdenes distintas.
// UnitPrice es el primer precio visto.
type ProductSummary struct {
	Name          string
	TotalAmount   decimal.Decimal
	TotalQuantity decimal.Decimal
	UnitPrice     decimal.Decimal
	Orders        int
}

// ProductBreakdown es el resultado de AggregateByProduct.
type ProductBreakdown struct {
	Products []ProductSummary // todos, en orden de primera aparición
	Top      []ProductSummary // TotalAmount > 0, descendente, máximo TopN
	Best     ProductSummary   // valor cero si ningún producto vendió
	Skipped  int              // líneas sin identidad de producto
}

// AggregateByProduct agrupa las líneas normalizadas por producto.
func AggregateByProduct(records []entity.Order, q ProductQuery) ProductBreakdown {
	filter := strings.TrimSpace(q.Product)
	if strings.EqualFold(filter, AllProducts) {
		filter = ""
	}
	topN := q.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	out := ProductBreakdown{Products: []ProductSummary{}, Top: []ProductSummary{}}
	index := make(map[string]int)

	for _, r := range records {
		norm := NormalizeItems(r.Items)
		out.Skipped += norm.Skipped
		for _, l := range norm.Lines {
			if filter != "" && l.ProductKey != filter {
				continue
			}
			i, ok := index[l.ProductKey]
			if !ok {
				i = len(out.Products)
				index[l.ProductKey] = i
				out.Products = append(out.Products, ProductSummary{
					Name:          l.ProductKey,
					TotalAmount:   decimal.Zero,
					TotalQuantity: decimal.Zero,
					UnitPrice:     l.Price,
				})
			}
			p := &out.Products[i]
			p.TotalAmount = p.TotalAmount.Add(l.LineTotal)
			p.TotalQuantity = p.TotalQuantity.Add(l.Quantity)
			p.Orders++
		}
	}

	for _, p := range out.Products {
		if p.TotalAmount.IsPositive() {
			out.Top = append(out.Top, p)
		}
	}
	sort.SliceStable(out.Top, func(i, j int) bool {
		return out.Top[i].TotalAmount.GreaterThan(out.Top[j].TotalAmount)
	})
	if len(out.Top) > 0 {
		out.Best = out.Top[0]
	}
	if len(out.Top) > topN {
		out.Top = out.Top[:topN]
	}
	return out
}

// ProductNames devuelve las identidades de producto distintas en orden de
// primera aparición (lista del selector de producto).
func ProductNames(records []entity.Order) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, r := range records {
		for _, it := range r.Items {
			k := ResolveProductKey(it)
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			names = append(names, k)
		}
	}
	return names
}
