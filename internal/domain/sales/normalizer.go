package sales

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// Line es una línea de venta normalizada.
type Line struct {
	ProductKey string
	Price      decimal.Decimal
	Quantity   decimal.Decimal
	LineTotal  decimal.Decimal // Price * Quantity
}

// NormalizeResult agrupa las líneas válidas y cuántas se descartaron por no
// tener identidad de producto.
type NormalizeResult struct {
	Lines   []Line
	Skipped int
}

// numericPrefix reconoce el prefijo numérico de una cadena ("12.5kg" -> "12.5").
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ResolveProductKey devuelve la identidad del producto de una línea.
// Orden de resolución:
//  1. nombre del producto anidado (product.name)
//  2. productName
//  3. name
//  4. description
//
// Devuelve "" si ninguno tiene contenido.
func ResolveProductKey(item entity.LineItem) string {
	candidates := make([]string, 0, 4)
	if item.Product != nil {
		candidates = append(candidates, item.Product.Name)
	}
	candidates = append(candidates, item.ProductName, item.Name, item.Description)
	for _, c := range candidates {
		if k := strings.TrimSpace(c); k != "" {
			return k
		}
	}
	return ""
}

// ParseNumber convierte un valor crudo a decimal.
// Acepta números y cadenas numéricas, tomando el prefijo numérico de la cadena.
// Vacío, null, texto no numérico, NaN o valores fuera del rango de float64 dan 0.
func ParseNumber(raw entity.RawNumber) decimal.Decimal {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return decimal.Zero
	}
	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	// Fuera del rango de float64 (desborde o subdesborde) vale 0: acota el exponente.
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(m); err == nil {
		return d
	}
	return decimal.NewFromFloat(f)
}

// UnitPrice devuelve el precio de la línea; si price es 0 o no viene, usa el
// precio del producto anidado.
func UnitPrice(item entity.LineItem) decimal.Decimal {
	p := ParseNumber(item.Price)
	if p.IsZero() && item.Product != nil {
		p = ParseNumber(item.Product.Price)
	}
	return p
}

// NormalizeLine normaliza una línea sin descartarla (ProductKey puede quedar vacío).
func NormalizeLine(item entity.LineItem) Line {
	price := UnitPrice(item)
	qty := ParseNumber(item.Quantity)
	return Line{
		ProductKey: ResolveProductKey(item),
		Price:      price,
		Quantity:   qty,
		LineTotal:  price.Mul(qty),
	}
}

// NormalizeItems normaliza las líneas de un registro. Las líneas sin identidad
// de producto se descartan y se cuentan en Skipped.
func NormalizeItems(items []entity.LineItem) NormalizeResult {
	res := NormalizeResult{Lines: make([]Line, 0, len(items))}
	for _, it := range items {
		l := NormalizeLine(it)
		if l.ProductKey == "" {
			res.Skipped++
			continue
		}
		res.Lines = append(res.Lines, l)
	}
	return res
}

// RecordRevenue suma price*quantity de todas las líneas del registro,
// incluidas las que no tienen identidad de producto.
func RecordRevenue(o entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(NormalizeLine(it).LineTotal)
	}
	return total
}

// OrderTotal devuelve totalAmount si el backend lo envió; si no, la suma de líneas.
func OrderTotal(o entity.Order) decimal.Decimal {
	if !o.TotalAmount.IsEmpty() {
		return ParseNumber(o.TotalAmount)
	}
	return RecordRevenue(o)
}
