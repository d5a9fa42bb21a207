package upstream

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

// ── Estructuras del protocolo del backend ────────────────────────────────────

type orderPayload struct {
	ID            string            `json:"_id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	CustomerName  string            `json:"customerName"`
	PaymentMethod string            `json:"paymentMethod"`
	CashAmount    entity.RawNumber  `json:"cashAmount"`
	MomoAmount    entity.RawNumber  `json:"momoAmount"`
	TotalAmount   entity.RawNumber  `json:"totalAmount"`
	Items         []lineItemPayload `json:"items"`
	CreatedAt     string            `json:"createdAt"`
}

type lineItemPayload struct {
	Product     *productRefPayload `json:"product"`
	ProductName string             `json:"productName"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       entity.RawNumber   `json:"price"`
	Quantity    entity.RawNumber   `json:"quantity"`
}

// productRefPayload algunos registros traen el producto como id (string);
// en ese caso se ignora.
type productRefPayload struct {
	Name  string           `json:"name"`
	Price entity.RawNumber `json:"price"`
}

func (p *productRefPayload) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s[0] != '{' {
		*p = productRefPayload{}
		return nil
	}
	type alias productRefPayload
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = productRefPayload(a)
	return nil
}

type productPayload struct {
	ID       string           `json:"_id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Quantity entity.RawNumber `json:"quantity"`
	Price    struct {
		Retail    entity.RawNumber `json:"retail_price"`
		Wholesale entity.RawNumber `json:"whole_sale_price"`
	} `json:"price"`
	CreatedAt string `json:"createdAt"`
}

type expensePayload struct {
	ID          string           `json:"_id"`
	Description string           `json:"description"`
	Amount      entity.RawNumber `json:"amount"`
	Category    string           `json:"category"`
	Date        string           `json:"date"`
	Notes       string           `json:"notes"`
}

// ── Mapeo a entidades ────────────────────────────────────────────────────────

func toOrders(in []orderPayload, kind entity.OrderKind, loc *time.Location) []entity.Order {
	out := make([]entity.Order, 0, len(in))
	for _, p := range in {
		o := entity.Order{
			ID:            p.ID,
			Kind:          kind,
			InvoiceNumber: p.InvoiceNumber,
			CustomerName:  p.CustomerName,
			PaymentMethod: strings.ToLower(strings.TrimSpace(p.PaymentMethod)),
			CashAmount:    p.CashAmount,
			MomoAmount:    p.MomoAmount,
			TotalAmount:   p.TotalAmount,
			CreatedAt:     parseTime(p.CreatedAt, loc),
			Items:         make([]entity.LineItem, 0, len(p.Items)),
		}
		for _, it := range p.Items {
			li := entity.LineItem{
				ProductName: it.ProductName,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Quantity:    it.Quantity,
			}
			if it.Product != nil && (it.Product.Name != "" || !it.Product.Price.IsEmpty()) {
				li.Product = &entity.ProductRef{Name: it.Product.Name, Price: it.Product.Price}
			}
			o.Items = append(o.Items, li)
		}
		out = append(out, o)
	}
	return out
}

func (p productPayload) toEntity(loc *time.Location) entity.Product {
	return entity.Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Quantity: int(sales.ParseNumber(p.Quantity).IntPart()),
		Price: entity.ProductPrice{
			Retail:    sales.ParseNumber(p.Price.Retail),
			Wholesale: sales.ParseNumber(p.Price.Wholesale),
		},
		CreatedAt: parseTime(p.CreatedAt, loc),
	}
}

func (e expensePayload) toEntity(loc *time.Location) entity.Expense {
	return entity.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        parseTime(e.Date, loc),
		Notes:       e.Notes,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime acepta los formatos que emite el backend. Los formatos sin zona
// se interpretan en loc; los que traen offset lo conservan. Un valor ilegible
// queda en cero y el registro no cae en ningún intervalo.
func parseTime(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
