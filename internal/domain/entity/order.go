package entity

import "time"

// Métodos de pago que registra el punto de venta.
const (
	PaymentCash     = "cash"
	PaymentMomo     = "momo"
	PaymentCredit   = "credit"
	PaymentMomoCash = "momo/cash"
)

// OrderKind distingue de qué listado del backend proviene un registro.
type OrderKind string

const (
	KindOrder   OrderKind = "order"
	KindInvoice OrderKind = "invoice"
)

// Order es un registro de venta (orden o factura). Ambos listados comparten forma.
// TotalAmount vacío significa que el backend no envió el total.
type Order struct {
	ID            string
	Kind          OrderKind
	InvoiceNumber string
	CustomerName  string
	PaymentMethod string
	CashAmount    RawNumber
	MomoAmount    RawNumber
	TotalAmount   RawNumber
	Items         []LineItem
	CreatedAt     time.Time
}

// LineItem es una línea de venta. La identidad del producto puede venir en
// cualquiera de los campos de nombre; ver sales.ResolveProductKey.
type LineItem struct {
	Product     *ProductRef
	ProductName string
	Name        string
	Description string
	Price       RawNumber
	Quantity    RawNumber
}

// ProductRef es el producto anidado que algunos registros traen en la línea.
type ProductRef struct {
	Name  string
	Price RawNumber
}
