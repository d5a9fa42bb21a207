package entity

import "time"

// Expense es un gasto registrado por la tienda.
type Expense struct {
	ID          string
	Description string
	Amount      RawNumber
	Category    string
	Date        time.Time
	Notes       string
}
