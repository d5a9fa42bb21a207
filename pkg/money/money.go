// Package money formatea importes en cedis para reportes.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol símbolo de la moneda de la tienda.
const Symbol = "GH₵"

var printer = message.NewPrinter(language.English)

// Format devuelve "GH₵ 1,234.50".
func Format(d decimal.Decimal) string {
	return Symbol + " " + Number(d)
}

// Number devuelve el importe con separador de miles y dos decimales: "1,234.50".
func Number(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	return fmt.Sprintf("%s%s.%02d", sign, printer.Sprintf("%d", whole), cents)
}

// Quantity formatea cantidades sin decimales sobrantes: "3", "2.5", "1,200".
func Quantity(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	return d.Round(2).String()
}

// Percent devuelve "+12.50%" / "-3.00%".
func Percent(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}
