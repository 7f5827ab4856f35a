package proposal

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Totals holds the derived monetary values of a proposal.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// LineTotal is quantity × unit price for one item.
func LineTotal(item ServiceItem) float64 {
	return item.Quantity * item.UnitPrice
}

// Subtotal sums the line totals in order. Plain float64 arithmetic; no
// rounding is applied.
func Subtotal(services []ServiceItem) float64 {
	var sum float64
	for _, item := range services {
		sum += LineTotal(item)
	}
	return sum
}

// Tax is the tax amount for a subtotal at the given rate (0.05 = 5%).
func Tax(subtotal, taxRate float64) float64 {
	return subtotal * taxRate
}

// Total is the subtotal plus tax. With a zero rate it equals the subtotal.
func Total(subtotal, taxRate float64) float64 {
	return subtotal + Tax(subtotal, taxRate)
}

// ComputeTotals derives subtotal, tax and total for p.
func ComputeTotals(p Proposal, taxRate float64) Totals {
	subtotal := Subtotal(p.Services)
	return Totals{
		Subtotal: subtotal,
		Tax:      Tax(subtotal, taxRate),
		Total:    Total(subtotal, taxRate),
	}
}

// FormatDate turns YYYY-MM-DD into DD/MM/YYYY by reordering the tokens. It
// does not parse the date; input that is not three dash-separated tokens is
// returned as-is.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// MoneyFormatter renders amounts for one locale and currency symbol.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter creates a formatter using the number conventions of tag.
func NewMoneyFormatter(tag language.Tag, symbol string) *MoneyFormatter {
	return &MoneyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Format renders v with two decimals and locale grouping, e.g. "R$ 1.234,50".
func (f *MoneyFormatter) Format(v float64) string {
	return f.symbol + " " + f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

var brl = NewMoneyFormatter(language.BrazilianPortuguese, "R$")

// FormatCurrency renders v as Brazilian Real.
func FormatCurrency(v float64) string {
	return brl.Format(v)
}

// FormatQuantity renders a quantity with the shortest exact representation.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
