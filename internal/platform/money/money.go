// Package money formats prices and dates for storefront pages.
package money

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
}

// Formatter renders amounts in one currency for one language.
type Formatter struct {
	unit   currency.Unit
	symbol string
	scale  int
	tag    language.Tag
}

// NewFormatter builds a formatter. Unknown currency codes fall back to USD.
func NewFormatter(code string, tag language.Tag) Formatter {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	return Formatter{unit: unit, symbol: symbol, scale: scale, tag: tag}
}

// Currency returns the ISO code.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format renders amount with the currency symbol and locale digit grouping.
func (f Formatter) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	p := message.NewPrinter(f.tag)
	return sign + f.symbol + p.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}

// FormatCurrency formats amount in code for tag.
func FormatCurrency(amount float64, code string, tag language.Tag) string {
	return NewFormatter(code, tag).Format(amount)
}

// FormatDate renders t as a medium-length date for tag. Zero times render
// as an empty string.
func FormatDate(t time.Time, tag language.Tag) string {
	if t.IsZero() {
		return ""
	}
	base, _ := tag.Base()
	switch base.String() {
	case "pt":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// LineItem is the price and quantity of one cart line.
type LineItem interface {
	LinePrice() float64
	LineQuantity() int
}

// Totals sums a list of line items.
type Totals struct {
	Amount float64
	Count  int
}

// CartTotals returns Σ price×quantity and Σ quantity.
func CartTotals[T LineItem](items []T) Totals {
	var totals Totals
	for _, item := range items {
		qty := item.LineQuantity()
		if qty < 0 {
			qty = 0
		}
		totals.Amount += item.LinePrice() * float64(qty)
		totals.Count += qty
	}
	totals.Amount = math.Round(totals.Amount*100) / 100
	return totals
}

// LowStockThreshold is the highest stock count still flagged as low.
const LowStockThreshold = 5

// StockLevel classifies a stock count for labels and inventory flags.
type StockLevel string

const (
	StockOut StockLevel = "out"
	StockLow StockLevel = "low"
	StockIn  StockLevel = "in"
)

// StockLevelOf classifies stock. Zero or negative is out of stock.
func StockLevelOf(stock int) StockLevel {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// Localizer resolves catalog message keys.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// StockLabel returns "N in stock" or "Out of stock" through the
// shop.stock.* catalog keys. A nil loc uses American English.
func StockLabel(loc Localizer, stock int) string {
	if loc == nil {
		loc = message.NewPrinter(language.AmericanEnglish)
	}
	if StockLevelOf(stock) == StockOut {
		return loc.Sprintf("shop.stock.out")
	}
	return loc.Sprintf("shop.stock.in", stock)
}
