// Package money renders amounts the way the banking backend's audience
// expects them: vi-VN digit grouping, whole-dong values, ESG points with two
// decimals.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PointExchangeRate is the fixed conversion rate: 1 ESG point = 1 000 VND.
var PointExchangeRate = decimal.NewFromInt(1000)

type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.Vietnamese)}
}

// Number formats a minor-unit amount with locale digit grouping, e.g.
// 1000000 -> "1.000.000".
func (f *Formatter) Number(amount int64) string {
	return f.printer.Sprint(number.Decimal(amount))
}

// VND formats an amount with the currency suffix, e.g. "1.000.000 ₫".
func (f *Formatter) VND(amount int64) string {
	return f.Number(amount) + " ₫"
}

// Points formats an ESG point balance to two decimals.
func (f *Formatter) Points(points float64) string {
	return fmt.Sprintf("%.2f", points)
}

// PointsToVND converts an ESG point amount to its dong value at the fixed
// exchange rate, truncated to whole dong.
func PointsToVND(points float64) int64 {
	return decimal.NewFromFloat(points).Mul(PointExchangeRate).IntPart()
}
