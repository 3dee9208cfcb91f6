// Package report turns full-precision engine output into records rounded
// for display and export. The engine itself never rounds.
package report

import "github.com/shopspring/decimal"

// Money rounds to cents, half away from zero.
func Money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent rounds a percentage to two decimals.
func Percent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Rate keeps four decimals, enough for weighted interest rates.
func Rate(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}
