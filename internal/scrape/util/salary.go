package util

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"jobscrape-engine/internal/jsonld"
)

var salaryPrinter = message.NewPrinter(language.English)

// FormatSalary renders a structured salary as display text:
// "80,000 – 100,000 YEAR (AUD)" for a range, a single grouped number when
// only one bound exists. Returns "" when the amount carries no numbers.
func FormatSalary(m *jsonld.MonetaryAmount) string {
	if m == nil || m.Value == nil {
		return ""
	}
	v := m.Value

	var amount string
	switch {
	case v.MinValue != nil && v.MaxValue != nil:
		amount = fmt.Sprintf("%s – %s", formatNumber(*v.MinValue), formatNumber(*v.MaxValue))
	case v.MinValue != nil:
		amount = formatNumber(*v.MinValue)
	case v.MaxValue != nil:
		amount = formatNumber(*v.MaxValue)
	case v.Value != nil:
		amount = formatNumber(*v.Value)
	default:
		return ""
	}

	parts := []string{amount}
	if unit := strings.TrimSpace(v.UnitText); unit != "" {
		parts = append(parts, unit)
	}
	if cur := strings.TrimSpace(m.Currency); cur != "" {
		parts = append(parts, "("+cur+")")
	}
	return strings.Join(parts, " ")
}

// formatNumber groups digits and keeps two decimals only for fractional
// values, so 80000 renders as "80,000" and 80000.5 as "80,000.50".
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return salaryPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
	}
	return salaryPrinter.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
