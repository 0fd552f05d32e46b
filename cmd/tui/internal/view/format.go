package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
