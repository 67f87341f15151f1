package output

import (
	"github.com/shopspring/decimal"

	"github.com/finch/networth/pkg/dateutil"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDate renders an epoch timestamp as YYYY-MM-DD.
func FormatDate(ts int64) string { return dateutil.FormatDate(ts) }
