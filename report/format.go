package report

import "fmt"

// FormatDuration renders a duration in minutes as "Xh Ym". Negative
// minutes are treated as zero.
func FormatDuration(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	total := int(minutes)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatCurrency renders an amount in euro with two decimals.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}
