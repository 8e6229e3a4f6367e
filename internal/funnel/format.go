package funnel

import "fmt"

// Display formatting for the presentation boundary. These never feed back
// into the numeric engine.

// FormatUSD renders a currency amount with two decimals.
func FormatUSD(v float64) string { return fmt.Sprintf("$%.2f", v) }

// FormatPercent renders a ratio as value*100 with two decimals and a
// trailing percent sign.
func FormatPercent(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }
