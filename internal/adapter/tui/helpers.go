package tui

import "fmt"

// formatPrice renders a price the way the store displays it.
func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}
