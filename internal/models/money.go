package models

import "fmt"

// FormatEuros renders an integer cents amount as "X.XX€". Monetary math
// stays in cents everywhere; division by 100 happens only here.
func FormatEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d€", cents/100, cents%100)
}
