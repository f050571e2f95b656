package market

import (
	"fmt"
	"strconv"
)

// FormatValue renders an amount with a magnitude suffix: 2.30B, 1.5M, 2K or
// the plain integer below one thousand.
func FormatValue(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fK", v/1e3)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// FormatMoney is FormatValue for amounts held in base units.
func FormatMoney(v int64) string {
	return FormatValue(float64(v))
}
