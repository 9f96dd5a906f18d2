package timer

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration for display with whole-second
// precision: "12m", "12m30s", or "45s". Sub-second remainders are
// truncated and negative values clamp to "0s".
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}

	minutes := total / 60
	seconds := total % 60

	switch {
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
