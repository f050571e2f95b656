package valuation

import (
	"fmt"
	"slices"
	"time"
)

// Point is one market-value observation of a player.
type Point struct {
	PlayerID string
	Date     time.Time
	Value    int64
}

func (p Point) Validate() error {
	if p.PlayerID == "" {
		return fmt.Errorf("value point player id is required")
	}
	if p.Date.IsZero() {
		return fmt.Errorf("value point date is required")
	}
	if p.Value < 0 {
		return fmt.Errorf("value point must not be negative")
	}
	return nil
}

// SortAscending orders points oldest first.
func SortAscending(points []Point) {
	slices.SortStableFunc(points, func(a, b Point) int { return a.Date.Compare(b.Date) })
}

// Peak returns the largest value in points, or 0 for an empty series.
func Peak(points []Point) int64 {
	var out int64
	for _, p := range points {
		if p.Value > out {
			out = p.Value
		}
	}
	return out
}
