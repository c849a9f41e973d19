package models

import "fmt"

// AnchorOffset is the daily zero point, 07:30, in minutes since midnight.
// Every minute offset in this package is measured from it.
const AnchorOffset = 450

// TotalSpan is the number of minutes covered by a rendered day column,
// 07:30 through 21:15. Layout percentages are relative to it.
const TotalSpan = 825

// MinuteToClock converts an offset from the anchor back to "HH:MM" wall-clock text.
// Offsets before midnight are rendered with a leading minus sign.
func MinuteToClock(offset int) string {
	total := offset + AnchorOffset
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
}
