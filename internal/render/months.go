package render

import (
	"fmt"

	"github.com/coursetrail/coursetrail/internal/course"
)

// WeeksPerMonth is the fixed chunk size used for month headers.
const WeeksPerMonth = 4

// Month is one group of up to four weeks under a shared header.
type Month struct {
	Label string
	Weeks []course.Week
}

var monthNames = []string{
	"Month One",
	"Month Two",
	"Month Three",
	"Month Four",
	"Month Five",
	"Month Six",
	"Month Seven",
}

// MonthLabel returns the header label for the 1-based month n.
func MonthLabel(n int) string {
	if n >= 1 && n <= len(monthNames) {
		return monthNames[n-1]
	}
	return fmt.Sprintf("Month %d", n)
}

// Months chunks weeks into fixed groups of four in outline order.
func Months(weeks []course.Week) []Month {
	var months []Month
	for start := 0; start < len(weeks); start += WeeksPerMonth {
		end := start + WeeksPerMonth
		if end > len(weeks) {
			end = len(weeks)
		}
		months = append(months, Month{
			Label: MonthLabel(len(months) + 1),
			Weeks: weeks[start:end],
		})
	}
	return months
}
