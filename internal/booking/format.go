package booking

import (
	"fmt"
	"strings"
	"time"
)

// FormatGroupDate renders a date heading for printed sheets,
// e.g. "SATURDAY APRIL 1ST".
func FormatGroupDate(date time.Time) string {
	heading := fmt.Sprintf("%s %s %d%s",
		date.Format("Monday"), date.Format("January"), date.Day(), dateSuffix(date.Day()))
	return strings.ToUpper(heading)
}

func dateSuffix(day int) string {
	if day >= 10 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
