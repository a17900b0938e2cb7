package internal

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatCurrency renders an amount as whole US dollars with thousands
// separators, e.g. 2450000 -> "$2,450,000".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return fmt.Sprintf("-$%s", out)
	}
	return fmt.Sprintf("$%s", out)
}

// FormatDate renders a date in US short form (M/D/YYYY), matching the
// report header and the export file name.
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
