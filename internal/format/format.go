package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency formats a whole-dollar USD amount for display.
// Example: Currency(1250) => "$1,250"
func Currency(dollars int64) string {
	if dollars < 0 {
		return "-$" + thousandSep(-dollars)
	}
	return "$" + thousandSep(dollars)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}

// Date formats a publish date for page display.
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Phone renders a +1-NNN-NNN-NNNN number as (NNN) NNN-NNNN. Anything that
// is not a ten-digit US number passes through unchanged.
func Phone(e164 string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, e164)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return e164
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
