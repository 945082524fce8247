package category

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a record value for display. Pure and locale-stable so
// it can be asserted in tests:
//
//	time  -> whole minutes plus seconds with millisecond precision
//	         (102.5 -> "1m 42.500s", 42.5 -> "42.500s")
//	count -> thousands-grouped decimal (1500 -> "1,500")
//	score -> same as count
func FormatValue(value float64, metric MetricType) string {
	if metric == MetricTime {
		return formatElapsed(value)
	}
	return groupThousands(value)
}

func formatElapsed(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	mins := int(math.Floor(seconds / 60))
	secs := seconds - float64(mins)*60
	if mins > 0 {
		return fmt.Sprintf("%s%dm %.3fs", sign, mins, secs)
	}
	return fmt.Sprintf("%s%.3fs", sign, secs)
}

func groupThousands(value float64) string {
	raw := strconv.FormatFloat(value, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		intPart = raw[:idx]
		fracPart = raw[idx:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)

	return b.String()
}
