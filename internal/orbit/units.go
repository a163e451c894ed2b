package orbit

import (
	"fmt"
	"math"
	"strconv"
)

var (
	bigPrefixes   = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}
	smallPrefixes = []string{"m", "μ", "n", "p", "f", "a", "z", "y"}
)

// FormatSI scales d into the nearest group of three decades and returns
// it with two decimals alongside its SI prefix.
func FormatSI(d float64) (value, prefix string) {
	const digits = 2
	abs := math.Abs(d)
	if abs == 0 || math.IsNaN(d) {
		return "0", ""
	}
	exp := int(math.Floor(math.Log10(abs)))

	if abs >= 1 {
		group := min(exp/3, len(bigPrefixes)-1)
		scaled := d / math.Pow(10, float64(group*3))
		return strconv.FormatFloat(scaled, 'f', digits, 64), bigPrefixes[group]
	}

	// exp is negative here: -1..-3 is milli, -4..-6 micro and so on.
	group := min((-exp-1)/3, len(smallPrefixes)-1)
	scaled := d * math.Pow(10, float64((group+1)*3))
	return strconv.FormatFloat(scaled, 'f', digits, 64), smallPrefixes[group]
}

// FormatDistance formats a distance in meters, e.g. "70.48km".
func FormatDistance(meters float64) string {
	v, p := FormatSI(meters)
	return v + p + "m"
}

// FormatInterval renders a duration in seconds as HH:MM:SS, prefixed by
// days and, when doYears is set, 365-day years. Negative durations show
// as zero.
func FormatInterval(seconds float64, doYears bool) string {
	if !(seconds > 0) {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	years := days / 365

	switch {
	case years > 0 && doYears:
		return fmt.Sprintf("%dy %dd %02d:%02d:%02d", years, days-years*365, hours, minutes, secs)
	case days > 0:
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, secs)
	default:
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
}
