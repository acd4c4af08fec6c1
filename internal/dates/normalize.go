// Package dates holds the display-date helpers shared by the reconciliation
// engine and its callers.
package dates

import "strings"

// Normalize converts a day/month/year slash-delimited display string into a
// zero-padded year-month-day string for equality comparison, e.g. "1/5/2024"
// becomes "2024-05-01". Anything that is not exactly three slash-separated
// parts is returned verbatim, so malformed dates degrade to plain string
// comparison instead of failing.
func Normalize(raw string) string {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return raw
	}
	return parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
