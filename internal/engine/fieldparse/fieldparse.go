// internal/engine/fieldparse/fieldparse.go
package fieldparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	priceCleaner = strings.NewReplacer("₹", "", "$", "", ",", "", "%", "", " ", "")
	splitPattern = regexp.MustCompile(`^\s*(\d{1,3})\s*/\s*(\d{1,3})\s*$`)
	budgetRegex  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(k|lakh|lakhs|crore|crores)?`)
)

// placeholder values that mean "not provided" in profile metadata.
func isPlaceholder(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "-", "NA", "N/A", "NIL", "NONE":
		return true
	}
	return false
}

// ParsePrice normalizes a quoted price string like "₹43,000.00" to a float.
// Returns false for empty or placeholder input. Never fails.
func ParsePrice(s string) (float64, bool) {
	if isPlaceholder(s) {
		return 0, false
	}

	cleaned := priceCleaner.Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseSplitPair parses "<a>/<b>" percentage pairs. The semantic label is the
// caller's: first number is male% for gender splits and home-country% for
// geography splits. Malformed input yields absent, never an error.
func ParseSplitPair(s string) (int, int, bool) {
	m := splitPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}

	a, err1 := strconv.Atoi(m[1])
	b, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

// ParseCount coerces follower/view count strings, stripping thousands
// separators. Defaults to 0 on failure.
func ParseCount(s string) int64 {
	if isPlaceholder(s) {
		return 0
	}

	cleaned := priceCleaner.Replace(strings.TrimSpace(s))
	// Some exports write counts as floats ("12000.0").
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil && v >= 0 {
		return int64(v)
	}
	return 0
}

// ParseRate coerces an engagement-rate percentage string. The second return
// distinguishes "0%" from absent data.
func ParseRate(s string) (float64, bool) {
	if isPlaceholder(s) {
		return 0, false
	}

	cleaned := priceCleaner.Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ExtractBudget scans free text for the first budget figure with an optional
// localized multiplier suffix (k=10^3, lakh=10^5, crore=10^7).
func ExtractBudget(text string) (float64, bool) {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, "budget")
	if idx < 0 {
		return 0, false
	}

	m := budgetRegex.FindStringSubmatch(lower[idx:])
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "k":
		v *= 1e3
	case "lakh", "lakhs":
		v *= 1e5
	case "crore", "crores":
		v *= 1e7
	}
	return v, true
}
