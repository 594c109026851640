package dates

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeMonth canonicalizes a "YYYY-MM" month string to a 4-digit,
// zero-padded form ("2025-7" -> "2025-07"). The month must parse as an
// integer in 1..12; the year as a positive integer. No day-of-month
// calendar validation happens here or anywhere else.
func NormalizeMonth(s string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 0 || year > 9999 {
		return "", fmt.Errorf("invalid year in %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month in %q", s)
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}
