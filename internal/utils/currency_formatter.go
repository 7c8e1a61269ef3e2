package utils

import (
	"fmt"
	"strconv"
	"strings"

	"atmsim/internal/constants"
)

// FormatFromCents renders a cent amount as a human-readable figure with
// thousands separators, e.g. 5000000 -> "50,000.00".
func FormatFromCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	units := cents / constants.CentsPerUnit
	rem := cents % constants.CentsPerUnit

	return fmt.Sprintf("%s%s.%02d", sign, groupDigits(units), rem)
}

func groupDigits(n int64) string {
	digits := fmt.Sprintf("%d", n)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseToCents converts user-entered amounts like "150", "1,500.5" or
// "150.50" into cents. Separator commas are tolerated, extra decimal digits
// and trailing garbage are rejected.
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if amountStr == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	// the sign applies to the whole amount, cents included
	negative := strings.HasPrefix(amountStr, "-")
	if negative {
		amountStr = amountStr[1:]
	}

	parts := strings.Split(amountStr, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	var units int64
	if parts[0] != "" {
		u, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || u < 0 {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
		units = u
	}

	var cents int64
	if len(parts) == 2 && parts[1] != "" {
		centStr := parts[1]
		if len(centStr) > 2 {
			return 0, fmt.Errorf("amounts support at most two decimal places: %s", amountStr)
		}
		if len(centStr) == 1 {
			centStr += "0" // "150.5" -> 50 cents
		}
		c, err := strconv.ParseInt(centStr, 10, 64)
		if err != nil || c < 0 {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
		cents = c
	}

	total := units*constants.CentsPerUnit + cents
	if negative {
		total = -total
	}
	return total, nil
}
