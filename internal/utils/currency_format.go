package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in the Indian digit grouping convention with a
// rupee prefix: groups of two after the initial three digits, e.g.
// "₹ 12,34,567.5". A nil amount (no price available) renders as an em dash.
func FormatINR(amount *decimal.Decimal) string {
	if amount == nil {
		return "—"
	}

	s := amount.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	return "₹ " + sign + groupIndian(intPart) + fracPart
}

// FormatINRRounded rounds to two decimal places before formatting. Rounding
// happens only here, at the presentation boundary, never during accumulation.
func FormatINRRounded(amount *decimal.Decimal) string {
	if amount == nil {
		return "—"
	}
	rounded := amount.Round(2)
	return FormatINR(&rounded)
}

// groupIndian inserts commas into a bare digit string: the last three digits
// form one group, every two digits before that form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
