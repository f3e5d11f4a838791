package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

// budgetRule pairs an amount pattern with the rupee multiplier for its
// unit. The capture group holds the numeric amount, which may carry
// decimals and thousands separators.
type budgetRule struct {
	pattern    *regexp.Regexp
	multiplier float64
}

// budgetRules is tried in order and the first match wins, so a query
// naming both crores and lakhs resolves to the crore amount. The short
// bare-"l" form sits after the full lakh spellings it would shadow.
var budgetRules = []budgetRule{
	{regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*cr(?:ore)?s?`), core.Crore},
	{regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*la(?:kh|c)s?`), core.Lakh},
	{regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*l\b`), core.Lakh},
	{regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*million`), core.Crore},
}

// parseBudget extracts a rupee ceiling from a lowercased query.
func parseBudget(query string) (float64, bool) {
	for _, rule := range budgetRules {
		m := rule.pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return amount * rule.multiplier, true
	}
	return 0, false
}
