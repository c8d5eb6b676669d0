package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mzansijobs/careerhub/internal/types"
)

// numberToken matches an amount with an optional k-suffix, after currency
// symbols and separators have been stripped.
var numberToken = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kK])?`)

// spacedThousands joins digit groups split by spaces ("60 000" -> "60000").
var spacedThousands = regexp.MustCompile(`(\d)\s+(\d{3})\b`)

var currencyStrip = strings.NewReplacer("ZAR", "", "zar", "", "R", "", ",", "")

// Salary normalizes a raw salary string into a range plus period.
// Zero numeric tokens leave the range nil; one token sets min=max; with two
// or more tokens min and max are the smaller and larger of the first two,
// regardless of input order.
func Salary(raw string) types.Salary {
	var sal types.Salary

	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return sal
	}

	tokens := extractAmounts(cleaned)
	switch len(tokens) {
	case 0:
		return sal
	case 1:
		v := tokens[0]
		sal.Min, sal.Max = &v, &v
	default:
		lo, hi := tokens[0], tokens[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		sal.Min, sal.Max = &lo, &hi
	}

	sal.Currency = "ZAR"
	sal.Period = inferPeriod(cleaned)
	sal.Visible = true
	return sal
}

// extractAmounts pulls integer amounts out of the text, expanding k-suffixes.
func extractAmounts(s string) []int {
	stripped := currencyStrip.Replace(s)
	for spacedThousands.MatchString(stripped) {
		stripped = spacedThousands.ReplaceAllString(stripped, "$1$2")
	}

	matches := numberToken.FindAllStringSubmatch(stripped, -1)
	amounts := make([]int, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			f *= 1000
		}
		amounts = append(amounts, int(f))
	}
	return amounts
}

func inferPeriod(s string) types.SalaryPeriod {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "annual"),
		strings.Contains(lower, "year"),
		strings.Contains(lower, "p.a"),
		strings.Contains(lower, "per annum"):
		return types.PeriodAnnually
	case strings.Contains(lower, "hour"):
		return types.PeriodHourly
	default:
		return types.PeriodMonthly
	}
}
