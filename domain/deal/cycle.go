package deal

import "strings"

// NormalizeCycle maps a free-text billing-cycle description onto the closed
// Cycle enum. Total over all inputs. Rule order matters: "6 month" must
// fall through the monthly rule into six-month, and "2 year" through the
// yearly rule into two-year.
func NormalizeCycle(raw string) Cycle {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return CycleMonthly
	case strings.Contains(s, "month") && !strings.Contains(s, "6"):
		return CycleMonthly
	case strings.Contains(s, "6"):
		return CycleSixMonth
	case strings.Contains(s, "year") && !strings.Contains(s, "2"):
		return CycleYearly
	case strings.Contains(s, "2"):
		return CycleTwoYear
	default:
		return CycleMonthly
	}
}
