package deal

import "testing"

func TestNormalizeCycle(t *testing.T) {
	tests := []struct {
		in   string
		want Cycle
	}{
		{"", CycleMonthly},
		{"   ", CycleMonthly},
		{"Monthly", CycleMonthly},
		{"per month", CycleMonthly},
		{"6 month", CycleSixMonth},
		{"6-month", CycleSixMonth},
		{"every 6 months", CycleSixMonth},
		{"6", CycleSixMonth},
		{"Yearly", CycleYearly},
		{"1 year", CycleYearly},
		{"annual, 1 year", CycleYearly},
		{"2 Year", CycleTwoYear},
		{"2-year", CycleTwoYear},
		{"2 years upfront", CycleTwoYear},
		{"2", CycleTwoYear},
		// Nothing matches: default.
		{"weekly", CycleMonthly},
		{"quarterly", CycleMonthly},
	}

	for _, tt := range tests {
		if got := NormalizeCycle(tt.in); got != tt.want {
			t.Errorf("NormalizeCycle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every input maps to one of the four canonical tokens; the normalizer
// never produces anything else.
func TestNormalizeCycleIsTotal(t *testing.T) {
	canonical := map[Cycle]bool{
		CycleMonthly:  true,
		CycleSixMonth: true,
		CycleYearly:   true,
		CycleTwoYear:  true,
	}

	inputs := []string{
		"", "garbage", "MONTH", "26 weeks", "bi-annual", "62", "year 2",
		"month 6", "!!!", "monthly\t",
	}
	for _, in := range inputs {
		if got := NormalizeCycle(in); !canonical[got] {
			t.Errorf("NormalizeCycle(%q) = %q, not a canonical cycle", in, got)
		}
	}
}
