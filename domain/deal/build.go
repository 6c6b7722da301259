package deal

import (
	"strconv"
	"strings"
	"time"
)

// BuildDeals folds the raw grid (row 0 = header) into normalized deals for
// one representative. Rows failing the filter are skipped silently and do
// not consume an id; emitted ids are dense 1..N in encounter order. The
// grid is never mutated.
func BuildDeals(grid [][]string, rep string, now time.Time) []Deal {
	deals := []Deal{}
	if len(grid) == 0 {
		return deals
	}

	cols := ResolveColumns(grid[0])
	for _, row := range grid[1:] {
		if cell(row, cols.Rep) != rep {
			continue
		}

		customer := cell(row, cols.Customer)
		month := cell(row, cols.Month)
		closeRaw := cell(row, cols.CloseDate)
		subscription := parseAmount(cell(row, cols.Subscription))

		if customer == "" || (month == "" && closeRaw == "") || subscription == 0 {
			continue
		}

		// The explicit close date wins over the month label.
		dateSource := closeRaw
		if dateSource == "" {
			dateSource = month
		}

		deals = append(deals, Deal{
			ID:           len(deals) + 1,
			Name:         customer,
			Close:        NormalizeDate(dateSource, now),
			Subscription: subscription,
			Setup:        parseAmount(cell(row, cols.SetupFee)),
			Cycle:        NormalizeCycle(cell(row, cols.BillingCycle)),
		})
	}
	return deals
}

// cell reads a column from a row, tolerating missing columns and ragged rows.
func cell(row []string, col int) string {
	if col == ColMissing || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseAmount parses a decimal amount, defaulting to 0 on failure.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
