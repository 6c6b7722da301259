package deal

import (
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// dateLayouts are tried in order for generic calendar parsing. Excel date
// cells reach the normalizer already rendered as text by the reader, so
// the common spreadsheet renderings sit alongside ISO and textual forms.
// The year-month layouts pin the day to the 1st.
var dateLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
	"1/2/06",
	"1-2-06",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01",
	"1/2006",
}

// monthNames resolves full month names and the standard abbreviations,
// including the four-letter "sept".
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// NormalizeDate turns a raw close-date or month-label cell into a
// YYYY-MM-DD string. Parsed calendar fields are used as-is, with no
// timezone conversion. Input that resists every parse falls back to now's
// calendar date; rows with no date content at all never reach this point.
func NormalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(isoDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate)
		}
	}

	// "Month Year" labels like "July 2025" or "sep 2024".
	parts := strings.Fields(strings.ToLower(raw))
	if len(parts) == 2 {
		if month, ok := monthNames[parts[0]]; ok {
			if year, err := strconv.Atoi(parts[1]); err == nil {
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(isoDate)
			}
		}
	}

	return now.Format(isoDate)
}
