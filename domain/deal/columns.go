package deal

// ColMissing marks a logical field with no matching header.
const ColMissing = -1

// Columns maps logical fields to physical column indices in the source grid.
type Columns struct {
	Month        int
	CloseDate    int
	Customer     int
	Rep          int
	SetupFee     int
	Subscription int
	BillingCycle int
}

// closeDateHeaders is probed in order and the first header present wins.
// The order is load-bearing: exact close-date spellings outrank the
// generic "Date".
var closeDateHeaders = []string{"Close Date", "Closed Date", "Date Closed", "Date"}

// ResolveColumns maps the header row to column indices. Lookups are
// case-sensitive exact matches; a duplicated header resolves to its first
// occurrence. Missing columns resolve to ColMissing and are handled
// per-field downstream.
func ResolveColumns(header []string) Columns {
	return Columns{
		Month:        indexOf(header, "Month"),
		CloseDate:    firstIndexOf(header, closeDateHeaders),
		Customer:     indexOf(header, "Customer"),
		Rep:          indexOf(header, "Rep"),
		SetupFee:     indexOf(header, "Setup Fee"),
		Subscription: indexOf(header, "Subscription Amount"),
		BillingCycle: indexOf(header, "Billing Cycle"),
	}
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return ColMissing
}

func firstIndexOf(header []string, names []string) int {
	for _, name := range names {
		if i := indexOf(header, name); i != ColMissing {
			return i
		}
	}
	return ColMissing
}
