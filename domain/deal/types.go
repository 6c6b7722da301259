package deal

// Cycle is the canonical billing cycle of a deal.
type Cycle string

const (
	CycleMonthly  Cycle = "monthly"
	CycleSixMonth Cycle = "six-month"
	CycleYearly   Cycle = "yearly"
	CycleTwoYear  Cycle = "two-year"
)

// Deal is one commission-relevant sale, normalized for the API. Ids are
// assigned per response in emit order; they carry no meaning beyond it.
type Deal struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Close        string  `json:"close"` // YYYY-MM-DD
	Subscription float64 `json:"subscription"`
	Setup        float64 `json:"setup"`
	Cycle        Cycle   `json:"cycle"`
	ChurnDate    *string `json:"churnDate"` // reserved, always null
}
