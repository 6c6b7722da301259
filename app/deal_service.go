package app

import (
	"context"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"commtrack/domain/deal"
	"commtrack/internal/logger"
	"commtrack/ports"
)

// DealService runs the extraction pipeline: read the grid, resolve columns,
// fold the rows into normalized deals for the target representative. The
// service holds no state across requests.
type DealService struct {
	source ports.TableSource
	rep    string
	now    func() time.Time // injected for the date-fallback path
}

// NewDealService creates a service bound to one table source and one
// representative identity.
func NewDealService(source ports.TableSource, rep string) *DealService {
	return &DealService{source: source, rep: rep, now: time.Now}
}

// Deals re-reads the full table and returns the normalized deals. Only a
// table that cannot be read fails the request; row-level problems skip
// rows silently.
func (s *DealService) Deals(ctx context.Context) ([]deal.Deal, error) {
	grid, err := s.source.Grid(ctx)
	if err != nil {
		return nil, err
	}

	deals := deal.BuildDeals(grid, s.rep, s.now())

	dataRows := 0
	if len(grid) > 0 {
		dataRows = len(grid) - 1
	}
	logger.Log.Debug("deals extracted",
		zap.Int("rows", dataRows),
		zap.Int("deals", len(deals)),
		zap.String("rep", s.rep))
	return deals, nil
}

// Summary aggregates one extraction pass.
type Summary struct {
	Deals             int                `json:"deals"`
	SubscriptionTotal float64            `json:"subscriptionTotal"`
	SubscriptionMean  float64            `json:"subscriptionMean"`
	SetupTotal        float64            `json:"setupTotal"`
	Cycles            map[deal.Cycle]int `json:"cycles"`
}

// Summarize runs the pipeline and aggregates the result. Zero deals yield
// a zero-valued summary, not an error.
func (s *DealService) Summarize(ctx context.Context) (*Summary, error) {
	deals, err := s.Deals(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Deals:  len(deals),
		Cycles: map[deal.Cycle]int{},
	}
	if len(deals) == 0 {
		return summary, nil
	}

	subs := make([]float64, len(deals))
	setups := make([]float64, len(deals))
	for i, d := range deals {
		subs[i] = d.Subscription
		setups[i] = d.Setup
		summary.Cycles[d.Cycle]++
	}

	// stats errors only on empty input, which is handled above.
	summary.SubscriptionTotal, _ = stats.Sum(subs)
	summary.SubscriptionMean, _ = stats.Mean(subs)
	summary.SetupTotal, _ = stats.Sum(setups)
	return summary, nil
}
