package ports

import "context"

// TableSource supplies the raw cell grid of the commissions table. Row 0 is
// the header row. Implementations re-read the source on every call and must
// treat it as read-only.
type TableSource interface {
	Grid(ctx context.Context) ([][]string, error)
}
