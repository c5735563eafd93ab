package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	// Overview assembles the landing dashboard as of now: who is absent
	// now and soon, this week's shifts, and the running month's hours.
	Overview(ctx context.Context, now time.Time) (OverviewResponse, error)
}
