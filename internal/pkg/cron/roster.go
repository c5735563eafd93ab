package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

// RosterJobs keeps the calendar seeded ahead of time so December
// schedule planning never hits an unseeded January.
type RosterJobs struct {
	rosterService roster.RosterService
}

func NewRosterJobs(rosterService roster.RosterService) *RosterJobs {
	return &RosterJobs{rosterService: rosterService}
}

// RegisterJobs registers all roster-related cron jobs
func (j *RosterJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("seed_upcoming_calendar_years", 24*time.Hour, j.SeedUpcomingYears)
}

// SeedUpcomingYears seeds the current and next year. SeedDays skips
// existing dates, so re-running daily is cheap and idempotent.
func (j *RosterJobs) SeedUpcomingYears(ctx context.Context) error {
	year := time.Now().In(timekit.Location).Year()

	for _, y := range []int{year, year + 1} {
		resp, err := j.rosterService.SeedYear(ctx, y)
		if err != nil {
			return err
		}
		if resp.DaysInserted > 0 {
			slog.Info("Cron: Seeded calendar days", "year", y, "count", resp.DaysInserted)
		}
	}
	return nil
}
