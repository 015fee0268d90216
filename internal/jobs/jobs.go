// Package jobs runs periodic background work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/ganot/landlord/internal/store"
	"github.com/robfig/cron/v3"
)

// SnapshotSource provides the latest store state.
type SnapshotSource interface {
	Snapshot() *store.Snapshot
}

// SummarySink receives each recomputed summary. *metrics.Metrics satisfies it.
type SummarySink interface {
	SetSummary(dashboard.Summary)
}

// SummaryJob recomputes the dashboard summary from the latest snapshot.
type SummaryJob struct {
	source SnapshotSource
	sink   SummarySink
	logger *slog.Logger
}

// NewSummaryJob creates a summary job. sink may be nil.
func NewSummaryJob(source SnapshotSource, sink SummarySink, logger *slog.Logger) *SummaryJob {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SummaryJob{source: source, sink: sink, logger: logger}
}

// Run implements cron.Job.
func (j *SummaryJob) Run() {
	snap := j.source.Snapshot()
	summary := snap.Summary()
	if j.sink != nil {
		j.sink.SetSummary(summary)
	}
	j.logger.Info("dashboard summary",
		"version", snap.Version(),
		"properties", summary.TotalProperties,
		"occupancy_rate", summary.OccupancyRateLabel,
		"overdue_rents", summary.OverdueRents,
		"open_maintenance", summary.OpenMaintenance,
	)
}

// Scheduler wraps a UTC cron runner.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		logger: logger,
	}
}

// Schedule registers job under a cron spec such as "@every 5m".
func (s *Scheduler) Schedule(name, spec string, job cron.Job) error {
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	s.logger.Info("scheduled job", "name", name, "spec", spec)
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
