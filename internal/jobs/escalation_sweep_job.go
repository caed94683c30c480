package jobs

import (
	"context"
	"log/slog"
	"time"

	"roadside/internal/core/application/usecases/commands"
	"roadside/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep every thirty seconds.
const DefaultSweepSchedule = "*/30 * * * * *"

// SweepHandler runs one escalation pass and reports how many orders moved.
type SweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepStaleAcceptancesCommand) (int, error)
}

// SweepSettings configures the escalation sweep. Schedule is a cron
// expression with a seconds field.
type SweepSettings struct {
	Schedule  string
	Threshold time.Duration
	BatchSize int
}

// EscalationSweepJob periodically escalates orders whose driver has not
// accepted in time. A pass that is still running when the next tick fires
// makes that tick a no-op.
type EscalationSweepJob struct {
	handler  SweepHandler
	settings SweepSettings
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewEscalationSweepJob(
	handler SweepHandler,
	settings SweepSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *EscalationSweepJob {
	if settings.Schedule == "" {
		settings.Schedule = DefaultSweepSchedule
	}
	if settings.BatchSize <= 0 {
		settings.BatchSize = commands.DefaultSweepBatchSize
	}

	return &EscalationSweepJob{
		handler:  handler,
		settings: settings,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "escalation_sweep_job"),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Start schedules the sweep.
func (j *EscalationSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.settings.Schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escalation sweep job started",
		"schedule", j.settings.Schedule, "threshold", j.settings.Threshold)
	return nil
}

// Stop unschedules the sweep and waits for a running pass to finish.
func (j *EscalationSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Escalation sweep job stopped")
}

func (j *EscalationSweepJob) run(ctx context.Context) {
	cmd, err := commands.NewSweepStaleAcceptancesCommand(j.now(), j.settings.Threshold, j.settings.BatchSize)
	if err != nil {
		j.metrics.SweepRuns.WithLabelValues("error").Inc()
		j.logger.ErrorContext(ctx, "Escalation sweep misconfigured", "error", err)
		return
	}

	escalated, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.metrics.SweepRuns.WithLabelValues("error").Inc()
		j.logger.ErrorContext(ctx, "Escalation sweep failed", "escalated", escalated, "error", err)
		return
	}

	j.metrics.SweepRuns.WithLabelValues("ok").Inc()
	if escalated > 0 {
		j.logger.InfoContext(ctx, "Escalation sweep finished", "escalated", escalated)
	}
}
