package jobs

import (
	"fmt"
	"log/slog"

	"roadside/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	escalationSweepJob *EscalationSweepJob
}

func NewJobManager(
	sweepHandler SweepHandler,
	sweepSettings SweepSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		escalationSweepJob: NewEscalationSweepJob(sweepHandler, sweepSettings, m, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.escalationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start escalation sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running passes.
func (jm *JobManager) StopAll() {
	jm.escalationSweepJob.Stop()
}
