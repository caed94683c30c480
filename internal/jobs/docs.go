// Package jobs provides scheduled background tasks for the roadside service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field and are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, jobs.SweepSettings{
//		Schedule:  "*/30 * * * * *",
//		Threshold: 10 * time.Minute,
//	}, m, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// EscalationSweepJob finds orders that have been awaiting driver acceptance
// for longer than the threshold and applies an acceptance timeout to each:
// the order goes back to PorAsignar, or to Cancelada once the retry limit is
// reached. Overlapping ticks are skipped.
//
// # Error Handling
//
// A failed pass is logged and counted in roadside_escalation_sweep_runs_total
// with result="error". The next tick retries; orders that changed while a
// pass was running are left to the next pass.
package jobs
