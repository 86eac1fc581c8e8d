// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are driven by github.com/robfig/cron/v3 with a seconds field, so
// schedules take six fields ("*/30 * * * * *") or a descriptor ("@every 30s").
//
// # Available Jobs
//
// 1. HeartbeatJob - broadcasts a heartbeat event to every subscriber so idle
// WebSocket connections stay open behind proxies
// 2. BacklogJob - logs how many tasks are waiting at each station
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{Heartbeat: "@every 30s"}, hub, tasksHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job.
package jobs
