package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Schedules holds one cron spec per job. An empty spec disables that job.
type Schedules struct {
	Heartbeat string
	Backlog   string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	names   []string
	started int
}

// NewJobManager creates the jobs whose schedule is set.
func NewJobManager(
	schedules Schedules,
	hub Broadcaster,
	tasksHandler PendingTasks,
	logger logrus.FieldLogger,
) *JobManager {
	jm := &JobManager{}
	if schedules.Heartbeat != "" {
		jm.add("heartbeat", NewHeartbeatJob(hub, schedules.Heartbeat, logger))
	}
	if schedules.Backlog != "" && tasksHandler != nil {
		jm.add("backlog", NewBacklogJob(tasksHandler, schedules.Backlog, logger))
	}
	return jm
}

func (jm *JobManager) add(name string, j job) {
	jm.jobs = append(jm.jobs, j)
	jm.names = append(jm.names, name)
}

// StartAll starts all scheduled jobs.
// If one fails to start, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
		jm.started = i + 1
	}
	return nil
}

// StopAll stops the started jobs gracefully, waiting for running ones.
func (jm *JobManager) StopAll() {
	for i := jm.started - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
	jm.started = 0
}

// Len reports how many jobs are configured.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
