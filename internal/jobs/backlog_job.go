package jobs

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBacklogSchedule = "@every 1m"

	backlogTimeout = 5 * time.Second
)

// PendingTasks lists the outstanding tasks of one station.
type PendingTasks interface {
	Handle(ctx context.Context, query queries.GetPendingTasksQuery) ([]queries.PendingTask, error)
}

// BacklogJob reports the number of pending tasks per station.
type BacklogJob struct {
	handler  PendingTasks
	schedule string
	cron     *cron.Cron
	logger   logrus.FieldLogger
}

func NewBacklogJob(handler PendingTasks, schedule string, logger logrus.FieldLogger) *BacklogJob {
	return &BacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.WithField("component", "backlog_job"),
	}
}

func (j *BacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backlogTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("backlog job started")
	return nil
}

// Run queries every station once and logs the result. Query failures are
// logged and the remaining stations are still reported.
func (j *BacklogJob) Run(ctx context.Context) map[order.Destination]int {
	backlog := make(map[order.Destination]int, 2)

	for _, destination := range []order.Destination{order.Kitchen, order.Bar} {
		query, err := queries.NewGetPendingTasksQuery(destination)
		if err != nil {
			j.logger.WithError(err).Error("build pending tasks query")
			continue
		}

		tasks, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.WithError(err).WithField("destination", destination.String()).Error("backlog job failed")
			continue
		}

		backlog[destination] = len(tasks)
	}

	j.logger.WithFields(logrus.Fields{
		"kitchen": backlog[order.Kitchen],
		"bar":     backlog[order.Bar],
	}).Info("station backlog")

	return backlog
}

func (j *BacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("backlog job stopped")
}
