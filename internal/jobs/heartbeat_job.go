package jobs

import (
	"restaurant/internal/core/domain/model/notification"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const DefaultHeartbeatSchedule = "@every 30s"

// Broadcaster delivers an event to every live subscriber.
type Broadcaster interface {
	Broadcast(event notification.Event)
	Count() int
}

// HeartbeatJob keeps subscriber connections busy. It never touches the
// order lifecycle.
type HeartbeatJob struct {
	hub      Broadcaster
	schedule string
	cron     *cron.Cron
	logger   logrus.FieldLogger
}

func NewHeartbeatJob(hub Broadcaster, schedule string, logger logrus.FieldLogger) *HeartbeatJob {
	return &HeartbeatJob{
		hub:      hub,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.WithField("component", "heartbeat_job"),
	}
}

// Start registers the job on its schedule.
func (j *HeartbeatJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("heartbeat job started")
	return nil
}

// Run sends one heartbeat. Nobody listening is not an error.
func (j *HeartbeatJob) Run() {
	subscribers := j.hub.Count()
	if subscribers == 0 {
		return
	}

	j.hub.Broadcast(notification.NewHeartbeat())
	j.logger.WithField("subscribers", subscribers).Debug("heartbeat sent")
}

func (j *HeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("heartbeat job stopped")
}
