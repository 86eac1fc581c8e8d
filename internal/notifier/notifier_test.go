package notifier_test

import (
	"sync"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/notification"
	"restaurant/internal/notifier"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(t *testing.T, buffer int) (*notifier.Notifier, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return notifier.New(buffer, logger), hook
}

func receive(t *testing.T, sub *notifier.Subscription) notification.Event {
	t.Helper()
	select {
	case e, ok := <-sub.C():
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
		return notification.Event{}
	}
}

func TestNotifier_BroadcastReachesEverySubscriber(t *testing.T) {
	n, _ := newNotifier(t, 4)
	a := n.Subscribe()
	b := n.Subscribe()
	event := notification.NewOrderReady(kernel.NewUUID(), "T1")

	n.Broadcast(event)

	assert.Equal(t, event, receive(t, a))
	assert.Equal(t, event, receive(t, b))
	assert.Equal(t, 2, n.Count())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNotifier_NoReplayForLateSubscribers(t *testing.T) {
	n, _ := newNotifier(t, 4)
	n.Broadcast(notification.NewHeartbeat())

	late := n.Subscribe()

	select {
	case e := <-late.C():
		t.Fatalf("late subscriber got %v", e)
	default:
	}
}

func TestNotifier_UnsubscribeIsIdempotent(t *testing.T) {
	n, _ := newNotifier(t, 1)
	sub := n.Subscribe()

	n.Unsubscribe(sub)
	n.Unsubscribe(sub)
	n.Unsubscribe(nil)

	_, ok := <-sub.C()
	assert.False(t, ok)
	assert.Zero(t, n.Count())

	assert.NotPanics(t, func() { n.Broadcast(notification.NewHeartbeat()) })
}

func TestNotifier_SlowSubscriberIsDroppedOthersStillServed(t *testing.T) {
	n, hook := newNotifier(t, 1)
	slow := n.Subscribe()
	fast := n.Subscribe()

	n.Broadcast(notification.NewHeartbeat())
	assert.Equal(t, notification.KindHeartbeat, receive(t, fast).Kind)

	// slow never reads, so its single slot is still taken
	ready := notification.NewOrderReady(kernel.NewUUID(), "T2")
	n.Broadcast(ready)

	assert.Equal(t, ready, receive(t, fast))
	assert.Equal(t, 1, n.Count())

	assert.Equal(t, notification.KindHeartbeat, receive(t, slow).Kind)
	_, ok := <-slow.C()
	assert.False(t, ok, "dropped subscriber's channel is closed")

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, slow.ID(), entry.Data["subscriber"])
		}
	}
	assert.True(t, warned)
}

func TestNotifier_ConcurrentSubscribeAndBroadcast(t *testing.T) {
	n, _ := newNotifier(t, 64)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := n.Subscribe()
			n.Unsubscribe(sub)
		}()
		go func() {
			defer wg.Done()
			n.Broadcast(notification.NewHeartbeat())
		}()
	}
	wg.Wait()

	assert.Zero(t, n.Count())
}

func TestNew_Defaults(t *testing.T) {
	n := notifier.New(0, nil)
	sub := n.Subscribe()

	for i := 0; i < notifier.DefaultBufferSize; i++ {
		n.Broadcast(notification.NewHeartbeat())
	}

	assert.Equal(t, 1, n.Count(), "default buffer holds DefaultBufferSize events")
	assert.Len(t, sub.C(), notifier.DefaultBufferSize)
}
