// Package notifier fans notification events out to live subscribers.
//
// A Notifier is an explicit component: the composition root creates one and
// hands it to the transports that accept subscriber connections.
package notifier

import (
	"sync"
	"sync/atomic"

	"restaurant/internal/core/domain/model/notification"

	"github.com/sirupsen/logrus"
)

const DefaultBufferSize = 16

// Subscription is one subscriber's handle. Events arrive on C; C is closed
// once the subscription is removed, either by Unsubscribe or because the
// subscriber fell behind.
type Subscription struct {
	id uint64
	ch chan notification.Event
}

func (s *Subscription) ID() uint64 {
	return s.id
}

// C is the delivered-event stream.
func (s *Subscription) C() <-chan notification.Event {
	return s.ch
}

// Notifier holds the subscriber set. Subscribe, Unsubscribe and Broadcast are
// safe for concurrent use. A subscriber that joins during a Broadcast may or
// may not receive that event. There is no replay.
type Notifier struct {
	mu         sync.RWMutex
	subs       map[uint64]*Subscription
	nextID     atomic.Uint64
	bufferSize int
	logger     logrus.FieldLogger
}

func New(bufferSize int, logger logrus.FieldLogger) *Notifier {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Notifier{
		subs:       make(map[uint64]*Subscription),
		bufferSize: bufferSize,
		logger:     logger.WithField("component", "notifier"),
	}
}

func (n *Notifier) Subscribe() *Subscription {
	sub := &Subscription{
		id: n.nextID.Add(1),
		ch: make(chan notification.Event, n.bufferSize),
	}

	n.mu.Lock()
	n.subs[sub.id] = sub
	n.mu.Unlock()

	n.logger.WithField("subscriber", sub.id).Debug("subscribed")
	return sub
}

// Unsubscribe removes sub and closes its channel. Removing an already removed
// subscription does nothing.
func (n *Notifier) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	n.mu.Lock()
	_, ok := n.subs[sub.id]
	if ok {
		delete(n.subs, sub.id)
		close(sub.ch)
	}
	n.mu.Unlock()

	if ok {
		n.logger.WithField("subscriber", sub.id).Debug("unsubscribed")
	}
}

// Broadcast delivers event to every current subscriber without blocking.
// A subscriber whose buffer is full is dropped; the failure stays here.
func (n *Notifier) Broadcast(event notification.Event) {
	var failed []*Subscription

	n.mu.RLock()
	for _, sub := range n.subs {
		select {
		case sub.ch <- event:
		default:
			failed = append(failed, sub)
		}
	}
	n.mu.RUnlock()

	for _, sub := range failed {
		n.logger.WithFields(logrus.Fields{
			"subscriber": sub.id,
			"kind":       event.Kind,
		}).Warn("subscriber is not keeping up, dropping it")
		n.Unsubscribe(sub)
	}
}

// Count reports the number of live subscribers.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
