// Package notification defines the events pushed to connected staff clients.
// Events are ephemeral and never persisted.
package notification

import (
	"encoding/json"

	"restaurant/internal/core/domain/model/kernel"
)

type Kind string

const (
	// KindOrderReady is emitted once per order, when its last outstanding item
	// becomes ready.
	KindOrderReady Kind = "order-ready"

	// KindHeartbeat keeps idle subscriber connections alive. The order
	// lifecycle never emits it.
	KindHeartbeat Kind = "heartbeat"
)

// Event is the payload contract shared by every transport. Field names on the
// wire are fixed.
type Event struct {
	Kind      Kind   `json:"kind"`
	OrderID   string `json:"order_id,omitempty"`
	TableName string `json:"table_name,omitempty"`
}

func NewOrderReady(orderID kernel.UUID, tableName string) Event {
	return Event{
		Kind:      KindOrderReady,
		OrderID:   orderID.String(),
		TableName: tableName,
	}
}

func NewHeartbeat() Event {
	return Event{Kind: KindHeartbeat}
}

// Marshal encodes the event in its wire format.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal decodes an event previously produced by Marshal.
func Unmarshal(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}
