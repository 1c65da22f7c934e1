package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventRequestCreated  = "request_created"
	EventRequestApproved = "request_approved"
	EventRequestRemoved  = "request_removed"
)

type RequestEvent struct {
	Type      string    `json:"type"`
	RequestID uuid.UUID `json:"request_id"`
	Timestamp string    `json:"timestamp"`
}

// Notifier adapts the hub to the connection usecase's notification contract.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) RequestCreated(recipientID, requestID uuid.UUID) {
	n.push(recipientID, EventRequestCreated, requestID)
}

func (n *Notifier) RequestApproved(senderID, requestID uuid.UUID) {
	n.push(senderID, EventRequestApproved, requestID)
}

func (n *Notifier) RequestRemoved(counterpartID, requestID uuid.UUID) {
	n.push(counterpartID, EventRequestRemoved, requestID)
}

func (n *Notifier) push(userID uuid.UUID, eventType string, requestID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RequestEvent{
		Type:      eventType,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Send(userID, b)
}
