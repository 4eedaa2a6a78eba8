package pushforge

import (
	"encoding/json"
	"fmt"
)

// Urgency tells the push service how time-sensitive a notification is,
// letting battery-constrained devices defer low-priority wakeups.
type Urgency string

const (
	UrgencyVeryLow Urgency = "very-low"
	UrgencyLow     Urgency = "low"
	UrgencyNormal  Urgency = "normal"
	UrgencyHigh    Urgency = "high"
)

// Message is the content and delivery attributes for one notification.
// Topic and Urgency are optional; the zero value means "not set" and the
// corresponding header is omitted.
type Message struct {
	// Payload is the notification content. It is JSON-serialized before
	// encryption; json.RawMessage and []byte values are used verbatim.
	Payload any

	// Contact is the administrator URI (mailto: or https:) the push
	// service can reach the sender at. It becomes the VAPID sub claim.
	Contact string

	// TTL is how long the push service may retain the message, in
	// seconds. Zero or negative resolves to the 86400-second maximum.
	TTL int

	// Topic, when set, lets a newer message replace one still queued
	// under the same topic.
	Topic string

	// Urgency, when set, is passed through to the push service unchanged.
	Urgency Urgency
}

func (m *Message) serializePayload() ([]byte, error) {
	switch v := m.Payload.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	}

	data, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("serialize payload: %w", err)
	}
	return data, nil
}
