package domain

import "time"

// Metadata carries string-valued context alongside a message payload.
type Metadata map[string]string

// Message is the envelope every dashboard surface receives over the
// websocket feed. Data holds the payload for the given entity and action.
type Message struct {
	Topic      string    `json:"topic"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId,omitempty"`
	Metadata   Metadata  `json:"metadata,omitempty"`
	Data       any       `json:"data,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func mergeInto(base Metadata, extra Metadata) Metadata {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = make(Metadata, len(extra))
	}
	for key, value := range extra {
		base[key] = value
	}
	return base
}
