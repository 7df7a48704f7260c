package domain

import "time"

// EventKind identifies the mutation an Event describes.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is published after every successful store mutation. It carries both
// the typed diff (Kind plus the affected record) and a fresh full snapshot so
// consumers that simply re-render "the new list" never need a store read from
// inside their callback.
type Event struct {
	Kind        EventKind
	Reservation Reservation
	Snapshot    []Reservation
	At          time.Time
}
