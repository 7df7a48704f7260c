package domain

import "strings"

// Status represents the lifecycle of a reservation on the back-office board.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusFinished  Status = "finished"
)

// statusRank orders the lifecycle for the linear button path.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusSeated:    2,
	StatusFinished:  3,
}

// Statuses lists every lifecycle state in board-lane order.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusSeated, StatusFinished}
}

// NormalizeStatus returns the canonical Status for the given input.
// The status set is closed; anything outside it maps to StatusUnknown.
func NormalizeStatus(value any) Status {
	s, ok := value.(string)
	if !ok {
		return StatusUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return StatusUnknown
	}
	status := Status(trimmed)
	if _, ok := statusRank[status]; !ok {
		return StatusUnknown
	}
	return status
}

// Valid reports whether the status belongs to the closed lifecycle set.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transition may leave this status.
func (s Status) Terminal() bool {
	return s == StatusFinished
}

// CanAdvance reports whether to is the immediate successor of from on the
// linear lifecycle (pending -> confirmed -> seated -> finished). The explicit
// staff buttons only ever move one step forward.
func CanAdvance(from, to Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}
