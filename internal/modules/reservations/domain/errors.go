package domain

import "errors"

var (
	// ErrNotFound is returned when the targeted reservation no longer exists,
	// typically because another surface deleted it concurrently.
	ErrNotFound = errors.New("reservation not found")

	// ErrValidation is returned when a draft or patch fails shape checks.
	// Invalid data is rejected before it ever reaches the store.
	ErrValidation = errors.New("reservation validation failed")

	// ErrInvalidTransition is returned by the button path when the requested
	// step is not the immediate successor of the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTerminalStatus is returned when any path attempts to move a
	// reservation out of the finished state.
	ErrTerminalStatus = errors.New("reservation already finished")
)
