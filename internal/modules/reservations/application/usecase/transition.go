package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vantraResto/internal/modules/reservations/application/port"
	"vantraResto/internal/modules/reservations/domain"
)

// TransitionUseCase turns staff gestures into validated status mutations.
//
// Two paths exist. The explicit buttons (confirm, arrive, release) walk the
// lifecycle one step at a time and reject anything else. The kanban drag
// path may jump between any non-terminal states so staff can correct
// mistakes; skipped steps are logged rather than refused. Both paths stamp
// the current wall clock into Time whenever a party lands in seated: from
// that moment Time means "time seated", not "time booked".
type TransitionUseCase struct {
	store port.ReservationStore
	clock func() time.Time
}

// NewTransitionUseCase wires the usecase; a nil clock falls back to time.Now.
func NewTransitionUseCase(store port.ReservationStore, clock func() time.Time) *TransitionUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &TransitionUseCase{store: store, clock: clock}
}

// Confirm advances pending -> confirmed.
func (uc *TransitionUseCase) Confirm(ctx context.Context, id int64) (domain.Reservation, error) {
	return uc.advance(ctx, id, domain.StatusConfirmed)
}

// Arrive advances confirmed -> seated and stamps the arrival time.
func (uc *TransitionUseCase) Arrive(ctx context.Context, id int64) (domain.Reservation, error) {
	return uc.advance(ctx, id, domain.StatusSeated)
}

// Release advances seated -> finished, freeing the table.
func (uc *TransitionUseCase) Release(ctx context.Context, id int64) (domain.Reservation, error) {
	return uc.advance(ctx, id, domain.StatusFinished)
}

func (uc *TransitionUseCase) advance(ctx context.Context, id int64, target domain.Status) (domain.Reservation, error) {
	current, err := uc.store.Get(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if current.Status.Terminal() {
		return domain.Reservation{}, fmt.Errorf("%w: id %d", domain.ErrTerminalStatus, id)
	}
	if !domain.CanAdvance(current.Status, target) {
		return domain.Reservation{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, target)
	}
	return uc.apply(ctx, id, target)
}

// Move serves the kanban drag-and-drop: move reservation id into the target
// lane. Dropping a card onto its own lane is a no-op that returns the current
// record without touching the store, so no redundant notifications fan out.
func (uc *TransitionUseCase) Move(ctx context.Context, id int64, target domain.Status) (domain.Reservation, error) {
	if !target.Valid() {
		return domain.Reservation{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}
	current, err := uc.store.Get(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if current.Status == target {
		return current, nil
	}
	if current.Status.Terminal() {
		return domain.Reservation{}, fmt.Errorf("%w: id %d", domain.ErrTerminalStatus, id)
	}
	if !domain.CanAdvance(current.Status, target) {
		slog.Warn("non-sequential status move",
			slog.Int64("id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(target)))
	}
	return uc.apply(ctx, id, target)
}

func (uc *TransitionUseCase) apply(ctx context.Context, id int64, target domain.Status) (domain.Reservation, error) {
	patch := domain.Patch{Status: &target}
	if target == domain.StatusSeated {
		stamp := domain.FormatClock(uc.clock())
		patch.Time = &stamp
	}
	return uc.store.Update(ctx, id, patch)
}
