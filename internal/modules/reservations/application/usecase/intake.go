package usecase

import (
	"context"
	"log/slog"
	"time"

	"vantraResto/internal/modules/reservations/application/port"
	"vantraResto/internal/modules/reservations/domain"
)

// IntakeUseCase covers the creation and editing surface of the dashboard:
// the staff intake form, the walk-in fast path, field edits and removal.
// Validation happens here so invalid data never reaches the store.
type IntakeUseCase struct {
	store port.ReservationStore
	clock func() time.Time
}

// NewIntakeUseCase wires the usecase; a nil clock falls back to time.Now.
func NewIntakeUseCase(store port.ReservationStore, clock func() time.Time) *IntakeUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &IntakeUseCase{store: store, clock: clock}
}

// Intake registers a reservation submitted through the staff form. Drafts
// without an explicit status start in the channel's intake status: pending
// for booked channels, seated for walk-ins. A walk-in additionally has its
// time stamped with the current wall clock, since the party is already at
// the door.
func (uc *IntakeUseCase) Intake(ctx context.Context, draft domain.Draft) (domain.Reservation, error) {
	if draft.Origin == domain.OriginWalkIn {
		draft.Status = domain.StatusSeated
		draft.Time = domain.FormatClock(uc.clock())
	} else if draft.Status == domain.StatusUnknown {
		draft.Status = draft.Origin.IntakeStatus()
	}
	if err := draft.Validate(); err != nil {
		return domain.Reservation{}, err
	}
	record, err := uc.store.Create(ctx, draft)
	if err != nil {
		return domain.Reservation{}, err
	}
	slog.Info("reservation intake",
		slog.Int64("id", record.ID),
		slog.String("status", string(record.Status)),
		slog.String("origin", string(record.Origin)),
		slog.Int("pax", record.Pax))
	return record, nil
}

// Edit applies a validated field patch. Status changes go through the
// transition usecase, not here; a status carried in the patch is dropped.
func (uc *IntakeUseCase) Edit(ctx context.Context, id int64, patch domain.Patch) (domain.Reservation, error) {
	patch.Status = nil
	if err := patch.Validate(); err != nil {
		return domain.Reservation{}, err
	}
	return uc.store.Update(ctx, id, patch)
}

// Remove deletes the reservation permanently. Removing an already removed
// record is a no-op; the confirm-then-commit safety lives in the UI.
func (uc *IntakeUseCase) Remove(ctx context.Context, id int64) error {
	return uc.store.Delete(ctx, id)
}
