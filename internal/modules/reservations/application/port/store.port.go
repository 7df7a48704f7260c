package port

import (
	"context"

	"vantraResto/internal/modules/reservations/domain"
)

// ReservationStore is the contract the usecases depend on. The in-memory
// store is the only implementation today; tests substitute their own.
type ReservationStore interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id int64) (domain.Reservation, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Reservation, error)
	Update(ctx context.Context, id int64, patch domain.Patch) (domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	Subscribe(fn func(domain.Event)) func()
}

// EventPublisher pushes store events to an external system, e.g. the Kafka
// bridge. Implementations must tolerate being called for every mutation.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
