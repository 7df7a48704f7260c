package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"vantraResto/internal/modules/reservations/domain"
)

// MemoryStore is the single authoritative reservation collection. It owns
// identity assignment and creation timestamps, simulates the latency of a
// remote data layer, and publishes an event after every successful mutation.
//
// Mutations are strictly serialized: one mutation completes, including its
// notification fan-out, before the next begins. Reads are only excluded
// during the data swap itself, so subscribers may call List from a callback.
type MemoryStore struct {
	opMu     chan struct{} // serializes mutation + notify as one unit
	notifier *Notifier
	clock    func() time.Time
	latency  time.Duration

	mu    sync.RWMutex
	items []domain.Reservation
}

// Option customises a MemoryStore at construction time.
type Option func(*MemoryStore)

// WithClock injects the wall clock used for CreatedAt stamps. Tests pin it.
func WithClock(clock func() time.Time) Option {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLatency makes every operation wait the given duration before touching
// the collection, mimicking a remote data layer. Zero disables the wait.
func WithLatency(d time.Duration) Option {
	return func(s *MemoryStore) { s.latency = d }
}

// WithSeed preloads the collection. Seed records keep their IDs; subsequent
// creates continue above the highest seeded ID.
func WithSeed(items []domain.Reservation) Option {
	return func(s *MemoryStore) {
		s.items = make([]domain.Reservation, 0, len(items))
		for _, item := range items {
			s.items = append(s.items, item.Clone())
		}
	}
}

// NewMemoryStore builds an empty store wired to a fresh notifier.
func NewMemoryStore(opts ...Option) *MemoryStore {
	store := &MemoryStore{
		opMu:     make(chan struct{}, 1),
		notifier: NewNotifier(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Subscribe registers an observer for store events. See Notifier.Subscribe.
func (s *MemoryStore) Subscribe(fn func(domain.Event)) func() {
	return s.notifier.Subscribe(fn)
}

// List returns a defensive copy of the full collection.
func (s *MemoryStore) List(ctx context.Context) ([]domain.Reservation, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), nil
}

// Get returns a copy of the reservation with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id int64) (domain.Reservation, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Reservation{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), nil
		}
	}
	return domain.Reservation{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
}

// Create assigns identity and CreatedAt, appends the record and notifies.
// Drafts without a status default to confirmed (the programmatic intake
// default; the staff form and walk-in paths set their status explicitly).
func (s *MemoryStore) Create(ctx context.Context, draft domain.Draft) (domain.Reservation, error) {
	if err := s.acquire(ctx); err != nil {
		return domain.Reservation{}, err
	}
	defer s.release()
	if err := s.wait(ctx); err != nil {
		return domain.Reservation{}, err
	}

	status := draft.Status
	if status == domain.StatusUnknown {
		status = domain.StatusConfirmed
	}
	now := s.clock()

	s.mu.Lock()
	record := domain.Reservation{
		ID:        s.nextIDLocked(),
		Name:      draft.Name,
		Pax:       draft.Pax,
		Date:      draft.Date,
		Time:      draft.Time,
		Status:    status,
		Origin:    draft.Origin,
		Tags:      append([]string(nil), draft.Tags...),
		Phone:     draft.Phone,
		CreatedAt: now,
	}
	s.items = append(s.items, record)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.Publish(domain.Event{Kind: domain.EventCreated, Reservation: record.Clone(), Snapshot: snapshot, At: now})
	return record.Clone(), nil
}

// Update shallow-merges the patch into the identified record and notifies.
// Unknown IDs are a hard error. A status change out of the finished state is
// rejected here so no caller, however confused, can resurrect a closed visit.
func (s *MemoryStore) Update(ctx context.Context, id int64, patch domain.Patch) (domain.Reservation, error) {
	if err := s.acquire(ctx); err != nil {
		return domain.Reservation{}, err
	}
	defer s.release()
	if err := s.wait(ctx); err != nil {
		return domain.Reservation{}, err
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Reservation{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	current := s.items[idx]
	if patch.Status != nil && current.Status.Terminal() && *patch.Status != current.Status {
		s.mu.Unlock()
		return domain.Reservation{}, fmt.Errorf("%w: id %d", domain.ErrTerminalStatus, id)
	}
	merged := patch.Apply(current)
	s.items[idx] = merged
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.Publish(domain.Event{Kind: domain.EventUpdated, Reservation: merged.Clone(), Snapshot: snapshot, At: s.clock()})
	return merged.Clone(), nil
}

// Delete removes the record permanently. Deleting an absent ID is a silent
// no-op and, since nothing changed, publishes nothing.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		slog.Debug("delete of absent reservation ignored", slog.Int64("id", id))
		return nil
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.Publish(domain.Event{Kind: domain.EventDeleted, Reservation: removed.Clone(), Snapshot: snapshot, At: s.clock()})
	return nil
}

func (s *MemoryStore) acquire(ctx context.Context) error {
	select {
	case s.opMu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MemoryStore) release() {
	<-s.opMu
}

func (s *MemoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *MemoryStore) indexLocked(id int64) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) nextIDLocked() int64 {
	var max int64
	for _, item := range s.items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func (s *MemoryStore) snapshotLocked() []domain.Reservation {
	snapshot := make([]domain.Reservation, 0, len(s.items))
	for _, item := range s.items {
		snapshot = append(snapshot, item.Clone())
	}
	return snapshot
}
