package usecase

import (
	"context"
	"log/slog"

	occupancy "vantraResto/internal/modules/occupancy/domain"
	"vantraResto/internal/modules/realtime/domain"
	reservations "vantraResto/internal/modules/reservations/domain"
	schedule "vantraResto/internal/modules/schedule/domain"
)

// BoardFeed is the glue between the store's notifier and the websocket
// surfaces. For every store event it broadcasts the typed diff plus the
// recomputed board, schedule and occupancy snapshots, so every connected
// surface converges on the same state without polling.
type BoardFeed struct {
	broadcast    *BroadcastUseCase
	occupancyCfg occupancy.Config
}

// NewBoardFeed wires the feed. The occupancy config is captured once; the
// feed broadcasts whole-day metrics (shift slicing stays an HTTP concern).
func NewBoardFeed(broadcast *BroadcastUseCase, occupancyCfg occupancy.Config) *BoardFeed {
	occupancyCfg.Shift = nil
	return &BoardFeed{broadcast: broadcast, occupancyCfg: occupancyCfg}
}

// HandleEventFunc adapts HandleEvent to the store notifier's subscriber
// signature.
func (f *BoardFeed) HandleEventFunc() func(reservations.Event) {
	return func(ev reservations.Event) {
		f.HandleEvent(context.Background(), ev)
	}
}

// HandleEvent fans one store event out to the surfaces. The diff message is
// always sent; a derived snapshot that fails to compute is logged and
// skipped rather than blocking the rest of the feed.
func (f *BoardFeed) HandleEvent(ctx context.Context, ev reservations.Event) {
	f.broadcast.Execute(ctx, domain.BuildReservationEventMessage(ev))

	lanes := schedule.ByStatus(ev.Snapshot)
	f.broadcast.Execute(ctx, domain.BuildBoardMessage(lanes, ev.At))

	buckets, err := schedule.ByTime(ev.Snapshot)
	if err != nil {
		slog.Error("board feed schedule recompute failed", slog.Any("error", err))
	} else {
		f.broadcast.Execute(ctx, domain.BuildScheduleMessage(buckets, ev.At))
	}

	metrics := occupancy.Compute(ev.Snapshot, f.occupancyCfg)
	f.broadcast.Execute(ctx, domain.BuildOccupancyMessage(metrics, ev.At))
}
