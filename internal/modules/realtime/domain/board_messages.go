package domain

import (
	"strconv"
	"time"

	occupancy "vantraResto/internal/modules/occupancy/domain"
	reservations "vantraResto/internal/modules/reservations/domain"
	schedule "vantraResto/internal/modules/schedule/domain"
)

// BuildReservationEventMessage projects a store event into the diff message
// consumers fold. The affected record travels in Data; the snapshot size
// rides along as metadata so surfaces can sanity-check their local state.
func BuildReservationEventMessage(ev reservations.Event) *Message {
	action := string(ev.Kind)
	return &Message{
		Topic:      CustomTopic(ReservationEntity, action),
		Entity:     ReservationEntity,
		Action:     action,
		ResourceID: strconv.FormatInt(ev.Reservation.ID, 10),
		Metadata:   Metadata{"snapshotCount": strconv.Itoa(len(ev.Snapshot))},
		Data:       ev.Reservation,
		Timestamp:  ev.At.UTC(),
	}
}

// BuildBoardMessage carries the recomputed kanban lanes.
func BuildBoardMessage(lanes map[reservations.Status][]reservations.Reservation, at time.Time) *Message {
	return &Message{
		Topic:     SnapshotTopic(BoardEntity),
		Entity:    BoardEntity,
		Action:    ActionSnapshot,
		Metadata:  Metadata{"lanes": strconv.Itoa(len(lanes))},
		Data:      lanes,
		Timestamp: at.UTC(),
	}
}

// BuildScheduleMessage carries the recomputed hour lanes.
func BuildScheduleMessage(buckets []schedule.TimeBucket, at time.Time) *Message {
	return &Message{
		Topic:     SnapshotTopic(ScheduleEntity),
		Entity:    ScheduleEntity,
		Action:    ActionSnapshot,
		Metadata:  Metadata{"buckets": strconv.Itoa(len(buckets))},
		Data:      buckets,
		Timestamp: at.UTC(),
	}
}

// BuildOccupancyMessage carries the recomputed utilization metrics.
func BuildOccupancyMessage(metrics occupancy.Metrics, at time.Time) *Message {
	return &Message{
		Topic:     SnapshotTopic(OccupancyEntity),
		Entity:    OccupancyEntity,
		Action:    ActionSnapshot,
		Data:      metrics,
		Timestamp: at.UTC(),
	}
}

// BuildErrorMessage composes the error envelope sent back to a single client
// when one of its commands fails.
func BuildErrorMessage(detail string, extras Metadata, at time.Time) *Message {
	metadata := Metadata{"detail": detail}
	metadata = mergeInto(metadata, extras)
	return &Message{
		Topic:     TopicSystemError,
		Entity:    SystemEntity,
		Action:    ActionError,
		Metadata:  metadata,
		Timestamp: at.UTC(),
	}
}
