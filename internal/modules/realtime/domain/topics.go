package domain

import "strings"

// Entities with realtime topics. The reservation entity carries the diff
// stream; the derived entities carry recomputed snapshots per mutation.
const (
	SystemEntity      = "system"
	ReservationEntity = "reservation"
	BoardEntity       = "board"
	ScheduleEntity    = "schedule"
	OccupancyEntity   = "occupancy"
)

const (
	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionError     = "error"
	ActionSnapshot  = "snapshot"
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
)

const (
	TopicSystemConnected = SystemEntity + "." + ActionConnected
	TopicSystemPong      = SystemEntity + "." + ActionPong
	TopicSystemError     = SystemEntity + "." + ActionError
)

// SnapshotTopic returns the canonical snapshot topic for the given entity.
func SnapshotTopic(entity string) string {
	return buildEntityTopic(entity, ActionSnapshot)
}

// CreatedTopic returns the canonical created topic for the given entity.
func CreatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionCreated)
}

// UpdatedTopic returns the canonical updated topic for the given entity.
func UpdatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionUpdated)
}

// DeletedTopic returns the canonical deleted topic for the given entity.
func DeletedTopic(entity string) string {
	return buildEntityTopic(entity, ActionDeleted)
}

// CustomTopic returns the canonical topic for the given entity and action.
func CustomTopic(entity, action string) string {
	return buildEntityTopic(entity, action)
}

// FeedTopics lists every topic a board surface subscribes to by default.
func FeedTopics() []string {
	return []string{
		CreatedTopic(ReservationEntity),
		UpdatedTopic(ReservationEntity),
		DeletedTopic(ReservationEntity),
		SnapshotTopic(BoardEntity),
		SnapshotTopic(ScheduleEntity),
		SnapshotTopic(OccupancyEntity),
	}
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}
