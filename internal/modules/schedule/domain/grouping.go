// Package domain transforms the flat reservation snapshot into the two
// orderings the dashboard renders: hour lanes for the daily schedule and
// status lanes for the kanban board. Everything here is a pure function of
// its input; groupings are recomputed per snapshot, never patched in place.
package domain

import (
	"errors"
	"fmt"
	"sort"

	reservations "vantraResto/internal/modules/reservations/domain"
)

// ErrMalformedTime is returned when a stored record's time cannot be parsed
// into an hour bucket. Validated intake makes this unreachable in practice;
// the engine still fails loudly rather than silently mis-bucketing.
var ErrMalformedTime = errors.New("malformed reservation time")

// TimeBucket is one hour lane of the daily schedule.
type TimeBucket struct {
	Key     string                     `json:"key"`
	Members []reservations.Reservation `json:"members"`
}

// ByTime buckets reservations into hour lanes keyed "HH:00", lanes ordered
// by key, members ordered by exact time. Every input record lands in exactly
// one bucket.
func ByTime(items []reservations.Reservation) ([]TimeBucket, error) {
	grouped := make(map[string][]reservations.Reservation)
	for _, item := range items {
		hour, _, err := reservations.ParseClock(item.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: reservation %d: %v", ErrMalformedTime, item.ID, err)
		}
		key := fmt.Sprintf("%02d:00", hour)
		grouped[key] = append(grouped[key], item.Clone())
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	// Lexicographic order is chronological order because keys are zero-padded.
	sort.Strings(keys)

	buckets := make([]TimeBucket, 0, len(keys))
	for _, key := range keys {
		members := grouped[key]
		sortByTime(members)
		buckets = append(buckets, TimeBucket{Key: key, Members: members})
	}
	return buckets, nil
}

// ByStatus partitions reservations into the four lifecycle lanes. All four
// lanes are always present, each internally ordered by time ascending.
func ByStatus(items []reservations.Reservation) map[reservations.Status][]reservations.Reservation {
	lanes := make(map[reservations.Status][]reservations.Reservation, 4)
	for _, status := range reservations.Statuses() {
		lanes[status] = []reservations.Reservation{}
	}
	for _, item := range items {
		lanes[item.Status] = append(lanes[item.Status], item.Clone())
	}
	for status := range lanes {
		sortByTime(lanes[status])
	}
	return lanes
}

// FilterDate keeps only reservations for the given calendar date. An empty
// date selects everything.
func FilterDate(items []reservations.Reservation, date string) []reservations.Reservation {
	if date == "" {
		return append([]reservations.Reservation(nil), items...)
	}
	filtered := make([]reservations.Reservation, 0, len(items))
	for _, item := range items {
		if item.Date == date {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func sortByTime(items []reservations.Reservation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
}
