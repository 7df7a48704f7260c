package domain

import (
	"errors"
	"reflect"
	"testing"

	reservations "vantraResto/internal/modules/reservations/domain"
)

func sample() []reservations.Reservation {
	return []reservations.Reservation{
		{ID: 1, Name: "Late", Pax: 2, Date: "2025-01-10", Time: "21:15", Status: reservations.StatusPending},
		{ID: 2, Name: "Early", Pax: 4, Date: "2025-01-10", Time: "09:30", Status: reservations.StatusConfirmed},
		{ID: 3, Name: "Mid", Pax: 3, Date: "2025-01-10", Time: "20:45", Status: reservations.StatusSeated},
		{ID: 4, Name: "AlsoMid", Pax: 6, Date: "2025-01-10", Time: "20:10", Status: reservations.StatusConfirmed},
		{ID: 5, Name: "Morning", Pax: 2, Date: "2025-01-11", Time: "09:05", Status: reservations.StatusFinished},
	}
}

func TestByTimeBucketsAndOrders(t *testing.T) {
	buckets, err := ByTime(sample())
	if err != nil {
		t.Fatalf("byTime: %v", err)
	}

	keys := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		keys = append(keys, bucket.Key)
	}
	if !reflect.DeepEqual(keys, []string{"09:00", "20:00", "21:00"}) {
		t.Fatalf("unexpected bucket keys %v", keys)
	}

	// The 09:00 lane is internally time-ordered despite insertion order.
	nine := buckets[0]
	if len(nine.Members) != 2 || nine.Members[0].Time != "09:05" || nine.Members[1].Time != "09:30" {
		t.Fatalf("members must sort by exact time: %+v", nine.Members)
	}

	twenty := buckets[1]
	if len(twenty.Members) != 2 || twenty.Members[0].ID != 4 || twenty.Members[1].ID != 3 {
		t.Fatalf("unexpected 20:00 lane: %+v", twenty.Members)
	}
}

func TestByTimePartitionsExactly(t *testing.T) {
	input := sample()
	buckets, err := ByTime(input)
	if err != nil {
		t.Fatalf("byTime: %v", err)
	}

	seen := make(map[int64]int)
	for _, bucket := range buckets {
		for _, member := range bucket.Members {
			seen[member.ID]++
		}
	}
	if len(seen) != len(input) {
		t.Fatalf("expected %d distinct records, got %d", len(input), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("record %d appears %d times", id, count)
		}
	}
}

func TestByTimeIsIdempotent(t *testing.T) {
	input := sample()
	first, err := ByTime(input)
	if err != nil {
		t.Fatalf("byTime: %v", err)
	}
	second, err := ByTime(input)
	if err != nil {
		t.Fatalf("byTime: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same input must produce structurally equal output")
	}
}

func TestByTimeFailsLoudlyOnMalformedTime(t *testing.T) {
	input := sample()
	input[2].Time = "9:30"

	_, err := ByTime(input)
	if !errors.Is(err, ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}

func TestByStatusAlwaysHasFourSortedLanes(t *testing.T) {
	lanes := ByStatus(sample())
	if len(lanes) != 4 {
		t.Fatalf("expected exactly 4 lanes, got %d", len(lanes))
	}
	for _, status := range reservations.Statuses() {
		members, ok := lanes[status]
		if !ok {
			t.Fatalf("lane %q missing", status)
		}
		for i := 1; i < len(members); i++ {
			if members[i-1].Time > members[i].Time {
				t.Fatalf("lane %q not time-ordered: %+v", status, members)
			}
		}
	}
	if len(lanes[reservations.StatusConfirmed]) != 2 {
		t.Fatalf("expected 2 confirmed, got %d", len(lanes[reservations.StatusConfirmed]))
	}

	empty := ByStatus(nil)
	if len(empty) != 4 {
		t.Fatalf("empty input must still yield 4 lanes, got %d", len(empty))
	}
}

func TestFilterDate(t *testing.T) {
	all := FilterDate(sample(), "")
	if len(all) != 5 {
		t.Fatalf("empty date must select everything, got %d", len(all))
	}
	day := FilterDate(sample(), "2025-01-11")
	if len(day) != 1 || day[0].ID != 5 {
		t.Fatalf("unexpected filter result: %+v", day)
	}
}
