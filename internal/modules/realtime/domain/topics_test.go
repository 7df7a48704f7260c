package domain

import "testing"

func TestTopicBuilders(t *testing.T) {
	cases := []struct {
		name     string
		actual   string
		expected string
	}{
		{name: "created", actual: CreatedTopic(ReservationEntity), expected: "reservation.created"},
		{name: "updated", actual: UpdatedTopic(ReservationEntity), expected: "reservation.updated"},
		{name: "deleted", actual: DeletedTopic(ReservationEntity), expected: "reservation.deleted"},
		{name: "board snapshot", actual: SnapshotTopic(BoardEntity), expected: "board.snapshot"},
		{name: "custom", actual: CustomTopic(" schedule ", " snapshot "), expected: "schedule.snapshot"},
		{name: "empty entity", actual: SnapshotTopic(""), expected: ""},
		{name: "empty action", actual: CustomTopic("board", "  "), expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.actual != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, tc.actual)
			}
		})
	}
}

func TestFeedTopicsCoverEverySurface(t *testing.T) {
	topics := FeedTopics()
	expected := map[string]struct{}{
		"reservation.created": {},
		"reservation.updated": {},
		"reservation.deleted": {},
		"board.snapshot":      {},
		"schedule.snapshot":   {},
		"occupancy.snapshot":  {},
	}
	if len(topics) != len(expected) {
		t.Fatalf("expected %d topics, got %d: %v", len(expected), len(topics), topics)
	}
	for _, topic := range topics {
		if _, ok := expected[topic]; !ok {
			t.Fatalf("unexpected topic %q", topic)
		}
	}
}
