package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    any
		expected Status
	}{
		{name: "pending", input: " pending ", expected: StatusPending},
		{name: "confirmed uppercase", input: "CONFIRMED", expected: StatusConfirmed},
		{name: "seated", input: "seated", expected: StatusSeated},
		{name: "finished", input: "Finished", expected: StatusFinished},
		{name: "outside the closed set", input: "cancelled", expected: StatusUnknown},
		{name: "empty", input: "", expected: StatusUnknown},
		{name: "non string", input: 7, expected: StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeStatus(tc.input)
			if result != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestCanAdvance(t *testing.T) {
	cases := []struct {
		name     string
		from     Status
		to       Status
		expected bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, expected: true},
		{name: "confirmed to seated", from: StatusConfirmed, to: StatusSeated, expected: true},
		{name: "seated to finished", from: StatusSeated, to: StatusFinished, expected: true},
		{name: "skip a step", from: StatusPending, to: StatusSeated, expected: false},
		{name: "regress", from: StatusSeated, to: StatusConfirmed, expected: false},
		{name: "same status", from: StatusConfirmed, to: StatusConfirmed, expected: false},
		{name: "out of finished", from: StatusFinished, to: StatusPending, expected: false},
		{name: "unknown from", from: StatusUnknown, to: StatusPending, expected: false},
		{name: "unknown to", from: StatusPending, to: Status("limbo"), expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAdvance(tc.from, tc.to); got != tc.expected {
				t.Fatalf("CanAdvance(%q, %q) = %v, expected %v", tc.from, tc.to, got, tc.expected)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, status := range Statuses() {
		expected := status == StatusFinished
		if got := status.Terminal(); got != expected {
			t.Fatalf("Terminal(%q) = %v, expected %v", status, got, expected)
		}
	}
}
