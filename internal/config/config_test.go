package config

import (
	"testing"
	"time"
)

func TestParseShifts(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "empty", raw: "", want: 0},
		{name: "single", raw: "lunch=12:00-16:00", want: 1},
		{name: "multiple with midnight crossing", raw: "lunch=12:00-16:00, dinner=19:00-01:00", want: 2},
		{name: "trailing comma", raw: "lunch=12:00-16:00,", want: 1},
		{name: "missing name", raw: "12:00-16:00", wantErr: true},
		{name: "missing window separator", raw: "lunch=12:00", wantErr: true},
		{name: "unpadded clock", raw: "lunch=9:00-16:00", wantErr: true},
		{name: "not a clock", raw: "lunch=noon-16:00", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shifts, err := ParseShifts(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(shifts) != tc.want {
				t.Fatalf("expected %d shifts, got %d", tc.want, len(shifts))
			}
		})
	}
}

func TestParseShiftsKeepsWindows(t *testing.T) {
	shifts, err := ParseShifts("dinner=19:00-01:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dinner, ok := shifts["dinner"]
	if !ok {
		t.Fatalf("expected dinner shift, got %v", shifts)
	}
	if dinner.Start != "19:00" || dinner.End != "01:00" {
		t.Fatalf("unexpected window %q-%q", dinner.Start, dinner.End)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"STORE_LATENCY_MS", "MAX_CAPACITY_PAX", "SHIFTS",
		"KAFKA_BROKERS", "KAFKA_TOPIC", "WS_SEND_BUFFER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Store.Latency != 0 {
		t.Fatalf("expected zero latency, got %v", cfg.Store.Latency)
	}
	if cfg.Capacity.MaxPax != 60 {
		t.Fatalf("expected default capacity 60, got %d", cfg.Capacity.MaxPax)
	}
	if len(cfg.Capacity.Shifts) != 0 {
		t.Fatalf("expected no shifts, got %v", cfg.Capacity.Shifts)
	}
	if len(cfg.Kafka.Brokers) != 0 || cfg.Kafka.Topic != "" {
		t.Fatalf("expected kafka disabled by default, got %+v", cfg.Kafka)
	}
	if cfg.Websocket.SendBuffer != 8 {
		t.Fatalf("expected default send buffer 8, got %d", cfg.Websocket.SendBuffer)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_LATENCY_MS", "250")
	t.Setenv("MAX_CAPACITY_PAX", "48")
	t.Setenv("SHIFTS", "dinner=19:00-01:00")
	t.Setenv("KAFKA_BROKERS", "broker-a:9092, broker-b:9092")
	t.Setenv("KAFKA_TOPIC", "resto.events")
	t.Setenv("WS_SEND_BUFFER", "32")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Store.Latency != 250*time.Millisecond {
		t.Fatalf("expected 250ms latency, got %v", cfg.Store.Latency)
	}
	if cfg.Capacity.MaxPax != 48 {
		t.Fatalf("expected capacity 48, got %d", cfg.Capacity.MaxPax)
	}
	if len(cfg.Capacity.Shifts) != 1 {
		t.Fatalf("expected one shift, got %v", cfg.Capacity.Shifts)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("expected two brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Websocket.SendBuffer != 32 {
		t.Fatalf("expected send buffer 32, got %d", cfg.Websocket.SendBuffer)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative latency", key: "STORE_LATENCY_MS", value: "-5"},
		{name: "non-numeric latency", key: "STORE_LATENCY_MS", value: "fast"},
		{name: "negative capacity", key: "MAX_CAPACITY_PAX", value: "-1"},
		{name: "zero send buffer", key: "WS_SEND_BUFFER", value: "0"},
		{name: "malformed shift", key: "SHIFTS", value: "dinner19:00-01:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
