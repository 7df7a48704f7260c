// Package config loads the process configuration from environment
// variables. Defaults keep a bare `go run ./cmd/server` functional; .env
// loading happens in main before Load is called.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	occupancy "vantraResto/internal/modules/occupancy/domain"
)

type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Store     StoreConfig
	Capacity  CapacityConfig
	Kafka     KafkaConfig
	Websocket WebsocketConfig
}

type ServerConfig struct {
	Port string
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type StoreConfig struct {
	// Latency is the simulated remote-data-layer delay per operation.
	Latency time.Duration
}

type CapacityConfig struct {
	// MaxPax is the total seat capacity used by the occupancy gauge.
	MaxPax int
	// Shifts maps shift names to service windows, e.g. dinner 19:00-01:00.
	Shifts map[string]occupancy.Shift
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type WebsocketConfig struct {
	SendBuffer int
}

// Load reads and validates the environment.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port: envOr("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
			Directory: envOr("LOG_DIR", "./logs"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   strings.TrimSpace(os.Getenv("KAFKA_TOPIC")),
		},
	}

	latencyMS, err := envInt("STORE_LATENCY_MS", 0)
	if err != nil {
		return Config{}, err
	}
	if latencyMS < 0 {
		return Config{}, fmt.Errorf("STORE_LATENCY_MS must not be negative, got %d", latencyMS)
	}
	cfg.Store.Latency = time.Duration(latencyMS) * time.Millisecond

	maxPax, err := envInt("MAX_CAPACITY_PAX", 60)
	if err != nil {
		return Config{}, err
	}
	if maxPax < 0 {
		return Config{}, fmt.Errorf("MAX_CAPACITY_PAX must not be negative, got %d", maxPax)
	}
	cfg.Capacity.MaxPax = maxPax

	shifts, err := ParseShifts(os.Getenv("SHIFTS"))
	if err != nil {
		return Config{}, err
	}
	cfg.Capacity.Shifts = shifts

	sendBuffer, err := envInt("WS_SEND_BUFFER", 8)
	if err != nil {
		return Config{}, err
	}
	if sendBuffer < 1 {
		return Config{}, fmt.Errorf("WS_SEND_BUFFER must be at least 1, got %d", sendBuffer)
	}
	cfg.Websocket.SendBuffer = sendBuffer

	return cfg, nil
}

// ParseShifts parses "lunch=12:00-16:00,dinner=19:00-01:00" into named
// service windows. An empty value yields no shifts.
func ParseShifts(raw string) (map[string]occupancy.Shift, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]occupancy.Shift{}, nil
	}
	shifts := make(map[string]occupancy.Shift)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, window, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("shift %q: expected name=HH:MM-HH:MM", part)
		}
		start, end, ok := strings.Cut(window, "-")
		if !ok {
			return nil, fmt.Errorf("shift %q: expected window HH:MM-HH:MM", part)
		}
		shift := occupancy.Shift{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
		if err := shift.Validate(); err != nil {
			return nil, fmt.Errorf("shift %q: %w", strings.TrimSpace(name), err)
		}
		shifts[strings.TrimSpace(name)] = shift
	}
	return shifts, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
