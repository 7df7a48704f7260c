// Package domain derives utilization metrics from the reservation snapshot.
// The calculator is a pure function: the same reservation set and config
// always yield the same metrics.
package domain

import (
	"math"

	reservations "vantraResto/internal/modules/reservations/domain"
)

// Party-mix thresholds. The advisory report that consumes these counts lives
// outside this core; the classification itself is a fixed derived quantity.
const (
	couplesMaxPax = 2
	groupsMaxPax  = 6
)

// Config carries the venue capacity and an optional service window.
type Config struct {
	MaxCapacityPax int
	Shift          *Shift
}

// Metrics is the calculator output consumed by the dashboard gauges.
type Metrics struct {
	TotalReservations   int `json:"totalReservations"`
	TotalPax            int `json:"totalPax"`
	OccupancyPercentage int `json:"occupancyPercentage"`
	Couples             int `json:"couples"`
	Groups              int `json:"groups"`
	Events              int `json:"events"`
}

// Compute filters the set by the configured shift, then aggregates counts,
// pax, clamped occupancy percentage and the party-size mix.
func Compute(items []reservations.Reservation, cfg Config) Metrics {
	var metrics Metrics
	for _, item := range items {
		if cfg.Shift != nil && !cfg.Shift.Contains(item.Time) {
			continue
		}
		metrics.TotalReservations++
		metrics.TotalPax += item.Pax
		switch {
		case item.Pax <= couplesMaxPax:
			metrics.Couples++
		case item.Pax <= groupsMaxPax:
			metrics.Groups++
		default:
			metrics.Events++
		}
	}
	metrics.OccupancyPercentage = percentage(metrics.TotalPax, cfg.MaxCapacityPax)
	return metrics
}

// percentage clamps at 100 even when overbooked so downstream gauges stay
// well-formed. An unset capacity yields 0 rather than dividing by zero.
func percentage(totalPax, maxCapacityPax int) int {
	if maxCapacityPax <= 0 {
		return 0
	}
	pct := int(math.Round(float64(totalPax) / float64(maxCapacityPax) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
