package domain

import (
	"fmt"
	"strings"
	"time"

	"vantraResto/internal/shared/normalization"
)

// Clock layouts shared by every surface that renders or validates times.
const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// Reservation is the central back-office entity. Date and Time stay as venue
// local strings end to end; they are never routed through UTC conversions.
// After a party is seated, Time is repurposed to mean "time seated".
type Reservation struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Pax       int       `json:"pax"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    Status    `json:"status"`
	Origin    Origin    `json:"origin,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers can never mutate stored state in place.
func (r Reservation) Clone() Reservation {
	cloned := r
	if r.Tags != nil {
		cloned.Tags = append([]string(nil), r.Tags...)
	}
	return cloned
}

// ParseClock validates a zero-padded 24-hour "HH:MM" value and returns its
// components. Zero padding is a hard requirement: every downstream sort and
// bucket key relies on lexicographic order matching chronological order.
func ParseClock(value string) (hour, minute int, err error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, 0, fmt.Errorf("clock value %q is not zero-padded HH:MM", value)
	}
	parsed, parseErr := time.Parse(ClockLayout, value)
	if parseErr != nil {
		return 0, 0, fmt.Errorf("clock value %q: %w", value, parseErr)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// FormatClock renders a wall-clock instant in the venue-local "HH:MM" form
// used for booking times and seated stamps.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// Draft carries caller-supplied fields for a reservation that does not exist
// yet. Identity and CreatedAt are assigned by the store, never by callers.
type Draft struct {
	Name   string   `json:"name"`
	Pax    int      `json:"pax"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
	Status Status   `json:"status,omitempty"`
	Origin Origin   `json:"origin,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Phone  string   `json:"phone,omitempty"`
}

// Validate rejects drafts that would store partial or malformed data.
// Every failure wraps ErrValidation so callers match with errors.Is.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if d.Pax < 1 {
		return fmt.Errorf("%w: pax must be at least 1, got %d", ErrValidation, d.Pax)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("%w: date %q is not %s", ErrValidation, d.Date, DateLayout)
	}
	if _, _, err := ParseClock(d.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if d.Status != StatusUnknown && !d.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, d.Status)
	}
	return nil
}

// NormalizeDraft constructs a Draft from a loosely typed payload, the shape
// the dashboard submits over HTTP and websocket commands.
func NormalizeDraft(raw map[string]any) Draft {
	return Draft{
		Name:   normalization.AsString(raw["name"]),
		Pax:    normalization.AsInt(raw["pax"]),
		Date:   normalization.AsString(raw["date"]),
		Time:   normalization.AsString(raw["time"]),
		Status: NormalizeStatus(raw["status"]),
		Origin: NormalizeOrigin(raw["origin"]),
		Tags:   normalization.AsStringSlice(raw["tags"]),
		Phone:  normalization.AsString(raw["phone"]),
	}
}

// Patch captures a partial edit. Nil fields are left untouched; set fields
// fully replace the existing value (shallow merge, no deep merging of tags).
type Patch struct {
	Name   *string
	Pax    *int
	Date   *string
	Time   *string
	Status *Status
	Tags   *[]string
	Phone  *string
}

// IsZero reports whether the patch carries no changes at all.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Pax == nil && p.Date == nil && p.Time == nil &&
		p.Status == nil && p.Tags == nil && p.Phone == nil
}

// Validate checks only the fields the patch actually sets.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrValidation)
	}
	if p.Pax != nil && *p.Pax < 1 {
		return fmt.Errorf("%w: pax must be at least 1, got %d", ErrValidation, *p.Pax)
	}
	if p.Date != nil {
		if _, err := time.Parse(DateLayout, *p.Date); err != nil {
			return fmt.Errorf("%w: date %q is not %s", ErrValidation, *p.Date, DateLayout)
		}
	}
	if p.Time != nil {
		if _, _, err := ParseClock(*p.Time); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
	}
	return nil
}

// Apply merges the patch into a copy of the reservation and returns it.
// The input record is never mutated.
func (p Patch) Apply(r Reservation) Reservation {
	merged := r.Clone()
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Pax != nil {
		merged.Pax = *p.Pax
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Time != nil {
		merged.Time = *p.Time
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.Tags != nil {
		merged.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Phone != nil {
		merged.Phone = *p.Phone
	}
	return merged
}

// NormalizePatch builds a Patch from a loosely typed payload. Only keys
// present in the payload become set fields; absent keys stay untouched.
func NormalizePatch(raw map[string]any) Patch {
	var patch Patch
	if _, ok := raw["name"]; ok {
		name := normalization.AsString(raw["name"])
		patch.Name = &name
	}
	if _, ok := raw["pax"]; ok {
		pax := normalization.AsInt(raw["pax"])
		patch.Pax = &pax
	}
	if _, ok := raw["date"]; ok {
		date := normalization.AsString(raw["date"])
		patch.Date = &date
	}
	if _, ok := raw["time"]; ok {
		clock := normalization.AsString(raw["time"])
		patch.Time = &clock
	}
	if _, ok := raw["status"]; ok {
		status := NormalizeStatus(raw["status"])
		patch.Status = &status
	}
	if _, ok := raw["tags"]; ok {
		tags := normalization.AsStringSlice(raw["tags"])
		patch.Tags = &tags
	}
	if _, ok := raw["phone"]; ok {
		phone := normalization.AsString(raw["phone"])
		patch.Phone = &phone
	}
	return patch
}
