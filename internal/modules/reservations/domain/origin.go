package domain

import "strings"

// Origin tags the channel a reservation arrived through. It is informational
// except for walk-ins, which skip straight to the seated state.
type Origin string

const (
	OriginUnknown  Origin = ""
	OriginWhatsapp Origin = "whatsapp"
	OriginPhone    Origin = "phone"
	OriginWalkIn   Origin = "walk-in"
	OriginWeb      Origin = "web"
)

var allowedOrigins = map[string]Origin{
	string(OriginWhatsapp): OriginWhatsapp,
	string(OriginPhone):    OriginPhone,
	string(OriginWalkIn):   OriginWalkIn,
	string(OriginWeb):      OriginWeb,
}

// NormalizeOrigin returns the canonical Origin for the given input.
// Unrecognized channels map to OriginUnknown rather than failing intake.
func NormalizeOrigin(value any) Origin {
	s, ok := value.(string)
	if !ok {
		return OriginUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return OriginUnknown
	}
	if origin, ok := allowedOrigins[trimmed]; ok {
		return origin
	}
	return OriginUnknown
}

// IntakeStatus returns the status a fresh reservation starts in when it
// arrives through this channel via the staff intake form.
func (o Origin) IntakeStatus() Status {
	if o == OriginWalkIn {
		return StatusSeated
	}
	return StatusPending
}
