package domain

import "testing"

func TestNormalizeOrigin(t *testing.T) {
	cases := map[any]Origin{
		"whatsapp": OriginWhatsapp,
		" Phone ":  OriginPhone,
		"WALK-IN":  OriginWalkIn,
		"web":      OriginWeb,
		"fax":      OriginUnknown,
		"":         OriginUnknown,
	}

	for input, expected := range cases {
		if got := NormalizeOrigin(input); got != expected {
			t.Fatalf("NormalizeOrigin(%v) = %q, expected %q", input, got, expected)
		}
	}
	if got := NormalizeOrigin(nil); got != OriginUnknown {
		t.Fatalf("NormalizeOrigin(nil) = %q, expected unknown", got)
	}
}

func TestOriginIntakeStatus(t *testing.T) {
	if got := OriginWalkIn.IntakeStatus(); got != StatusSeated {
		t.Fatalf("walk-in intake status = %q, expected seated", got)
	}
	for _, origin := range []Origin{OriginWhatsapp, OriginPhone, OriginWeb, OriginUnknown} {
		if got := origin.IntakeStatus(); got != StatusPending {
			t.Fatalf("%q intake status = %q, expected pending", origin, got)
		}
	}
}
