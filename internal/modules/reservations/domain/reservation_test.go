package domain

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "evening", input: "20:30", hour: 20, minute: 30},
		{name: "midnight", input: "00:00", hour: 0, minute: 0},
		{name: "last minute", input: "23:59", hour: 23, minute: 59},
		{name: "missing padding", input: "9:30", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "12:61", wantErr: true},
		{name: "non numeric", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hour != tc.hour || minute != tc.minute {
				t.Fatalf("ParseClock(%q) = %d:%d, expected %d:%d", tc.input, hour, minute, tc.hour, tc.minute)
			}
		})
	}
}

func TestDraftValidate(t *testing.T) {
	valid := Draft{Name: "Ana", Pax: 4, Date: "2025-01-10", Time: "20:30", Origin: OriginPhone}

	cases := []struct {
		name    string
		mutate  func(*Draft)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Draft) {}},
		{name: "missing name", mutate: func(d *Draft) { d.Name = "  " }, wantErr: true},
		{name: "zero pax", mutate: func(d *Draft) { d.Pax = 0 }, wantErr: true},
		{name: "negative pax", mutate: func(d *Draft) { d.Pax = -2 }, wantErr: true},
		{name: "bad date", mutate: func(d *Draft) { d.Date = "10/01/2025" }, wantErr: true},
		{name: "unpadded time", mutate: func(d *Draft) { d.Time = "9:30" }, wantErr: true},
		{name: "explicit status ok", mutate: func(d *Draft) { d.Status = StatusSeated }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)
			err := draft.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPatchApplyShallowReplace(t *testing.T) {
	original := Reservation{
		ID:     3,
		Name:   "Ana",
		Pax:    4,
		Date:   "2025-01-10",
		Time:   "20:30",
		Status: StatusConfirmed,
		Tags:   []string{"vip", "window"},
	}

	name := "Ana Maria"
	tags := []string{"vip"}
	status := StatusSeated
	merged := Patch{Name: &name, Tags: &tags, Status: &status}.Apply(original)

	if merged.Name != "Ana Maria" || merged.Status != StatusSeated {
		t.Fatalf("patch not applied: %+v", merged)
	}
	if merged.Pax != 4 || merged.Time != "20:30" {
		t.Fatalf("unset fields must stay untouched: %+v", merged)
	}
	if len(merged.Tags) != 1 || merged.Tags[0] != "vip" {
		t.Fatalf("tags must be fully replaced, got %v", merged.Tags)
	}
	if original.Name != "Ana" || len(original.Tags) != 2 || original.Status != StatusConfirmed {
		t.Fatalf("input record was mutated: %+v", original)
	}

	merged.Tags[0] = "changed"
	if tags[0] != "vip" {
		t.Fatal("applied patch must not alias the caller's tag slice")
	}
}

func TestPatchValidate(t *testing.T) {
	blank := " "
	badPax := 0
	badTime := "26:00"
	unknown := Status("limbo")

	cases := []struct {
		name    string
		patch   Patch
		wantErr bool
	}{
		{name: "empty patch", patch: Patch{}},
		{name: "blank name", patch: Patch{Name: &blank}, wantErr: true},
		{name: "bad pax", patch: Patch{Pax: &badPax}, wantErr: true},
		{name: "bad time", patch: Patch{Time: &badTime}, wantErr: true},
		{name: "unknown status", patch: Patch{Status: &unknown}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.patch.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNormalizeDraft(t *testing.T) {
	raw := map[string]any{
		"name":   " Ana ",
		"pax":    float64(4),
		"date":   "2025-01-10",
		"time":   "20:30",
		"status": "confirmed",
		"origin": "phone",
		"tags":   []any{"vip", "allergy:nuts"},
		"phone":  "+34 600 000 000",
	}

	draft := NormalizeDraft(raw)
	if draft.Name != "Ana" || draft.Pax != 4 || draft.Date != "2025-01-10" || draft.Time != "20:30" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if draft.Status != StatusConfirmed || draft.Origin != OriginPhone {
		t.Fatalf("unexpected enums: %+v", draft)
	}
	if len(draft.Tags) != 2 || draft.Tags[0] != "vip" || draft.Tags[1] != "allergy:nuts" {
		t.Fatalf("tags must preserve order: %v", draft.Tags)
	}
}

func TestNormalizePatchPresence(t *testing.T) {
	patch := NormalizePatch(map[string]any{"pax": float64(6), "phone": ""})
	if patch.Pax == nil || *patch.Pax != 6 {
		t.Fatalf("pax should be set: %+v", patch)
	}
	if patch.Phone == nil || *patch.Phone != "" {
		t.Fatal("present phone key should set the field even when empty")
	}
	if patch.Name != nil || patch.Time != nil || patch.Status != nil || patch.Tags != nil || patch.Date != nil {
		t.Fatalf("absent keys must stay nil: %+v", patch)
	}
}
