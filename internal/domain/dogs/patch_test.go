package dogs

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func mustRaw(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return raw
}

func TestParsePatch_KnownFields(t *testing.T) {
	p, err := ParsePatch(mustRaw(t, `{
		"name": "Rex",
		"breed": "Border Collie",
		"sex": "MALE",
		"status": "RESERVED",
		"birth_date": "2025-11-02",
		"tutor_id": "t1"
	}`))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}

	if p.Name == nil || *p.Name != "Rex" {
		t.Fatalf("expected name Rex, got %v", p.Name)
	}
	if p.Sex == nil || *p.Sex != SexMale {
		t.Fatalf("expected sex MALE, got %v", p.Sex)
	}
	if p.Status == nil || *p.Status != StatusReserved {
		t.Fatalf("expected status RESERVED, got %v", p.Status)
	}
	want := time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)
	if p.BirthDate == nil || !p.BirthDate.Equal(want) {
		t.Fatalf("expected birth date %v, got %v", want, p.BirthDate)
	}
	if !p.TutorID.Present || p.TutorID.Value == nil || *p.TutorID.Value != "t1" {
		t.Fatalf("expected tutor ref t1, got %#v", p.TutorID)
	}
	if p.MotherID.Present {
		t.Fatalf("mother_id was not sent, must not be present")
	}
}

func TestParsePatch_NullClearsReference(t *testing.T) {
	p, err := ParsePatch(mustRaw(t, `{"tutor_id": null}`))
	if err != nil {
		t.Fatalf("ParsePatch error: %v", err)
	}
	if !p.TutorID.Present || p.TutorID.Value != nil {
		t.Fatalf("expected present ref with nil value, got %#v", p.TutorID)
	}
}

func TestParsePatch_RejectsUnknownField(t *testing.T) {
	_, err := ParsePatch(mustRaw(t, `{"color": "brown"}`))

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Field != "color" {
		t.Fatalf("expected offending field named, got %s", fe.Field)
	}
}

func TestParsePatch_RejectsWrongTypes(t *testing.T) {
	cases := map[string]string{
		"name as number":   `{"name": 42}`,
		"bad sex":          `{"sex": "YES"}`,
		"bad status":       `{"status": "GONE"}`,
		"bad date":         `{"birth_date": "11/02/2025"}`,
		"tutor as object":  `{"tutor_id": {"id": "t1"}}`,
		"mother as number": `{"mother_id": 7}`,
	}
	for label, body := range cases {
		_, err := ParsePatch(mustRaw(t, body))
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: expected FieldError, got %v", label, err)
		}
	}
}
