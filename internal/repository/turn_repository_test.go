package repository

import (
	"encoding/json"
	"reflect"
	"testing"

	"skill-finder/internal/domain/skill"
)

func TestDecodeStoredSkills_RoundTrip(t *testing.T) {
	in := []skill.Extracted{
		{Name: "Python", Category: "Programming Language", Confidence: 0.7, Evidence: "python"},
		{Name: "SQL", Category: "Database / Query", Confidence: 0.7, Evidence: "sql"},
	}

	data, err := json.Marshal(encodeSkills(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := DecodeStoredSkills(data)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, got)
	}
}

func TestDecodeStoredSkills_SkipsMalformedRecords(t *testing.T) {
	data := []byte(`[
		{"name":"Python","category":"Programming Language","confidence":0.7,"evidence":"python"},
		{"name":12345},
		{"category":"no name here"},
		"not an object",
		{"name":"SQL","category":"Database / Query","confidence":0.7,"evidence":"sql"}
	]`)

	got := DecodeStoredSkills(data)
	if len(got) != 2 {
		t.Fatalf("expected 2 valid records, got %+v", got)
	}
	if got[0].Name != "Python" || got[1].Name != "SQL" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestDecodeStoredSkills_NonArrayPayload(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(`{}`), []byte(`"oops"`), []byte(`garbage`)} {
		got := DecodeStoredSkills(data)
		if len(got) != 0 {
			t.Fatalf("expected empty list for %q, got %+v", data, got)
		}
	}
}
