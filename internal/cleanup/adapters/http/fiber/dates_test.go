package fiber

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00.250Z", time.Date(2024, 1, 15, 10, 30, 0, 250_000_000, time.UTC)},
		{"2024-01-15T12:30:00+02:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15 10:30:00.123", time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC)},
		{"2024-01-15 10:30:00+01", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"2024-01-15 10:30", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2024 10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024/01/15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"  2024-01-15  ", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlexibleTime(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got.Location() != time.UTC {
				t.Fatalf("expected UTC, got %v", got.Location())
			}
		})
	}
}

func TestParseFlexibleTime_Invalid(t *testing.T) {
	for _, in := range []string{"yesterday", "2024-13-01", "15.01.2024"} {
		if _, err := ParseFlexibleTime(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestFlexibleTime_Unmarshal(t *testing.T) {
	var body struct {
		A FlexibleTime `json:"a"`
		B FlexibleTime `json:"b"`
		C FlexibleTime `json:"c"`
		D FlexibleTime `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":"2024-01-15","b":null,"c":""}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !body.A.Valid || body.A.Ptr() == nil {
		t.Errorf("expected a to be set")
	}
	for name, f := range map[string]FlexibleTime{"b": body.B, "c": body.C, "d": body.D} {
		if f.Valid || f.Ptr() != nil {
			t.Errorf("expected %s to be unset, got %+v", name, f)
		}
	}
}

func TestFlexibleTime_UnmarshalNonString(t *testing.T) {
	var f FlexibleTime
	if err := json.Unmarshal([]byte(`1705314600`), &f); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFlexibleTime_Marshal(t *testing.T) {
	ts := time.Date(2024, 1, 15, 11, 30, 0, 5_000_000, time.FixedZone("CET", 3600))

	b, err := json.Marshal(NewFlexibleTime(&ts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-01-15T10:30:00.005Z"` {
		t.Fatalf("unexpected output: %s", b)
	}

	b, err = json.Marshal(NewFlexibleTime(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}
}
