package fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// OutputLayout is ISO 8601 in UTC with milliseconds.
const OutputLayout = "2006-01-02T15:04:05.000Z07:00"

// Accepted input layouts, tried in order. Layouts without a zone parse as
// UTC, and fractional seconds are accepted after any seconds field.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unable to parse %q; use ISO 8601 (2024-01-15T10:30:00Z) or PostgreSQL format (2024-01-15 10:30:00.123)", ErrInvalidDate, s)
}

// FlexibleTime is an optional JSON date. null and "" leave it unset.
type FlexibleTime struct {
	Time  time.Time
	Valid bool
}

func NewFlexibleTime(t *time.Time) FlexibleTime {
	if t == nil {
		return FlexibleTime{}
	}
	return FlexibleTime{Time: t.UTC(), Valid: true}
}

func (f *FlexibleTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = FlexibleTime{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected a string, got %s", ErrInvalidDate, b)
	}
	if strings.TrimSpace(s) == "" {
		*f = FlexibleTime{}
		return nil
	}

	t, err := ParseFlexibleTime(s)
	if err != nil {
		return err
	}
	*f = FlexibleTime{Time: t, Valid: true}
	return nil
}

func (f FlexibleTime) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.UTC().Format(OutputLayout))
}

func (f FlexibleTime) Ptr() *time.Time {
	if !f.Valid {
		return nil
	}
	t := f.Time
	return &t
}
