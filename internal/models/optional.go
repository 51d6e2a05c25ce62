package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UnsetTime is what the API sends for a timestamp that was never set.
const UnsetTime = "0001-01-01T00:00:00Z"

// EmptyParagraph is what the web editor stores for an empty rich text field.
const EmptyParagraph = "<p></p>"

// Time is a timestamp that may be absent. The sentinel value and null both
// decode to an invalid Time; anything else must be RFC 3339.
type Time struct {
	Time  time.Time
	Valid bool
}

// NewTime returns a valid Time
func NewTime(t time.Time) Time {
	return Time{Time: t, Valid: true}
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" || *raw == UnsetTime {
		*t = Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", *raw, err)
	}
	*t = NewTime(parsed)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// HTML is rich text from the web editor. Empty strings and the editor's
// empty paragraph decode as absent.
type HTML struct {
	Source string
	Valid  bool
}

// NewHTML wraps source, treating blank content as absent
func NewHTML(source string) HTML {
	if strings.TrimSpace(source) == "" || strings.TrimSpace(source) == EmptyParagraph {
		return HTML{}
	}
	return HTML{Source: source, Valid: true}
}

func (h *HTML) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*h = HTML{}
		return nil
	}
	*h = NewHTML(*raw)
	return nil
}

func (h HTML) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Source)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
