package types

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Timestamp is an instant that unmarshals from either an ISO-8601 string or
// the {"_seconds": n, "_nanoseconds": m} struct some document stores
// serialize instants as. It always marshals as an RFC 3339 UTC string.
type Timestamp struct {
	time.Time
}

type secondsEncoding struct {
	Seconds     *int64 `json:"_seconds"`
	Nanoseconds int64  `json:"_nanoseconds"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NewTimestamp wraps t, normalized to UTC
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values without a zone are UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}

// NormalizeTimestamp converts a raw stored timestamp to an instant.
// The seconds representation wins when present.
func NormalizeTimestamp(raw []byte) (time.Time, error) {
	var ts Timestamp
	if err := ts.UnmarshalJSON(raw); err != nil {
		return time.Time{}, err
	}
	return ts.Time, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '{':
		var enc secondsEncoding
		if err := json.Unmarshal(data, &enc); err != nil {
			return fmt.Errorf("Timestamp: %w", err)
		}
		if enc.Seconds == nil {
			return fmt.Errorf("Timestamp: object without _seconds")
		}
		ts.Time = time.Unix(*enc.Seconds, enc.Nanoseconds).UTC()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("Timestamp: %w", err)
		}
		t, err := ParseTimestamp(s)
		if err != nil {
			return fmt.Errorf("Timestamp: %w", err)
		}
		ts.Time = t
		return nil
	}

	return fmt.Errorf("Timestamp: expected an ISO-8601 string or a seconds object")
}

// MarshalJSON implements the json.Marshaler interface.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.UTC().Format(time.RFC3339Nano))
}
