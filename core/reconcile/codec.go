package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses payload as a JSON array of R. Field names match
// case-insensitively, missing fields keep their zero value and unknown fields
// are ignored. A payload that is not an array, including null, is rejected.
func Decode[R any](kind Kind, payload []byte) ([]R, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: ErrNotArray}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: err}
	}

	records := make([]R, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, &DecodeError{Kind: kind, Index: i, Err: err}
		}
	}
	return records, nil
}

// CountRecords returns the length of the top-level JSON array in payload,
// or 0 when payload is not an array.
func CountRecords(payload []byte) int {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return 0
	}
	return len(raw)
}

// validateAll checks every record against its validate tags and fails on the
// first invalid one.
func validateAll[R any](kind Kind, records []R) error {
	for i := range records {
		if err := validate.Struct(records[i]); err != nil {
			return &DecodeError{Kind: kind, Index: i, Err: fmt.Errorf("invalid record: %s", violationReason(err))}
		}
	}
	return nil
}

// violationReason renders validator output as a short list of failing fields.
func violationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "empty " + strings.Join(fields, ", ")
}

// timestampLayouts are tried in order. Zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a point in time as sent by the ERP. It accepts RFC 3339 as
// well as the zone-less forms the upstream emits, with optional fractional
// seconds. Null and the empty string decode to the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// ParseTimestamp parses s with the layouts accepted by Timestamp and returns
// the instant in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
