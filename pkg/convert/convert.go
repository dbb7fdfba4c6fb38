// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient type conversions for request payloads and
query strings.

Query helpers swallow parse failures and fall back to defaults, which is the
contract list endpoints expose ("page=abc" behaves like no page at all). The
[Bool] and [Timestamp] types do the same job for JSON bodies written by admin
tooling that is not always strict about types.
*/
package convert

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	return ToIntD(s, 0)
}

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
		return v
	}

	return def
}

// ToInt64 parses a base-10 int64, reporting whether the value was usable.
func ToInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}

// # Loose JSON Types

// Bool is a boolean that decodes from JSON booleans, the numbers 0/1 and
// their string forms. Internally it is always a plain bool.
type Bool bool

// UnmarshalJSON implements [json.Unmarshaler].
func (b *Bool) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		return nil
	}

	// Strip quotes so "true" and "1" behave like their bare forms
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	switch strings.ToLower(raw) {
	case "true", "1":
		*b = true
	case "false", "0", "":
		*b = false
	default:
		return fmt.Errorf("convert: cannot use %s as boolean", data)
	}

	return nil
}

// MarshalJSON always emits a JSON boolean.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Value implements [driver.Valuer] so the column receives a real boolean.
func (b Bool) Value() (driver.Value, error) {
	return bool(b), nil
}

// dateLayouts lists the accepted textual forms of a [Timestamp], most precise first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Timestamp is a point in time that decodes from RFC 3339 strings as well as
// plain "YYYY-MM-DD" dates.
type Timestamp time.Time

// ParseTimestamp parses s using the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("convert: %q is not a valid date", s)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("convert: date must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// MarshalJSON emits RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

// Time returns the underlying [time.Time].
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Value implements [driver.Valuer].
func (t Timestamp) Value() (driver.Value, error) {
	return time.Time(t), nil
}
