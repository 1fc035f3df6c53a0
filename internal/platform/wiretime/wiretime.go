// Package wiretime converts between Go times and the API wire timestamp:
// signed nanoseconds since the Unix epoch, carried in JSON as a decimal string.
package wiretime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NanosPerMilli is the scale factor clients apply to calendar-date milliseconds.
const NanosPerMilli int64 = 1_000_000

type Nanos int64

// FromMillis scales a millisecond epoch value to wire nanoseconds.
func FromMillis(ms int64) Nanos {
	return Nanos(ms * NanosPerMilli)
}

// FromTime truncates t to millisecond precision before scaling, matching how
// clients build wire values from calendar inputs.
func FromTime(t time.Time) Nanos {
	if t.IsZero() {
		return 0
	}
	return FromMillis(t.UnixMilli())
}

// FromDate parses a YYYY-MM-DD calendar date at UTC midnight.
func FromDate(value string) (Nanos, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return 0, err
	}
	return FromTime(parsed), nil
}

func (n Nanos) Millis() int64 {
	return int64(n) / NanosPerMilli
}

func (n Nanos) Time() time.Time {
	return time.Unix(0, int64(n)).UTC()
}

func (n Nanos) IsZero() bool {
	return n == 0
}

func (n Nanos) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(n), 10))), nil
}

// UnmarshalJSON accepts a quoted or bare integer, or a quoted YYYY-MM-DD date.
// An empty string is an error; absence is expressed with a nil *Nanos.
func (n *Nanos) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = Nanos(v)
		return nil
	}
	parsed, err := FromDate(raw)
	if err != nil {
		return fmt.Errorf("invalid wire timestamp %q", raw)
	}
	*n = parsed
	return nil
}
