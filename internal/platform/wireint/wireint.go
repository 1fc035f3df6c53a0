// Package wireint carries money and day counts on the wire. Values are written
// as decimal strings so JavaScript clients keep every digit, and read from
// either a string or a bare JSON number.
package wireint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Int int64

func (n Int) Int64() int64 {
	return int64(n)
}

func (n Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(n), 10))), nil
}

func (n *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
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
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*n = Int(v)
	return nil
}
