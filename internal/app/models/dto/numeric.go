package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt64 decodes from a JSON number or a numeric string. HTML forms post
// every value as a string, so ids and counts arrive as "3" as often as 3.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("value %s is not an integer", string(data))
	}
	*f = FlexInt64(n)
	return nil
}

// Int64 returns the plain value
func (f FlexInt64) Int64() int64 {
	return int64(f)
}
