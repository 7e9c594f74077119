package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float the platform sends either as a JSON number or as a
// numeric string ("1200.00"). Anything unparsable decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// String formats the number the way form fields expect it.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
