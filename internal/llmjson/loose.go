package llmjson

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Int is an integer that also accepts numeric strings and floats.
// Unparseable input leaves Valid false instead of failing the whole decode.
type Int struct {
	Value int
	Valid bool
}

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch x := v.(type) {
	case float64:
		*i = Int{Value: int(math.Round(x)), Valid: true}
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.Atoi(s); err == nil {
			*i = Int{Value: n, Valid: true}
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			*i = Int{Value: int(math.Round(f)), Valid: true}
		}
	}
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// Or returns the value, or def when it was not parseable.
func (i Int) Or(def int) int {
	if !i.Valid {
		return def
	}
	return i.Value
}

// String is text that also accepts numbers, booleans and lists of strings.
// Lists are joined with newlines.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = String(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if str, ok := item.(string); ok {
				parts = append(parts, str)
			} else {
				b, _ := json.Marshal(item)
				parts = append(parts, string(b))
			}
		}
		*s = String(strings.Join(parts, "\n"))
	default:
		*s = String(data)
	}
	return nil
}
