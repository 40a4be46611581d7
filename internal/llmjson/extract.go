// Package llmjson is the parsing boundary between raw LLM text and typed
// values. Every caller that expects JSON from a model goes through Extract.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// PreviewLength is the number of runes kept in MalformedOutputError.Preview.
const PreviewLength = 200

// Delims is the opening and closing delimiter of the expected JSON value.
type Delims struct {
	Open  byte
	Close byte
}

var (
	// Object expects a top-level {...} value.
	Object = Delims{Open: '{', Close: '}'}
	// Array expects a top-level [...] value.
	Array = Delims{Open: '[', Close: ']'}
)

// MalformedOutputError is returned when no JSON value could be recovered
// from a model response.
type MalformedOutputError struct {
	Raw     string
	Length  int
	Preview string
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generation output (%d chars): %v; preview: %q", e.Length, e.Err, e.Preview)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// NewMalformedOutputError builds the error for raw, truncating the preview.
func NewMalformedOutputError(raw string, err error) *MalformedOutputError {
	return &MalformedOutputError{
		Raw:     raw,
		Length:  len(raw),
		Preview: preview(raw),
		Err:     err,
	}
}

// Extract returns the JSON value contained in text.
//
// The trimmed text is parsed directly first. If that fails, the span from the
// first d.Open to the last d.Close is parsed instead. If both fail a
// *MalformedOutputError is returned.
func Extract(text string, d Delims) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	start := strings.IndexByte(trimmed, d.Open)
	end := strings.LastIndexByte(trimmed, d.Close)
	if start < 0 || end < 0 || end <= start {
		return nil, NewMalformedOutputError(text, fmt.Errorf("no %c...%c span found", d.Open, d.Close))
	}

	span := trimmed[start : end+1]
	var v any
	if err := json.Unmarshal([]byte(span), &v); err != nil {
		return nil, NewMalformedOutputError(text, fmt.Errorf("parse extracted span: %w", err))
	}
	return json.RawMessage(span), nil
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= PreviewLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:PreviewLength]) + "..."
}
