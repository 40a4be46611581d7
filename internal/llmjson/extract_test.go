package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ValidJSONUnchanged(t *testing.T) {
	tests := []struct {
		name string
		text string
		d    Delims
	}{
		{"object", `{"a":1,"b":[1,2]}`, Object},
		{"array", `[{"chapter_number":1}]`, Array},
		{"padded", "\n  [1, 2, 3]  \n", Array},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Extract(tt.text, tt.d)
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.text), string(raw))
		})
	}
}

func TestExtract_SpanInsideProse(t *testing.T) {
	span := `{"questions":[{"question":"What is Go?","correct_answer":"A"}]}`
	text := "Sure! Here is your quiz:\n```json\n" + span + "\n```\nGood luck."

	raw, err := Extract(text, Object)
	require.NoError(t, err)

	var direct, extracted any
	require.NoError(t, json.Unmarshal([]byte(span), &direct))
	require.NoError(t, json.Unmarshal(raw, &extracted))
	assert.Equal(t, direct, extracted)
}

func TestExtract_ArrayInsideProse(t *testing.T) {
	raw, err := Extract(`The chapters are: [{"n":1},{"n":2}] as requested.`, Array)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"n":1},{"n":2}]`, string(raw))
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		d    Delims
	}{
		{"empty", "", Object},
		{"no delimiters", "I cannot help with that.", Object},
		{"wrong order", "} nope {", Object},
		{"only opening", `here: {"a": 1`, Object},
		{"broken span", `result: {"a": 1,,} done`, Object},
		{"array wanted", `{"a": 1`, Array},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.text, tt.d)
			require.Error(t, err)
			var mErr *MalformedOutputError
			require.True(t, errors.As(err, &mErr))
			assert.Equal(t, len(tt.text), mErr.Length)
			assert.Equal(t, tt.text, mErr.Raw)
		})
	}
}

func TestMalformedOutputError_PreviewTruncated(t *testing.T) {
	long := strings.Repeat("é", PreviewLength+50)
	_, err := Extract(long, Object)

	var mErr *MalformedOutputError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, len(long), mErr.Length)
	assert.Equal(t, strings.Repeat("é", PreviewLength)+"...", mErr.Preview)
}
