package llmjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personContract = &Contract{
	Name: "test-person",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": []string{"integer", "string"}},
			"grade": map[string]any{"type": "string", "enum": []string{"A", "B", "C"}},
		},
		"required": []string{"name", "age"},
	},
}

type person struct {
	Name  string `json:"name"`
	Age   Int    `json:"age"`
	Grade string `json:"grade"`
}

func TestDecode_Valid(t *testing.T) {
	var p person
	err := Decode(`Here you go: {"name":"Alice","age":"10","grade":"A"}`, Object, personContract, &p)
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, Int{Value: 10, Valid: true}, p.Age)
}

func TestDecode_ContractViolation(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing required", `{"name":"Bob"}`},
		{"bad enum", `{"name":"Eve","age":9,"grade":"D"}`},
		{"wrong type", `{"name":"Dave","age":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p person
			err := Decode(tt.text, Object, personContract, &p)
			var cErr *ContractError
			require.True(t, errors.As(err, &cErr), "got %T: %v", err, err)
			assert.Equal(t, "test-person", cErr.Contract)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	var p person
	err := Decode("no json here", Object, personContract, &p)
	var mErr *MalformedOutputError
	assert.True(t, errors.As(err, &mErr))
}

func TestDecode_NilContract(t *testing.T) {
	var v []int
	require.NoError(t, Decode("[1,2,3]", Array, nil, &v))
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestInt_Loose(t *testing.T) {
	tests := []struct {
		in   string
		want Int
	}{
		{`3`, Int{Value: 3, Valid: true}},
		{`"7"`, Int{Value: 7, Valid: true}},
		{`" 4 "`, Int{Value: 4, Valid: true}},
		{`6.6`, Int{Value: 7, Valid: true}},
		{`"hard"`, Int{}},
		{`null`, Int{}},
		{`{}`, Int{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Int
			require.NoError(t, got.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, -1, Int{}.Or(-1))
}

func TestString_Loose(t *testing.T) {
	tests := []struct {
		in   string
		want String
	}{
		{`"plain"`, "plain"},
		{`["learn loops","write a loop"]`, "learn loops\nwrite a loop"},
		{`42`, "42"},
		{`null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got String
			require.NoError(t, got.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, got)
		})
	}
}
