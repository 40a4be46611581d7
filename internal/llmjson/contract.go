package llmjson

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Contract is the JSON Schema a model response must satisfy.
type Contract struct {
	// Name identifies the contract, e.g. "chapter-plan". It keys the
	// compiled schema cache, so it must be unique per definition.
	Name string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// ContractError reports a response that parsed as JSON but violates its
// contract.
type ContractError struct {
	Contract string
	Raw      json.RawMessage
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("response violates contract %q: %v", e.Contract, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw against the contract. A nil contract accepts anything.
func (c *Contract) Validate(raw json.RawMessage) error {
	if c == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ContractError{Contract: c.Name, Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := c.schema()
	if err != nil {
		return &ContractError{Contract: c.Name, Raw: raw, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return &ContractError{Contract: c.Name, Raw: raw, Err: err}
	}
	return nil
}

func (c *Contract) schema() (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(c.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(c.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal contract %q: %w", c.Name, err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse contract %q: %w", c.Name, err)
	}

	comp := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", c.Name)
	if err := comp.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add contract %q: %w", c.Name, err)
	}
	schema, err := comp.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile contract %q: %w", c.Name, err)
	}

	compiled.Store(c.Name, schema)
	return schema, nil
}

// Decode extracts the JSON value from text, validates it against contract
// (when non-nil) and unmarshals it into out.
func Decode(text string, d Delims, contract *Contract, out any) error {
	raw, err := Extract(text, d)
	if err != nil {
		return err
	}
	if err := contract.Validate(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return NewMalformedOutputError(text, fmt.Errorf("decode: %w", err))
	}
	return nil
}
