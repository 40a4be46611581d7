package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("qwen-3-coder-480b")
	if c == nil {
		t.Fatal("expected pricing for qwen-3-coder-480b")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("expected cost 4.0, got %v", got)
	}

	routed := LookupCost("openai/gpt-4o-mini")
	if routed == nil {
		t.Fatal("expected pricing for routed model id")
	}
	if math.Abs(routed.InputPerMTok-0.15) > 1e-9 {
		t.Errorf("expected input price 0.15, got %v", routed.InputPerMTok)
	}

	for _, model := range []string{"llama3", "mock"} {
		if LookupCost(model) != nil {
			t.Errorf("expected no pricing for %q", model)
		}
	}
}
