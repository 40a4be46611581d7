package llm

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestFailover_PrimarySucceeds(t *testing.T) {
	primary := NewMockProvider(Text("from primary"))
	secondary := NewMockProvider(Text("from secondary"))
	f := NewFailover(primary, secondary, 0, nil)

	resp, err := f.Generate(context.Background(), Request{Messages: UserMessage("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "from primary" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("expected secondary untouched, got %d calls", secondary.CallCount())
	}
}

func TestFailover_SecondaryGetsIdenticalRequest(t *testing.T) {
	primary := NewMockProvider(Fail(errors.New("boom")))
	secondary := NewMockProvider(Text("from secondary"))
	f := NewFailover(primary, secondary, 0, nil)

	req := Request{
		System:      "sys",
		Messages:    UserMessage("plan"),
		Model:       "qwen-3-coder-480b",
		MaxTokens:   20000,
		Temperature: 0.7,
		TopP:        0.8,
	}
	resp, err := f.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "from secondary" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if secondary.CallCount() != 1 {
		t.Fatalf("expected 1 secondary call, got %d", secondary.CallCount())
	}
	if !reflect.DeepEqual(secondary.Calls[0], req) {
		t.Errorf("secondary got %+v, want %+v", secondary.Calls[0], req)
	}
	if !reflect.DeepEqual(primary.Calls[0], secondary.Calls[0]) {
		t.Errorf("primary and secondary requests differ")
	}
}

func TestFailover_BothFail(t *testing.T) {
	pErr := errors.New("primary down")
	sErr := errors.New("secondary down")
	f := NewFailover(NewMockProvider(Fail(pErr)), NewMockProvider(Fail(sErr)), 0, nil)

	_, err := f.Generate(context.Background(), Request{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %T: %v", err, err)
	}
	if unavail.Primary != pErr || unavail.Secondary != sErr {
		t.Errorf("unexpected causes: primary=%v secondary=%v", unavail.Primary, unavail.Secondary)
	}
	if !errors.Is(err, pErr) || !errors.Is(err, sErr) {
		t.Errorf("expected error to wrap both causes, got %v", err)
	}
}

func TestFailover_NoSecondary(t *testing.T) {
	pErr := errors.New("primary down")
	f := NewFailover(NewMockProvider(Fail(pErr)), nil, 0, nil)

	_, err := f.Generate(context.Background(), Request{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %T: %v", err, err)
	}
	if unavail.Secondary != nil {
		t.Errorf("expected nil secondary error, got %v", unavail.Secondary)
	}
}

func TestFailover_TimeoutFailsOver(t *testing.T) {
	secondary := NewMockProvider(Text("fast"))
	f := NewFailover(slowProvider{}, secondary, 10*time.Millisecond, nil)

	resp, err := f.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "fast" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
}

func TestFailover_CallerCancelSkipsSecondary(t *testing.T) {
	secondary := NewMockProvider(Text("unreached"))
	f := NewFailover(slowProvider{}, secondary, 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("expected secondary untouched, got %d calls", secondary.CallCount())
	}
}
