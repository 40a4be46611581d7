package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend answered but the answer carried
// no usable text.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrUnavailable is returned by the failover provider when both the primary
// and the secondary backend failed the same request.
type ErrUnavailable struct {
	Primary   error
	Secondary error
}

func (e *ErrUnavailable) Error() string {
	if e.Secondary == nil {
		return fmt.Sprintf("LLM unavailable: primary: %v (no secondary configured)", e.Primary)
	}
	return fmt.Sprintf("LLM unavailable: primary: %v; secondary: %v", e.Primary, e.Secondary)
}

func (e *ErrUnavailable) Unwrap() []error {
	errs := []error{e.Primary}
	if e.Secondary != nil {
		errs = append(errs, e.Secondary)
	}
	return errs
}

// ErrRejected indicates the backend refused the request itself (4xx other
// than 429). Retrying the same request cannot help.
type ErrRejected struct {
	Provider string
	Err      error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("%s rejected the request: %v", e.Provider, e.Err)
}

func (e *ErrRejected) Unwrap() error { return e.Err }
