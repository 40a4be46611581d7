package llm

import (
	"context"
	"time"

	"github.com/abhisek/coursegen/internal/logger"
)

// FailoverProvider sends each request to the primary backend and, when that
// fails for any reason other than the caller giving up, repeats the identical
// request on the secondary. It does not retry beyond that.
type FailoverProvider struct {
	primary   Provider
	secondary Provider
	timeout   time.Duration
	log       *logger.Logger
}

// NewFailover builds the facade. secondary may be nil, in which case primary
// failures surface directly as *ErrUnavailable. A zero timeout disables the
// per-backend deadline.
func NewFailover(primary, secondary Provider, timeout time.Duration, log *logger.Logger) *FailoverProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &FailoverProvider{
		primary:   primary,
		secondary: secondary,
		timeout:   timeout,
		log:       log,
	}
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, primaryErr := f.call(ctx, f.primary, req)
	if primaryErr == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if f.secondary == nil {
		return nil, &ErrUnavailable{Primary: primaryErr}
	}

	f.log.Warn("primary LLM backend failed, trying secondary",
		"purpose", PurposeFrom(ctx),
		"primary_model", f.primary.ModelID(),
		"secondary_model", f.secondary.ModelID(),
		"error", primaryErr,
	)

	resp, secondaryErr := f.call(ctx, f.secondary, req)
	if secondaryErr == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, &ErrUnavailable{Primary: primaryErr, Secondary: secondaryErr}
}

func (f *FailoverProvider) call(ctx context.Context, p Provider, req Request) (*Response, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	return p.Generate(ctx, req)
}

// ModelID returns the primary backend's model.
func (f *FailoverProvider) ModelID() string {
	return f.primary.ModelID()
}
