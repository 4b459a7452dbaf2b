package diaglog

import (
	"context"

	"github.com/countincognito/diaglog/core"
)

// Target is the real operation an interceptor wraps. The returned value
// feeds the post-call record; the error, when non-nil, marks the call
// as faulted and suppresses the post-call record.
type Target func(ctx context.Context) (any, error)

// Interceptor decides, for every call crossing an instrumented
// boundary, whether and how to emit diagnostic started/ended records.
// It is immutable after construction and safe for concurrent use; each
// invocation gets its own Recorder.
type Interceptor struct {
	store     core.PolicyStore
	sinks     []core.EventSink
	enrichers []core.EventEnricher
	level     core.LogEventLevel
}

// New creates an interceptor from the supplied options. Construction
// fails when no sink is configured or when any option received an
// invalid argument; a misconfigured interceptor never degrades to a
// silent no-op.
func New(opts ...Option) (*Interceptor, error) {
	cfg := &config{
		level: core.InformationLevel,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(cfg.sinks) == 0 {
		return nil, ErrNoSink
	}
	if cfg.store == nil {
		cfg.store = NewRegistry()
	}

	return &Interceptor{
		store:     cfg.store,
		sinks:     cfg.sinks,
		enrichers: cfg.enrichers,
		level:     cfg.level,
	}, nil
}

// NewRecorder creates the recorder for one invocation. Boundary
// adapters that drive the two phases themselves (rather than through
// Invoke) call this once per intercepted call.
func (i *Interceptor) NewRecorder() *Recorder {
	return &Recorder{
		store:     i.store,
		sinks:     i.sinks,
		enrichers: i.enrichers,
		level:     i.level,
	}
}

// Invoke runs one intercepted call: the pre-call phase, the target,
// and, when the target succeeds, the post-call phase. A target error
// is returned as-is with no ended record; errors from the recorder
// phases propagate to the caller rather than being swallowed.
func (i *Interceptor) Invoke(ctx context.Context, inv core.Invocation, target Target) (any, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	rec := i.NewRecorder()
	state, err := rec.StartingInvocation(ctx, inv)
	if err != nil {
		return nil, err
	}

	result, err := target(ctx)
	if err != nil {
		return result, err
	}

	if err := rec.CompletedInvocation(ctx, inv, state, result); err != nil {
		return result, err
	}
	return result, nil
}
