package diaglog

import (
	"context"
	"time"

	"github.com/countincognito/diaglog/core"
)

// Property names attached to every diagnostic record.
const (
	// PropertyLogType is the category discriminator field.
	PropertyLogType = "LogType"

	// LogTypeDiagnostic is the value of the category discriminator.
	LogTypeDiagnostic = "Diagnostic"

	// PropertyLogName carries the invocation-identity marker.
	PropertyLogName = "LogName"

	// PropertyArguments carries the filtered argument sequence on the
	// started record.
	PropertyArguments = "Arguments"

	// PropertyReturnValue carries the filtered return value on the
	// ended record.
	PropertyReturnValue = "ReturnValue"
)

// recorderPhase tracks a recorder through its single invocation.
type recorderPhase int

const (
	phaseIdle recorderPhase = iota
	phaseStarted
	phaseEnded
)

// Recorder orchestrates the pre-call and post-call diagnostic records
// for exactly one invocation. A recorder moves Idle -> Started -> Ended
// and is then discarded; it must not be reused and must not be shared
// between invocations.
type Recorder struct {
	store     core.PolicyStore
	sinks     []core.EventSink
	enrichers []core.EventEnricher
	level     core.LogEventLevel
	phase     recorderPhase
}

// StartingInvocation resolves the type- and method-level states, runs
// the parameter filter, and emits the started record when any parameter
// slot (or the method itself) is loggable. It returns the resolved
// method-level state, which the caller threads to CompletedInvocation.
func (r *Recorder) StartingInvocation(ctx context.Context, inv core.Invocation) (core.DiagnosticLogState, error) {
	if r.phase != phaseIdle {
		panic("diaglog: StartingInvocation on a recorder that already started")
	}
	if inv == nil {
		return core.DiagnosticLogState{}, ErrNilInvocation
	}
	if inv.Method() == nil {
		return core.DiagnosticLogState{}, ErrNilMethod
	}
	r.phase = phaseStarted

	methodState := r.resolveMethodState(inv)
	filtered, anyLoggable := filterParameters(inv, r.store, methodState)
	if anyLoggable == core.LogActiveOn {
		r.emit(ctx, inv, core.PhaseStarted, PropertyArguments, filtered)
	}
	return core.DiagnosticLogState{Active: methodState}, nil
}

// CompletedInvocation runs the return-value filter and emits the ended
// record when the return slot (or the method-level state) is loggable.
//
// The method-level state is re-resolved from the policy store rather
// than taken from the carried state: resolution is stateless and
// idempotent, and recomputing keeps the two phases independent even if
// the store is swapped or mutated between them.
func (r *Recorder) CompletedInvocation(ctx context.Context, inv core.Invocation, state core.DiagnosticLogState, returnValue any) error {
	if r.phase != phaseStarted {
		panic("diaglog: CompletedInvocation on a recorder that has not started")
	}
	if inv == nil {
		return ErrNilInvocation
	}
	method := inv.Method()
	if method == nil {
		return ErrNilMethod
	}
	r.phase = phaseEnded

	methodState := r.resolveMethodState(inv)
	override, ok := r.store.ReturnOverride(inv.TargetType(), method.Name)
	filtered, loggable := filterReturn(returnValue, method.ReturnKind, override, ok, methodState)
	if loggable == core.LogActiveOn {
		r.emit(ctx, inv, core.PhaseEnded, PropertyReturnValue, filtered)
	}
	return nil
}

// resolveMethodState computes the effective method-level state: the
// type-level override (inherited default Off) seeds the method level.
func (r *Recorder) resolveMethodState(inv core.Invocation) core.LogActive {
	t := inv.TargetType()
	typeOverride, ok := r.store.TypeOverride(t)
	typeState := ResolveState(typeOverride, ok, core.LogActiveOff)

	methodOverride, ok := r.store.MethodOverride(t, inv.Method().Name)
	return ResolveState(methodOverride, ok, typeState)
}

// emit builds one diagnostic record and pushes it through the enrichers
// to every sink. The property map is created here and belongs to this
// event alone, so enrichment cannot bleed into a concurrent
// invocation's records.
func (r *Recorder) emit(ctx context.Context, inv core.Invocation, phase core.Phase, payloadKey string, payload any) {
	event := &core.DiagnosticEvent{
		Timestamp: time.Now(),
		Level:     r.level,
		Phase:     phase,
		Properties: map[string]any{
			PropertyLogType: LogTypeDiagnostic,
			PropertyLogName: IdentityName(inv.TargetType(), inv.Method().Name),
			payloadKey:      payload,
		},
	}

	for _, enricher := range r.enrichers {
		enricher.Enrich(ctx, event)
	}
	for _, sink := range r.sinks {
		sink.Emit(event)
	}
}
