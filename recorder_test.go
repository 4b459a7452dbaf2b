package diaglog

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/countincognito/diaglog/core"
	"github.com/countincognito/diaglog/sinks"
)

// newTestInterceptor wires an interceptor to a fresh memory sink.
func newTestInterceptor(t *testing.T, store core.PolicyStore, opts ...Option) (*Interceptor, *sinks.MemorySink) {
	t.Helper()

	mem := sinks.NewMemorySink()
	opts = append([]Option{WithSink(mem), WithPolicyStore(store)}, opts...)
	itc, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return itc, mem
}

func eventsByPhase(mem *sinks.MemorySink, phase core.Phase) []core.DiagnosticEvent {
	return mem.FindEvents(func(e *core.DiagnosticEvent) bool {
		return e.Phase == phase
	})
}

func TestRecorderScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("method on logs real arguments and return value", func(t *testing.T) {
		// Scenario A: no class override, method On, no slot overrides.
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Transfer", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "alice", 250)
		rec := itc.NewRecorder()
		state, err := rec.StartingInvocation(ctx, inv)
		if err != nil {
			t.Fatalf("StartingInvocation error: %v", err)
		}
		if state.Active != core.LogActiveOn {
			t.Errorf("carried state = %v, want On", state.Active)
		}
		if err := rec.CompletedInvocation(ctx, inv, state, "receipt-7"); err != nil {
			t.Fatalf("CompletedInvocation error: %v", err)
		}

		started := eventsByPhase(mem, core.PhaseStarted)
		if len(started) != 1 {
			t.Fatalf("started records = %d, want 1", len(started))
		}
		wantArgs := []any{"alice", 250}
		if got := started[0].Properties[PropertyArguments]; !reflect.DeepEqual(got, wantArgs) {
			t.Errorf("Arguments = %v, want %v", got, wantArgs)
		}

		ended := eventsByPhase(mem, core.PhaseEnded)
		if len(ended) != 1 {
			t.Fatalf("ended records = %d, want 1", len(ended))
		}
		if got := ended[0].Properties[PropertyReturnValue]; got != "receipt-7" {
			t.Errorf("ReturnValue = %v, want %q", got, "receipt-7")
		}
	})

	t.Run("class on with one parameter redacted", func(t *testing.T) {
		// Scenario B: class On, method inherits, first parameter Off.
		reg := NewRegistry()
		reg.SetTypeOverride(testTarget, core.LogActiveOn)
		reg.SetParameterOverride(testTarget, "Transfer", 0, core.LogActiveOff)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "secret-pin", "alice")
		rec := itc.NewRecorder()
		if _, err := rec.StartingInvocation(ctx, inv); err != nil {
			t.Fatalf("StartingInvocation error: %v", err)
		}

		started := eventsByPhase(mem, core.PhaseStarted)
		if len(started) != 1 {
			t.Fatalf("started records = %d, want 1", len(started))
		}
		wantArgs := []any{RedactedValue, "alice"}
		if got := started[0].Properties[PropertyArguments]; !reflect.DeepEqual(got, wantArgs) {
			t.Errorf("Arguments = %v, want %v", got, wantArgs)
		}
	})

	t.Run("class off suppresses both records", func(t *testing.T) {
		// Scenario C: class Off, everything else inherits.
		reg := NewRegistry()
		reg.SetTypeOverride(testTarget, core.LogActiveOff)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "alice", 250)
		rec := itc.NewRecorder()
		state, err := rec.StartingInvocation(ctx, inv)
		if err != nil {
			t.Fatalf("StartingInvocation error: %v", err)
		}
		if err := rec.CompletedInvocation(ctx, inv, state, "receipt"); err != nil {
			t.Fatalf("CompletedInvocation error: %v", err)
		}

		if mem.Count() != 0 {
			t.Errorf("records = %d, want 0", mem.Count())
		}
	})

	t.Run("void method logs void sentinel on ended record", func(t *testing.T) {
		// Scenario D: method On, void return, return slot inherits On.
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Notify", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Notify", core.ReturnVoid, "alice")
		rec := itc.NewRecorder()
		state, err := rec.StartingInvocation(ctx, inv)
		if err != nil {
			t.Fatalf("StartingInvocation error: %v", err)
		}
		if err := rec.CompletedInvocation(ctx, inv, state, nil); err != nil {
			t.Fatalf("CompletedInvocation error: %v", err)
		}

		ended := eventsByPhase(mem, core.PhaseEnded)
		if len(ended) != 1 {
			t.Fatalf("ended records = %d, want 1", len(ended))
		}
		if got := ended[0].Properties[PropertyReturnValue]; got != VoidValue {
			t.Errorf("ReturnValue = %v, want %q", got, VoidValue)
		}
	})

	t.Run("redacted return value still emits ended record", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Transfer", core.LogActiveOn)
		reg.SetReturnOverride(testTarget, "Transfer", core.LogActiveOff)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "alice")
		rec := itc.NewRecorder()
		state, _ := rec.StartingInvocation(ctx, inv)
		if err := rec.CompletedInvocation(ctx, inv, state, "secret"); err != nil {
			t.Fatalf("CompletedInvocation error: %v", err)
		}

		ended := eventsByPhase(mem, core.PhaseEnded)
		if len(ended) != 1 {
			t.Fatalf("ended records = %d, want 1 (method state still governs emission)", len(ended))
		}
		if got := ended[0].Properties[PropertyReturnValue]; got != RedactedValue {
			t.Errorf("ReturnValue = %v, want %q", got, RedactedValue)
		}
	})

	t.Run("record shape", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Transfer", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "alice")
		rec := itc.NewRecorder()
		if _, err := rec.StartingInvocation(ctx, inv); err != nil {
			t.Fatalf("StartingInvocation error: %v", err)
		}

		event := mem.Events()[0]
		if got := event.Properties[PropertyLogType]; got != LogTypeDiagnostic {
			t.Errorf("LogType = %v, want %q", got, LogTypeDiagnostic)
		}
		if got := event.Properties[PropertyLogName]; got != "diagnostic-acct.Service.Transfer" {
			t.Errorf("LogName = %v, want %q", got, "diagnostic-acct.Service.Transfer")
		}
		if event.Level != core.InformationLevel {
			t.Errorf("Level = %v, want Information", event.Level)
		}
		if event.Timestamp.IsZero() {
			t.Error("Timestamp not set")
		}
	})

	t.Run("completed re-resolves from the store", func(t *testing.T) {
		// The carried state says On, but the store changed between the
		// phases; the ended record follows the store.
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Transfer", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		inv := newTestInvocation("Transfer", core.ReturnValue, "alice")
		rec := itc.NewRecorder()
		state, _ := rec.StartingInvocation(ctx, inv)

		reg.SetMethodOverride(testTarget, "Transfer", core.LogActiveOff)
		if err := rec.CompletedInvocation(ctx, inv, state, "receipt"); err != nil {
			t.Fatalf("CompletedInvocation error: %v", err)
		}

		if got := len(eventsByPhase(mem, core.PhaseEnded)); got != 0 {
			t.Errorf("ended records = %d, want 0 after store flipped Off", got)
		}
	})
}

func TestRecorderErrors(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()
	itc, mem := newTestInterceptor(t, reg)

	t.Run("nil invocation at start", func(t *testing.T) {
		rec := itc.NewRecorder()
		if _, err := rec.StartingInvocation(ctx, nil); err != ErrNilInvocation {
			t.Errorf("err = %v, want ErrNilInvocation", err)
		}
		if mem.Count() != 0 {
			t.Error("no record may be emitted before validation")
		}
	})

	t.Run("nil method metadata at start", func(t *testing.T) {
		rec := itc.NewRecorder()
		inv := NewInvocation(testTarget, nil, nil)
		if _, err := rec.StartingInvocation(ctx, inv); err != ErrNilMethod {
			t.Errorf("err = %v, want ErrNilMethod", err)
		}
	})

	t.Run("completed before started panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on Completed without Started")
			}
		}()
		rec := itc.NewRecorder()
		_ = rec.CompletedInvocation(ctx, newTestInvocation("Transfer", core.ReturnValue), core.DiagnosticLogState{}, nil)
	})

	t.Run("recorder cannot be reused", func(t *testing.T) {
		reg := NewRegistry()
		itc, _ := newTestInterceptor(t, reg)
		rec := itc.NewRecorder()
		inv := newTestInvocation("Transfer", core.ReturnValue)
		state, _ := rec.StartingInvocation(ctx, inv)
		_ = rec.CompletedInvocation(ctx, inv, state, nil)

		defer func() {
			if recover() == nil {
				t.Error("expected panic on reuse after Ended")
			}
		}()
		_, _ = rec.StartingInvocation(ctx, inv)
	})
}

func TestRecorderConcurrentInvocations(t *testing.T) {
	// Interleaved invocations must not bleed payload into each other's
	// records: every record's Arguments must match its own invocation.
	reg := NewRegistry()
	reg.SetTypeOverride(testTarget, core.LogActiveOn)
	itc, mem := newTestInterceptor(t, reg)

	const workers = 16
	const iterations = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ctx := context.Background()
			for i := 0; i < iterations; i++ {
				tag := fmt.Sprintf("w%d-i%d", w, i)
				inv := newTestInvocation("Transfer", core.ReturnValue, tag)
				rec := itc.NewRecorder()
				state, err := rec.StartingInvocation(ctx, inv)
				if err != nil {
					t.Errorf("StartingInvocation error: %v", err)
					return
				}
				if err := rec.CompletedInvocation(ctx, inv, state, tag); err != nil {
					t.Errorf("CompletedInvocation error: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := mem.Count(), workers*iterations*2; got != want {
		t.Fatalf("records = %d, want %d", got, want)
	}
	for _, event := range mem.Events() {
		switch event.Phase {
		case core.PhaseStarted:
			args, ok := event.Properties[PropertyArguments].([]any)
			if !ok || len(args) != 1 {
				t.Fatalf("malformed Arguments: %v", event.Properties[PropertyArguments])
			}
		case core.PhaseEnded:
			if event.Properties[PropertyReturnValue] == nil {
				t.Fatal("ended record missing ReturnValue")
			}
		}
	}
}
