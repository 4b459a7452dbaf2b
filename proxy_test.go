package diaglog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/countincognito/diaglog/core"
)

func TestWrap(t *testing.T) {
	t.Run("records around a plain function", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Add", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		add := Wrap(itc, testTarget, "Add", func(a, b int) int { return a + b })
		if got := add(2, 3); got != 5 {
			t.Errorf("add(2, 3) = %d, want 5", got)
		}

		started := eventsByPhase(mem, core.PhaseStarted)
		if len(started) != 1 {
			t.Fatalf("started records = %d, want 1", len(started))
		}
		if got, want := started[0].Properties[PropertyArguments], []any{2, 3}; !reflect.DeepEqual(got, want) {
			t.Errorf("Arguments = %v, want %v", got, want)
		}

		ended := eventsByPhase(mem, core.PhaseEnded)
		if len(ended) != 1 {
			t.Fatalf("ended records = %d, want 1", len(ended))
		}
		if got := ended[0].Properties[PropertyReturnValue]; got != 5 {
			t.Errorf("ReturnValue = %v, want 5", got)
		}
	})

	t.Run("leading context is plumbing not a parameter", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Fetch", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		fetch := Wrap(itc, testTarget, "Fetch", func(ctx context.Context, id string) (string, error) {
			return "row-" + id, nil
		})
		if _, err := fetch(context.Background(), "42"); err != nil {
			t.Fatalf("fetch error: %v", err)
		}

		started := eventsByPhase(mem, core.PhaseStarted)
		if got, want := started[0].Properties[PropertyArguments], []any{"42"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Arguments = %v, want %v (context excluded)", got, want)
		}
	})

	t.Run("error result suppresses ended record", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Fail", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		fail := Wrap(itc, testTarget, "Fail", func() (int, error) {
			return 0, errors.New("boom")
		})
		if _, err := fail(); err == nil {
			t.Fatal("expected the target's error")
		}

		if got := len(eventsByPhase(mem, core.PhaseEnded)); got != 0 {
			t.Errorf("ended records = %d, want 0 on fault", got)
		}
	})

	t.Run("error-only result is a void method", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "Ping", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		ping := Wrap(itc, testTarget, "Ping", func() error { return nil })
		if err := ping(); err != nil {
			t.Fatalf("ping error: %v", err)
		}

		ended := eventsByPhase(mem, core.PhaseEnded)
		if len(ended) != 1 {
			t.Fatalf("ended records = %d, want 1", len(ended))
		}
		if got := ended[0].Properties[PropertyReturnValue]; got != VoidValue {
			t.Errorf("ReturnValue = %v, want %q", got, VoidValue)
		}
	})

	t.Run("multiple value results are logged as a sequence", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetMethodOverride(testTarget, "MinMax", core.LogActiveOn)
		itc, mem := newTestInterceptor(t, reg)

		minMax := Wrap(itc, testTarget, "MinMax", func(a, b int) (int, int) {
			if a < b {
				return a, b
			}
			return b, a
		})
		minMax(9, 4)

		ended := eventsByPhase(mem, core.PhaseEnded)
		if got, want := ended[0].Properties[PropertyReturnValue], []any{4, 9}; !reflect.DeepEqual(got, want) {
			t.Errorf("ReturnValue = %v, want %v", got, want)
		}
	})

	t.Run("variadic functions", func(t *testing.T) {
		reg := NewRegistry()
		reg.SetTypeOverride(testTarget, core.LogActiveOn)
		itc, _ := newTestInterceptor(t, reg)

		sum := Wrap(itc, testTarget, "Sum", func(ns ...int) int {
			total := 0
			for _, n := range ns {
				total += n
			}
			return total
		})
		if got := sum(1, 2, 3); got != 6 {
			t.Errorf("sum(1, 2, 3) = %d, want 6", got)
		}
	})

	t.Run("non-function panics", func(t *testing.T) {
		itc, _ := newTestInterceptor(t, NewRegistry())
		defer func() {
			if recover() == nil {
				t.Error("expected panic for non-function")
			}
		}()
		Wrap(itc, testTarget, "NotAFunc", 42)
	})
}
