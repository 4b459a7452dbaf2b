// Package diaglog provides diagnostic logging for intercepted method
// invocations.
//
// An Interceptor sits at an instrumented call boundary. For every call
// it decides, from a four-level override hierarchy (type, method,
// parameter, return value), whether to emit structured "invocation
// started" and "invocation ended" records, and independently whether
// each argument and the return value may appear in those records or
// must be replaced by a redaction sentinel.
//
// Overrides live in a core.PolicyStore. The in-memory Registry and the
// configuration package's JSON loader are the shipped implementations;
// absence of an override at a scope means the scope inherits from its
// parent (type seeds method; method seeds each parameter and the
// return slot independently).
//
// Basic usage:
//
//	reg := diaglog.NewRegistry()
//	reg.SetMethodOverride(target, "Transfer", core.LogActiveOn)
//
//	itc, err := diaglog.New(
//	    diaglog.WithPolicyStore(reg),
//	    diaglog.WithSink(sinks.NewConsoleSink()),
//	)
//	if err != nil {
//	    // no sink configured, or an option was invalid
//	}
//
//	transfer = diaglog.Wrap(itc, target, "Transfer", transfer)
//
// Logging is best-effort telemetry: there are no retries, and sink
// failures propagate to the boundary rather than being swallowed.
package diaglog
