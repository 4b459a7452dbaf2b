package diaglog

import (
	"errors"

	"github.com/countincognito/diaglog/core"
)

// config holds the configuration for building an interceptor.
type config struct {
	store     core.PolicyStore
	sinks     []core.EventSink
	enrichers []core.EventEnricher
	level     core.LogEventLevel
	err       error // First error encountered during configuration
}

// Option is a functional option for configuring an interceptor.
type Option func(*config)

// WithSink adds an event sink. At least one sink is required; New
// fails with ErrNoSink otherwise.
func WithSink(sink core.EventSink) Option {
	return func(c *config) {
		if sink == nil {
			if c.err == nil {
				c.err = errors.New("diaglog: WithSink called with nil sink")
			}
			return
		}
		c.sinks = append(c.sinks, sink)
	}
}

// WithPolicyStore sets the policy store consulted for scope overrides.
// Without one, an empty registry is used and nothing is logged (every
// scope inherits Off).
func WithPolicyStore(store core.PolicyStore) Option {
	return func(c *config) {
		if store == nil {
			if c.err == nil {
				c.err = errors.New("diaglog: WithPolicyStore called with nil store")
			}
			return
		}
		c.store = store
	}
}

// WithEnricher adds an enricher applied to every diagnostic record.
func WithEnricher(enricher core.EventEnricher) Option {
	return func(c *config) {
		if enricher == nil {
			if c.err == nil {
				c.err = errors.New("diaglog: WithEnricher called with nil enricher")
			}
			return
		}
		c.enrichers = append(c.enrichers, enricher)
	}
}

// WithLevel sets the severity of emitted records. The default is
// core.InformationLevel.
func WithLevel(level core.LogEventLevel) Option {
	return func(c *config) {
		c.level = level
	}
}
