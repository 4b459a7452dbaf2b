package sinks

import (
	"github.com/go-logr/logr"

	"github.com/countincognito/diaglog/core"
)

// LogrSink forwards diagnostic events to a logr.Logger, mapping event
// properties to logr key/value pairs. Levels map onto logr's verbosity
// model: information and above log at V(0), debug at V(1), verbose at
// V(2).
type LogrSink struct {
	logger logr.Logger
}

// NewLogrSink creates a sink backed by the given logr.Logger.
func NewLogrSink(logger logr.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

// Emit forwards the event.
func (s *LogrSink) Emit(event *core.DiagnosticEvent) {
	kvs := make([]any, 0, len(event.Properties)*2)
	for k, v := range event.Properties {
		kvs = append(kvs, k, v)
	}

	s.logger.V(logrVerbosity(event.Level)).Info(event.Phase.String(), kvs...)
}

// Close does nothing for logr sink.
func (s *LogrSink) Close() error {
	return nil
}

func logrVerbosity(level core.LogEventLevel) int {
	switch {
	case level >= core.InformationLevel:
		return 0
	case level == core.DebugLevel:
		return 1
	default:
		return 2
	}
}
