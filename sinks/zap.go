package sinks

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/countincognito/diaglog/core"
)

// ZapSink forwards diagnostic events to a zap.Logger, mapping event
// properties to zap fields.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink backed by the given zap logger. A nil
// logger falls back to zap.NewNop so the sink is always safe to emit
// through.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// Emit forwards the event.
func (s *ZapSink) Emit(event *core.DiagnosticEvent) {
	fields := make([]zap.Field, 0, len(event.Properties))
	for k, v := range event.Properties {
		fields = append(fields, zap.Any(k, v))
	}

	if ce := s.logger.Check(zapLevel(event.Level), event.Phase.String()); ce != nil {
		ce.Write(fields...)
	}
}

// Close flushes buffered entries.
func (s *ZapSink) Close() error {
	return s.logger.Sync()
}

func zapLevel(level core.LogEventLevel) zapcore.Level {
	switch level {
	case core.VerboseLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InformationLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
