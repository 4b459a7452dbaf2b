package sinks

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/countincognito/diaglog/core"
	"github.com/countincognito/diaglog/selflog"
)

// ConsoleSink writes diagnostic events to a writer, one line per event.
type ConsoleSink struct {
	output io.Writer
	mu     sync.Mutex
}

// NewConsoleSink creates a console sink that writes to stdout.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{output: os.Stdout}
}

// NewConsoleSinkWithWriter creates a console sink that writes to the
// given writer.
func NewConsoleSinkWithWriter(output io.Writer) *ConsoleSink {
	return &ConsoleSink{output: output}
}

// Emit writes the event as a single line:
//
//	2006-01-02 15:04:05.000 [INF] Started diagnostic-pkg.Type.Method {Arguments=[...]}
func (c *ConsoleSink) Emit(event *core.DiagnosticEvent) {
	var sb strings.Builder
	sb.WriteString(event.Timestamp.Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(event.Level.String())
	sb.WriteString("] ")
	sb.WriteString(event.Phase.String())

	if name, ok := event.Properties[logNameProperty].(string); ok {
		sb.WriteByte(' ')
		sb.WriteString(name)
	}

	if extra := formatProperties(event.Properties); extra != "" {
		sb.WriteByte(' ')
		sb.WriteString(extra)
	}
	sb.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.output.Write([]byte(sb.String())); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// Close does nothing for console sink.
func (c *ConsoleSink) Close() error {
	return nil
}

// logNameProperty mirrors diaglog.PropertyLogName without importing the
// root package (sinks must stay import-cycle free).
const logNameProperty = "LogName"

// formatProperties renders every property except the identity marker,
// sorted by name for stable output.
func formatProperties(properties map[string]any) string {
	if len(properties) == 0 {
		return ""
	}

	keys := make([]string, 0, len(properties))
	for k := range properties {
		if k == logNameProperty {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, properties[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
