package core

// LogEventLevel specifies the severity of a diagnostic record.
type LogEventLevel int

const (
	// VerboseLevel is the most detailed logging level.
	VerboseLevel LogEventLevel = iota

	// DebugLevel is for debugging information.
	DebugLevel

	// InformationLevel is for informational messages. Diagnostic
	// invocation records are emitted at this level by default.
	InformationLevel

	// WarningLevel is for warnings.
	WarningLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for fatal errors.
	FatalLevel
)

// String returns the three-letter display code for the level.
func (l LogEventLevel) String() string {
	switch l {
	case VerboseLevel:
		return "VRB"
	case DebugLevel:
		return "DBG"
	case InformationLevel:
		return "INF"
	case WarningLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	case FatalLevel:
		return "FTL"
	default:
		return "UNK"
	}
}
