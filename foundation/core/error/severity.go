// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger picks its
//              level from the severity when logging an error.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Initial severity levels
// - 2026-10-12 v0.2.0: Severity mapping for chime codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks user mistakes such as malformed input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh marks failures that stop a command from running at all
	SeverityHigh

	// SeverityCritical marks broken invariants inside chime itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity that belongs to a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInputTooLong, CodeSyntax, CodeEvaluation, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
