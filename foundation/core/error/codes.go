// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chime so callers can
//              classify failures without inspecting messages.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Syntax, evaluation and input length codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeInputTooLong Code = "INPUT_TOO_LONG"

	// Language
	CodeSyntax     Code = "SYNTAX"
	CodeEvaluation Code = "EVALUATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInputTooLong,
		CodeSyntax, CodeEvaluation,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInputTooLong:
		return "input"
	case CodeSyntax, CodeEvaluation:
		return "language"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input", "language":
		return 1
	case "configuration":
		return 78 // EX_CONFIG
	default:
		return 70 // EX_SOFTWARE
	}
}
