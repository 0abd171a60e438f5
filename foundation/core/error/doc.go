// Package error provides structured errors for chime.
//
// Package: error
// Title: chime Error Handling
// Description: Structured errors carrying a code, a severity, free-form
//              details and the operation that failed. Errors wrap their
//              cause so errors.Is and errors.As keep working through them.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Language codes; HasCode and GetCode follow wrapped chains
//
// Usage:
//
//	import mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
//
//	err := mdwerror.Wrap(parseErr, "parse failed").
//		WithCode(mdwerror.CodeSyntax).
//		WithDetail("input", line)
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//		// report to the user
//	}
package error
