// Package stringx provides small string helpers shared across chime.
//
// Package: stringx
// Title: String Utilities
// Description: Unicode-aware helpers for blank checks, truncation of
//              values written to logs, and line splitting.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Initial string helpers
// - 2026-10-12 v0.2.0: Reduced to the helpers chime uses
package stringx
