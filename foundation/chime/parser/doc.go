// File: doc.go
// Title: Chime Parser Package Documentation
// Description: Lexer and precedence-climbing parser for chime statements.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial package documentation
// - 2026-10-14 v0.3.0: Document binding powers

/*
Package parser turns chime source text into an abstract syntax tree.

The Lexer produces one token per call to Next and never fails: characters it
does not recognise become BadToken tokens which the parser later rejects.
Concatenating the text of every token reproduces the input exactly.

The Parser lexes the whole input up front, drops whitespace and terminates
the token slice with a single EndOfFile sentinel. Its grammar is:

	compilation_unit := statement EndOfFile
	statement        := "let" identifier "=" expression | expression
	expression       := identifier "=" expression | binary(0)
	binary(min)      := primary { operator binary(right) }
	primary          := "(" binary(0) ")" | float | "true" | "false" | identifier

Binary operators use precedence climbing with these binding powers:

	||      1, 2
	&&      3, 4
	+ -     5, 6
	* /     7, 8

All binary operators are left-associative. Assignment is right-associative
and is only recognised at the start of an expression.

Usage:

	unit, err := parser.Parse("let x = 2 * (a + 1)")
	if errors.Is(err, parser.ErrUnexpectedToken) {
		...
	}
*/
package parser
