// File: token.go
// Title: Chime Token Model
// Description: Defines the closed set of lexical token kinds, the token
//              value produced by the lexer, the keyword lookup table and
//              the binding-power table consulted by the parser.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial token kinds and keyword table
// - 2026-10-14 v0.2.0: Binding powers moved next to the token kinds

package token

import "fmt"

// Kind identifies the lexical category of a token
type Kind int

const (
	// Special tokens
	EndOfFile Kind = iota
	BadToken
	Whitespace

	// Delimiters
	LeftParenthesis
	RightParenthesis

	// Literals
	FloatLiteral
	True
	False

	// Names and keywords
	Identifier
	Let

	// Operators
	Plus
	Minus
	Asterisk
	Slash
	PipePipe
	AmpersandAmpersand
	Equals
)

var kindNames = [...]string{
	EndOfFile:          "EndOfFile",
	BadToken:           "BadToken",
	Whitespace:         "Whitespace",
	LeftParenthesis:    "LeftParenthesis",
	RightParenthesis:   "RightParenthesis",
	FloatLiteral:       "FloatLiteral",
	True:               "True",
	False:              "False",
	Identifier:         "Identifier",
	Let:                "Let",
	Plus:               "Plus",
	Minus:              "Minus",
	Asterisk:           "Asterisk",
	Slash:              "Slash",
	PipePipe:           "PipePipe",
	AmpersandAmpersand: "AmpersandAmpersand",
	Equals:             "Equals",
}

// String returns the name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. Text is the exact substring consumed
// from the source; Position is the rune offset where it starts.
type Token struct {
	Kind     Kind
	Text     string
	Position int
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case EndOfFile:
		return "EndOfFile"
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// keywords maps reserved words to their kinds
var keywords = map[string]Kind{
	"true":  True,
	"false": False,
	"let":   Let,
}

// LookupIdentifier resolves an alphanumeric run to a keyword kind or Identifier
func LookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Identifier
}

// IsKeyword reports whether text is a reserved word
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// BindingPower is the (left, right) pair used by precedence climbing.
// Higher values bind tighter; Right > Left makes an operator left-associative.
type BindingPower struct {
	Left  int
	Right int
}

var bindingPowers = map[Kind]BindingPower{
	PipePipe:           {Left: 1, Right: 2},
	AmpersandAmpersand: {Left: 3, Right: 4},
	Plus:               {Left: 5, Right: 6},
	Minus:              {Left: 5, Right: 6},
	Asterisk:           {Left: 7, Right: 8},
	Slash:              {Left: 7, Right: 8},
}

// BindingPower returns the binding power of a binary operator kind.
// The second result is false for kinds that are not binary operators.
func (k Kind) BindingPower() (BindingPower, bool) {
	bp, ok := bindingPowers[k]
	return bp, ok
}

// IsBinaryOperator reports whether the kind is an infix operator
func (k Kind) IsBinaryOperator() bool {
	_, ok := bindingPowers[k]
	return ok
}
