// File: lexer.go
// Title: Chime Lexical Analyzer
// Description: Converts source text into a lazy sequence of tokens. Every
//              character of the input ends up in exactly one token, so the
//              token texts concatenate back to the original source.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial lexer with numbers and arithmetic operators
// - 2026-10-09 v0.2.0: Identifiers, keywords, logical operators and '='

package parser

import (
	"unicode"

	"github.com/RonaldDijks/chime/foundation/chime/token"
)

// sentinel is returned for peeks past the end of the input
const sentinel = '\x00'

// Lexer performs lexical analysis of chime source text
type Lexer struct {
	input    []rune // Source text
	position int    // Index of the next unread rune
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next consumes the next token. Once the input is exhausted every call
// returns an EndOfFile token with empty text.
func (l *Lexer) Next() token.Token {
	start := l.position
	var kind token.Kind

	switch ch := l.current(); {
	case l.atEnd():
		kind = token.EndOfFile
	case unicode.IsSpace(ch):
		l.consumeWhile(unicode.IsSpace)
		kind = token.Whitespace
	case unicode.IsNumber(ch):
		l.consumeWhile(unicode.IsNumber)
		kind = token.FloatLiteral
	case ch == '|' && l.peek(1) == '|':
		l.position += 2
		kind = token.PipePipe
	case ch == '&' && l.peek(1) == '&':
		l.position += 2
		kind = token.AmpersandAmpersand
	case unicode.IsLetter(ch):
		l.consumeWhile(isAlphanumeric)
		kind = token.LookupIdentifier(string(l.input[start:l.position]))
	default:
		l.position++
		kind = punctuation(ch)
	}

	return token.Token{
		Kind:     kind,
		Text:     string(l.input[start:l.position]),
		Position: start,
	}
}

// Tokenize runs the lexer to completion and returns every token, including
// whitespace and the final EndOfFile
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			return tokens
		}
	}
}

// Tokenize is a convenience function that lexes the whole input
func Tokenize(input string) []token.Token {
	return NewLexer(input).Tokenize()
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) current() rune {
	return l.peek(0)
}

func (l *Lexer) peek(offset int) rune {
	if i := l.position + offset; i < len(l.input) {
		return l.input[i]
	}
	return sentinel
}

func (l *Lexer) consumeWhile(match func(rune) bool) {
	for !l.atEnd() && match(l.current()) {
		l.position++
	}
}

func isAlphanumeric(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsNumber(ch)
}

// punctuation maps single-character operators and delimiters
func punctuation(ch rune) token.Kind {
	switch ch {
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Asterisk
	case '/':
		return token.Slash
	case '(':
		return token.LeftParenthesis
	case ')':
		return token.RightParenthesis
	case '=':
		return token.Equals
	default:
		return token.BadToken
	}
}
