// File: parser_test.go
// Title: Chime Parser Unit Tests
// Description: Unit tests for the chime parser covering statements,
//              precedence, associativity, assignment chains and error
//              reporting.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial parser tests
// - 2026-10-09 v0.2.0: Declarations and assignment
// - 2026-10-14 v0.3.0: Precedence and error cases

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/RonaldDijks/chime/foundation/chime/ast"
	"github.com/RonaldDijks/chime/foundation/chime/token"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Single literal", "42", "42"},
		{"Identifier", "abc", "abc"},
		{"Booleans", "true || false", "(true || false)"},
		{"Multiplication binds tighter", "2 + 3 * 4", "(2 + (3 * 4))"},
		{"Parentheses", "(2 + 3) * 4", "((2 + 3) * 4)"},
		{"Left associative subtraction", "1 - 2 - 3", "((1 - 2) - 3)"},
		{"Left associative division", "8 / 4 / 2", "((8 / 4) / 2)"},
		{"And binds tighter than or", "false && true || true", "((false && true) || true)"},
		{"Or on the left", "a || b && c", "(a || (b && c))"},
		{"Arithmetic inside logic", "a + 1 && b", "((a + 1) && b)"},
		{"Nested parentheses", "((1))", "1"},
		{"Assignment", "a = 1", "(a = 1)"},
		{"Assignment chain", "a = b = 1 + 2", "(a = (b = (1 + 2)))"},
		{"Declaration", "let x = 2 * a", "let x = (2 * a)"},
		{"Declaration with assignment", "let x = a = 3", "let x = (a = 3)"},
		{"Surrounding whitespace", "  \t 7 \n", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := unit.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParser_StatementKinds(t *testing.T) {
	unit, err := Parse("let y = 1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	decl, ok := unit.Statement.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("Expected *ast.VariableDeclaration, got %T", unit.Statement)
	}
	if decl.Name != "y" {
		t.Errorf("Expected name y, got %s", decl.Name)
	}
	if lit, ok := decl.Initializer.(*ast.FloatLiteral); !ok || lit.Value != 1 {
		t.Errorf("Expected FloatLiteral 1, got %v", decl.Initializer)
	}

	unit, err = Parse("abc")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	stmt, ok := unit.Statement.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("Expected *ast.ExpressionStatement, got %T", unit.Statement)
	}
	if ident, ok := stmt.Expression.(*ast.Identifier); !ok || ident.Name != "abc" {
		t.Errorf("Expected Identifier abc, got %v", stmt.Expression)
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantFound token.Kind
	}{
		{"Empty input", "", ErrUnexpectedToken, token.EndOfFile},
		{"Whitespace only", "   ", ErrUnexpectedToken, token.EndOfFile},
		{"Trailing operator", "1 +", ErrUnexpectedToken, token.EndOfFile},
		{"Leading operator", "* 2", ErrUnexpectedToken, token.Asterisk},
		{"Unary minus", "-1", ErrUnexpectedToken, token.Minus},
		{"Missing right parenthesis", "(1 + 2", ErrUnexpectedToken, token.EndOfFile},
		{"Stray right parenthesis", "1)", ErrUnexpectedToken, token.RightParenthesis},
		{"Empty parentheses", "()", ErrUnexpectedToken, token.RightParenthesis},
		{"Adjacent literals", "1 2", ErrUnexpectedToken, token.FloatLiteral},
		{"Bad token", "1 $ 2", ErrUnexpectedToken, token.BadToken},
		{"Decimal point", "1.5", ErrUnexpectedToken, token.BadToken},
		{"Let without name", "let = 1", ErrUnexpectedToken, token.Equals},
		{"Let with keyword name", "let true = 1", ErrUnexpectedToken, token.True},
		{"Let without equals", "let x 1", ErrUnexpectedToken, token.FloatLiteral},
		{"Let without initializer", "let x =", ErrUnexpectedToken, token.EndOfFile},
		{"Assignment to literal", "1 = 2", ErrUnexpectedToken, token.Equals},
		{"Assignment inside parentheses", "(a = 1)", ErrUnexpectedToken, token.Equals},
		{"Float overflow", "1" + strings.Repeat("0", 400), ErrFloatLiteralParse, token.FloatLiteral},
		{"Non ASCII digits", "١٢", ErrFloatLiteralParse, token.FloatLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Expected error, got %v", unit)
			}
			if unit != nil {
				t.Errorf("Expected nil unit on error, got %v", unit)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if parseErr.Found.Kind != tt.wantFound {
				t.Errorf("Expected found %s, got %s", tt.wantFound, parseErr.Found.Kind)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := Parse("(1")
	want := `unexpected token: expected RightParenthesis, found EndOfFile at offset 2`
	if err == nil || err.Error() != want {
		t.Errorf("Expected %q, got %v", want, err)
	}

	_, err = Parse("+")
	want = `unexpected token: Plus("+") at offset 0`
	if err == nil || err.Error() != want {
		t.Errorf("Expected %q, got %v", want, err)
	}
}

func TestParser_PeekClampsToEndOfFile(t *testing.T) {
	p := New("x")
	if got := p.peek(10).Kind; got != token.EndOfFile {
		t.Errorf("Expected EndOfFile, got %s", got)
	}
	if n := len(p.tokens); n != 2 {
		t.Errorf("Expected 2 tokens, got %d", n)
	}

	empty := New("")
	if n := len(empty.tokens); n != 1 || empty.tokens[0].Kind != token.EndOfFile {
		t.Errorf("Expected only the EndOfFile sentinel, got %v", empty.tokens)
	}
}
