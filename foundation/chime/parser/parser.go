// File: parser.go
// Title: Chime Precedence-Climbing Parser
// Description: Converts a chime source line into a CompilationUnit using
//              recursive descent for statements and assignment and
//              precedence climbing for binary operators. Parsing stops at
//              the first error; there is no recovery.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Left-to-right binary expressions over float literals
// - 2026-10-09 v0.2.0: let declarations, identifiers and assignment
// - 2026-10-14 v0.3.0: Precedence climbing with binding powers

package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/RonaldDijks/chime/foundation/chime/ast"
	"github.com/RonaldDijks/chime/foundation/chime/token"
)

var (
	// ErrUnexpectedToken is returned when the grammar cannot accept a token
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrFloatLiteralParse is returned when a numeric run is not a finite float64
	ErrFloatLiteralParse = errors.New("invalid float literal")
)

// ParseError describes where parsing stopped. Err is one of the sentinel
// errors above; Expected is only meaningful when HasExpected is set.
type ParseError struct {
	Err         error
	Found       token.Token
	Expected    token.Kind
	HasExpected bool
}

func (pe *ParseError) Error() string {
	if pe.HasExpected {
		return fmt.Sprintf("%s: expected %s, found %s at offset %d",
			pe.Err, pe.Expected, pe.Found, pe.Found.Position)
	}
	return fmt.Sprintf("%s: %s at offset %d", pe.Err, pe.Found, pe.Found.Position)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// binaryOperators maps operator tokens to AST operators
var binaryOperators = map[token.Kind]ast.BinaryOperator{
	token.Plus:               ast.Add,
	token.Minus:              ast.Sub,
	token.Asterisk:           ast.Mul,
	token.Slash:              ast.Div,
	token.AmpersandAmpersand: ast.LogicalAnd,
	token.PipePipe:           ast.LogicalOr,
}

// Parser parses one chime statement
type Parser struct {
	tokens   []token.Token // Non-whitespace tokens, always ending in EndOfFile
	position int
}

// New lexes the whole source up front. Whitespace is dropped and exactly
// one EndOfFile sentinel terminates the token slice.
func New(source string) *Parser {
	lexer := NewLexer(source)
	var tokens []token.Token

	for {
		tok := lexer.Next()
		if tok.Kind == token.Whitespace {
			continue
		}
		if tok.Kind == token.EndOfFile {
			tokens = append(tokens, tok)
			break
		}
		tokens = append(tokens, tok)
	}

	return &Parser{tokens: tokens}
}

// Parse parses the source into a compilation unit
func (p *Parser) Parse() (*ast.CompilationUnit, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EndOfFile); err != nil {
		return nil, err
	}
	return &ast.CompilationUnit{Statement: stmt}, nil
}

// Parse is a convenience function that parses source in one call
func Parse(source string) (*ast.CompilationUnit, error) {
	return New(source).Parse()
}

// peek returns the token offset positions ahead; reads past the end clamp
// to the EndOfFile sentinel
func (p *Parser) peek(offset int) token.Token {
	if i := p.position + offset; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) current() token.Token {
	return p.peek(0)
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return tok, &ParseError{Err: ErrUnexpectedToken, Found: tok, Expected: kind, HasExpected: true}
	}
	return p.advance(), nil
}

func (p *Parser) unexpected() error {
	return &ParseError{Err: ErrUnexpectedToken, Found: p.current()}
}

// parseStatement parses a let declaration or an expression statement
func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.current().Kind == token.Let {
		return p.parseVariableDeclaration()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

// parseVariableDeclaration parses: let identifier = expression
func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	if _, err := p.expect(token.Let); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Name: name.Text, Initializer: init}, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment parses right-associative assignment, detected by an
// identifier immediately followed by '='
func (p *Parser) parseAssignment() (ast.Expression, error) {
	if p.current().Kind == token.Identifier && p.peek(1).Kind == token.Equals {
		name := p.advance()
		p.advance() // consume '='

		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Name: name.Text, Value: value}, nil
	}

	return p.parseBinary(0)
}

// parseBinary implements precedence climbing. Operators whose left binding
// power is below minBP are left for a caller further up the recursion.
func (p *Parser) parseBinary(minBP int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.current()
		if op.Kind == token.EndOfFile || op.Kind == token.RightParenthesis {
			break
		}
		bp, ok := op.Kind.BindingPower()
		if !ok || bp.Left < minBP {
			break
		}
		p.advance()

		right, err := p.parseBinary(bp.Right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{
			Operator: binaryOperators[op.Kind],
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parsePrimary parses literals, identifiers and parenthesized expressions
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch tok := p.current(); tok.Kind {
	case token.LeftParenthesis:
		p.advance()
		expr, err := p.parseBinary(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParenthesis); err != nil {
			return nil, err
		}
		return expr, nil

	case token.FloatLiteral:
		p.advance()
		value, err := parseFloat(tok.Text)
		if err != nil {
			return nil, &ParseError{Err: ErrFloatLiteralParse, Found: tok}
		}
		return &ast.FloatLiteral{Value: value}, nil

	case token.True:
		p.advance()
		return &ast.BoolLiteral{Value: true}, nil

	case token.False:
		p.advance()
		return &ast.BoolLiteral{Value: false}, nil

	case token.Identifier:
		p.advance()
		return &ast.Identifier{Name: tok.Text}, nil

	default:
		return nil, p.unexpected()
	}
}

// parseFloat converts a digit run; overflow to infinity is rejected
func parseFloat(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}
	return value, nil
}
