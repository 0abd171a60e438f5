// File: nodes.go
// Title: Chime AST Node Definitions
// Description: Defines the statement and expression nodes produced by the
//              parser. Expressions and statements are sealed interfaces;
//              every node exclusively owns its children.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial literal and binary expression nodes
// - 2026-10-09 v0.2.0: Identifiers, assignment, statements and compilation unit

package ast

import (
	"fmt"
	"strconv"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact, parenthesized rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Expression is implemented by every expression node
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement node
type Statement interface {
	Node
	statementNode()
}

// BinaryOperator identifies the operation of a BinaryOp node
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	LogicalAnd
	LogicalOr
)

// String returns the operator name
func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case LogicalAnd:
		return "LogicalAnd"
	case LogicalOr:
		return "LogicalOr"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
}

// Symbol returns the source spelling of the operator
func (op BinaryOperator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case LogicalAnd:
		return "&&"
	case LogicalOr:
		return "||"
	default:
		return "?"
	}
}

// Expression types

// FloatLiteral is a numeric literal
type FloatLiteral struct {
	Value float64
}

// BoolLiteral is true or false
type BoolLiteral struct {
	Value bool
}

// Identifier references a variable
type Identifier struct {
	Name string
}

// BinaryOp applies Operator to Left and Right
type BinaryOp struct {
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

// Assignment stores the result of Value into an existing variable
type Assignment struct {
	Name  string
	Value Expression
}

// Statement types

// VariableDeclaration introduces a new variable with let
type VariableDeclaration struct {
	Name        string
	Initializer Expression
}

// ExpressionStatement is an expression evaluated for its value
type ExpressionStatement struct {
	Expression Expression
}

// CompilationUnit is the root of a parsed input line
type CompilationUnit struct {
	Statement Statement
}

func (*FloatLiteral) expressionNode() {}
func (*BoolLiteral) expressionNode()  {}
func (*Identifier) expressionNode()   {}
func (*BinaryOp) expressionNode()     {}
func (*Assignment) expressionNode()   {}

func (*VariableDeclaration) statementNode() {}
func (*ExpressionStatement) statementNode() {}

func (e *FloatLiteral) String() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

func (e *BoolLiteral) String() string {
	return strconv.FormatBool(e.Value)
}

func (e *Identifier) String() string {
	return e.Name
}

func (e *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator.Symbol(), e.Right)
}

func (e *Assignment) String() string {
	return fmt.Sprintf("(%s = %s)", e.Name, e.Value)
}

func (s *VariableDeclaration) String() string {
	return fmt.Sprintf("let %s = %s", s.Name, s.Initializer)
}

func (s *ExpressionStatement) String() string {
	return s.Expression.String()
}

func (u *CompilationUnit) String() string {
	return u.Statement.String()
}

func (e *FloatLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitFloatLiteral(e)
}

func (e *BoolLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitBoolLiteral(e)
}

func (e *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(e)
}

func (e *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(e)
}

func (e *Assignment) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(e)
}

func (s *VariableDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDeclaration(s)
}

func (s *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(s)
}

func (u *CompilationUnit) Accept(visitor Visitor) interface{} {
	return visitor.VisitCompilationUnit(u)
}
