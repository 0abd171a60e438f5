// File: evaluator.go
// Title: Chime Tree-Walking Evaluator
// Description: Evaluates a parsed CompilationUnit against a mutable scope.
//              One evaluator owns one scope for its whole lifetime; the
//              scope is seeded with a = 10 plus any configured bindings.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Arithmetic over float literals
// - 2026-10-09 v0.2.0: Booleans, declarations, identifiers and assignment
// - 2026-10-14 v0.3.0: Options, seeded bindings and Reset

package evaluator

import (
	"fmt"

	"github.com/RonaldDijks/chime/foundation/chime/ast"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
)

// PredefinedName and PredefinedValue form the binding every scope starts with
const (
	PredefinedName  = "a"
	PredefinedValue = Float(10)
)

// Evaluator walks the AST and maintains the variable scope
type Evaluator struct {
	scope    *Scope
	bindings map[string]Value
	logger   *mdwlog.Logger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLogger sets the logger used for trace output
func WithLogger(logger *mdwlog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBindings adds seed bindings on top of the predefined one. A seed
// named like the predefined binding replaces it.
func WithBindings(bindings map[string]Value) Option {
	return func(e *Evaluator) {
		for name, v := range bindings {
			if v != nil {
				e.bindings[name] = v
			}
		}
	}
}

// New creates an evaluator with a freshly seeded scope
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		bindings: make(map[string]Value),
		logger:   mdwlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithField("component", "evaluator")
	e.Reset()
	return e
}

// Reset discards every binding and restores the seeded scope
func (e *Evaluator) Reset() {
	e.scope = NewScope()
	e.scope.Set(PredefinedName, PredefinedValue)
	for name, v := range e.bindings {
		e.scope.Set(name, v)
	}
}

// Bindings returns a sorted snapshot of the current scope
func (e *Evaluator) Bindings() []Binding {
	return e.scope.Bindings()
}

// Evaluate evaluates the statement wrapped by unit
func (e *Evaluator) Evaluate(unit *ast.CompilationUnit) (Value, error) {
	if unit == nil || unit.Statement == nil {
		return nil, fmt.Errorf("evaluate: empty compilation unit")
	}
	return e.evaluateStatement(unit.Statement)
}

func (e *Evaluator) evaluateStatement(stmt ast.Statement) (Value, error) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		v, err := e.evaluateExpression(s.Initializer)
		if err != nil {
			return nil, err
		}
		if !e.scope.Declare(s.Name, v) {
			return nil, &VariableAlreadyDeclaredError{Name: s.Name}
		}
		e.logger.Trace("Variable declared", mdwlog.Fields{"name": s.Name, "value": v.String()})
		return Unit{}, nil

	case *ast.ExpressionStatement:
		return e.evaluateExpression(s.Expression)

	default:
		return nil, fmt.Errorf("evaluate: unsupported statement %T", stmt)
	}
}

func (e *Evaluator) evaluateExpression(expr ast.Expression) (Value, error) {
	switch x := expr.(type) {
	case *ast.FloatLiteral:
		return Float(x.Value), nil

	case *ast.BoolLiteral:
		return Bool(x.Value), nil

	case *ast.Identifier:
		v, ok := e.scope.Lookup(x.Name)
		if !ok {
			return nil, &UnknownIdentifierError{Name: x.Name}
		}
		return v, nil

	case *ast.Assignment:
		v, err := e.evaluateExpression(x.Value)
		if err != nil {
			return nil, err
		}
		if !e.scope.Assign(x.Name, v) {
			return nil, &UnknownIdentifierError{Name: x.Name}
		}
		e.logger.Trace("Variable assigned", mdwlog.Fields{"name": x.Name, "value": v.String()})
		return v, nil

	case *ast.BinaryOp:
		left, err := e.evaluateExpression(x.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.evaluateExpression(x.Right)
		if err != nil {
			return nil, err
		}
		return applyBinary(x.Operator, left, right)

	default:
		return nil, fmt.Errorf("evaluate: unsupported expression %T", expr)
	}
}

// applyBinary dispatches on the operand types and the operator. Both
// operands are already evaluated; && and || do not short-circuit.
func applyBinary(op ast.BinaryOperator, left, right Value) (Value, error) {
	switch l := left.(type) {
	case Float:
		if r, ok := right.(Float); ok {
			switch op {
			case ast.Add:
				return l + r, nil
			case ast.Sub:
				return l - r, nil
			case ast.Mul:
				return l * r, nil
			case ast.Div:
				return l / r, nil
			}
		}
	case Bool:
		if r, ok := right.(Bool); ok {
			switch op {
			case ast.LogicalAnd:
				return l && r, nil
			case ast.LogicalOr:
				return l || r, nil
			}
		}
	}

	return nil, &UnknownBinaryOperatorError{Operator: op, Left: left, Right: right}
}
