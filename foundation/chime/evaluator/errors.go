// File: errors.go
// Title: Chime Evaluation Errors
// Description: Typed errors returned by the evaluator. Callers match them
//              with errors.As.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: UnknownBinaryOperatorError
// - 2026-10-09 v0.2.0: Identifier and declaration errors

package evaluator

import (
	"fmt"

	"github.com/RonaldDijks/chime/foundation/chime/ast"
)

// UnknownBinaryOperatorError is returned when an operator is not defined
// for the runtime types of its operands
type UnknownBinaryOperatorError struct {
	Operator ast.BinaryOperator
	Left     Value
	Right    Value
}

func (e *UnknownBinaryOperatorError) Error() string {
	return fmt.Sprintf("unknown binary operator %s for %s and %s",
		e.Operator, Describe(e.Left), Describe(e.Right))
}

// UnknownIdentifierError is returned when reading or assigning a name that
// was never declared
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}

// VariableAlreadyDeclaredError is returned when let names an existing binding
type VariableAlreadyDeclaredError struct {
	Name string
}

func (e *VariableAlreadyDeclaredError) Error() string {
	return fmt.Sprintf("variable %q is already declared", e.Name)
}
