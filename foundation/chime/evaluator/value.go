// File: value.go
// Title: Chime Runtime Values
// Description: Defines the values produced by evaluation. Value is a sealed
//              interface with exactly three implementations: Unit, Float
//              and Bool. String renders the user-visible form.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Float values
// - 2026-10-09 v0.2.0: Bool and Unit values, type names

package evaluator

import (
	"math"
	"strconv"
)

// Type names the runtime type of a value
type Type string

const (
	TypeUnit  Type = "unit"
	TypeFloat Type = "float"
	TypeBool  Type = "bool"
)

// Value is the result of evaluating a statement
type Value interface {
	// Type returns the runtime type
	Type() Type

	// Text returns the value without its type suffix
	Text() string

	// String returns "<text> : <type>"
	String() string

	value()
}

// Unit is the value of a declaration
type Unit struct{}

// Float is a 64-bit IEEE-754 number
type Float float64

// Bool is a boolean
type Bool bool

func (Unit) value()  {}
func (Float) value() {}
func (Bool) value()  {}

func (Unit) Type() Type  { return TypeUnit }
func (Float) Type() Type { return TypeFloat }
func (Bool) Type() Type  { return TypeBool }

func (Unit) Text() string { return "()" }

// Text renders the shortest decimal form without exponent
func (f Float) Text() string {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (b Bool) Text() string { return strconv.FormatBool(bool(b)) }

func (u Unit) String() string  { return render(u) }
func (f Float) String() string { return render(f) }
func (b Bool) String() string  { return render(b) }

func render(v Value) string {
	return v.Text() + " : " + string(v.Type())
}

// Describe renders a value for diagnostics, e.g. Float(1) or Bool(true)
func Describe(v Value) string {
	switch v := v.(type) {
	case Unit:
		return "Unit"
	case Float:
		return "Float(" + v.Text() + ")"
	case Bool:
		return "Bool(" + v.Text() + ")"
	default:
		return "<nil>"
	}
}

// Interface returns the underlying Go value (nil for Unit)
func Interface(v Value) interface{} {
	switch v := v.(type) {
	case Float:
		return float64(v)
	case Bool:
		return bool(v)
	default:
		return nil
	}
}
