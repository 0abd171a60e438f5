/*
Package evaluator executes chime syntax trees.

An Evaluator owns a Scope that lives as long as the evaluator itself, so a
declaration made by one Evaluate call is visible to the next:

	ev := evaluator.New()
	unit, _ := parser.Parse("let x = a * 2")
	ev.Evaluate(unit) // () : unit
	unit, _ = parser.Parse("x + 1")
	ev.Evaluate(unit) // 21 : float

Every scope starts with a = 10. Floats support + - * / with IEEE-754
semantics, so division by zero yields inf or NaN rather than an error.
Bools support && and ||. Both operands are always evaluated and values are
never converted between types; any other combination fails with an
UnknownBinaryOperatorError.
*/
package evaluator
