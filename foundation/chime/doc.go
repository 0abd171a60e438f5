// File: doc.go
// Title: Chime Package Documentation
// Description: Package overview for the chime expression language.
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial package documentation

/*
Package chime is a small expression language with floats, booleans and
variables.

A statement is either a declaration or an expression:

	let x = 2 * (a + 1)
	x = x / 4
	true && x || false

Source text flows through four stages:

	text -> parser.Lexer -> parser.Parser -> ast.CompilationUnit -> evaluator.Evaluator -> evaluator.Value

The Engine in this package runs the whole pipeline and keeps one evaluator,
and therefore one scope, for its lifetime:

	engine, _ := chime.New(chime.Options{})
	engine.Execute("let y = 3")   // () : unit
	res, _ := engine.Execute("y * a")
	fmt.Println(res.Value)        // 30 : float

Errors returned by the Engine are *mdwerror.Error values coded SYNTAX,
EVALUATION, INVALID_INPUT or INPUT_TOO_LONG. The typed parser and evaluator
errors remain reachable with errors.Is and errors.As.
*/
package chime
