// File: doc.go
// Title: Chime Abstract Syntax Tree Package Documentation
// Description: Defines the abstract syntax tree produced by the chime parser
//              together with visitors for printing and analysis.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree for chime statements.

A parsed line is a CompilationUnit wrapping exactly one Statement:

  - VariableDeclaration  let name = expression
  - ExpressionStatement  expression

Expressions are FloatLiteral, BoolLiteral, Identifier, BinaryOp and
Assignment. Expression and Statement are sealed interfaces: only the node
types declared here implement them, so a type switch over the node types is
exhaustive.

The tree is built once by the parser and never mutated afterwards. Each node
owns its children; nodes are never shared between trees.
*/
package ast
