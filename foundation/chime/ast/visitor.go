// File: visitor.go
// Title: Chime AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing chime AST
//              nodes together with the tree printer used by the AST dump
//              and a collector for referenced identifiers.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial visitor and tree printer
// - 2026-10-09 v0.2.0: Statement nodes and identifier collector

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit statement nodes
	VisitCompilationUnit(unit *CompilationUnit) interface{}
	VisitVariableDeclaration(stmt *VariableDeclaration) interface{}
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}

	// Visit expression nodes
	VisitFloatLiteral(expr *FloatLiteral) interface{}
	VisitBoolLiteral(expr *BoolLiteral) interface{}
	VisitIdentifier(expr *Identifier) interface{}
	VisitBinaryOp(expr *BinaryOp) interface{}
	VisitAssignment(expr *Assignment) interface{}
}

// TreePrinter renders a node as an indented tree, one node per line
type TreePrinter struct {
	buffer strings.Builder
	indent int
}

// NewTreePrinter creates a new tree printer
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// String returns the rendered tree
func (tp *TreePrinter) String() string {
	return tp.buffer.String()
}

// Reset clears the internal buffer
func (tp *TreePrinter) Reset() {
	tp.buffer.Reset()
	tp.indent = 0
}

func (tp *TreePrinter) line(format string, args ...interface{}) {
	tp.buffer.WriteString(strings.Repeat("  ", tp.indent))
	tp.buffer.WriteString(fmt.Sprintf(format, args...))
	tp.buffer.WriteString("\n")
}

func (tp *TreePrinter) child(node Node) {
	tp.indent++
	node.Accept(tp)
	tp.indent--
}

func (tp *TreePrinter) VisitCompilationUnit(unit *CompilationUnit) interface{} {
	tp.line("CompilationUnit")
	tp.child(unit.Statement)
	return nil
}

func (tp *TreePrinter) VisitVariableDeclaration(stmt *VariableDeclaration) interface{} {
	tp.line("VariableDeclaration %s", stmt.Name)
	tp.child(stmt.Initializer)
	return nil
}

func (tp *TreePrinter) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	tp.line("ExpressionStatement")
	tp.child(stmt.Expression)
	return nil
}

func (tp *TreePrinter) VisitFloatLiteral(expr *FloatLiteral) interface{} {
	tp.line("FloatLiteral %s", expr.String())
	return nil
}

func (tp *TreePrinter) VisitBoolLiteral(expr *BoolLiteral) interface{} {
	tp.line("BoolLiteral %t", expr.Value)
	return nil
}

func (tp *TreePrinter) VisitIdentifier(expr *Identifier) interface{} {
	tp.line("Identifier %s", expr.Name)
	return nil
}

func (tp *TreePrinter) VisitBinaryOp(expr *BinaryOp) interface{} {
	tp.line("BinaryOp %s", expr.Operator)
	tp.child(expr.Left)
	tp.child(expr.Right)
	return nil
}

func (tp *TreePrinter) VisitAssignment(expr *Assignment) interface{} {
	tp.line("Assignment %s", expr.Name)
	tp.child(expr.Value)
	return nil
}

// IdentifierCollector records every variable name read or written by a node
type IdentifierCollector struct {
	names map[string]struct{}
}

// NewIdentifierCollector creates a new identifier collector
func NewIdentifierCollector() *IdentifierCollector {
	return &IdentifierCollector{names: make(map[string]struct{})}
}

// Names returns the collected names in sorted order
func (ic *IdentifierCollector) Names() []string {
	names := make([]string, 0, len(ic.names))
	for name := range ic.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ic *IdentifierCollector) VisitCompilationUnit(unit *CompilationUnit) interface{} {
	return unit.Statement.Accept(ic)
}

func (ic *IdentifierCollector) VisitVariableDeclaration(stmt *VariableDeclaration) interface{} {
	ic.names[stmt.Name] = struct{}{}
	return stmt.Initializer.Accept(ic)
}

func (ic *IdentifierCollector) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	return stmt.Expression.Accept(ic)
}

func (ic *IdentifierCollector) VisitFloatLiteral(expr *FloatLiteral) interface{} {
	return nil // Terminal node
}

func (ic *IdentifierCollector) VisitBoolLiteral(expr *BoolLiteral) interface{} {
	return nil // Terminal node
}

func (ic *IdentifierCollector) VisitIdentifier(expr *Identifier) interface{} {
	ic.names[expr.Name] = struct{}{}
	return nil
}

func (ic *IdentifierCollector) VisitBinaryOp(expr *BinaryOp) interface{} {
	expr.Left.Accept(ic)
	return expr.Right.Accept(ic)
}

func (ic *IdentifierCollector) VisitAssignment(expr *Assignment) interface{} {
	ic.names[expr.Name] = struct{}{}
	return expr.Value.Accept(ic)
}

// Utility functions for working with visitors

// TreeString renders a node as an indented tree
func TreeString(node Node) string {
	printer := NewTreePrinter()
	node.Accept(printer)
	return printer.String()
}

// CollectIdentifiers returns the sorted set of names a node references
func CollectIdentifiers(node Node) []string {
	collector := NewIdentifierCollector()
	node.Accept(collector)
	return collector.Names()
}
