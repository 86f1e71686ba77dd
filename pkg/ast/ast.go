// Package ast defines the Monkey language AST node types.
package ast

// Span represents a source location range.
type Span struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Kind() string
	NodeSpan() Span
}

// --- Expr is the interface for all expression nodes ---

type Expr interface {
	Node
	exprNode() // sealed marker
}

// --- Stmt is the interface for all statement nodes ---

type Stmt interface {
	Node
	stmtNode() // sealed marker
}

// --- Expressions ---

type Ident struct {
	Span Span
	Name string
}

func (n *Ident) Kind() string   { return "Ident" }
func (n *Ident) NodeSpan() Span { return n.Span }
func (n *Ident) exprNode()      {}

type IntLiteral struct {
	Span  Span
	Value int64
}

func (n *IntLiteral) Kind() string   { return "IntLiteral" }
func (n *IntLiteral) NodeSpan() Span { return n.Span }
func (n *IntLiteral) exprNode()      {}

type BoolLiteral struct {
	Span  Span
	Value bool
}

func (n *BoolLiteral) Kind() string   { return "BoolLiteral" }
func (n *BoolLiteral) NodeSpan() Span { return n.Span }
func (n *BoolLiteral) exprNode()      {}

// PrefixExpr is a unary operator application: !x or -x.
type PrefixExpr struct {
	Span  Span
	Op    string
	Right Expr
}

func (n *PrefixExpr) Kind() string   { return "PrefixExpr" }
func (n *PrefixExpr) NodeSpan() Span { return n.Span }
func (n *PrefixExpr) exprNode()      {}

// InfixExpr is a binary operator application: left op right.
type InfixExpr struct {
	Span  Span
	Op    string
	Left  Expr
	Right Expr
}

func (n *InfixExpr) Kind() string   { return "InfixExpr" }
func (n *InfixExpr) NodeSpan() Span { return n.Span }
func (n *InfixExpr) exprNode()      {}

// IfExpr is a conditional expression. Alternative may be nil.
type IfExpr struct {
	Span        Span
	Cond        Expr
	Consequence *BlockStmt
	Alternative *BlockStmt
}

func (n *IfExpr) Kind() string   { return "IfExpr" }
func (n *IfExpr) NodeSpan() Span { return n.Span }
func (n *IfExpr) exprNode()      {}

// FnLiteral is an anonymous function expression: fn(a, b) { ... }.
type FnLiteral struct {
	Span   Span
	Params []*Ident
	Body   *BlockStmt
}

func (n *FnLiteral) Kind() string   { return "FnLiteral" }
func (n *FnLiteral) NodeSpan() Span { return n.Span }
func (n *FnLiteral) exprNode()      {}

// CallExpr applies a callee expression to ordered arguments.
type CallExpr struct {
	Span Span
	Fn   Expr
	Args []Expr
}

func (n *CallExpr) Kind() string   { return "CallExpr" }
func (n *CallExpr) NodeSpan() Span { return n.Span }
func (n *CallExpr) exprNode()      {}

// --- Statements ---

type LetStmt struct {
	Span  Span
	Name  *Ident
	Value Expr
}

func (n *LetStmt) Kind() string   { return "LetStmt" }
func (n *LetStmt) NodeSpan() Span { return n.Span }
func (n *LetStmt) stmtNode()      {}

type ReturnStmt struct {
	Span  Span
	Value Expr
}

func (n *ReturnStmt) Kind() string   { return "ReturnStmt" }
func (n *ReturnStmt) NodeSpan() Span { return n.Span }
func (n *ReturnStmt) stmtNode()      {}

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	Span Span
	Expr Expr
}

func (n *ExprStmt) Kind() string   { return "ExprStmt" }
func (n *ExprStmt) NodeSpan() Span { return n.Span }
func (n *ExprStmt) stmtNode()      {}

// BlockStmt is a brace-delimited ordered statement sequence.
type BlockStmt struct {
	Span       Span
	Statements []Stmt
}

func (n *BlockStmt) Kind() string   { return "BlockStmt" }
func (n *BlockStmt) NodeSpan() Span { return n.Span }
func (n *BlockStmt) stmtNode()      {}

// --- Program ---

type Program struct {
	Span       Span
	Statements []Stmt
}

func (n *Program) Kind() string   { return "Program" }
func (n *Program) NodeSpan() Span { return n.Span }
