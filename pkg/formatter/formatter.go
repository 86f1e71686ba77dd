// Package formatter pretty-prints Monkey ASTs back to source code.
package formatter

import (
	"strconv"
	"strings"

	"github.com/thomasrohde/monkey/pkg/ast"
)

const indent = "  "

// Precedence table for infix operators (higher = tighter binding)
var precedence = map[string]int{
	"==": 1, "!=": 1,
	"<": 2, ">": 2,
	"+": 3, "-": 3,
	"*": 4, "/": 4,
}

func needsParens(child ast.Expr, parentOp string, isRight bool) bool {
	in, ok := child.(*ast.InfixExpr)
	if !ok {
		return false
	}
	childPrec := precedence[in.Op]
	parentPrec := precedence[parentOp]
	if childPrec < parentPrec {
		return true
	}
	// All infix operators are left-associative, so same-precedence
	// children on the right side keep their parentheses.
	if childPrec == parentPrec && isRight {
		return true
	}
	return false
}

// Format pretty-prints a Monkey AST back to source code with canonical
// spacing and the minimum parentheses needed to preserve structure.
func Format(program *ast.Program) string {
	lines := make([]string, len(program.Statements))
	for i, s := range program.Statements {
		lines[i] = formatStmt(s, 0)
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatStmt(s ast.Stmt, depth int) string {
	prefix := strings.Repeat(indent, depth)
	switch stmt := s.(type) {
	case *ast.LetStmt:
		return prefix + "let " + stmt.Name.Name + " = " + formatExpr(stmt.Value, depth) + ";"
	case *ast.ReturnStmt:
		return prefix + "return " + formatExpr(stmt.Value, depth) + ";"
	case *ast.ExprStmt:
		return prefix + formatExpr(stmt.Expr, depth) + ";"
	}
	return ""
}

func formatBlock(block *ast.BlockStmt, depth int) string {
	lines := make([]string, len(block.Statements))
	for i, s := range block.Statements {
		lines[i] = formatStmt(s, depth+1)
	}
	return strings.Join(lines, "\n")
}

func formatExpr(e ast.Expr, depth int) string {
	switch expr := e.(type) {
	case *ast.Ident:
		return expr.Name
	case *ast.IntLiteral:
		return strconv.FormatInt(expr.Value, 10)
	case *ast.BoolLiteral:
		if expr.Value {
			return "true"
		}
		return "false"
	case *ast.PrefixExpr:
		operand := formatExpr(expr.Right, depth)
		switch expr.Right.(type) {
		case *ast.InfixExpr:
			return expr.Op + "(" + operand + ")"
		case *ast.PrefixExpr:
			return expr.Op + "(" + operand + ")"
		}
		return expr.Op + operand
	case *ast.InfixExpr:
		leftStr := formatExpr(expr.Left, depth)
		rightStr := formatExpr(expr.Right, depth)
		if needsParens(expr.Left, expr.Op, false) {
			leftStr = "(" + leftStr + ")"
		}
		if needsParens(expr.Right, expr.Op, true) {
			rightStr = "(" + rightStr + ")"
		}
		return leftStr + " " + expr.Op + " " + rightStr
	case *ast.IfExpr:
		prefix := strings.Repeat(indent, depth)
		out := "if (" + formatExpr(expr.Cond, depth) + ") {\n" +
			formatBlock(expr.Consequence, depth) + "\n" + prefix + "}"
		if expr.Alternative != nil {
			out += " else {\n" + formatBlock(expr.Alternative, depth) + "\n" + prefix + "}"
		}
		return out
	case *ast.FnLiteral:
		prefix := strings.Repeat(indent, depth)
		params := make([]string, len(expr.Params))
		for i, p := range expr.Params {
			params[i] = p.Name
		}
		return "fn(" + strings.Join(params, ", ") + ") {\n" +
			formatBlock(expr.Body, depth) + "\n" + prefix + "}"
	case *ast.CallExpr:
		args := make([]string, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = formatExpr(a, depth)
		}
		fnStr := formatExpr(expr.Fn, depth)
		if _, ok := expr.Fn.(*ast.InfixExpr); ok {
			fnStr = "(" + fnStr + ")"
		}
		return fnStr + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}

// ExprString renders expr with every prefix and infix operation fully
// parenthesized, making the parse tree's grouping explicit. Used to
// assert operator grouping in tests.
func ExprString(e ast.Expr) string {
	switch expr := e.(type) {
	case *ast.Ident:
		return expr.Name
	case *ast.IntLiteral:
		return strconv.FormatInt(expr.Value, 10)
	case *ast.BoolLiteral:
		if expr.Value {
			return "true"
		}
		return "false"
	case *ast.PrefixExpr:
		return "(" + expr.Op + ExprString(expr.Right) + ")"
	case *ast.InfixExpr:
		return "(" + ExprString(expr.Left) + " " + expr.Op + " " + ExprString(expr.Right) + ")"
	case *ast.CallExpr:
		args := make([]string, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = ExprString(a)
		}
		return ExprString(expr.Fn) + "(" + strings.Join(args, ", ") + ")"
	case *ast.IfExpr:
		return "if " + ExprString(expr.Cond)
	case *ast.FnLiteral:
		params := make([]string, len(expr.Params))
		for i, p := range expr.Params {
			params[i] = p.Name
		}
		return "fn(" + strings.Join(params, ", ") + ")"
	}
	return ""
}
