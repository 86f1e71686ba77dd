// Package evaluator executes Monkey programs by walking the AST.
//
// Evaluation is a single recursive function over node kinds. Two values get
// special treatment on the way out: *ReturnValue wrappers bubble through
// enclosing blocks until a call boundary (or the program top) strips them,
// and *Error values short-circuit everything, propagating outward unchanged.
package evaluator

import (
	"github.com/thomasrohde/monkey/pkg/ast"
)

// Eval evaluates node in env and returns the resulting value. The result
// may be an *Error; callers decide how to surface it.
func Eval(node ast.Node, env *Env) Object {
	switch node := node.(type) {
	case *ast.Program:
		return evalProgram(node, env)

	case *ast.ExprStmt:
		return Eval(node.Expr, env)

	case *ast.LetStmt:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Name, val)
		return NullVal

	case *ast.ReturnStmt:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		return &ReturnValue{Value: val}

	case *ast.BlockStmt:
		return evalBlock(node, env)

	case *ast.IntLiteral:
		return &Integer{Value: node.Value}

	case *ast.BoolLiteral:
		return nativeBool(node.Value)

	case *ast.Ident:
		if val, ok := env.Get(node.Name); ok {
			return val
		}
		return newError("identifier not found: %s", node.Name)

	case *ast.PrefixExpr:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpr(node.Op, right)

	case *ast.InfixExpr:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpr(node.Op, left, right)

	case *ast.IfExpr:
		return evalIfExpr(node, env)

	case *ast.FnLiteral:
		return &Fn{Params: node.Params, Body: node.Body, Env: env}

	case *ast.CallExpr:
		fn := Eval(node.Fn, env)
		if isError(fn) {
			return fn
		}
		args, errObj := evalExprs(node.Args, env)
		if errObj != nil {
			return errObj
		}
		return applyFn(fn, args)
	}

	return newError("unknown node kind: %s", node.Kind())
}

func evalProgram(prog *ast.Program, env *Env) Object {
	var result Object = NullVal

	for _, stmt := range prog.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *ReturnValue:
			return result.Value
		case *Error:
			return result
		}
	}

	return result
}

// evalBlock keeps ReturnValue wrappers intact so a return inside a nested
// block still unwinds every enclosing block of the same function body.
func evalBlock(block *ast.BlockStmt, env *Env) Object {
	var result Object = NullVal

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			typ := result.Type()
			if typ == ReturnValueType || typ == ErrorType {
				return result
			}
		}
	}

	return result
}

func evalPrefixExpr(op string, right Object) Object {
	switch op {
	case "!":
		return nativeBool(!Truthy(right))
	case "-":
		intVal, ok := right.(*Integer)
		if !ok {
			return newError("unknown operator: -%s", right.Type())
		}
		return &Integer{Value: -intVal.Value}
	default:
		return newError("unknown operator: %s%s", op, right.Type())
	}
}

func evalInfixExpr(op string, left, right Object) Object {
	leftInt, leftIsInt := left.(*Integer)
	rightInt, rightIsInt := right.(*Integer)

	switch {
	case leftIsInt && rightIsInt:
		return evalIntegerInfixExpr(op, leftInt, rightInt)
	case op == "==":
		return nativeBool(left == right)
	case op == "!=":
		return nativeBool(left != right)
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	default:
		return newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}

func evalIntegerInfixExpr(op string, left, right *Integer) Object {
	switch op {
	case "+":
		return &Integer{Value: left.Value + right.Value}
	case "-":
		return &Integer{Value: left.Value - right.Value}
	case "*":
		return &Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError("division by zero")
		}
		return &Integer{Value: left.Value / right.Value}
	case "<":
		return nativeBool(left.Value < right.Value)
	case ">":
		return nativeBool(left.Value > right.Value)
	case "==":
		return nativeBool(left.Value == right.Value)
	case "!=":
		return nativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", IntegerType, op, IntegerType)
	}
}

func evalIfExpr(node *ast.IfExpr, env *Env) Object {
	cond := Eval(node.Cond, env)
	if isError(cond) {
		return cond
	}
	if Truthy(cond) {
		return Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return Eval(node.Alternative, env)
	}
	return NullVal
}

// evalExprs evaluates args left to right, stopping at the first error.
func evalExprs(exprs []ast.Expr, env *Env) ([]Object, Object) {
	result := make([]Object, 0, len(exprs))
	for _, expr := range exprs {
		val := Eval(expr, env)
		if isError(val) {
			return nil, val
		}
		result = append(result, val)
	}
	return result, nil
}

func applyFn(fn Object, args []Object) Object {
	fnVal, ok := fn.(*Fn)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}
	if len(args) != len(fnVal.Params) {
		return newError("wrong number of arguments: want=%d, got=%d", len(fnVal.Params), len(args))
	}

	callEnv := fnVal.Env.Child()
	for i, param := range fnVal.Params {
		callEnv.Set(param.Name, args[i])
	}

	result := Eval(fnVal.Body, callEnv)
	if rv, ok := result.(*ReturnValue); ok {
		return rv.Value
	}
	return result
}
