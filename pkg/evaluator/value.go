package evaluator

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/monkey/pkg/ast"
)

// ObjectType names a runtime value category, as surfaced in error messages.
type ObjectType string

const (
	IntegerType     ObjectType = "INTEGER"
	BooleanType     ObjectType = "BOOLEAN"
	NullType        ObjectType = "NULL"
	ReturnValueType ObjectType = "RETURN_VALUE"
	ErrorType       ObjectType = "ERROR"
	FunctionType    ObjectType = "FUNCTION"
)

// Object is the interface satisfied by every runtime value. The unexported
// marker keeps the set of implementations closed to this package.
type Object interface {
	Type() ObjectType
	Inspect() string
	object()
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return IntegerType }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) object()          {}

// Boolean is a truth value. Only the two singletons True and False exist;
// comparisons on booleans are pointer identity checks.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BooleanType }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) object()          {}

// Null is the absence of a value. NullVal is its only instance.
type Null struct{}

func (n *Null) Type() ObjectType { return NullType }
func (n *Null) Inspect() string  { return "null" }
func (n *Null) object()          {}

// ReturnValue wraps the operand of a return statement so it can bubble up
// through enclosing blocks. It is stripped at the function call boundary
// and at the top of a program, and is never visible to user code.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return ReturnValueType }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }
func (rv *ReturnValue) object()          {}

// Error is a runtime error travelling as a value. Once produced it
// propagates outward unchanged and aborts the rest of the evaluation.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ErrorType }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
func (e *Error) object()          {}

// Fn is a first-class function value. Env is the environment the literal
// was evaluated in, which is what makes closures work: calls extend this
// captured environment, not the caller's.
type Fn struct {
	Params []*ast.Ident
	Body   *ast.BlockStmt
	Env    *Env
}

func (f *Fn) Type() ObjectType { return FunctionType }
func (f *Fn) Inspect() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("fn(%s) {...}", strings.Join(names, ", "))
}
func (f *Fn) object() {}

// Singletons shared by all evaluations.
var (
	True    = &Boolean{Value: true}
	False   = &Boolean{Value: false}
	NullVal = &Null{}
)

func nativeBool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Truthy reports how a value behaves as a condition: false and null are
// falsy, everything else (including 0) is truthy.
func Truthy(obj Object) bool {
	switch obj {
	case NullVal:
		return false
	case False:
		return false
	default:
		return true
	}
}

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func isError(obj Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == ErrorType
}
