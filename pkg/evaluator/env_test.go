package evaluator

import (
	"testing"
)

func TestEnvGetSet(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Get("x"); ok {
		t.Fatal("empty environment should not resolve x")
	}

	env.Set("x", &Integer{Value: 1})
	val, ok := env.Get("x")
	if !ok {
		t.Fatal("x not found after Set")
	}
	expectInteger(t, val, 1)
}

func TestEnvOuterLookup(t *testing.T) {
	outer := NewEnv()
	outer.Set("x", &Integer{Value: 1})
	outer.Set("y", &Integer{Value: 2})

	inner := outer.Child()
	val, ok := inner.Get("x")
	if !ok {
		t.Fatal("inner environment should resolve x from outer")
	}
	expectInteger(t, val, 1)
}

func TestEnvShadowing(t *testing.T) {
	outer := NewEnv()
	outer.Set("x", &Integer{Value: 1})

	inner := outer.Child()
	inner.Set("x", &Integer{Value: 99})

	innerVal, _ := inner.Get("x")
	expectInteger(t, innerVal, 99)

	// the outer binding is untouched
	outerVal, _ := outer.Get("x")
	expectInteger(t, outerVal, 1)
}

func TestEnvDeepChain(t *testing.T) {
	env := NewEnv()
	env.Set("root", &Integer{Value: 42})
	for i := 0; i < 10; i++ {
		env = env.Child()
	}
	val, ok := env.Get("root")
	if !ok {
		t.Fatal("deep chain should still resolve root")
	}
	expectInteger(t, val, 42)
}
