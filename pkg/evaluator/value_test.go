package evaluator

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj      Object
		expected string
	}{
		{&Integer{Value: 5}, "5"},
		{&Integer{Value: -42}, "-42"},
		{True, "true"},
		{False, "false"},
		{NullVal, "null"},
		{&ReturnValue{Value: &Integer{Value: 7}}, "7"},
		{&Error{Message: "boom"}, "ERROR: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.obj.Inspect(); got != tt.expected {
				t.Errorf("Inspect: got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestObjectTypes(t *testing.T) {
	tests := []struct {
		obj      Object
		expected ObjectType
	}{
		{&Integer{}, IntegerType},
		{True, BooleanType},
		{NullVal, NullType},
		{&ReturnValue{Value: NullVal}, ReturnValueType},
		{&Error{}, ErrorType},
		{&Fn{}, FunctionType},
	}

	for _, tt := range tests {
		if got := tt.obj.Type(); got != tt.expected {
			t.Errorf("Type: got %q, want %q", got, tt.expected)
		}
	}
}

func TestBooleanSingletons(t *testing.T) {
	if nativeBool(true) != True {
		t.Error("nativeBool(true) is not the True singleton")
	}
	if nativeBool(false) != False {
		t.Error("nativeBool(false) is not the False singleton")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		obj      Object
		expected bool
	}{
		{True, true},
		{False, false},
		{NullVal, false},
		{&Integer{Value: 0}, true},
		{&Integer{Value: 1}, true},
		{&Integer{Value: -1}, true},
		{&Fn{}, true},
	}

	for _, tt := range tests {
		if got := Truthy(tt.obj); got != tt.expected {
			t.Errorf("Truthy(%s): got %t, want %t", tt.obj.Inspect(), got, tt.expected)
		}
	}
}

func TestValueToJSON(t *testing.T) {
	tests := []struct {
		name     string
		obj      Object
		expected string
	}{
		{"integer", &Integer{Value: 5}, "5"},
		{"boolean", True, "true"},
		{"null", NullVal, "null"},
		{"return value", &ReturnValue{Value: &Integer{Value: 7}}, "7"},
		{"error", &Error{Message: "boom"}, `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(ValueToJSON(tt.obj))
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, string(b)); diff != "" {
				t.Errorf("JSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
