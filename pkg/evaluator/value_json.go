package evaluator

// ValueToJSON converts a runtime value to the plain Go shape used by the
// CLI's JSON output. Functions have no data representation and render as
// their Inspect string.
func ValueToJSON(obj Object) any {
	switch obj := obj.(type) {
	case *Integer:
		return obj.Value
	case *Boolean:
		return obj.Value
	case *Null:
		return nil
	case *ReturnValue:
		return ValueToJSON(obj.Value)
	case *Error:
		return map[string]any{"error": obj.Message}
	case *Fn:
		return obj.Inspect()
	default:
		return obj.Inspect()
	}
}
