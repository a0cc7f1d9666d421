package eval

// Callable wraps the Call method.
type Callable interface {
	// Call calls the receiver in a Frame with arguments.
	Call(fm *Frame, args []any) (any, error)
}

// Returns the name of a user-defined callable, under which a traceback entry
// is recorded when an exception escapes it. Native callables report no name;
// exceptions they return are positioned at the call site instead.
func userFnName(c Callable) (string, bool) {
	switch c := c.(type) {
	case *Closure:
		return c.Name, true
	case *BoundMethod:
		return c.fn.Name, true
	case *Class:
		return c.Name, true
	}
	return "", false
}
