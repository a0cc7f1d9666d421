package eval

import (
	"fmt"
	"reflect"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
)

// GoFn is a function implemented in Go.
type GoFn struct {
	name string
	impl any

	// Type information of impl.

	// If true, pass the frame as a *Frame argument.
	frame bool
	// Type of "normal" (non-frame, non-variadic) arguments.
	normalArgs []reflect.Type
	// If not nil, type of variadic arguments.
	variadicArg reflect.Type
}

var (
	frameType = reflect.TypeOf((*Frame)(nil))
	// error(nil) is treated as nil by reflect.TypeOf, so we first get the type
	// of *error and use Elem to obtain type of error.
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	intType   = reflect.TypeOf(0)
)

// NewGoFn wraps a Go function into a function callable from code, using
// reflection.
//
// If the first parameter of impl has type *Frame, it gets the current call
// frame. The remaining parameters get the arguments, which must be assignable
// to the parameter types, except that int parameters accept integral numbers.
// The last parameter may be variadic.
//
// The function may return nothing, a value, an error, or a value and an error.
// Returned int values are converted to numbers.
//
// NewGoFn panics if impl is not a function of such a signature.
func NewGoFn(name string, impl any) *GoFn {
	implType := reflect.TypeOf(impl)
	if implType == nil || implType.Kind() != reflect.Func {
		panic(fmt.Sprintf("NewGoFn: %s is not a function", name))
	}
	switch implType.NumOut() {
	case 0, 1:
	case 2:
		if implType.Out(1) != errorType {
			panic(fmt.Sprintf("NewGoFn: second return value of %s must be error", name))
		}
	default:
		panic(fmt.Sprintf("NewGoFn: %s returns too many values", name))
	}

	b := &GoFn{name: name, impl: impl}
	i := 0
	if i < implType.NumIn() && implType.In(i) == frameType {
		b.frame = true
		i++
	}
	for ; i < implType.NumIn(); i++ {
		paramType := implType.In(i)
		if i == implType.NumIn()-1 && implType.IsVariadic() {
			b.variadicArg = paramType.Elem()
			break
		}
		b.normalArgs = append(b.normalArgs, paramType)
	}
	return b
}

// Kind returns "fn".
func (*GoFn) Kind() string { return "fn" }

// Repr returns an opaque representation "<builtin name>".
func (b *GoFn) Repr() string { return "<builtin " + b.name + ">" }

// Call calls the implementation using reflection.
func (b *GoFn) Call(fm *Frame, args []any) (any, error) {
	if b.variadicArg != nil {
		if len(args) < len(b.normalArgs) {
			return nil, errs.ArityMismatch{
				What:     "arguments of " + b.name,
				ValidLow: len(b.normalArgs), ValidHigh: -1, Actual: len(args)}
		}
	} else if len(args) != len(b.normalArgs) {
		return nil, errs.ArityMismatch{
			What:     "arguments of " + b.name,
			ValidLow: len(b.normalArgs), ValidHigh: len(b.normalArgs), Actual: len(args)}
	}

	var in []reflect.Value
	if b.frame {
		in = append(in, reflect.ValueOf(fm))
	}
	for i, arg := range args {
		typ := b.variadicArg
		if i < len(b.normalArgs) {
			typ = b.normalArgs[i]
		}
		v, ok := scanArg(arg, typ)
		if !ok {
			return nil, errs.WrongType{
				What:   fmt.Sprintf("argument %d of %s", i+1, b.name),
				Valid:  kindOfType(typ),
				Actual: vals.Kind(arg)}
		}
		in = append(in, v)
	}

	outs := reflect.ValueOf(b.impl).Call(in)

	if len(outs) > 0 && outs[len(outs)-1].Type() == errorType {
		if err := outs[len(outs)-1].Interface(); err != nil {
			return nil, err.(error)
		}
		outs = outs[:len(outs)-1]
	}
	if len(outs) == 0 {
		return nil, nil
	}
	return fromGo(outs[0].Interface()), nil
}

// Converts arg to a reflect.Value of type typ.
func scanArg(arg any, typ reflect.Type) (reflect.Value, bool) {
	if typ == intType {
		i, err := vals.ToInt("argument", arg)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(i), true
	}
	if arg == nil {
		if typ.Kind() == reflect.Interface {
			return reflect.Zero(typ), true
		}
	} else if v := reflect.ValueOf(arg); v.Type().AssignableTo(typ) {
		return v, true
	}
	return reflect.Value{}, false
}

// Names the kind of values that can be scanned into typ.
func kindOfType(typ reflect.Type) string {
	switch typ {
	case intType:
		return "integer"
	case reflect.TypeOf(0.0):
		return "number"
	case reflect.TypeOf(""):
		return "string"
	case reflect.TypeOf(false):
		return "bool"
	case reflect.TypeOf((*vals.List)(nil)):
		return "list"
	case reflect.TypeOf((*vals.Map)(nil)):
		return "map"
	case reflect.TypeOf((*Callable)(nil)).Elem():
		return "fn"
	}
	return "!!" + typ.String()
}

// Converts return values of Go functions to values.
func fromGo(v any) any {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case []any:
		return vals.MakeList(v...)
	case []string:
		l := vals.MakeList()
		for _, s := range v {
			l.Append(s)
		}
		return l
	}
	return v
}
