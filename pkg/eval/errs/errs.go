// Package errs declares the error taxonomy of the interpreter and the error
// types used to report each kind of failure.
package errs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
)

// Kind classifies errors reported by a run.
type Kind int

// Error kinds.
const (
	RuntimeError Kind = iota
	SyntaxError
	NameResolutionError
	AttributeResolutionError
	TypeMismatchError
	ArityError
	ImportResolutionError
	ValueError
	ControlFlowError
)

var kindNames = [...]string{
	RuntimeError:             "RuntimeError",
	SyntaxError:              "SyntaxError",
	NameResolutionError:      "NameResolutionError",
	AttributeResolutionError: "AttributeResolutionError",
	TypeMismatchError:        "TypeMismatchError",
	ArityError:               "ArityError",
	ImportResolutionError:    "ImportResolutionError",
	ValueError:               "ValueError",
	ControlFlowError:         "ControlFlowError",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Classified is implemented by errors that know their own kind.
type Classified interface {
	error
	ErrorKind() Kind
}

// KindOf returns the kind of err. Source errors whose type names a kind, like
// syntax errors, have that kind. Other errors that do not classify themselves,
// and none of whose wrapped errors do, are RuntimeErrors.
func KindOf(err error) Kind {
	var c Classified
	if errors.As(err, &c) {
		return c.ErrorKind()
	}
	var d *diag.Error
	if errors.As(err, &d) {
		for k, name := range kindNames {
			if name == d.Type {
				return Kind(k)
			}
		}
	}
	return RuntimeError
}

// NoSuchVariable is returned when a name is not bound in any scope.
type NoSuchVariable struct {
	Name string
}

func (e NoSuchVariable) Error() string {
	return "undefined variable: " + e.Name
}

func (NoSuchVariable) ErrorKind() Kind { return NameResolutionError }

// NoSuchMember is returned when a dotted access cannot be resolved.
type NoSuchMember struct {
	Name string
	// Kind of the value that was accessed.
	On string
}

func (e NoSuchMember) Error() string {
	return fmt.Sprintf("no such member: %s (on %s)", e.Name, e.On)
}

func (NoSuchMember) ErrorKind() Kind { return AttributeResolutionError }

// NoSuchKey is returned when a key is not found in a map.
type NoSuchKey struct {
	Key string
}

func (e NoSuchKey) Error() string {
	return "no such key: " + e.Key
}

func (NoSuchKey) ErrorKind() Kind { return AttributeResolutionError }

// OutOfRange encodes an error where a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf(
		"out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

func (OutOfRange) ErrorKind() Kind { return AttributeResolutionError }

// BadOperands is returned when an operator is applied to values of kinds it
// does not support.
type BadOperands struct {
	Op    string
	Left  string
	Right string
}

func (e BadOperands) Error() string {
	if e.Right == "" {
		return fmt.Sprintf("unsupported operand for %s: %s", e.Op, e.Left)
	}
	return fmt.Sprintf("unsupported operands for %s: %s and %s", e.Op, e.Left, e.Right)
}

func (BadOperands) ErrorKind() Kind { return TypeMismatchError }

// MissingOperand is returned when an operand evaluates to the empty value.
type MissingOperand struct {
	Op    string
	Left  string
	Right string
}

func (e MissingOperand) Error() string {
	return fmt.Sprintf("missing operand for %s: %s and %s", e.Op, e.Left, e.Right)
}

func (MissingOperand) ErrorKind() Kind { return TypeMismatchError }

// ZeroDivision is returned when the right operand of / or % is zero.
type ZeroDivision struct {
	Op    string
	Left  string
	Right string
}

func (e ZeroDivision) Error() string {
	return fmt.Sprintf("division by zero: %s %s %s", e.Left, e.Op, e.Right)
}

func (ZeroDivision) ErrorKind() Kind { return ValueError }

// WrongType is returned when a value of the wrong kind is supplied.
type WrongType struct {
	What   string
	Valid  string
	Actual string
}

func (e WrongType) Error() string {
	return fmt.Sprintf("wrong type: %s must be %s, but is %s", e.What, e.Valid, e.Actual)
}

func (WrongType) ErrorKind() Kind { return TypeMismatchError }

// ArityMismatch encodes an error where the expected number of values is out of
// the valid range.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %v, but is %v",
			e.What, nValues(e.ValidLow), nValues(e.Actual))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %v",
			e.What, e.ValidLow, nValues(e.Actual))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %v",
			e.What, e.ValidLow, e.ValidHigh, nValues(e.Actual))
	}
}

func (ArityMismatch) ErrorKind() Kind { return ArityError }

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return strconv.Itoa(n) + " values"
}

// BadValue encodes an error where the value does not meet a requirement, such
// as text that cannot be converted to a number.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}

func (BadValue) ErrorKind() Kind { return ValueError }

// ModuleNotFound is returned when no file backs an imported module.
type ModuleNotFound struct {
	Spec   string
	Probed []string
}

func (e ModuleNotFound) Error() string {
	if len(e.Probed) == 0 {
		return "no such module: " + e.Spec
	}
	return fmt.Sprintf("no such module: %s (probed %s)", e.Spec, strings.Join(e.Probed, ", "))
}

func (ModuleNotFound) ErrorKind() Kind { return ImportResolutionError }

// ImportCycle is returned when a module is imported while it is still being
// loaded.
type ImportCycle struct {
	Spec string
}

func (e ImportCycle) Error() string {
	return "import cycle: " + e.Spec + " is already being loaded"
}

func (ImportCycle) ErrorKind() Kind { return ImportResolutionError }

// NotCallable is returned when calling a value that is not a function.
type NotCallable struct {
	What string
	Kind string
}

func (e NotCallable) Error() string {
	return fmt.Sprintf("not callable: %s is a %s", e.What, e.Kind)
}

func (NotCallable) ErrorKind() Kind { return TypeMismatchError }

// UncaughtFlow is returned when return, break or continue is executed where
// nothing handles it.
type UncaughtFlow struct {
	Flow string
}

func (e UncaughtFlow) Error() string {
	return e.Flow + " outside of " + flowHandler(e.Flow)
}

func (UncaughtFlow) ErrorKind() Kind { return ControlFlowError }

func flowHandler(flow string) string {
	if flow == "return" {
		return "function"
	}
	return "loop"
}

// ScopeUnderflow is returned when popping the global scope is attempted.
var ScopeUnderflow = errors.New("cannot pop the global scope")

// Thrown is the reason of an exception raised with the throw statement.
type Thrown struct {
	Value   any
	Message string
}

func (e Thrown) Error() string { return e.Message }
