package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

func (fm *Frame) eval(expr parse.Expr) (any, error) {
	switch n := expr.(type) {
	case *parse.NumberLit:
		return n.Value, nil
	case *parse.StringLit:
		return n.Value, nil
	case *parse.BoolLit:
		return n.Value, nil
	case *parse.NullLit:
		return nil, nil
	case *parse.Ident:
		v, err := fm.resolve(n.Name)
		return v, fm.errorp(n, err)
	case *parse.ListLit:
		elems, err := fm.evalAll(n.Elems)
		if err != nil {
			return nil, err
		}
		return vals.MakeList(elems...), nil
	case *parse.MapLit:
		m := vals.NewMap()
		for _, pair := range n.Pairs {
			k, err := fm.eval(pair.Key)
			if err != nil {
				return nil, err
			}
			if err := vals.CheckKey(k); err != nil {
				return nil, fm.errorp(pair.Key, err)
			}
			v, err := fm.eval(pair.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	case *parse.UnaryExpr:
		operand, err := fm.eval(n.Operand)
		if err != nil {
			return nil, err
		}
		v, err := unaryOp(n.Op, operand)
		return v, fm.errorp(n, err)
	case *parse.BinaryExpr:
		return fm.evalBinary(n)
	case *parse.CallExpr:
		return fm.evalCall(n)
	case *parse.MemberExpr:
		obj, err := fm.eval(n.Object)
		if err != nil {
			return nil, err
		}
		if v, ok := vals.Member(obj, n.Name); ok {
			return v, nil
		}
		return nil, fm.errorp(n.NameRange, errs.NoSuchMember{Name: n.Name, On: vals.Kind(obj)})
	case *parse.IndexExpr:
		obj, err := fm.eval(n.Object)
		if err != nil {
			return nil, err
		}
		idx, err := fm.eval(n.Index)
		if err != nil {
			return nil, err
		}
		v, err := vals.Index(obj, idx)
		return v, fm.errorp(n.Index, err)
	case *parse.FuncLit:
		return &Closure{Params: n.Params, Body: n.Body, captured: fm.scope.top, src: fm.src}, nil
	default:
		panic(fmt.Sprintf("unknown expression type %T", expr))
	}
}

func (fm *Frame) evalAll(exprs []parse.Expr) ([]any, error) {
	vs := make([]any, len(exprs))
	for i, expr := range exprs {
		v, err := fm.eval(expr)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// Resolves a bare identifier: first in the scope chain and the builtin
// namespace, then in the function table, then in the module registry.
func (fm *Frame) resolve(name string) (any, error) {
	if v, ok := fm.scope.lookup(name); ok {
		return v, nil
	}
	if fn, ok := fm.scope.top.global().funcs[name]; ok {
		return fn, nil
	}
	if mod, ok := fm.Evaler.modules[name]; ok {
		return mod, nil
	}
	return nil, errs.NoSuchVariable{Name: name}
}

func (fm *Frame) evalBinary(n *parse.BinaryExpr) (any, error) {
	left, err := fm.eval(n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "and":
		if !vals.Truthy(left) {
			return left, nil
		}
		return fm.eval(n.Right)
	case "or":
		if vals.Truthy(left) {
			return left, nil
		}
		return fm.eval(n.Right)
	}
	right, err := fm.eval(n.Right)
	if err != nil {
		return nil, err
	}
	v, err := binaryOp(n.Op, left, right)
	return v, fm.errorp(n, err)
}

func (fm *Frame) evalCall(n *parse.CallExpr) (any, error) {
	calleeValue, err := fm.eval(n.Callee)
	if err != nil {
		return nil, err
	}
	callee, ok := calleeValue.(Callable)
	if !ok {
		return nil, fm.errorp(n.Callee, errs.NotCallable{What: calleeName(n.Callee), Kind: vals.Kind(calleeValue)})
	}
	args, err := fm.evalAll(n.Args)
	if err != nil {
		return nil, err
	}
	v, err := callee.Call(fm, args)
	if err != nil {
		if exc, ok := err.(*Exception); ok {
			if name, ok := userFnName(callee); ok {
				exc.addTrace(name, fm.context(n))
			}
			return nil, exc
		}
		return nil, fm.errorp(n, err)
	}
	return v, nil
}

// Returns a description of a callee expression for error messages.
func calleeName(expr parse.Expr) string {
	switch expr := expr.(type) {
	case *parse.Ident:
		return expr.Name
	case *parse.MemberExpr:
		return calleeName(expr.Object) + "." + expr.Name
	}
	return "callee"
}

func unaryOp(op string, v any) (any, error) {
	switch op {
	case "not":
		return !vals.Truthy(v), nil
	case "-":
		switch v := v.(type) {
		case float64:
			return -v, nil
		case nil:
			return nil, errs.MissingOperand{Op: op, Left: "null", Right: "null"}
		}
		return nil, errs.BadOperands{Op: op, Left: vals.Kind(v)}
	}
	panic("unknown unary operator " + op)
}

func binaryOp(op string, l, r any) (any, error) {
	switch op {
	case "==":
		return vals.Equal(l, r), nil
	case "!=":
		return !vals.Equal(l, r), nil
	}
	if l == nil || r == nil {
		return nil, errs.MissingOperand{Op: op, Left: vals.Kind(l), Right: vals.Kind(r)}
	}
	bad := errs.BadOperands{Op: op, Left: vals.Kind(l), Right: vals.Kind(r)}

	switch l := l.(type) {
	case float64:
		switch r := r.(type) {
		case float64:
			return arith(op, l, r)
		case string:
			if op == "*" {
				return repeat(r, l)
			}
		}
	case string:
		switch r := r.(type) {
		case string:
			switch op {
			case "+":
				return l + r, nil
			case "<", "<=", ">", ">=":
				return compare(op, strings.Compare(l, r)), nil
			}
		case float64:
			if op == "*" {
				return repeat(l, r)
			}
		}
	case *vals.List:
		if r, ok := r.(*vals.List); ok && op == "+" {
			return l.Concat(r), nil
		}
	}
	return nil, bad
}

func arith(op string, l, r float64) (any, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/", "%":
		if r == 0 {
			return nil, errs.ZeroDivision{Op: op, Left: "number", Right: "number"}
		}
		if op == "/" {
			return l / r, nil
		}
		return math.Mod(l, r), nil
	case "<", "<=", ">", ">=":
		c := 0
		if l < r {
			c = -1
		} else if l > r {
			c = 1
		}
		return compare(op, c), nil
	}
	panic("unknown binary operator " + op)
}

func compare(op string, c int) bool {
	switch op {
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	default:
		return c >= 0
	}
}

func repeat(s string, n float64) (any, error) {
	if n < 0 || n != math.Trunc(n) {
		return nil, errs.BadValue{What: "repeat count", Valid: "non-negative integer", Actual: vals.FormatNumber(n)}
	}
	return strings.Repeat(s, int(n)), nil
}
