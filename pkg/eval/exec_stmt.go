package eval

import (
	"fmt"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval/errs"
	"github.com/Bryantad/Sona-sub001/pkg/eval/vals"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
)

// Executes the statements of a chunk in the current frame.
func (fm *Frame) execChunk(ch *parse.Chunk) (flow, error) {
	for _, stmt := range ch.Stmts {
		f, err := fm.exec(stmt)
		if err != nil || f.kind != normalFlow {
			return f, err
		}
	}
	return normal, nil
}

// Executes the statements of a chunk in a new frame.
func (fm *Frame) execBlock(ch *parse.Chunk) (flow, error) {
	defer fm.scope.enter()()
	return fm.execChunk(ch)
}

func (fm *Frame) exec(stmt parse.Stmt) (flow, error) {
	switch n := stmt.(type) {
	case *parse.ExprStmt:
		_, err := fm.eval(n.Expr)
		return normal, err
	case *parse.LetStmt:
		v, err := fm.eval(n.Value)
		if err != nil {
			return normal, err
		}
		fm.scope.Set(n.Name, v)
		return normal, nil
	case *parse.AssignStmt:
		return normal, fm.execAssign(n)
	case *parse.PrintStmt:
		return normal, fm.execPrint(n)
	case *parse.IfStmt:
		for _, branch := range n.Branches {
			cond, err := fm.eval(branch.Cond)
			if err != nil {
				return normal, err
			}
			if vals.Truthy(cond) {
				return fm.execBlock(branch.Body)
			}
		}
		if n.Else != nil {
			return fm.execBlock(n.Else)
		}
		return normal, nil
	case *parse.WhileStmt:
		return fm.execWhile(n)
	case *parse.ForStmt:
		return fm.execFor(n)
	case *parse.FuncDef:
		fn := &Closure{Name: n.Name, Params: n.Params, Body: n.Body, captured: fm.scope.top, src: fm.src}
		fm.scope.top.global().funcs[n.Name] = fn
		fm.scope.Set(n.Name, fn)
		logger.Debug().Str("fn", n.Name).Int("params", len(n.Params)).Msg("function registered")
		return normal, nil
	case *parse.ReturnStmt:
		var v any
		if n.Value != nil {
			var err error
			v, err = fm.eval(n.Value)
			if err != nil {
				return normal, err
			}
		}
		return flow{returnFlow, v, n}, nil
	case *parse.BreakStmt:
		return flow{kind: breakFlow, node: n}, nil
	case *parse.ContinueStmt:
		return flow{kind: continueFlow, node: n}, nil
	case *parse.TryStmt:
		return fm.execTry(n)
	case *parse.ThrowStmt:
		v, err := fm.eval(n.Value)
		if err != nil {
			return normal, err
		}
		if exc, ok := v.(*Exception); ok {
			return normal, exc.clone()
		}
		return normal, fm.errorp(n, errs.Thrown{Value: v, Message: vals.ToString(v)})
	case *parse.ImportStmt:
		_, err := fm.ResolveImport(n.Path, n.Alias)
		if exc, ok := err.(*Exception); ok {
			exc = exc.clone()
			exc.addTrace("import "+strings.Join(n.Path, "."), fm.context(n))
			err = exc
		}
		return normal, fm.errorp(n, err)
	case *parse.ClassDef:
		fm.scope.Set(n.Name, fm.newClass(n))
		return normal, nil
	default:
		panic(fmt.Sprintf("unknown statement type %T", stmt))
	}
}

func (fm *Frame) execAssign(n *parse.AssignStmt) error {
	v, err := fm.eval(n.Value)
	if err != nil {
		return err
	}
	switch target := n.Target.(type) {
	case *parse.Ident:
		fm.scope.Assign(target.Name, v)
		return nil
	case *parse.MemberExpr:
		obj, err := fm.eval(target.Object)
		if err != nil {
			return err
		}
		return fm.errorp(target.NameRange, vals.SetMember(obj, target.Name, v))
	case *parse.IndexExpr:
		obj, err := fm.eval(target.Object)
		if err != nil {
			return err
		}
		idx, err := fm.eval(target.Index)
		if err != nil {
			return err
		}
		return fm.errorp(target.Index, vals.SetIndex(obj, idx, v))
	default:
		panic(fmt.Sprintf("unknown assignment target %T", n.Target))
	}
}

func (fm *Frame) execPrint(n *parse.PrintStmt) error {
	args, err := fm.evalAll(n.Args)
	if err != nil {
		return err
	}
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = vals.ToString(arg)
	}
	_, err = fmt.Fprintln(fm.Evaler.stdout, strings.Join(strs, " "))
	return fm.errorp(n, err)
}

func (fm *Frame) execWhile(n *parse.WhileStmt) (flow, error) {
	for {
		cond, err := fm.eval(n.Cond)
		if err != nil {
			return normal, err
		}
		if !vals.Truthy(cond) {
			return normal, nil
		}
		f, err := fm.execBlock(n.Body)
		if err != nil {
			return normal, err
		}
		switch f.kind {
		case breakFlow:
			return normal, nil
		case returnFlow:
			return f, nil
		}
	}
}

func (fm *Frame) execFor(n *parse.ForStmt) (flow, error) {
	iter, err := fm.eval(n.Iter)
	if err != nil {
		return normal, err
	}
	result := normal
	var bodyErr error
	err = vals.Iterate(iter, func(v any) bool {
		exit := fm.scope.enter()
		defer exit()
		fm.scope.Set(n.Var, v)
		f, err := fm.execChunk(n.Body)
		if err != nil {
			bodyErr = err
			return false
		}
		switch f.kind {
		case breakFlow:
			return false
		case returnFlow:
			result = f
			return false
		}
		return true
	})
	if err != nil {
		return normal, fm.errorp(n.Iter, err)
	}
	return result, bodyErr
}

func (fm *Frame) execTry(n *parse.TryStmt) (flow, error) {
	f, err := fm.execBlock(n.Body)
	if err == nil {
		return f, nil
	}
	exc, ok := err.(*Exception)
	if !ok {
		// Syntax errors of imported modules are not caught.
		return normal, err
	}
	defer fm.scope.enter()()
	if n.CatchVar != "" {
		fm.scope.Set(n.CatchVar, exc)
	}
	return fm.execChunk(n.Catch)
}
