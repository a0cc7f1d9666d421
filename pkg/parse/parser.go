package parse

import (
	"fmt"
	"strconv"

	"github.com/Bryantad/Sona-sub001/pkg/diag"
)

// parser maintains the mutable states of parsing.
type parser struct {
	g    *Grammar
	src  Source
	toks []token
	pos  int
	// Nesting depth of parentheses, brackets and map braces. Newlines are
	// insignificant when it is positive. It is reset to 0 inside blocks.
	depth int
}

// Used to abandon parsing at the first error. It never escapes parseTop.
type bailout struct{ err *Error }

func (ps *parser) parseTop() (root *Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			root, err = nil, b.err
		}
	}()
	root = ps.parseChunk(false)
	if t := ps.peek(); t.typ != tkEOF {
		ps.unexpected(t, "statement")
	}
	return root, nil
}

func (ps *parser) errorp(r diag.Ranger, format string, args ...any) {
	panic(bailout{&Error{
		Type:    ErrorType,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(ps.src.Name, ps.src.Code, r),
	}})
}

func (ps *parser) unexpected(t token, shouldBe string) {
	if t.typ == tkError {
		ps.errorp(t, "%s", t.text)
	}
	ps.errorp(t, "unexpected %s, should be %s", t, shouldBe)
}

func (ps *parser) skipNewlines() {
	for ps.toks[ps.pos].typ == tkNewline {
		ps.pos++
	}
}

func (ps *parser) peek() token {
	if ps.depth > 0 {
		ps.skipNewlines()
	}
	return ps.toks[ps.pos]
}

func (ps *parser) next() token {
	t := ps.peek()
	if t.typ != tkEOF {
		ps.pos++
	}
	return t
}

func (ps *parser) expect(text string) token {
	t := ps.peek()
	if !t.is(text) {
		ps.unexpected(t, "'"+text+"'")
	}
	return ps.next()
}

func (ps *parser) expectName(what string) token {
	t := ps.peek()
	if t.typ != tkIdent || ps.g.IsReserved(t.text) {
		ps.unexpected(t, what)
	}
	return ps.next()
}

// Returns the end of the last consumed token.
func (ps *parser) end() int {
	if ps.pos == 0 {
		return 0
	}
	return ps.toks[ps.pos-1].To
}

// Chunk = { Sep } [ Stmt { Sep { Sep } Stmt } ] { Sep }
func (ps *parser) parseChunk(inBlock bool) *Chunk {
	savedDepth := ps.depth
	ps.depth = 0
	defer func() { ps.depth = savedDepth }()

	ch := &Chunk{}
	ch.From = ps.peek().From
	atEnd := func(t token) bool { return t.typ == tkEOF || (inBlock && t.is("}")) }
	for {
		ps.skipNewlines()
		if atEnd(ps.peek()) {
			break
		}
		ch.Stmts = append(ch.Stmts, ps.parseStmt())
		t := ps.peek()
		if atEnd(t) {
			break
		}
		if t.typ != tkNewline {
			ps.unexpected(t, "newline or ';'")
		}
	}
	ch.To = ps.end()
	if ch.To < ch.From {
		ch.To = ch.From
	}
	return ch
}

// Block = '{' Chunk '}'
func (ps *parser) parseBlock() *Chunk {
	ps.expect("{")
	ch := ps.parseChunk(true)
	ps.expect("}")
	return ch
}

func (ps *parser) parseStmt() Stmt {
	t := ps.peek()
	if t.typ == tkIdent {
		switch t.text {
		case "let":
			return ps.parseLet()
		case "print":
			ps.next()
			n := &PrintStmt{}
			n.From = t.From
			n.Args = ps.parseArgs()
			n.To = ps.end()
			return n
		case "if":
			return ps.parseIf()
		case "while":
			ps.next()
			n := &WhileStmt{}
			n.From = t.From
			n.Cond = ps.parseExpr()
			n.Body = ps.parseBlock()
			n.To = ps.end()
			return n
		case "for":
			ps.next()
			n := &ForStmt{}
			n.From = t.From
			n.Var = ps.expectName("loop variable").text
			ps.expect("in")
			n.Iter = ps.parseExpr()
			n.Body = ps.parseBlock()
			n.To = ps.end()
			return n
		case "func":
			if next := ps.toks[ps.pos+1]; next.typ == tkIdent {
				return ps.parseFuncDef()
			}
		case "return":
			ps.next()
			n := &ReturnStmt{}
			n.From = t.From
			if !ps.atStmtEnd() {
				n.Value = ps.parseExpr()
			}
			n.To = ps.end()
			return n
		case "break":
			ps.next()
			n := &BreakStmt{}
			n.Ranging = t.Ranging
			return n
		case "continue":
			ps.next()
			n := &ContinueStmt{}
			n.Ranging = t.Ranging
			return n
		case "try":
			return ps.parseTry()
		case "throw":
			ps.next()
			n := &ThrowStmt{}
			n.From = t.From
			n.Value = ps.parseExpr()
			n.To = ps.end()
			return n
		case "import":
			return ps.parseImport()
		case "class":
			return ps.parseClass()
		}
	}

	e := ps.parseExpr()
	if !ps.peek().is("=") {
		n := &ExprStmt{Expr: e}
		n.Ranging = e.Range()
		return n
	}
	switch e.(type) {
	case *Ident, *MemberExpr, *IndexExpr:
	default:
		ps.errorp(e, "cannot assign to this expression")
	}
	ps.next()
	n := &AssignStmt{Target: e}
	n.From = e.Range().From
	n.Value = ps.parseExpr()
	n.To = ps.end()
	return n
}

func (ps *parser) atStmtEnd() bool {
	t := ps.peek()
	return t.typ == tkNewline || t.typ == tkEOF || t.is("}")
}

// LetStmt = 'let' Ident '=' Expr
func (ps *parser) parseLet() *LetStmt {
	n := &LetStmt{}
	n.From = ps.next().From
	n.Name = ps.expectName("variable name").text
	ps.expect("=")
	n.Value = ps.parseExpr()
	n.To = ps.end()
	return n
}

func (ps *parser) parseIf() *IfStmt {
	n := &IfStmt{}
	n.From = ps.next().From
	n.Branches = append(n.Branches, ps.parseIfBranch())
	for {
		saved := ps.pos
		ps.skipNewlines()
		t := ps.peek()
		if t.is("elif") {
			ps.next()
			n.Branches = append(n.Branches, ps.parseIfBranch())
		} else if t.is("else") {
			ps.next()
			if ps.peek().is("if") {
				ps.next()
				n.Branches = append(n.Branches, ps.parseIfBranch())
				continue
			}
			n.Else = ps.parseBlock()
			break
		} else {
			ps.pos = saved
			break
		}
	}
	n.To = ps.end()
	return n
}

func (ps *parser) parseIfBranch() *IfBranch {
	cond := ps.parseExpr()
	return &IfBranch{cond, ps.parseBlock()}
}

func (ps *parser) parseFuncDef() *FuncDef {
	n := &FuncDef{}
	n.From = ps.next().From
	n.Name = ps.expectName("function name").text
	n.Params = ps.parseParams()
	n.Body = ps.parseBlock()
	n.To = ps.end()
	return n
}

// Params = '(' [ Ident { ',' Ident } [ ',' ] ] ')'
func (ps *parser) parseParams() []string {
	ps.expect("(")
	ps.depth++
	defer func() { ps.depth-- }()
	var params []string
	seen := make(map[string]bool)
	for !ps.peek().is(")") {
		t := ps.expectName("parameter name")
		if seen[t.text] {
			ps.errorp(t, "duplicate parameter %s", t.text)
		}
		seen[t.text] = true
		params = append(params, t.text)
		if !ps.peek().is(",") {
			break
		}
		ps.next()
	}
	ps.expect(")")
	return params
}

func (ps *parser) parseTry() *TryStmt {
	n := &TryStmt{}
	n.From = ps.next().From
	n.Body = ps.parseBlock()
	saved := ps.pos
	ps.skipNewlines()
	if !ps.peek().is("catch") {
		ps.pos = saved
		ps.unexpected(ps.peek(), "'catch'")
	}
	ps.next()
	if !ps.peek().is("{") {
		n.CatchVar = ps.expectName("exception variable or '{'").text
	}
	n.Catch = ps.parseBlock()
	n.To = ps.end()
	return n
}

func (ps *parser) parseImport() *ImportStmt {
	n := &ImportStmt{}
	n.From = ps.next().From
	for {
		n.Path = append(n.Path, ps.expectName("module name").text)
		if !ps.peek().is(".") {
			break
		}
		ps.next()
	}
	if ps.peek().is("as") {
		ps.next()
		n.Alias = ps.expectName("alias").text
	}
	n.To = ps.end()
	return n
}

func (ps *parser) parseClass() *ClassDef {
	n := &ClassDef{}
	n.From = ps.next().From
	n.Name = ps.expectName("class name").text
	body := ps.parseBlock()
	for _, stmt := range body.Stmts {
		switch stmt := stmt.(type) {
		case *LetStmt:
			n.Fields = append(n.Fields, stmt)
		case *FuncDef:
			n.Methods = append(n.Methods, stmt)
		default:
			ps.errorp(stmt, "class body may only contain let and func")
		}
	}
	n.To = ps.end()
	return n
}

// Expressions.

func (ps *parser) parseExpr() Expr {
	return ps.parseLevel(0)
}

func (ps *parser) parseLevel(i int) Expr {
	if i == len(ps.g.Levels) {
		return ps.parsePostfix()
	}
	lv := &ps.g.Levels[i]
	if lv.Prefix {
		t := ps.peek()
		if !lv.has(t) {
			return ps.parseLevel(i + 1)
		}
		ps.next()
		n := &UnaryExpr{Op: t.text}
		n.From = t.From
		n.Operand = ps.parseLevel(i)
		n.To = ps.end()
		return n
	}
	left := ps.parseLevel(i + 1)
	for {
		t := ps.peek()
		if !lv.has(t) {
			return left
		}
		ps.next()
		n := &BinaryExpr{Op: t.text, Left: left}
		n.From = left.Range().From
		n.Right = ps.parseLevel(i + 1)
		n.To = ps.end()
		left = n
	}
}

func (ps *parser) parsePostfix() Expr {
	e := ps.parsePrimary()
	for {
		t := ps.peek()
		switch {
		case t.is("("):
			n := &CallExpr{Callee: e}
			n.From = e.Range().From
			n.Args = ps.parseArgs()
			n.To = ps.end()
			e = n
		case t.is("."):
			ps.next()
			name := ps.peek()
			if name.typ != tkIdent {
				ps.unexpected(name, "member name")
			}
			ps.next()
			n := &MemberExpr{Object: e, Name: name.text, NameRange: name.Ranging}
			n.From = e.Range().From
			n.To = name.To
			e = n
		case t.is("["):
			ps.next()
			ps.depth++
			n := &IndexExpr{Object: e}
			n.From = e.Range().From
			n.Index = ps.parseExpr()
			ps.expect("]")
			ps.depth--
			n.To = ps.end()
			e = n
		default:
			return e
		}
	}
}

// Args = '(' [ Expr { ',' Expr } [ ',' ] ] ')'
func (ps *parser) parseArgs() []Expr {
	ps.expect("(")
	ps.depth++
	args := ps.parseList(")")
	ps.depth--
	return args
}

// Parses comma-separated expressions up to and including the closing token.
func (ps *parser) parseList(closing string) []Expr {
	var elems []Expr
	for !ps.peek().is(closing) {
		elems = append(elems, ps.parseExpr())
		if !ps.peek().is(",") {
			break
		}
		ps.next()
	}
	ps.expect(closing)
	return elems
}

func (ps *parser) parsePrimary() Expr {
	t := ps.peek()
	switch t.typ {
	case tkNumber:
		ps.next()
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			ps.errorp(t, "bad number %s", t.text)
		}
		n := &NumberLit{Value: f}
		n.Ranging = t.Ranging
		return n
	case tkString:
		ps.next()
		n := &StringLit{Value: t.val}
		n.Ranging = t.Ranging
		return n
	case tkIdent:
		switch t.text {
		case "true", "false":
			ps.next()
			n := &BoolLit{Value: t.text == "true"}
			n.Ranging = t.Ranging
			return n
		case "null":
			ps.next()
			n := &NullLit{}
			n.Ranging = t.Ranging
			return n
		case "func":
			ps.next()
			n := &FuncLit{}
			n.From = t.From
			n.Params = ps.parseParams()
			n.Body = ps.parseBlock()
			n.To = ps.end()
			return n
		}
		if ps.g.IsReserved(t.text) {
			ps.errorp(t, "unexpected keyword %s, should be expression", t.text)
		}
		ps.next()
		n := &Ident{Name: t.text}
		n.Ranging = t.Ranging
		return n
	case tkOp:
		switch t.text {
		case "(":
			ps.next()
			ps.depth++
			e := ps.parseExpr()
			ps.expect(")")
			ps.depth--
			return e
		case "[":
			ps.next()
			ps.depth++
			n := &ListLit{}
			n.From = t.From
			n.Elems = ps.parseList("]")
			ps.depth--
			n.To = ps.end()
			return n
		case "{":
			return ps.parseMap()
		}
	}
	ps.unexpected(t, "expression")
	panic("unreachable")
}

// MapLit = '{' [ Pair { ',' Pair } [ ',' ] ] '}'
// Pair = Expr ':' Expr
func (ps *parser) parseMap() *MapLit {
	n := &MapLit{}
	n.From = ps.next().From
	ps.depth++
	for !ps.peek().is("}") {
		key := ps.parseExpr()
		if id, ok := key.(*Ident); ok {
			lit := &StringLit{Value: id.Name}
			lit.Ranging = id.Ranging
			key = lit
		}
		ps.expect(":")
		n.Pairs = append(n.Pairs, &MapPair{key, ps.parseExpr()})
		if !ps.peek().is(",") {
			break
		}
		ps.next()
	}
	ps.expect("}")
	ps.depth--
	n.To = ps.end()
	return n
}
