package parse

import "github.com/Bryantad/Sona-sub001/pkg/diag"

// Node is a node in the parse tree. The range of a node is in byte offsets of
// the source.
type Node interface {
	diag.Ranger
}

// Stmt is a statement node.
type Stmt interface {
	Node
	isStmt()
}

// Expr is an expression node.
type Expr interface {
	Node
	isExpr()
}

type stmtNode struct{ diag.Ranging }

func (stmtNode) isStmt() {}

type exprNode struct{ diag.Ranging }

func (exprNode) isExpr() {}

// Chunk is a sequence of statements, either a whole source or the body of a
// block.
type Chunk struct {
	diag.Ranging
	Stmts []Stmt
}

// Statements.

// LetStmt = 'let' Ident '=' Expr
type LetStmt struct {
	stmtNode
	Name  string
	Value Expr
}

// AssignStmt = Target '=' Expr, where Target is an *Ident, *MemberExpr or
// *IndexExpr.
type AssignStmt struct {
	stmtNode
	Target Expr
	Value  Expr
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	stmtNode
	Expr Expr
}

// PrintStmt = 'print' '(' { Expr ',' } ')'
type PrintStmt struct {
	stmtNode
	Args []Expr
}

// IfStmt = 'if' Expr Block { 'elif' Expr Block } [ 'else' Block ]
type IfStmt struct {
	stmtNode
	Branches []*IfBranch
	Else     *Chunk
}

// IfBranch is one condition and body of an IfStmt.
type IfBranch struct {
	Cond Expr
	Body *Chunk
}

// WhileStmt = 'while' Expr Block
type WhileStmt struct {
	stmtNode
	Cond Expr
	Body *Chunk
}

// ForStmt = 'for' Ident 'in' Expr Block
type ForStmt struct {
	stmtNode
	Var  string
	Iter Expr
	Body *Chunk
}

// FuncDef = 'func' Ident Params Block
type FuncDef struct {
	stmtNode
	Name   string
	Params []string
	Body   *Chunk
}

// ReturnStmt = 'return' [ Expr ]
type ReturnStmt struct {
	stmtNode
	Value Expr
}

// BreakStmt = 'break'
type BreakStmt struct{ stmtNode }

// ContinueStmt = 'continue'
type ContinueStmt struct{ stmtNode }

// TryStmt = 'try' Block 'catch' [ Ident ] Block
type TryStmt struct {
	stmtNode
	Body     *Chunk
	CatchVar string
	Catch    *Chunk
}

// ThrowStmt = 'throw' Expr
type ThrowStmt struct {
	stmtNode
	Value Expr
}

// ImportStmt = 'import' Ident { '.' Ident } [ 'as' Ident ]
type ImportStmt struct {
	stmtNode
	Path  []string
	Alias string
}

// ClassDef = 'class' Ident '{' { LetStmt | FuncDef } '}'
type ClassDef struct {
	stmtNode
	Name    string
	Fields  []*LetStmt
	Methods []*FuncDef
}

// Expressions.

// NumberLit is a number literal.
type NumberLit struct {
	exprNode
	Value float64
}

// StringLit is a string literal, or a bare identifier used as a map key.
type StringLit struct {
	exprNode
	Value string
}

// BoolLit = 'true' | 'false'
type BoolLit struct {
	exprNode
	Value bool
}

// NullLit = 'null'
type NullLit struct{ exprNode }

// Ident is a variable reference.
type Ident struct {
	exprNode
	Name string
}

// ListLit = '[' { Expr ',' } ']'
type ListLit struct {
	exprNode
	Elems []Expr
}

// MapLit = '{' { Expr ':' Expr ',' } '}'
type MapLit struct {
	exprNode
	Pairs []*MapPair
}

// MapPair is a key-value pair in a MapLit.
type MapPair struct {
	Key   Expr
	Value Expr
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	exprNode
	Op      string
	Operand Expr
}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	exprNode
	Op    string
	Left  Expr
	Right Expr
}

// CallExpr = Expr '(' { Expr ',' } ')'
type CallExpr struct {
	exprNode
	Callee Expr
	Args   []Expr
}

// MemberExpr = Expr '.' Ident
type MemberExpr struct {
	exprNode
	Object Expr
	Name   string
	// Range of the member name.
	NameRange diag.Ranging
}

// IndexExpr = Expr '[' Expr ']'
type IndexExpr struct {
	exprNode
	Object Expr
	Index  Expr
}

// FuncLit = 'func' Params Block
type FuncLit struct {
	exprNode
	Params []string
	Body   *Chunk
}
