package ast

// Stmt is anything that may appear in a Program or Block statement list.
// Velvet is expression-oriented: every expression is also a valid statement.
type Stmt interface {
	Node
	isStmt()
}

func (*VarDecl) isStmt()  {}
func (*FuncDecl) isStmt() {}
func (*If) isStmt()       {}
func (*While) isStmt()    {}
func (*Do) isStmt()       {}
func (*Block) isStmt()    {}

// Expressions in statement position.

func (*Assign) isStmt()     {}
func (*FuncCall) isStmt()   {}
func (*Literal) isStmt()    {}
func (*Ident) isStmt()      {}
func (*BinaryExpr) isStmt() {}
func (*UnaryExpr) isStmt()  {}
func (*TypeCast) isStmt()   {}
