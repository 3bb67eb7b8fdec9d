package ast

// Expr embeds Stmt: every expression may stand alone in statement position.
type Expr interface {
	Stmt
	isExpr()
}

func (*Assign) isExpr() {}

func (*FuncCall) isExpr() {}

func (*Literal) isExpr() {}

func (*Ident) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*TypeCast) isExpr() {}
