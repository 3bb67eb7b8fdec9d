package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (a *Assign) NodePos() Position    { return a.Pos }
func (a *Assign) NodeEndPos() Position { return a.EndPos }
func (*Assign) NodeType() NodeType     { return ASSIGN }

func (f *FuncDecl) NodePos() Position    { return f.Pos }
func (f *FuncDecl) NodeEndPos() Position { return f.EndPos }
func (*FuncDecl) NodeType() NodeType     { return FUNC_DECL }

func (f *FuncCall) NodePos() Position    { return f.Pos }
func (f *FuncCall) NodeEndPos() Position { return f.EndPos }
func (*FuncCall) NodeType() NodeType     { return FUNC_CALL }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF_STMT }

func (w *While) NodePos() Position    { return w.Pos }
func (w *While) NodeEndPos() Position { return w.EndPos }
func (*While) NodeType() NodeType     { return WHILE_STMT }

func (d *Do) NodePos() Position    { return d.Pos }
func (d *Do) NodeEndPos() Position { return d.EndPos }
func (*Do) NodeType() NodeType     { return DO_STMT }

func (l *Literal) NodePos() Position    { return l.Pos }
func (l *Literal) NodeEndPos() Position { return l.EndPos }
func (*Literal) NodeType() NodeType     { return LITERAL }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (t *TypeCast) NodePos() Position    { return t.Pos }
func (t *TypeCast) NodeEndPos() Position { return t.EndPos }
func (*TypeCast) NodeType() NodeType     { return TYPE_CAST }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }
