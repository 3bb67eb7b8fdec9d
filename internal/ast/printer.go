package ast

import (
	"fmt"
	"strings"
)

// String methods render nodes back as Vex-dialect source, primarily for the
// REPL and debug output. This is not an unparser: flat expression chains
// print without grouping, so the text may re-parse with a different shape.

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Stmts {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (blk *Block) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range blk.Stmts {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (v *VarDecl) String() string {
	var b strings.Builder
	if v.Mut {
		b.WriteString("bindm ")
	} else {
		b.WriteString("bind ")
	}
	b.WriteString(v.Name.Name)
	if v.Type != nil {
		b.WriteString(": " + v.Type.Name)
	}
	b.WriteString(" = ")
	b.WriteString(v.Value.String())
	return b.String()
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Name.Name, a.Value.String())
}

func (f *FuncDecl) String() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.Name)
	}
	return fmt.Sprintf("fn %s(%s) %s", f.Name.Name, strings.Join(params, ", "), f.Body.String())
}

func (f *FuncCall) String() string {
	var args []string
	for _, arg := range f.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", f.Name.Name, strings.Join(args, ", "))
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(i.Cond.String())
	b.WriteString(" ")
	b.WriteString(i.Then.String())
	if i.Else != nil {
		b.WriteString(" else ")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (w *While) String() string {
	return fmt.Sprintf("while %s %s", w.Cond.String(), w.Body.String())
}

func (d *Do) String() string {
	return fmt.Sprintf("do %s", d.Body.String())
}

func (l *Literal) String() string {
	return l.Value.String()
}

func (i *Ident) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Value.String()
}

func (t *TypeCast) String() string {
	return fmt.Sprintf("%s@%s", t.Value.String(), t.Target)
}

func (t *TypeRef) String() string {
	return t.Name
}
