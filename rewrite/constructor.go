package rewrite

import "github.com/jpqlkit/jpqlrewrite/jpqlparser"

// walkConstructorExpr renders `NEW fqcn(args...)` and sets the monotonic
// has_constructor_expression flag, per spec.md 4.3.4.
func (w *Walker) walkConstructorExpr(buf *Buffer, n *jpqlparser.ConstructorExpr) {
	w.State.HasConstructorExpression = true
	buf.Push(litKind("new", jpqlparser.KindConstructorExpr))
	emitDottedName(buf, n.ClassName)
	nospace(buf) // the name is a function-call target, not a bare path: no space before '('
	buf.Push(Token{text: "(", trailing: NoSpace})
	emitCommaList(buf, n.Args, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}
