package rewrite

import "github.com/jpqlkit/jpqlrewrite/jpqlparser"

// walkCountSelectClause rewrites the top-level select clause into a
// cardinality expression, per spec.md 4.3.3. The alias reference is a
// deferred token: the select clause is visited before the from clause that
// captures the alias, so its text cannot be known yet.
func (w *Walker) walkCountSelectClause(buf *Buffer, c *jpqlparser.SelectClause) {
	buf.Push(litKind("select", jpqlparser.KindSelectClause))
	buf.Push(Token{text: "count", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})

	switch {
	case w.State.CountProjection != "":
		buf.Push(litKind(w.State.CountProjection, jpqlparser.KindSelectClause))
	case c.Distinct && selectItemsHaveConstructor(c.Items):
		buf.Push(w.aliasToken())
	case c.Distinct:
		buf.Push(lit("distinct"))
		emitCommaList(buf, c.Items, func(b *Buffer, item jpqlparser.SelectItem) { w.walkExpr(b, item.Expr) })
	default:
		buf.Push(w.aliasToken())
	}

	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) aliasToken() Token {
	return Deferred(jpqlparser.KindSelectClause, func(st *State) string { return st.Alias() })
}

// selectItemsHaveConstructor reports whether any select item is a
// constructor_expression — the condition spec.md 4.3.3 describes as "a
// select-item token's text contains the literal `new`"; checking the node
// kind directly is the same test without scanning rendered text for it.
func selectItemsHaveConstructor(items []jpqlparser.SelectItem) bool {
	for _, item := range items {
		if item.Expr != nil && item.Expr.Kind() == jpqlparser.KindConstructorExpr {
			return true
		}
	}
	return false
}
