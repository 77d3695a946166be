package rewrite

import "github.com/jpqlkit/jpqlrewrite/jpqlparser"

// injectSort implements spec.md 4.3.2. It runs only for the top-level
// select_statement and only outside count mode. The alias reference is a
// deferred token because the captured alias may not be known at the point
// sort injection runs relative to other parts of the tree in principle, and
// because render always happens after the full walk completes regardless.
func (w *Walker) injectSort(buf *Buffer, hadOrderBy bool) {
	if len(w.State.Sort) == 0 {
		return
	}
	if !hadOrderBy {
		buf.Push(lit("order"))
		buf.Push(lit("by"))
	} else {
		nospace(buf)
		buf.Push(Token{text: ",", trailing: Space})
	}
	for _, so := range w.State.Sort {
		if so.IgnoreCase {
			buf.Push(Token{text: "lower", trailing: NoSpace})
			buf.Push(Token{text: "(", trailing: NoSpace})
		}
		property := so.Property
		buf.Push(Deferred(jpqlparser.KindPathExpr, func(st *State) string {
			return st.Alias() + "." + property
		}))
		if so.IgnoreCase {
			nospace(buf)
			buf.Push(Token{text: ")", trailing: Space})
		}
		dir := "asc"
		if so.Direction == Desc {
			dir = "desc"
		}
		buf.Push(Token{text: dir, trailing: NoSpace})
		buf.Push(Token{text: ",", trailing: Space})
	}
	clip(buf) // drop the dangling comma after the last sort term
}
