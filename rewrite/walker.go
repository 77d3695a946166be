package rewrite

import (
	"strings"

	"github.com/jpqlkit/jpqlrewrite/jpqlparser"
)

// Walker is a syntax-directed visitor over a jpqlparser parse tree. It is
// single-use: construct one per walk (NewWalker), call Walk once, then read
// State for the alias/projection/constructor-expression side effects.
type Walker struct {
	State State
}

// NewWalker returns a walker configured with the given sort list,
// count-mode flag and count-projection override. Any of them may be the zero
// value.
func NewWalker(sort []SortOrder, countMode bool, countProjection string) *Walker {
	return &Walker{State: State{Sort: sort, CountMode: countMode, CountProjection: countProjection}}
}

// Walk produces the token sequence for a top-level statement.
func (w *Walker) Walk(node jpqlparser.QueryNode) Buffer {
	var buf Buffer
	switch n := node.(type) {
	case *jpqlparser.SelectStatement:
		w.walkTopSelectStatement(&buf, n)
	case *jpqlparser.UpdateStatement:
		w.walkUpdateStatement(&buf, n)
	case *jpqlparser.DeleteStatement:
		w.walkDeleteStatement(&buf, n)
	default:
		violate("unhandled query node %T", node)
	}
	return buf
}

func lit(text string) Token { return Token{text: text, trailing: Space} }

func litKind(text string, kind jpqlparser.NodeKind) Token {
	return Token{text: text, context: kind, trailing: Space}
}

// --- top-level statements --------------------------------------------------

func (w *Walker) walkTopSelectStatement(buf *Buffer, n *jpqlparser.SelectStatement) {
	w.walkSelectClause(buf, &n.Select, true)
	buf.Push(lit("from"))
	w.walkFromClause(buf, &n.From)
	if n.Where != nil {
		buf.Push(lit("where"))
		w.walkExpr(buf, n.Where.Cond)
	}
	if n.GroupBy != nil {
		buf.Push(lit("group"))
		buf.Push(lit("by"))
		emitCommaList(buf, n.GroupBy.Items, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	}
	if n.Having != nil {
		buf.Push(lit("having"))
		w.walkExpr(buf, n.Having.Cond)
	}
	hadOrderBy := n.OrderBy != nil
	if hadOrderBy {
		buf.Push(lit("order"))
		buf.Push(lit("by"))
		emitCommaList(buf, n.OrderBy.Items, func(b *Buffer, item jpqlparser.OrderByItem) { w.walkOrderByItem(b, item) })
	}
	if !w.State.CountMode {
		w.injectSort(buf, hadOrderBy)
	}
}

// walkSelectStatement renders a nested (subquery) select_statement: no
// count-mode rewrite, no sort injection, no projection capture — those are
// top-level-only per spec.
func (w *Walker) walkSelectStatement(buf *Buffer, n *jpqlparser.SelectStatement) {
	w.walkSelectClause(buf, &n.Select, false)
	buf.Push(lit("from"))
	w.walkFromClause(buf, &n.From)
	if n.Where != nil {
		buf.Push(lit("where"))
		w.walkExpr(buf, n.Where.Cond)
	}
	if n.GroupBy != nil {
		buf.Push(lit("group"))
		buf.Push(lit("by"))
		emitCommaList(buf, n.GroupBy.Items, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	}
	if n.Having != nil {
		buf.Push(lit("having"))
		w.walkExpr(buf, n.Having.Cond)
	}
	if n.OrderBy != nil {
		buf.Push(lit("order"))
		buf.Push(lit("by"))
		emitCommaList(buf, n.OrderBy.Items, func(b *Buffer, item jpqlparser.OrderByItem) { w.walkOrderByItem(b, item) })
	}
}

func (w *Walker) walkUpdateStatement(buf *Buffer, n *jpqlparser.UpdateStatement) {
	buf.Push(lit("update"))
	w.walkRangeVariableDecl(buf, &n.Entity)
	buf.Push(lit("set"))
	emitCommaList(buf, n.Set, func(b *Buffer, sa jpqlparser.SetAssignment) {
		w.walkExpr(b, sa.Target)
		buf.Push(Token{text: "=", trailing: Space})
		w.walkExpr(b, sa.Value)
	})
	if n.Where != nil {
		buf.Push(lit("where"))
		w.walkExpr(buf, n.Where.Cond)
	}
}

func (w *Walker) walkDeleteStatement(buf *Buffer, n *jpqlparser.DeleteStatement) {
	buf.Push(lit("delete"))
	buf.Push(lit("from"))
	w.walkRangeVariableDecl(buf, &n.Entity)
	if n.Where != nil {
		buf.Push(lit("where"))
		w.walkExpr(buf, n.Where.Cond)
	}
}

// --- select clause ----------------------------------------------------------

func (w *Walker) walkSelectClause(buf *Buffer, c *jpqlparser.SelectClause, topLevel bool) {
	if topLevel && w.State.CountMode {
		w.walkCountSelectClause(buf, c)
		return
	}
	buf.Push(litKind("select", jpqlparser.KindSelectClause))
	if c.Distinct {
		buf.Push(litKind("distinct", jpqlparser.KindSelectClause))
	}
	start := len(*buf)
	emitCommaList(buf, c.Items, func(b *Buffer, item jpqlparser.SelectItem) { w.walkSelectItem(b, item) })
	if topLevel {
		captured := make(Buffer, len((*buf)[start:]))
		copy(captured, (*buf)[start:])
		w.State.setProjection(captured)
	}
}

func (w *Walker) walkSelectItem(buf *Buffer, item jpqlparser.SelectItem) {
	w.walkExpr(buf, item.Expr)
	if item.Alias != "" {
		buf.Push(lit("as"))
		buf.Push(Token{text: item.Alias, trailing: Space})
	}
}

// --- from clause --------------------------------------------------------

func (w *Walker) walkFromClause(buf *Buffer, f *jpqlparser.FromClause) {
	emitCommaList(buf, f.Roots, func(b *Buffer, r jpqlparser.FromRoot) { w.walkFromRoot(b, r) })
}

func (w *Walker) walkFromRoot(buf *Buffer, r jpqlparser.FromRoot) {
	switch {
	case r.Range != nil:
		w.walkRangeVariableDecl(buf, r.Range)
	case r.Collection != nil:
		w.walkCollectionMemberDecl(buf, r.Collection)
	default:
		violate("from root with neither a range variable nor a collection member declaration")
	}
	for i := range r.Joins {
		w.walkJoin(buf, &r.Joins[i])
	}
}

func emitDottedName(buf *Buffer, name string) {
	start := len(*buf)
	for i, part := range strings.Split(name, ".") {
		if i > 0 {
			buf.Push(Token{text: ".", trailing: NoSpace})
		}
		buf.Push(Token{text: part, trailing: Space})
	}
	forceNoSpaceRun(buf, start)
}

func (w *Walker) walkRangeVariableDecl(buf *Buffer, n *jpqlparser.RangeVariableDecl) {
	emitDottedName(buf, n.EntityName)
	if n.As {
		buf.Push(lit("as"))
	}
	buf.Push(Token{text: n.Alias, context: jpqlparser.KindRangeVariableDecl, trailing: Space})
	w.State.captureAlias(n.Alias)
}

func (w *Walker) walkCollectionMemberDecl(buf *Buffer, n *jpqlparser.CollectionMemberDecl) {
	buf.Push(litKind("in", jpqlparser.KindCollectionMemberDecl))
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Path)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
	if n.As {
		buf.Push(lit("as"))
	}
	buf.Push(Token{text: n.Alias, context: jpqlparser.KindCollectionMemberDecl, trailing: Space})
	w.State.captureAlias(n.Alias)
}

func (w *Walker) walkJoin(buf *Buffer, j *jpqlparser.Join) {
	switch j.Kind {
	case jpqlparser.JoinLeft:
		buf.Push(lit("left"))
	case jpqlparser.JoinLeftOuter:
		buf.Push(lit("left"))
		buf.Push(lit("outer"))
	}
	buf.Push(litKind("join", jpqlparser.KindJoin))
	if j.Fetch {
		buf.Push(lit("fetch"))
	}
	if j.Treat != nil {
		buf.Push(Token{text: "treat", trailing: NoSpace})
		buf.Push(Token{text: "(", trailing: NoSpace})
		w.walkExpr(buf, j.Path)
		buf.Push(lit("as"))
		emitDottedName(buf, *j.Treat)
		nospace(buf)
		buf.Push(Token{text: ")", trailing: Space})
	} else {
		w.walkExpr(buf, j.Path)
	}
	if j.Alias != "" {
		buf.Push(Token{text: j.Alias, context: jpqlparser.KindJoin, trailing: Space})
		w.State.captureAlias(j.Alias)
	}
	if j.On != nil {
		buf.Push(lit("on"))
		w.walkExpr(buf, j.On)
	}
}

func (w *Walker) walkOrderByItem(buf *Buffer, item jpqlparser.OrderByItem) {
	w.walkExpr(buf, item.Expr)
	if item.Explicit {
		buf.Push(litKind(item.Direction, jpqlparser.KindOrderByItem))
	}
}

// --- expressions -----------------------------------------------------------

func (w *Walker) walkExpr(buf *Buffer, e jpqlparser.Expr) {
	switch n := e.(type) {
	case *jpqlparser.PathExpr:
		w.walkPath(buf, n)
	case *jpqlparser.QualifiedPathExpr:
		w.walkQualifiedPath(buf, n)
	case *jpqlparser.TreatedPath:
		w.walkTreatedPath(buf, n)
	case *jpqlparser.LiteralExpr:
		w.walkLiteral(buf, n)
	case *jpqlparser.ParameterExpr:
		w.walkParameter(buf, n)
	case *jpqlparser.AggregateExpr:
		w.walkAggregate(buf, n)
	case *jpqlparser.FunctionCallExpr:
		w.walkFunctionCall(buf, n)
	case *jpqlparser.UserFunctionExpr:
		w.walkUserFunction(buf, n)
	case *jpqlparser.BinaryExpr:
		w.walkBinary(buf, n)
	case *jpqlparser.UnaryExpr:
		w.walkUnary(buf, n)
	case *jpqlparser.BetweenExpr:
		w.walkBetween(buf, n)
	case *jpqlparser.InExpr:
		w.walkIn(buf, n)
	case *jpqlparser.LikeExpr:
		w.walkLike(buf, n)
	case *jpqlparser.NullTestExpr:
		w.walkNullTest(buf, n)
	case *jpqlparser.EmptyTestExpr:
		w.walkEmptyTest(buf, n)
	case *jpqlparser.MemberOfExpr:
		w.walkMemberOf(buf, n)
	case *jpqlparser.ExistsExpr:
		w.walkExists(buf, n)
	case *jpqlparser.QuantifiedExpr:
		w.walkQuantified(buf, n)
	case *jpqlparser.CaseExpr:
		w.walkCase(buf, n)
	case *jpqlparser.CoalesceExpr:
		w.walkCoalesce(buf, n)
	case *jpqlparser.NullIfExpr:
		w.walkNullIf(buf, n)
	case *jpqlparser.ExtractExpr:
		w.walkExtract(buf, n)
	case *jpqlparser.TrimExpr:
		w.walkTrim(buf, n)
	case *jpqlparser.SubstringExpr:
		w.walkSubstring(buf, n)
	case *jpqlparser.ConcatExpr:
		w.walkConcat(buf, n)
	case *jpqlparser.LocateExpr:
		w.walkLocate(buf, n)
	case *jpqlparser.SizeExpr:
		w.walkSize(buf, n)
	case *jpqlparser.IndexExpr:
		w.walkIndex(buf, n)
	case *jpqlparser.CurrentExpr:
		w.walkCurrent(buf, n)
	case *jpqlparser.LocalExpr:
		w.walkLocal(buf, n)
	case *jpqlparser.TypeExpr:
		w.walkType(buf, n)
	case *jpqlparser.SpelExpr:
		w.walkSpel(buf, n)
	case *jpqlparser.ParenExpr:
		w.walkParen(buf, n)
	case *jpqlparser.SubqueryExpr:
		w.walkSubquery(buf, n)
	case *jpqlparser.ConstructorExpr:
		w.walkConstructorExpr(buf, n)
	default:
		violate("unhandled expression node %T", e)
	}
}

func (w *Walker) walkPath(buf *Buffer, n *jpqlparser.PathExpr) {
	start := len(*buf)
	for i, seg := range n.Segments {
		if i > 0 {
			buf.Push(Token{text: ".", context: jpqlparser.KindPathExpr, trailing: NoSpace})
		}
		buf.Push(Token{text: seg, context: jpqlparser.KindPathExpr, trailing: Space})
	}
	forceNoSpaceRun(buf, start)
}

func (w *Walker) walkQualifiedPath(buf *Buffer, n *jpqlparser.QualifiedPathExpr) {
	buf.Push(Token{text: n.Qualifier, context: jpqlparser.KindQualifiedPathExpr, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Path)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkTreatedPath(buf *Buffer, n *jpqlparser.TreatedPath) {
	buf.Push(Token{text: "treat", context: jpqlparser.KindTreatedPath, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Path)
	buf.Push(lit("as"))
	emitDottedName(buf, n.TypeName)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkLiteral(buf *Buffer, n *jpqlparser.LiteralExpr) {
	buf.Push(litKind(n.Text, jpqlparser.KindLiteralExpr))
}

func (w *Walker) walkParameter(buf *Buffer, n *jpqlparser.ParameterExpr) {
	if n.Positional {
		buf.Push(litKind("?"+n.Index, jpqlparser.KindParameterExpr))
		return
	}
	buf.Push(litKind(":"+n.Name, jpqlparser.KindParameterExpr))
}

func (w *Walker) walkAggregate(buf *Buffer, n *jpqlparser.AggregateExpr) {
	buf.Push(Token{text: n.Op, context: jpqlparser.KindAggregateExpr, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	if n.Distinct {
		buf.Push(lit("distinct"))
	}
	w.walkExpr(buf, n.Arg)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkFunctionCall(buf *Buffer, n *jpqlparser.FunctionCallExpr) {
	buf.Push(Token{text: n.Name, context: jpqlparser.KindFunctionCallExpr, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	emitCommaList(buf, n.Args, func(b *Buffer, a jpqlparser.Expr) { w.walkExpr(b, a) })
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkUserFunction(buf *Buffer, n *jpqlparser.UserFunctionExpr) {
	buf.Push(Token{text: "function", context: jpqlparser.KindUserFunctionExpr, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Name)
	for _, a := range n.Args {
		nospace(buf)
		buf.Push(Token{text: ",", trailing: Space})
		w.walkExpr(buf, a)
	}
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkBinary(buf *Buffer, n *jpqlparser.BinaryExpr) {
	w.walkExpr(buf, n.Left)
	buf.Push(litKind(n.Op, jpqlparser.KindBinaryExpr))
	w.walkExpr(buf, n.Right)
}

func (w *Walker) walkUnary(buf *Buffer, n *jpqlparser.UnaryExpr) {
	if n.Op == "not" {
		buf.Push(lit("not"))
		w.walkExpr(buf, n.Expr)
		return
	}
	buf.Push(Token{text: n.Op, context: jpqlparser.KindUnaryExpr, trailing: NoSpace})
	w.walkExpr(buf, n.Expr)
}

func (w *Walker) walkBetween(buf *Buffer, n *jpqlparser.BetweenExpr) {
	w.walkExpr(buf, n.Expr)
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("between"))
	w.walkExpr(buf, n.Low)
	buf.Push(lit("and"))
	w.walkExpr(buf, n.High)
}

func (w *Walker) walkIn(buf *Buffer, n *jpqlparser.InExpr) {
	w.walkExpr(buf, n.Expr)
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("in"))
	buf.Push(Token{text: "(", trailing: NoSpace})
	if n.Subquery != nil {
		w.walkSelectStatement(buf, n.Subquery.Query)
	} else {
		emitCommaList(buf, n.List, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	}
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkLike(buf *Buffer, n *jpqlparser.LikeExpr) {
	w.walkExpr(buf, n.Expr)
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("like"))
	w.walkExpr(buf, n.Pattern)
	if n.Escape != nil {
		buf.Push(lit("escape"))
		w.walkExpr(buf, n.Escape)
	}
}

func (w *Walker) walkNullTest(buf *Buffer, n *jpqlparser.NullTestExpr) {
	w.walkExpr(buf, n.Expr)
	buf.Push(lit("is"))
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("null"))
}

func (w *Walker) walkEmptyTest(buf *Buffer, n *jpqlparser.EmptyTestExpr) {
	w.walkExpr(buf, n.Expr)
	buf.Push(lit("is"))
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("empty"))
}

func (w *Walker) walkMemberOf(buf *Buffer, n *jpqlparser.MemberOfExpr) {
	w.walkExpr(buf, n.Expr)
	if n.Not {
		buf.Push(lit("not"))
	}
	buf.Push(lit("member"))
	buf.Push(lit("of"))
	w.walkExpr(buf, n.Collection)
}

func (w *Walker) walkExists(buf *Buffer, n *jpqlparser.ExistsExpr) {
	buf.Push(Token{text: "exists", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkSelectStatement(buf, n.Subquery.Query)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkQuantified(buf *Buffer, n *jpqlparser.QuantifiedExpr) {
	buf.Push(Token{text: n.Quantifier, trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkSelectStatement(buf, n.Subquery.Query)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkCase(buf *Buffer, n *jpqlparser.CaseExpr) {
	buf.Push(lit("case"))
	if n.Operand != nil {
		w.walkExpr(buf, n.Operand)
	}
	for _, wc := range n.Whens {
		buf.Push(lit("when"))
		w.walkExpr(buf, wc.When)
		buf.Push(lit("then"))
		w.walkExpr(buf, wc.Result)
	}
	buf.Push(lit("else"))
	w.walkExpr(buf, n.Else)
	buf.Push(lit("end"))
}

func (w *Walker) walkCoalesce(buf *Buffer, n *jpqlparser.CoalesceExpr) {
	buf.Push(Token{text: "coalesce", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	emitCommaList(buf, n.Args, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkNullIf(buf *Buffer, n *jpqlparser.NullIfExpr) {
	buf.Push(Token{text: "nullif", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Left)
	nospace(buf)
	buf.Push(Token{text: ",", trailing: Space})
	w.walkExpr(buf, n.Right)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkExtract(buf *Buffer, n *jpqlparser.ExtractExpr) {
	buf.Push(Token{text: "extract", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	buf.Push(lit(n.Field))
	buf.Push(lit("from"))
	w.walkExpr(buf, n.Source)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkTrim(buf *Buffer, n *jpqlparser.TrimExpr) {
	buf.Push(Token{text: "trim", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	if n.Spec != "" {
		buf.Push(lit(n.Spec))
	}
	if n.Char != nil {
		w.walkExpr(buf, n.Char)
	}
	if n.Spec != "" || n.Char != nil {
		buf.Push(lit("from"))
	}
	w.walkExpr(buf, n.Source)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkSubstring(buf *Buffer, n *jpqlparser.SubstringExpr) {
	buf.Push(Token{text: "substring", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Source)
	nospace(buf)
	buf.Push(Token{text: ",", trailing: Space})
	w.walkExpr(buf, n.Start)
	if n.Length != nil {
		nospace(buf)
		buf.Push(Token{text: ",", trailing: Space})
		w.walkExpr(buf, n.Length)
	}
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkConcat(buf *Buffer, n *jpqlparser.ConcatExpr) {
	buf.Push(Token{text: "concat", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	emitCommaList(buf, n.Args, func(b *Buffer, e jpqlparser.Expr) { w.walkExpr(b, e) })
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkLocate(buf *Buffer, n *jpqlparser.LocateExpr) {
	buf.Push(Token{text: "locate", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Pattern)
	nospace(buf)
	buf.Push(Token{text: ",", trailing: Space})
	w.walkExpr(buf, n.Source)
	if n.Start != nil {
		nospace(buf)
		buf.Push(Token{text: ",", trailing: Space})
		w.walkExpr(buf, n.Start)
	}
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkSize(buf *Buffer, n *jpqlparser.SizeExpr) {
	buf.Push(Token{text: "size", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Path)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkIndex(buf *Buffer, n *jpqlparser.IndexExpr) {
	buf.Push(Token{text: "index", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	buf.Push(lit(n.Alias))
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkCurrent(buf *Buffer, n *jpqlparser.CurrentExpr) {
	buf.Push(lit("current_" + n.Which))
}

func (w *Walker) walkLocal(buf *Buffer, n *jpqlparser.LocalExpr) {
	buf.Push(lit("local"))
	buf.Push(lit(n.Which))
}

func (w *Walker) walkType(buf *Buffer, n *jpqlparser.TypeExpr) {
	buf.Push(Token{text: "type", trailing: NoSpace})
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Expr)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkSpel(buf *Buffer, n *jpqlparser.SpelExpr) {
	buf.Push(litKind(n.Raw, jpqlparser.KindSpelExpr))
}

func (w *Walker) walkParen(buf *Buffer, n *jpqlparser.ParenExpr) {
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkExpr(buf, n.Inner)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}

func (w *Walker) walkSubquery(buf *Buffer, n *jpqlparser.SubqueryExpr) {
	buf.Push(Token{text: "(", trailing: NoSpace})
	w.walkSelectStatement(buf, n.Query)
	nospace(buf)
	buf.Push(Token{text: ")", trailing: Space})
}
