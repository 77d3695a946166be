// Package jpqlrewrite bundles the JPQL 3.1 parser adapter and the
// syntax-directed token emitter into the six named operations a caller
// actually wants: rewrite, rewrite with an injected sort, derive a count
// query, detect the primary range-variable alias, extract the projection,
// and detect a constructor-expression projection.
package jpqlrewrite

import (
	"github.com/sirupsen/logrus"

	"github.com/jpqlkit/jpqlrewrite/jpqlparser"
	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

// Options configures a façade operation. Not every field applies to every
// operation — Sort and CountProjection are read only by the operations that
// document using them; DebugRender switches Render for RenderDebug in
// RewriteOptions and CountQueryOptions.
type Options struct {
	Sort            []rewrite.SortOrder
	CountProjection string
	DebugRender     bool
}

// Facade is the engine's entry point. Each method constructs an independent
// parser result and Walker; nothing is shared across calls, per spec.md §5.
type Facade struct {
	Logger logrus.FieldLogger
}

// NewFacade returns a Facade logging InternalInvariantViolation occurrences
// to logger. A nil logger defaults to logrus.StandardLogger().
func NewFacade(logger logrus.FieldLogger) *Facade {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Facade{Logger: logger}
}

// logAndRepanic recovers an InternalInvariantViolation panic just long
// enough to log it, then re-panics: per spec.md §7 this class of error is
// "not recoverable; logged and propagated", not turned into an error return.
func (f *Facade) logAndRepanic() {
	if r := recover(); r != nil {
		if iv, ok := r.(rewrite.InternalInvariantViolation); ok {
			f.Logger.WithError(iv).Error("jpqlrewrite: internal invariant violation")
		}
		panic(r)
	}
}

// Rewrite re-renders query with no sort injection. Fail-fast: a syntax
// error is returned as InvalidQuery.
func (f *Facade) Rewrite(query string) (string, error) {
	return f.RewriteOptions(query, Options{})
}

// RewriteWithSort re-renders query with sort appended to (or merged into) an
// existing ORDER BY clause.
func (f *Facade) RewriteWithSort(query string, sort []rewrite.SortOrder) (string, error) {
	return f.RewriteOptions(query, Options{Sort: sort})
}

// RewriteOptions is the Options-driven form of Rewrite/RewriteWithSort.
func (f *Facade) RewriteOptions(query string, opts Options) (out string, err error) {
	defer f.logAndRepanic()

	node, perr := jpqlparser.Parse(query, true)
	if perr != nil {
		return "", invalidQuery("rewrite", perr)
	}

	w := rewrite.NewWalker(opts.Sort, false, "")
	buf := w.Walk(node)
	if opts.DebugRender {
		return rewrite.RenderDebug(buf, &w.State), nil
	}
	return rewrite.Render(buf, &w.State), nil
}

// CountQuery derives a count-query variant of query. countProjection, when
// non-empty, is used verbatim as the inner projection instead of the
// alias-or-select-items logic of spec.md §4.3.3.
func (f *Facade) CountQuery(query string, countProjection string) (string, error) {
	return f.CountQueryOptions(query, Options{CountProjection: countProjection})
}

// CountQueryOptions is the Options-driven form of CountQuery.
func (f *Facade) CountQueryOptions(query string, opts Options) (out string, err error) {
	defer f.logAndRepanic()

	node, perr := jpqlparser.Parse(query, true)
	if perr != nil {
		return "", invalidQuery("count_query", perr)
	}

	w := rewrite.NewWalker(nil, true, opts.CountProjection)
	buf := w.Walk(node)
	if opts.DebugRender {
		return rewrite.RenderDebug(buf, &w.State), nil
	}
	return rewrite.Render(buf, &w.State), nil
}

// DetectAlias returns the top-level range-variable alias and whether parsing
// and walking succeeded. Parsing is permissive: a syntax error yields
// ("", false) rather than an error.
func (f *Facade) DetectAlias(query string) (alias string, ok bool) {
	defer f.logAndRepanic()

	node, _ := jpqlparser.Parse(query, false)
	if node == nil {
		return "", false
	}
	w := rewrite.NewWalker(nil, false, "")
	w.Walk(node)
	if !w.State.HasAlias() {
		return "", false
	}
	return w.State.Alias(), true
}

// Projection renders the top-level select clause's comma-separated items
// (without a trailing comma). Parsing is permissive: a syntax error yields
// "". Per spec.md §9, this always walks fresh and ignores any
// Options.CountProjection a caller might otherwise have in mind — there is
// no shared state between façade calls for it to interact with.
func (f *Facade) Projection(query string) string {
	defer f.logAndRepanic()

	node, _ := jpqlparser.Parse(query, false)
	if node == nil {
		return ""
	}
	w := rewrite.NewWalker(nil, false, "")
	w.Walk(node)
	proj, ok := w.State.Projection()
	if !ok {
		return ""
	}
	return rewrite.Render(proj, &w.State)
}

// HasConstructorExpression reports whether query's projection is a
// constructor expression (`NEW fqcn(...)`). Fail-fast: a syntax error is
// reported via err (InvalidQuery), and the bool return is false in that
// case, reconciling spec.md §4.5's "false on parse failure" with §7's
// fail-fast error-surfacing contract for this operation.
func (f *Facade) HasConstructorExpression(query string) (has bool, err error) {
	defer f.logAndRepanic()

	node, perr := jpqlparser.Parse(query, true)
	if perr != nil {
		return false, invalidQuery("has_constructor_expression", perr)
	}
	w := rewrite.NewWalker(nil, false, "")
	w.Walk(node)
	return w.State.HasConstructorExpression, nil
}
