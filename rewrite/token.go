// Package rewrite holds the syntax-directed token emitter: the walker that
// turns a jpqlparser parse tree into an ordered token sequence, and the
// renderer that concatenates that sequence back into JPQL text. This is
// where sort injection and count-query synthesis live, because both need to
// interleave with the walk rather than run as a second pass.
package rewrite

import "github.com/jpqlkit/jpqlrewrite/jpqlparser"

// Trailing is the whitespace policy applied after a token when rendered.
type Trailing int

const (
	NoSpace Trailing = iota
	Space
)

// Resolver produces a token's text from the final walker state. Used for the
// handful of tokens (sort properties, count-mode aliases) whose text depends
// on the captured alias; count-mode aliases are emitted before the range
// variable that supplies it has been visited.
type Resolver func(*State) string

// Token is the unit the walker emits and the renderer consumes. Text is
// either a literal string or, when resolve is set, deferred until render
// time against the final State — idempotent and side-effect-free either way.
// Context retains the originating grammar production for debug tagging only;
// it never affects a non-debug render.
type Token struct {
	text      string
	resolve   Resolver
	context   jpqlparser.NodeKind
	trailing  Trailing
	lineBreak bool
	debugOnly bool
}

// Lit builds an ordinary literal token with the default SPACE trailing.
func Lit(text string, context jpqlparser.NodeKind) Token {
	return Token{text: text, context: context, trailing: Space}
}

// Deferred builds a token whose text is computed from walker state at
// render time, e.g. "alias.property" once alias has been captured.
func Deferred(context jpqlparser.NodeKind, resolve Resolver) Token {
	return Token{context: context, resolve: resolve, trailing: Space}
}

// Resolve returns this token's text given the final walker state.
func (t Token) Resolve(st *State) string {
	if t.resolve != nil {
		return t.resolve(st)
	}
	return t.text
}

// Context reports the grammar production this token was emitted for.
func (t Token) Context() jpqlparser.NodeKind { return t.context }
