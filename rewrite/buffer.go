package rewrite

// Buffer is an ordered, unshared sequence of Tokens. Each visit method
// returns its own buffer, which the caller appends into its own; clip,
// nospace and space below, plus the dotted-path and comma-list helpers built
// from the same trailing-flag edits, are the only mutations permitted once
// tokens land in a buffer — no visit method reaches in and edits an
// arbitrary element.
type Buffer []Token

// Push appends a token, with the default trailing already decided by the
// caller (Lit/Deferred default to Space; callers needing NoSpace set it
// directly on the Token literal before pushing).
func (b *Buffer) Push(t Token) { *b = append(*b, t) }

// clip drops the last token, if any.
func clip(b *Buffer) {
	if n := len(*b); n > 0 {
		*b = (*b)[:n-1]
	}
}

// nospace forces the last token's trailing whitespace to NO_SPACE.
func nospace(b *Buffer) {
	if n := len(*b); n > 0 {
		(*b)[n-1].trailing = NoSpace
	}
}

// space forces the last token's trailing whitespace to SPACE.
func space(b *Buffer) {
	if n := len(*b); n > 0 {
		(*b)[n-1].trailing = Space
	}
}

// forceNoSpaceRun applies the dotted-path whitespace rule to the tokens
// pushed since start: every one of them NO_SPACE, except the last, which is
// restored to SPACE. A no-op on an empty range.
func forceNoSpaceRun(b *Buffer, start int) {
	n := len(*b)
	for i := start; i < n; i++ {
		(*b)[i].trailing = NoSpace
	}
	if n > start {
		(*b)[n-1].trailing = Space
	}
}

// emitCommaList walks each item with emit, separating them the way every
// comma-separated JPQL production does: nospace then push "," after every
// item, then clip the final dangling comma and restore space on the new
// last token. A no-op on an empty slice.
func emitCommaList[T any](buf *Buffer, items []T, emit func(*Buffer, T)) {
	for _, item := range items {
		emit(buf, item)
		nospace(buf)
		buf.Push(Token{text: ",", trailing: Space})
	}
	if len(items) > 0 {
		clip(buf)
		space(buf)
	}
}
