package rewrite

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

// Render concatenates a token sequence into the final JPQL string, per
// spec.md 4.4: debug-only tokens are skipped, each token's resolved text is
// appended followed by a space when its trailing policy is SPACE, and
// trailing whitespace is trimmed from the result.
func Render(buf Buffer, st *State) string {
	var b strings.Builder
	for _, t := range buf {
		if t.debugOnly {
			continue
		}
		b.WriteString(t.Resolve(st))
		if t.trailing == Space {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderDebug is the debug-mode variant: every token is included (none are
// filtered), a newline precedes any token with line_break set, and each
// token is suffixed with a bracketed tag naming the grammar production it
// came from.
func RenderDebug(buf Buffer, st *State) string {
	var b strings.Builder
	for _, t := range buf {
		if t.lineBreak {
			b.WriteByte('\n')
		}
		b.WriteString(t.Resolve(st))
		b.WriteString(fmt.Sprintf("[%s]", t.context))
		if t.trailing == Space {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// DumpTokens is a structural debug dump of the raw buffer, for callers that
// want the token fields themselves rather than a re-concatenated string.
func DumpTokens(buf Buffer) string {
	return repr.String(buf, repr.Indent("  "))
}
