package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpqlkit/jpqlrewrite/jpqlparser"
)

func TestRenderDebugTagsEachToken(t *testing.T) {
	node, err := jpqlparser.Parse("select u from User u", true)
	require.NoError(t, err)
	w := NewWalker(nil, false, "")
	buf := w.Walk(node)

	got := RenderDebug(buf, &w.State)
	assert.Contains(t, got, "[SelectClause]")
	assert.Contains(t, got, "[RangeVariableDecl]")
}

func TestDumpTokensProducesNonEmptyStructuralDump(t *testing.T) {
	node, err := jpqlparser.Parse("select u from User u", true)
	require.NoError(t, err)
	w := NewWalker(nil, false, "")
	buf := w.Walk(node)

	out := DumpTokens(buf)
	assert.NotEmpty(t, out)
}

func TestRenderSkipsDebugOnlyTokens(t *testing.T) {
	buf := Buffer{
		Token{text: "select", trailing: Space},
		Token{text: "DEBUG-NOTE", trailing: Space, debugOnly: true},
		Token{text: "u", trailing: Space},
	}
	got := Render(buf, &State{})
	assert.Equal(t, "select u", got)
	assert.NotContains(t, got, "DEBUG-NOTE")
}
