package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpqlkit/jpqlrewrite/jpqlparser"
)

func rewriteQuery(t *testing.T, query string, sort []SortOrder) string {
	t.Helper()
	node, err := jpqlparser.Parse(query, true)
	require.NoError(t, err)
	w := NewWalker(sort, false, "")
	buf := w.Walk(node)
	return Render(buf, &w.State)
}

func countQuery(t *testing.T, query string, countProjection string) string {
	t.Helper()
	node, err := jpqlparser.Parse(query, true)
	require.NoError(t, err)
	w := NewWalker(nil, true, countProjection)
	buf := w.Walk(node)
	return Render(buf, &w.State)
}

// Concrete scenarios, spec.md §8.

func TestScenario1NoSortNoRewrite(t *testing.T) {
	got := rewriteQuery(t, "select u from User u", nil)
	assert.Equal(t, "select u from User u", got)
}

func TestScenario2InjectSortOnBareQuery(t *testing.T) {
	got := rewriteQuery(t, "select u from User u", []SortOrder{{Property: "name", Direction: Asc}})
	assert.Equal(t, "select u from User u order by u.name asc", got)
}

func TestScenario3InjectSortAppendsToExistingOrderBy(t *testing.T) {
	got := rewriteQuery(t, "select u from User u order by u.id",
		[]SortOrder{{Property: "name", Direction: Desc, IgnoreCase: true}})
	assert.Equal(t, "select u from User u order by u.id, lower(u.name) desc", got)
}

func TestScenario4CountModeBareQuery(t *testing.T) {
	got := countQuery(t, "select u from User u", "")
	assert.Equal(t, "select count(u) from User u", got)
}

func TestScenario5CountModeDistinctMultiColumn(t *testing.T) {
	got := countQuery(t, "select distinct u.name, u.role from User u", "")
	assert.Equal(t, "select count(distinct u.name, u.role) from User u", got)
}

func TestScenario6ConstructorExpressionDetectionProjectionAndCountFallback(t *testing.T) {
	query := "select new com.example.Dto(u.a, u.b) from User u"
	node, err := jpqlparser.Parse(query, true)
	require.NoError(t, err)

	w := NewWalker(nil, false, "")
	buf := w.Walk(node)
	assert.True(t, w.State.HasConstructorExpression)

	proj, ok := w.State.Projection()
	require.True(t, ok)
	assert.Equal(t, "new com.example.Dto(u.a, u.b)", Render(proj, &w.State))
	_ = buf

	got := countQuery(t, query, "")
	assert.Equal(t, "select count(u) from User u", got)
}

// Universal properties, spec.md §8.

func TestIdempotenceUnderRewrite(t *testing.T) {
	queries := []string{
		"select u from User u",
		"select u from User u where u.age > 18 order by u.name",
		"select distinct u.name from User u join u.orders o",
	}
	for _, q := range queries {
		once := rewriteQuery(t, q, nil)
		twice := rewriteQuery(t, once, nil)
		assert.Equal(t, once, twice, "rewrite(rewrite(Q)) must equal rewrite(Q) for %q", q)
	}
}

func TestWhitespaceNormalization(t *testing.T) {
	got := rewriteQuery(t, "select   u   from   User   u   where   u.age>18", nil)
	assert.False(t, strings.Contains(got, "  "), "no consecutive spaces: %q", got)
	assert.Equal(t, strings.TrimSpace(got), got, "no leading/trailing whitespace: %q", got)
}

func TestAliasStabilityBareAndExplicitAs(t *testing.T) {
	node, err := jpqlparser.Parse("select u from User u", false)
	require.NoError(t, err)
	w := NewWalker(nil, false, "")
	w.Walk(node)
	assert.Equal(t, "u", w.State.Alias())

	node2, err := jpqlparser.Parse("select u from User AS u", false)
	require.NoError(t, err)
	w2 := NewWalker(nil, false, "")
	w2.Walk(node2)
	assert.Equal(t, "u", w2.State.Alias())
}

func TestConstructorExpressionDetectionIsFalseWithoutNew(t *testing.T) {
	node, err := jpqlparser.Parse("select u.name from User u", false)
	require.NoError(t, err)
	w := NewWalker(nil, false, "")
	w.Walk(node)
	assert.False(t, w.State.HasConstructorExpression)
}

func TestSortInjectionPreservesExistingOrderBy(t *testing.T) {
	got := rewriteQuery(t, "select u from User u order by u.id asc",
		[]SortOrder{{Property: "y", Direction: Desc}})
	assert.Equal(t, "select u from User u order by u.id asc, u.y desc", got)
}

func TestFirstRangeVariableWinsOverJoinAlias(t *testing.T) {
	node, err := jpqlparser.Parse("select p from Department d join d.people p", false)
	require.NoError(t, err)
	w := NewWalker(nil, false, "")
	w.Walk(node)
	assert.Equal(t, "d", w.State.Alias(), "the first declared range variable, not the select target, wins")
}

func TestNestedSubqueryNotSortInjected(t *testing.T) {
	got := rewriteQuery(t, "select u from User u where u.id in (select o.userId from Order o)",
		[]SortOrder{{Property: "name", Direction: Asc}})
	assert.Equal(t, "select u from User u where u.id in (select o.userId from Order o) order by u.name asc", got)
}

func TestCountModeSkipsSortInjection(t *testing.T) {
	node, err := jpqlparser.Parse("select u from User u", true)
	require.NoError(t, err)
	w := NewWalker([]SortOrder{{Property: "name", Direction: Asc}}, true, "")
	buf := w.Walk(node)
	got := Render(buf, &w.State)
	assert.Equal(t, "select count(u) from User u", got)
}

func TestCountProjectionOverride(t *testing.T) {
	got := countQuery(t, "select u from User u", "u.id")
	assert.Equal(t, "select count(u.id) from User u", got)
}

func TestJoinFetchAndTreatRendering(t *testing.T) {
	got := rewriteQuery(t, "select u from User u left join fetch u.orders o", nil)
	assert.Equal(t, "select u from User u left join fetch u.orders o", got)

	got2 := rewriteQuery(t, "select d from User u join treat(u.pet as Dog) d", nil)
	assert.Equal(t, "select d from User u join treat(u.pet as Dog) d", got2)
}
