package jpqlrewrite

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

func testFacade() *Facade {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFacade(logger)
}

func TestFacadeRewriteScenarios(t *testing.T) {
	f := testFacade()

	got, err := f.Rewrite("select u from User u")
	require.NoError(t, err)
	assert.Equal(t, "select u from User u", got)

	got, err = f.RewriteWithSort("select u from User u", []rewrite.SortOrder{{Property: "name", Direction: rewrite.Asc}})
	require.NoError(t, err)
	assert.Equal(t, "select u from User u order by u.name asc", got)

	got, err = f.RewriteWithSort("select u from User u order by u.id",
		[]rewrite.SortOrder{{Property: "name", Direction: rewrite.Desc, IgnoreCase: true}})
	require.NoError(t, err)
	assert.Equal(t, "select u from User u order by u.id, lower(u.name) desc", got)
}

func TestFacadeCountQueryScenarios(t *testing.T) {
	f := testFacade()

	got, err := f.CountQuery("select u from User u", "")
	require.NoError(t, err)
	assert.Equal(t, "select count(u) from User u", got)

	got, err = f.CountQuery("select distinct u.name, u.role from User u", "")
	require.NoError(t, err)
	assert.Equal(t, "select count(distinct u.name, u.role) from User u", got)

	got, err = f.CountQuery("select new com.example.Dto(u.a, u.b) from User u", "")
	require.NoError(t, err)
	assert.Equal(t, "select count(u) from User u", got)
}

func TestFacadeDetectAlias(t *testing.T) {
	f := testFacade()

	alias, ok := f.DetectAlias("select u from User u")
	assert.True(t, ok)
	assert.Equal(t, "u", alias)

	alias, ok = f.DetectAlias("select u from User AS u")
	assert.True(t, ok)
	assert.Equal(t, "u", alias)

	_, ok = f.DetectAlias("not jpql at all {{{")
	assert.False(t, ok)
}

func TestFacadeProjection(t *testing.T) {
	f := testFacade()
	assert.Equal(t, "new com.example.Dto(u.a, u.b)", f.Projection("select new com.example.Dto(u.a, u.b) from User u"))
	assert.Equal(t, "u.name, u.role", f.Projection("select u.name, u.role from User u"))
	assert.Equal(t, "", f.Projection("not jpql at all {{{"))
}

func TestFacadeHasConstructorExpression(t *testing.T) {
	f := testFacade()

	has, err := f.HasConstructorExpression("select new com.example.Dto(u.a, u.b) from User u")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = f.HasConstructorExpression("select u.name from User u")
	require.NoError(t, err)
	assert.False(t, has)

	has, err = f.HasConstructorExpression("not jpql at all {{{")
	assert.False(t, has)
	require.Error(t, err)
	var iq InvalidQuery
	assert.ErrorAs(t, err, &iq)
}

func TestFacadeRewriteInvalidQueryReturnsInvalidQuery(t *testing.T) {
	f := testFacade()

	_, err := f.Rewrite("select from where")
	require.Error(t, err)
	var iq InvalidQuery
	assert.ErrorAs(t, err, &iq)
}

func TestFacadeDebugRenderOption(t *testing.T) {
	f := testFacade()

	got, err := f.RewriteOptions("select u from User u", Options{DebugRender: true})
	require.NoError(t, err)
	assert.Contains(t, got, "[SelectClause]")
}
