package jpqlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, query string) QueryNode {
	t.Helper()
	node, err := Parse(query, true)
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

func TestParseSelectStatementBasics(t *testing.T) {
	node := mustParse(t, "select u from User u where u.age > 18")
	stmt, ok := node.(*SelectStatement)
	require.True(t, ok)
	require.Len(t, stmt.Select.Items, 1)
	require.Len(t, stmt.From.Roots, 1)

	root := stmt.From.Roots[0]
	require.NotNil(t, root.Range)
	assert.Equal(t, "User", root.Range.EntityName)
	assert.Equal(t, "u", root.Range.Alias)
	require.NotNil(t, stmt.Where)

	cmp, ok := stmt.Where.Cond.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ">", cmp.Op)
}

func TestParseDistinctSelect(t *testing.T) {
	stmt := mustParse(t, "select distinct u from User u").(*SelectStatement)
	assert.True(t, stmt.Select.Distinct)
}

func TestParseJoinVariants(t *testing.T) {
	stmt := mustParse(t, "select u from User u left join fetch u.orders o").(*SelectStatement)
	joins := stmt.From.Roots[0].Joins
	require.Len(t, joins, 1)
	assert.Equal(t, JoinLeft, joins[0].Kind)
	assert.True(t, joins[0].Fetch)
	assert.Equal(t, "o", joins[0].Alias)

	stmt2 := mustParse(t, "select u from User u inner join u.orders o on o.total > 100").(*SelectStatement)
	joins2 := stmt2.From.Roots[0].Joins
	require.Len(t, joins2, 1)
	assert.Equal(t, JoinInner, joins2[0].Kind)
	assert.NotNil(t, joins2[0].On)
}

func TestParseTreatedJoin(t *testing.T) {
	stmt := mustParse(t, "select u from User u join treat(u.pet as Dog) d").(*SelectStatement)
	j := stmt.From.Roots[0].Joins[0]
	require.NotNil(t, j.Treat)
	assert.Equal(t, "Dog", *j.Treat)
}

func TestParseConstructorExpression(t *testing.T) {
	stmt := mustParse(t, "select new com.example.UserDto(u.id, u.name) from User u").(*SelectStatement)
	ctor, ok := stmt.Select.Items[0].Expr.(*ConstructorExpr)
	require.True(t, ok)
	assert.Equal(t, "com.example.UserDto", ctor.ClassName)
	assert.Len(t, ctor.Args, 2)
}

func TestParseAggregateWithDistinctAndCountStar(t *testing.T) {
	stmt := mustParse(t, "select count(distinct u.id) from User u").(*SelectStatement)
	agg, ok := stmt.Select.Items[0].Expr.(*AggregateExpr)
	require.True(t, ok)
	assert.Equal(t, "count", agg.Op)
	assert.True(t, agg.Distinct)

	stmt2 := mustParse(t, "select count(*) from User u").(*SelectStatement)
	agg2 := stmt2.Select.Items[0].Expr.(*AggregateExpr)
	path, ok := agg2.Arg.(*PathExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"*"}, path.Segments)
}

func TestParseBetweenLikeInMemberOfWithNegation(t *testing.T) {
	stmt := mustParse(t, "select u from User u where u.age not between 18 and 65").(*SelectStatement)
	between, ok := stmt.Where.Cond.(*BetweenExpr)
	require.True(t, ok)
	assert.True(t, between.Not)

	stmt2 := mustParse(t, "select u from User u where u.name not like 'A%'").(*SelectStatement)
	like := stmt2.Where.Cond.(*LikeExpr)
	assert.True(t, like.Not)

	stmt3 := mustParse(t, "select u from User u where u.id not in (1, 2, 3)").(*SelectStatement)
	in := stmt3.Where.Cond.(*InExpr)
	assert.True(t, in.Not)
	assert.Len(t, in.List, 3)

	stmt4 := mustParse(t, "select u from User u where :x member of u.roles").(*SelectStatement)
	member, ok := stmt4.Where.Cond.(*MemberOfExpr)
	require.True(t, ok)
	assert.False(t, member.Not)
}

func TestParseIsNullAndIsEmpty(t *testing.T) {
	stmt := mustParse(t, "select u from User u where u.deletedAt is not null").(*SelectStatement)
	nt, ok := stmt.Where.Cond.(*NullTestExpr)
	require.True(t, ok)
	assert.True(t, nt.Not)

	stmt2 := mustParse(t, "select u from User u where u.roles is empty").(*SelectStatement)
	et := stmt2.Where.Cond.(*EmptyTestExpr)
	assert.False(t, et.Not)
}

func TestParseCaseCoalesceNullIf(t *testing.T) {
	stmt := mustParse(t, "select case when u.age < 18 then 'minor' else 'adult' end from User u").(*SelectStatement)
	c, ok := stmt.Select.Items[0].Expr.(*CaseExpr)
	require.True(t, ok)
	require.Len(t, c.Whens, 1)

	stmt2 := mustParse(t, "select coalesce(u.nickname, u.name) from User u").(*SelectStatement)
	_, ok = stmt2.Select.Items[0].Expr.(*CoalesceExpr)
	assert.True(t, ok)

	stmt3 := mustParse(t, "select nullif(u.score, 0) from User u").(*SelectStatement)
	_, ok = stmt3.Select.Items[0].Expr.(*NullIfExpr)
	assert.True(t, ok)
}

func TestParseSubqueryAndQuantified(t *testing.T) {
	stmt := mustParse(t, "select u from User u where u.age > all (select m.age from Manager m)").(*SelectStatement)
	bin, ok := stmt.Where.Cond.(*BinaryExpr)
	require.True(t, ok)
	_, ok = bin.Right.(*QuantifiedExpr)
	assert.True(t, ok)

	stmt2 := mustParse(t, "select u from User u where exists (select 1 from Order o where o.user = u)").(*SelectStatement)
	_, ok = stmt2.Where.Cond.(*ExistsExpr)
	assert.True(t, ok)
}

func TestParseOrderByMultipleItemsWithDirection(t *testing.T) {
	stmt := mustParse(t, "select u from User u order by u.name asc, u.age desc").(*SelectStatement)
	require.NotNil(t, stmt.OrderBy)
	require.Len(t, stmt.OrderBy.Items, 2)
	assert.Equal(t, "asc", stmt.OrderBy.Items[0].Direction)
	assert.Equal(t, "desc", stmt.OrderBy.Items[1].Direction)
}

func TestParseUpdateStatement(t *testing.T) {
	node := mustParse(t, "update User u set u.name = :name where u.id = :id")
	stmt, ok := node.(*UpdateStatement)
	require.True(t, ok)
	assert.Equal(t, "User", stmt.Entity.EntityName)
	require.Len(t, stmt.Set, 1)
	require.NotNil(t, stmt.Where)
}

func TestParseDeleteStatement(t *testing.T) {
	node := mustParse(t, "delete from User u where u.active = false")
	stmt, ok := node.(*DeleteStatement)
	require.True(t, ok)
	assert.Equal(t, "User", stmt.Entity.EntityName)
}

func TestParsePermissiveModeSuppressesError(t *testing.T) {
	node, err := Parse("select from where", false)
	assert.NoError(t, err)
	assert.Nil(t, node)
}

func TestParseFailFastModeReturnsSyntaxError(t *testing.T) {
	node, err := Parse("select from where", true)
	assert.Nil(t, node)
	require.Error(t, err)
	_, ok := err.(SyntaxError)
	assert.True(t, ok)
}

func TestParseNamedAndPositionalParameters(t *testing.T) {
	stmt := mustParse(t, "select u from User u where u.id = :id and u.status = ?1").(*SelectStatement)
	and, ok := stmt.Where.Cond.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "and", and.Op)

	left, ok := and.Left.(*BinaryExpr)
	require.True(t, ok)
	param, ok := left.Right.(*ParameterExpr)
	require.True(t, ok)
	assert.Equal(t, "id", param.Name)

	right, ok := and.Right.(*BinaryExpr)
	require.True(t, ok)
	posParam, ok := right.Right.(*ParameterExpr)
	require.True(t, ok)
	assert.True(t, posParam.Positional)
	assert.Equal(t, "1", posParam.Index)
}

func TestParseSizeAndCurrentFunctions(t *testing.T) {
	stmt := mustParse(t, "select u from User u where size(u.orders) > 0 and current_date = current_date").(*SelectStatement)
	require.NotNil(t, stmt.Where)
}

func TestParseDateTimeLiterals(t *testing.T) {
	stmt := mustParse(t, "select u from User u where u.createdAt > {d '2024-01-01'}").(*SelectStatement)
	cmp, ok := stmt.Where.Cond.(*BinaryExpr)
	require.True(t, ok)
	lit, ok := cmp.Right.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, LiteralDateTime, lit.LiteralKind)
	assert.Equal(t, "{d '2024-01-01'}", lit.Text)

	stmt2 := mustParse(t, "select u from User u where u.loggedInAt = {ts '2024-01-01 10:00:00'}").(*SelectStatement)
	cmp2 := stmt2.Where.Cond.(*BinaryExpr)
	lit2 := cmp2.Right.(*LiteralExpr)
	assert.Equal(t, LiteralDateTime, lit2.LiteralKind)
}

func TestParseEntityTypeLiteral(t *testing.T) {
	stmt := mustParse(t, "select e from Pet e where type(e) = Dog").(*SelectStatement)
	cmp, ok := stmt.Where.Cond.(*BinaryExpr)
	require.True(t, ok)
	_, ok = cmp.Left.(*TypeExpr)
	require.True(t, ok)
	lit, ok := cmp.Right.(*LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, LiteralEntityType, lit.LiteralKind)
	assert.Equal(t, "Dog", lit.Text)

	stmt2 := mustParse(t, "select e from Pet e where type(e) in (Dog, Cat)").(*SelectStatement)
	in := stmt2.Where.Cond.(*InExpr)
	require.Len(t, in.List, 2)
	for _, item := range in.List {
		lit := item.(*LiteralExpr)
		assert.Equal(t, LiteralEntityType, lit.LiteralKind)
	}

	// a dotted path whose first segment happens to be capitalized is still
	// a path, not an entity type literal: the dot disambiguates.
	stmt3 := mustParse(t, "select e from Pet e where Dog.name = 'Rex'").(*SelectStatement)
	cmp3 := stmt3.Where.Cond.(*BinaryExpr)
	path3, ok := cmp3.Left.(*PathExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"Dog", "name"}, path3.Segments)
}
