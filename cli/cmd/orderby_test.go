package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

func TestParseOrderByBasic(t *testing.T) {
	got, err := parseOrderBy([]string{"name:asc", "age:desc:ignorecase"})
	require.NoError(t, err)
	assert.Equal(t, []rewrite.SortOrder{
		{Property: "name", Direction: rewrite.Asc},
		{Property: "age", Direction: rewrite.Desc, IgnoreCase: true},
	}, got)
}

func TestParseOrderByEmptyIsNil(t *testing.T) {
	got, err := parseOrderBy(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseOrderByRejectsBadTerm(t *testing.T) {
	_, err := parseOrderBy([]string{"name"})
	assert.Error(t, err)

	_, err = parseOrderBy([]string{"name:sideways"})
	assert.Error(t, err)

	_, err = parseOrderBy([]string{"name:asc:loudly"})
	assert.Error(t, err)
}

func TestResolveSortProfileUnknownNameErrors(t *testing.T) {
	_, err := resolveSortProfile(Config{}, "nope")
	assert.Error(t, err)
}

func TestResolveSortProfileEmptyNameIsNoOp(t *testing.T) {
	got, err := resolveSortProfile(Config{}, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveSortProfileFound(t *testing.T) {
	cfg := Config{SortProfiles: map[string][]sortOrderConfig{
		"newest-first": {{Property: "createdAt", Direction: "desc"}},
	}}
	got, err := resolveSortProfile(cfg, "newest-first")
	require.NoError(t, err)
	assert.Equal(t, []rewrite.SortOrder{{Property: "createdAt", Direction: rewrite.Desc}}, got)
}
