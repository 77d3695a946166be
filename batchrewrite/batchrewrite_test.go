package batchrewrite

import (
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpqlkit/jpqlrewrite"
	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

func testFacade() *jpqlrewrite.Facade {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return jpqlrewrite.NewFacade(logger)
}

func TestRunRewritesJpqlFilesInLexicalOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.jpql":            {Data: []byte("select u from User u")},
		"a.jpql":            {Data: []byte("select p from Product p")},
		"notes.txt":         {Data: []byte("not a query")},
		".hidden/skip.jpql": {Data: []byte("select x from X x")},
	}

	report, err := Run(fsys, testFacade(), jpqlrewrite.Options{})
	require.NoError(t, err)

	var paths []string
	for _, r := range report.Results {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"a.jpql", "b.jpql"}, paths)
	assert.Equal(t, "select p from Product p", report.Results[0].Rewritten)
	assert.Equal(t, "select u from User u", report.Results[1].Rewritten)
}

func TestRunReportsFailedFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.jpql":  {Data: []byte("select from where")},
		"good.jpql": {Data: []byte("select u from User u")},
	}

	report, err := Run(fsys, testFacade(), jpqlrewrite.Options{})
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "bad.jpql", failed[0].Path)
	assert.Error(t, failed[0].Err)
}

func TestRunAppliesSortOption(t *testing.T) {
	fsys := fstest.MapFS{
		"q.jpql": {Data: []byte("select u from User u")},
	}

	report, err := Run(fsys, testFacade(), jpqlrewrite.Options{
		Sort: []rewrite.SortOrder{{Property: "name", Direction: rewrite.Asc}},
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "select u from User u order by u.name asc", report.Results[0].Rewritten)
}
