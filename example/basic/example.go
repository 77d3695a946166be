// Package example demonstrates driving the façade and batchrewrite packages
// directly, the way a caller embedding jpqlrewrite into a repository layer
// would: a fixed set of named .jpql queries, rewritten once at startup with a
// shared sort policy.
package example

import (
	"embed"

	"github.com/sirupsen/logrus"

	"github.com/jpqlkit/jpqlrewrite"
	"github.com/jpqlkit/jpqlrewrite/batchrewrite"
	"github.com/jpqlkit/jpqlrewrite/rewrite"
)

//go:embed queries/*.jpql
var queriesFS embed.FS

// DefaultSort is the ordering every rewritten query in this example gets
// appended, newest first.
var DefaultSort = []rewrite.SortOrder{{Property: "createdAt", Direction: rewrite.Desc}}

// Rewritten returns every embedded query rewritten with DefaultSort, as a
// report in path order with each result carrying its path, panicking on the
// first rewrite failure — the embedded
// queries are a build-time constant, so a failure here is a bug in this
// package, not a runtime condition callers need to recover from.
func Rewritten() batchrewrite.Report {
	f := jpqlrewrite.NewFacade(logrus.StandardLogger())
	report, err := batchrewrite.Run(queriesFS, f, jpqlrewrite.Options{Sort: DefaultSort})
	if err != nil {
		panic(err)
	}
	if failed := report.Failed(); len(failed) > 0 {
		panic(failed[0].Err)
	}
	return report
}
