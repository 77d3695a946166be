// Package batchrewrite runs a Facade over every .jpql file under a directory
// tree, grounded on sqlparser.ParseFilesystems's fs.WalkDir traversal: skip
// dot-directories, filter by extension, rely on WalkDir's lexical order for
// a stable, deterministic report. Unlike ParseFilesystems this has no
// dependency-ordering or deployment step — there is nothing here to deploy.
package batchrewrite

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jpqlkit/jpqlrewrite"
)

const jpqlExtension = ".jpql"

// Result is one file's outcome: either Rewritten is set, or Err is.
type Result struct {
	Path      string
	Rewritten string
	Err       error
}

// Report is the ordered, per-file outcome of a Run, in fs.WalkDir's lexical
// traversal order.
type Report struct {
	Results []Result
}

// Failed returns the subset of Results with a non-nil Err.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Run walks fsys, rewriting every .jpql file found with facade using opts.
// Directories whose name begins with "." are skipped entirely (matching
// ParseFilesystems's treatment of .git and similar).
func Run(fsys fs.FS, facade *jpqlrewrite.Facade, opts jpqlrewrite.Options) (Report, error) {
	var report Report
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(path, ".") || strings.Contains(path, "/.") {
			return nil
		}
		if filepath.Ext(path) != jpqlExtension {
			return nil
		}

		raw, readErr := fs.ReadFile(fsys, path)
		if readErr != nil {
			report.Results = append(report.Results, Result{Path: path, Err: readErr})
			return nil
		}

		rewritten, rewriteErr := facade.RewriteOptions(string(raw), opts)
		report.Results = append(report.Results, Result{Path: path, Rewritten: rewritten, Err: rewriteErr})
		return nil
	})
	return report, err
}
