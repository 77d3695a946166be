package jpqlparser

// FileRef names the source a query string came from. Most callers pass
// queries as free-standing strings, in which case it is empty.
type FileRef string

// Pos is a 1-based line/column position within a query string.
type Pos struct {
	File FileRef
	Line int
	Col  int
}
