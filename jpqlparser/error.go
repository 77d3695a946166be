package jpqlparser

import "fmt"

// SyntaxError is the typed error a fail-fast parse surfaces, per spec.md
// section 7. It carries enough position information to point a caller back
// at the offending query text.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func newSyntaxError(pos Pos, format string, args ...interface{}) SyntaxError {
	return SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Col,
	}
}
