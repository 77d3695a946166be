package jpqlrewrite

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jpqlkit/jpqlrewrite/jpqlparser"
)

// InvalidQuery is returned by the fail-fast façade operations (Rewrite,
// RewriteWithSort, CountQuery, HasConstructorExpression) when the input does
// not parse as JPQL 3.1.
type InvalidQuery struct {
	Cause jpqlparser.SyntaxError
}

func (e InvalidQuery) Error() string {
	return fmt.Sprintf("invalid JPQL query: %s", e.Cause.Error())
}

func (e InvalidQuery) Unwrap() error { return e.Cause }

func invalidQuery(op string, cause error) error {
	se, ok := cause.(jpqlparser.SyntaxError)
	if !ok {
		return errors.Wrapf(cause, "%s", op)
	}
	return errors.Wrapf(InvalidQuery{Cause: se}, "%s", op)
}
