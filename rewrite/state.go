package rewrite

// Direction is a sort order's direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortOrder is one caller-supplied ordering term injected by §4.3.2. Property
// is an unqualified attribute name qualified with the captured alias at
// render time; IgnoreCase wraps the reference in lower(...).
type SortOrder struct {
	Property   string
	Direction  Direction
	IgnoreCase bool
}

// State is the small mutable record threaded through a single walk. It is
// owned by the Walker that created it; nothing else may hold a reference
// across walks.
type State struct {
	// Sort, CountMode and CountProjection are walk configuration, set before
	// Walk runs.
	Sort            []SortOrder
	CountMode       bool
	CountProjection string

	alias    string
	hasAlias bool

	projection    Buffer
	hasProjection bool

	// HasConstructorExpression is monotonic: once a constructor_expression is
	// visited anywhere in the tree, it stays true for the rest of the walk.
	HasConstructorExpression bool
}

// captureAlias records name as the walk's alias the first time it is called;
// later calls are no-ops, per "first range variable wins".
func (s *State) captureAlias(name string) {
	if !s.hasAlias {
		s.alias = name
		s.hasAlias = true
	}
}

// Alias returns the captured alias, or "" if none has been visited yet (or
// the walk is still in progress and nothing has declared one so far).
func (s *State) Alias() string { return s.alias }

// HasAlias reports whether a range variable has been captured.
func (s *State) HasAlias() bool { return s.hasAlias }

func (s *State) setProjection(b Buffer) {
	s.projection = b
	s.hasProjection = true
}

// Projection returns the captured top-level select-clause token slice and
// whether one was ever captured (false only if the walked tree never
// reached a top-level select_clause, which should not happen for a
// well-formed SelectStatement).
func (s *State) Projection() (Buffer, bool) { return s.projection, s.hasProjection }
