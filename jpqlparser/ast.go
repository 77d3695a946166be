package jpqlparser

// NodeKind tags every AST node with the grammar production it came from, the
// same way sqlparser.TokenType tags lexical tokens. The walker dispatches on
// it (via a Go type switch, which already encodes the kind) and the debug
// renderer uses it to print a `[tag]` suffix per token.
type NodeKind int

const (
	KindSelectStatement NodeKind = iota + 1
	KindUpdateStatement
	KindDeleteStatement
	KindSelectClause
	KindSelectItem
	KindConstructorExpr
	KindFromClause
	KindRangeVariableDecl
	KindCollectionMemberDecl
	KindJoin
	KindWhereClause
	KindGroupByClause
	KindHavingClause
	KindOrderByClause
	KindOrderByItem
	KindSetAssignment

	KindPathExpr
	KindQualifiedPathExpr
	KindTreatedPath
	KindLiteralExpr
	KindParameterExpr
	KindAggregateExpr
	KindFunctionCallExpr
	KindUserFunctionExpr
	KindBinaryExpr
	KindUnaryExpr
	KindBetweenExpr
	KindInExpr
	KindLikeExpr
	KindNullTestExpr
	KindEmptyTestExpr
	KindMemberOfExpr
	KindExistsExpr
	KindQuantifiedExpr
	KindCaseExpr
	KindWhenClause
	KindCoalesceExpr
	KindNullIfExpr
	KindExtractExpr
	KindTrimExpr
	KindSubstringExpr
	KindConcatExpr
	KindLocateExpr
	KindSizeExpr
	KindIndexExpr
	KindCurrentExpr
	KindLocalExpr
	KindTypeExpr
	KindSpelExpr
	KindParenExpr
	KindSubqueryExpr
)

var nodeKindNames = map[NodeKind]string{
	KindSelectStatement:      "SelectStatement",
	KindUpdateStatement:      "UpdateStatement",
	KindDeleteStatement:      "DeleteStatement",
	KindSelectClause:         "SelectClause",
	KindSelectItem:           "SelectItem",
	KindConstructorExpr:      "ConstructorExpr",
	KindFromClause:           "FromClause",
	KindRangeVariableDecl:    "RangeVariableDecl",
	KindCollectionMemberDecl: "CollectionMemberDecl",
	KindJoin:                 "Join",
	KindWhereClause:          "WhereClause",
	KindGroupByClause:        "GroupByClause",
	KindHavingClause:         "HavingClause",
	KindOrderByClause:        "OrderByClause",
	KindOrderByItem:          "OrderByItem",
	KindSetAssignment:        "SetAssignment",
	KindPathExpr:             "PathExpr",
	KindQualifiedPathExpr:    "QualifiedPathExpr",
	KindTreatedPath:          "TreatedPath",
	KindLiteralExpr:          "LiteralExpr",
	KindParameterExpr:        "ParameterExpr",
	KindAggregateExpr:        "AggregateExpr",
	KindFunctionCallExpr:     "FunctionCallExpr",
	KindUserFunctionExpr:     "UserFunctionExpr",
	KindBinaryExpr:           "BinaryExpr",
	KindUnaryExpr:            "UnaryExpr",
	KindBetweenExpr:          "BetweenExpr",
	KindInExpr:               "InExpr",
	KindLikeExpr:             "LikeExpr",
	KindNullTestExpr:         "NullTestExpr",
	KindEmptyTestExpr:        "EmptyTestExpr",
	KindMemberOfExpr:         "MemberOfExpr",
	KindExistsExpr:           "ExistsExpr",
	KindQuantifiedExpr:       "QuantifiedExpr",
	KindCaseExpr:             "CaseExpr",
	KindWhenClause:           "WhenClause",
	KindCoalesceExpr:         "CoalesceExpr",
	KindNullIfExpr:           "NullIfExpr",
	KindExtractExpr:          "ExtractExpr",
	KindTrimExpr:             "TrimExpr",
	KindSubstringExpr:        "SubstringExpr",
	KindConcatExpr:           "ConcatExpr",
	KindLocateExpr:           "LocateExpr",
	KindSizeExpr:             "SizeExpr",
	KindIndexExpr:            "IndexExpr",
	KindCurrentExpr:          "CurrentExpr",
	KindLocalExpr:            "LocalExpr",
	KindTypeExpr:             "TypeExpr",
	KindSpelExpr:             "SpelExpr",
	KindParenExpr:            "ParenExpr",
	KindSubqueryExpr:         "SubqueryExpr",
}

// String renders a node kind's production name, used by the debug renderer's
// per-token tag and by DumpTokens.
func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "UnknownNode"
}

// QueryNode is the top-level parse-tree node: a select, update, or delete
// statement. It is the StartNode the parser adapter hands to the walker.
type QueryNode interface {
	queryNode()
	Kind() NodeKind
}

// Expr is any JPQL expression production: paths, literals, operators,
// function calls, the lot enumerated in spec.md section 4.3.6.
type Expr interface {
	exprNode()
	Kind() NodeKind
}

type SelectStatement struct {
	Select  SelectClause
	From    FromClause
	Where   *WhereClause
	GroupBy *GroupByClause
	Having  *HavingClause
	OrderBy *OrderByClause
}

func (*SelectStatement) queryNode()       {}
func (*SelectStatement) Kind() NodeKind   { return KindSelectStatement }

type UpdateStatement struct {
	Entity  RangeVariableDecl
	Set     []SetAssignment
	Where   *WhereClause
}

func (*UpdateStatement) queryNode()     {}
func (*UpdateStatement) Kind() NodeKind { return KindUpdateStatement }

type SetAssignment struct {
	Target Expr
	Value  Expr
}

func (SetAssignment) Kind() NodeKind { return KindSetAssignment }

type DeleteStatement struct {
	Entity RangeVariableDecl
	Where  *WhereClause
}

func (*DeleteStatement) queryNode()     {}
func (*DeleteStatement) Kind() NodeKind { return KindDeleteStatement }

type SelectClause struct {
	Distinct bool
	Items    []SelectItem
}

func (SelectClause) Kind() NodeKind { return KindSelectClause }

// SelectItem is one comma-separated projection entry: an expression with an
// optional `AS resultAlias`.
type SelectItem struct {
	Expr  Expr
	Alias string
}

func (SelectItem) Kind() NodeKind { return KindSelectItem }

// ConstructorExpr is `NEW fqcn(args...)`.
type ConstructorExpr struct {
	ClassName string
	Args      []Expr
}

func (*ConstructorExpr) exprNode()      {}
func (*ConstructorExpr) Kind() NodeKind { return KindConstructorExpr }

type FromClause struct {
	Roots []FromRoot
}

func (FromClause) Kind() NodeKind { return KindFromClause }

// FromRoot is one top-level, comma-separated identification variable
// declaration plus whatever joins hang off it.
type FromRoot struct {
	Range      *RangeVariableDecl
	Collection *CollectionMemberDecl
	Joins      []Join
}

type RangeVariableDecl struct {
	EntityName string
	Alias      string
	As         bool
}

func (RangeVariableDecl) Kind() NodeKind { return KindRangeVariableDecl }

// CollectionMemberDecl is `IN (path) alias`, the non-range form of
// identification_variable_declaration.
type CollectionMemberDecl struct {
	Path  Expr
	Alias string
	As    bool
}

func (CollectionMemberDecl) Kind() NodeKind { return KindCollectionMemberDecl }

type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinLeftOuter
)

type Join struct {
	Kind  JoinKind
	Fetch bool
	Treat *string // type name when the join path is TREAT(... AS Type)
	Path  Expr
	Alias string // empty for fetch joins without an alias
	On    Expr   // nil when absent (plain join uses implicit association semantics)
}

type WhereClause struct {
	Cond Expr
}

func (WhereClause) Kind() NodeKind { return KindWhereClause }

type GroupByClause struct {
	Items []Expr
}

func (GroupByClause) Kind() NodeKind { return KindGroupByClause }

type HavingClause struct {
	Cond Expr
}

func (HavingClause) Kind() NodeKind { return KindHavingClause }

type OrderByClause struct {
	Items []OrderByItem
}

func (OrderByClause) Kind() NodeKind { return KindOrderByClause }

type OrderByItem struct {
	Expr      Expr
	Direction string // "asc" or "desc", lower-case, defaults to "asc"
	Explicit  bool   // true if ASC or DESC appeared literally in the source
}

func (OrderByItem) Kind() NodeKind { return KindOrderByItem }

// PathExpr is a dotted navigation path: state-field path, single/collection
// valued path, or a bare identification variable (len(Segments) == 1).
type PathExpr struct {
	Segments []string
}

func (*PathExpr) exprNode()      {}
func (*PathExpr) Kind() NodeKind { return KindPathExpr }

// QualifiedPathExpr is KEY(e)/VALUE(e)/ENTRY(e) applied to a map-valued path.
type QualifiedPathExpr struct {
	Qualifier string // "key", "value", or "entry"
	Path      Expr
}

func (*QualifiedPathExpr) exprNode()      {}
func (*QualifiedPathExpr) Kind() NodeKind { return KindQualifiedPathExpr }

// TreatedPath is `TREAT(path AS Subtype)` used outside a join.
type TreatedPath struct {
	Path     Expr
	TypeName string
}

func (*TreatedPath) exprNode()      {}
func (*TreatedPath) Kind() NodeKind { return KindTreatedPath }

type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralEntityType
	LiteralDateTime // JDBC escape: {d '...'}, {t '...'}, {ts '...'}
)

type LiteralExpr struct {
	LiteralKind LiteralKind
	Text        string // rendered verbatim, including quotes for strings
}

func (*LiteralExpr) exprNode()      {}
func (*LiteralExpr) Kind() NodeKind { return KindLiteralExpr }

type ParameterExpr struct {
	Positional bool
	Name       string // named parameter, without leading ':'
	Index      string // positional parameter digits, empty means unindexed '?'
}

func (*ParameterExpr) exprNode()      {}
func (*ParameterExpr) Kind() NodeKind { return KindParameterExpr }

type AggregateExpr struct {
	Op       string // "avg", "max", "min", "sum", "count"
	Distinct bool
	Arg      Expr
}

func (*AggregateExpr) exprNode()      {}
func (*AggregateExpr) Kind() NodeKind { return KindAggregateExpr }

// FunctionCallExpr covers the built-in single/multi-arg scalar functions
// that don't need their own node: lower, upper, abs, ceiling, floor, exp,
// ln, sign, sqrt, mod, power, round, length.
type FunctionCallExpr struct {
	Name string
	Args []Expr
}

func (*FunctionCallExpr) exprNode()      {}
func (*FunctionCallExpr) Kind() NodeKind { return KindFunctionCallExpr }

// UserFunctionExpr is the JPA escape hatch `FUNCTION('name', args...)`.
type UserFunctionExpr struct {
	Name Expr // string literal
	Args []Expr
}

func (*UserFunctionExpr) exprNode()      {}
func (*UserFunctionExpr) Kind() NodeKind { return KindUserFunctionExpr }

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode()      {}
func (*BinaryExpr) Kind() NodeKind { return KindBinaryExpr }

type UnaryExpr struct {
	Op   string
	Expr Expr
}

func (*UnaryExpr) exprNode()      {}
func (*UnaryExpr) Kind() NodeKind { return KindUnaryExpr }

type BetweenExpr struct {
	Not   bool
	Expr  Expr
	Low   Expr
	High  Expr
}

func (*BetweenExpr) exprNode()      {}
func (*BetweenExpr) Kind() NodeKind { return KindBetweenExpr }

type InExpr struct {
	Not      bool
	Expr     Expr
	List     []Expr
	Subquery *SubqueryExpr
}

func (*InExpr) exprNode()      {}
func (*InExpr) Kind() NodeKind { return KindInExpr }

type LikeExpr struct {
	Not     bool
	Expr    Expr
	Pattern Expr
	Escape  Expr
}

func (*LikeExpr) exprNode()      {}
func (*LikeExpr) Kind() NodeKind { return KindLikeExpr }

type NullTestExpr struct {
	Not  bool
	Expr Expr
}

func (*NullTestExpr) exprNode()      {}
func (*NullTestExpr) Kind() NodeKind { return KindNullTestExpr }

type EmptyTestExpr struct {
	Not  bool
	Expr Expr
}

func (*EmptyTestExpr) exprNode()      {}
func (*EmptyTestExpr) Kind() NodeKind { return KindEmptyTestExpr }

type MemberOfExpr struct {
	Not        bool
	Expr       Expr
	Collection Expr
}

func (*MemberOfExpr) exprNode()      {}
func (*MemberOfExpr) Kind() NodeKind { return KindMemberOfExpr }

type ExistsExpr struct {
	Not      bool
	Subquery *SubqueryExpr
}

func (*ExistsExpr) exprNode()      {}
func (*ExistsExpr) Kind() NodeKind { return KindExistsExpr }

type QuantifiedExpr struct {
	Quantifier string // "all", "any", "some"
	Subquery   *SubqueryExpr
}

func (*QuantifiedExpr) exprNode()      {}
func (*QuantifiedExpr) Kind() NodeKind { return KindQuantifiedExpr }

type CaseExpr struct {
	Operand Expr // non-nil for a "simple" case expression
	Whens   []WhenClause
	Else    Expr
}

func (*CaseExpr) exprNode()      {}
func (*CaseExpr) Kind() NodeKind { return KindCaseExpr }

type WhenClause struct {
	When   Expr
	Result Expr
}

func (WhenClause) Kind() NodeKind { return KindWhenClause }

type CoalesceExpr struct {
	Args []Expr
}

func (*CoalesceExpr) exprNode()      {}
func (*CoalesceExpr) Kind() NodeKind { return KindCoalesceExpr }

type NullIfExpr struct {
	Left  Expr
	Right Expr
}

func (*NullIfExpr) exprNode()      {}
func (*NullIfExpr) Kind() NodeKind { return KindNullIfExpr }

type ExtractExpr struct {
	Field  string
	Source Expr
}

func (*ExtractExpr) exprNode()      {}
func (*ExtractExpr) Kind() NodeKind { return KindExtractExpr }

type TrimExpr struct {
	Spec   string // "leading", "trailing", "both", or "" when unspecified
	Char   Expr   // nil when no trim character given
	Source Expr
}

func (*TrimExpr) exprNode()      {}
func (*TrimExpr) Kind() NodeKind { return KindTrimExpr }

type SubstringExpr struct {
	Source Expr
	Start  Expr
	Length Expr // nil when the two-arg form is used
}

func (*SubstringExpr) exprNode()      {}
func (*SubstringExpr) Kind() NodeKind { return KindSubstringExpr }

type ConcatExpr struct {
	Args []Expr
}

func (*ConcatExpr) exprNode()      {}
func (*ConcatExpr) Kind() NodeKind { return KindConcatExpr }

type LocateExpr struct {
	Pattern Expr
	Source  Expr
	Start   Expr // nil when the two-arg form is used
}

func (*LocateExpr) exprNode()      {}
func (*LocateExpr) Kind() NodeKind { return KindLocateExpr }

type SizeExpr struct {
	Path Expr
}

func (*SizeExpr) exprNode()      {}
func (*SizeExpr) Kind() NodeKind { return KindSizeExpr }

type IndexExpr struct {
	Alias string
}

func (*IndexExpr) exprNode()      {}
func (*IndexExpr) Kind() NodeKind { return KindIndexExpr }

type CurrentExpr struct {
	Which string // "date", "time", "timestamp"
}

func (*CurrentExpr) exprNode()      {}
func (*CurrentExpr) Kind() NodeKind { return KindCurrentExpr }

type LocalExpr struct {
	Which string // "date", "time", "datetime"
}

func (*LocalExpr) exprNode()      {}
func (*LocalExpr) Kind() NodeKind { return KindLocalExpr }

type TypeExpr struct {
	Expr Expr
}

func (*TypeExpr) exprNode()      {}
func (*TypeExpr) Kind() NodeKind { return KindTypeExpr }

// SpelExpr is a `#{...}` escape passed through structurally, per spec.md
// section 4.3.5.
type SpelExpr struct {
	Raw string
}

func (*SpelExpr) exprNode()      {}
func (*SpelExpr) Kind() NodeKind { return KindSpelExpr }

type ParenExpr struct {
	Inner Expr
}

func (*ParenExpr) exprNode()      {}
func (*ParenExpr) Kind() NodeKind { return KindParenExpr }

type SubqueryExpr struct {
	Query *SelectStatement
}

func (*SubqueryExpr) exprNode()      {}
func (*SubqueryExpr) Kind() NodeKind { return KindSubqueryExpr }
