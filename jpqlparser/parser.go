package jpqlparser

import (
	"unicode"
	"unicode/utf8"
)

// Parser is a simple, non-performant recursive-descent parser over the JPQL
// 3.1 grammar, used directly from the Scanner cursor rather than through a
// separate token-stream pass — the same shape sqlcode's sqlparser takes for
// T-SQL. It merges conditional_expression and scalar/arithmetic_expression
// into one precedence-climbing Expr grammar: JPQL already nests one inside
// the other syntactically, and distinguishing them requires type
// information this engine never computes (semantic validation is out of
// scope, per spec).
type Parser struct {
	s *Scanner
}

// parseFailure is the sentinel panic value used to unwind out of a deeply
// nested recursive descent on the first syntax error, recovered in Parse.
type parseFailure struct {
	err SyntaxError
}

// Parse runs the parser in either permissive or fail-fast mode.
//
// In permissive mode a syntax error yields (nil, nil): the tree is null and
// the error is suppressed, per spec.md section 4.1/7 — callers treat a nil
// QueryNode as "not a valid JPQL query".
//
// In fail-fast mode the first syntax error is returned as a SyntaxError.
func Parse(query string, failFast bool) (node QueryNode, err error) {
	p := &Parser{s: NewScanner(query, "")}

	defer func() {
		if r := recover(); r != nil {
			pf, ok := r.(parseFailure)
			if !ok {
				panic(r)
			}
			node = nil
			if failFast {
				err = pf.err
			}
		}
	}()

	p.s.NextNonWhitespaceToken()
	node = p.parseStatement()
	if p.s.TokenType() != EOFToken {
		p.fail("unexpected trailing input %q", p.s.Token())
	}
	return node, nil
}

func (p *Parser) fail(format string, args ...interface{}) {
	panic(parseFailure{err: newSyntaxError(p.s.Start(), format, args...)})
}

func (p *Parser) advance() { p.s.NextNonWhitespaceToken() }

func (p *Parser) is(tt TokenType) bool { return p.s.TokenType() == tt }

func (p *Parser) isReserved(word string) bool {
	return p.s.TokenType() == ReservedWordToken && p.s.ReservedWord() == word
}

func (p *Parser) isReservedOneOf(words ...string) bool {
	if p.s.TokenType() != ReservedWordToken {
		return false
	}
	for _, w := range words {
		if p.s.ReservedWord() == w {
			return true
		}
	}
	return false
}

func (p *Parser) matchReserved(word string) bool {
	if p.isReserved(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectReserved(word string) {
	if !p.matchReserved(word) {
		p.fail("expected %q", word)
	}
}

func (p *Parser) expect(tt TokenType, what string) string {
	if !p.is(tt) {
		p.fail("expected %s", what)
	}
	tok := p.s.Token()
	p.advance()
	return tok
}

func (p *Parser) identLike() string {
	if p.s.TokenType() != IdentifierToken && p.s.TokenType() != ReservedWordToken {
		p.fail("expected identifier")
	}
	tok := p.s.Token()
	p.advance()
	return tok
}

// --- top level ---------------------------------------------------------

func (p *Parser) parseStatement() QueryNode {
	switch {
	case p.isReserved("select"):
		return p.parseSelectStatement()
	case p.isReserved("update"):
		return p.parseUpdateStatement()
	case p.isReserved("delete"):
		return p.parseDeleteStatement()
	default:
		p.fail("expected SELECT, UPDATE, or DELETE")
		return nil
	}
}

func (p *Parser) parseSelectStatement() *SelectStatement {
	stmt := &SelectStatement{}
	stmt.Select = p.parseSelectClause()
	stmt.From = p.parseFromClause()
	if p.isReserved("where") {
		p.advance()
		w := p.parseWhereBody()
		stmt.Where = &w
	}
	if p.isReserved("group") {
		p.advance()
		p.expectReserved("by")
		g := p.parseGroupByBody()
		stmt.GroupBy = &g
	}
	if p.isReserved("having") {
		p.advance()
		h := p.parseHavingBody()
		stmt.Having = &h
	}
	if p.isReserved("order") {
		p.advance()
		p.expectReserved("by")
		o := p.parseOrderByBody()
		stmt.OrderBy = &o
	}
	return stmt
}

func (p *Parser) parseUpdateStatement() *UpdateStatement {
	p.expectReserved("update")
	stmt := &UpdateStatement{Entity: p.parseRangeVariableDecl()}
	p.expectReserved("set")
	stmt.Set = append(stmt.Set, p.parseSetAssignment())
	for p.is(CommaToken) {
		p.advance()
		stmt.Set = append(stmt.Set, p.parseSetAssignment())
	}
	if p.isReserved("where") {
		p.advance()
		w := p.parseWhereBody()
		stmt.Where = &w
	}
	return stmt
}

func (p *Parser) parseSetAssignment() SetAssignment {
	target := p.parseAdditive()
	p.expect(EqToken, "'='")
	value := p.parseExpr()
	return SetAssignment{Target: target, Value: value}
}

func (p *Parser) parseDeleteStatement() *DeleteStatement {
	p.expectReserved("delete")
	p.matchReserved("from")
	stmt := &DeleteStatement{Entity: p.parseRangeVariableDecl()}
	if p.isReserved("where") {
		p.advance()
		w := p.parseWhereBody()
		stmt.Where = &w
	}
	return stmt
}

// --- select clause -------------------------------------------------------

func (p *Parser) parseSelectClause() SelectClause {
	p.expectReserved("select")
	c := SelectClause{}
	if p.matchReserved("distinct") {
		c.Distinct = true
	}
	c.Items = append(c.Items, p.parseSelectItem())
	for p.is(CommaToken) {
		p.advance()
		c.Items = append(c.Items, p.parseSelectItem())
	}
	return c
}

func (p *Parser) parseSelectItem() SelectItem {
	item := SelectItem{Expr: p.parseSelectExpression()}
	if p.matchReserved("as") {
		item.Alias = p.identLike()
	} else if p.is(IdentifierToken) {
		item.Alias = p.identLike()
	}
	return item
}

func (p *Parser) parseSelectExpression() Expr {
	if p.isReserved("new") {
		return p.parseConstructorExpr()
	}
	if p.isReserved("object") {
		p.advance()
		p.expect(LeftParenToken, "'('")
		inner := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &FunctionCallExpr{Name: "object", Args: []Expr{inner}}
	}
	return p.parseExpr()
}

func (p *Parser) parseConstructorExpr() *ConstructorExpr {
	p.expectReserved("new")
	name := p.parseDottedName()
	p.expect(LeftParenToken, "'('")
	c := &ConstructorExpr{ClassName: name}
	if !p.is(RightParenToken) {
		c.Args = append(c.Args, p.parseExpr())
		for p.is(CommaToken) {
			p.advance()
			c.Args = append(c.Args, p.parseExpr())
		}
	}
	p.expect(RightParenToken, "')'")
	return c
}

func (p *Parser) parseDottedName() string {
	name := p.identLike()
	for p.is(DotToken) {
		p.advance()
		name += "." + p.identLike()
	}
	return name
}

// --- from clause ---------------------------------------------------------

func (p *Parser) parseFromClause() FromClause {
	p.expectReserved("from")
	f := FromClause{}
	f.Roots = append(f.Roots, p.parseFromRoot())
	for p.is(CommaToken) {
		p.advance()
		f.Roots = append(f.Roots, p.parseFromRoot())
	}
	return f
}

func (p *Parser) parseFromRoot() FromRoot {
	root := FromRoot{}
	if p.isReserved("in") {
		decl := p.parseCollectionMemberDecl()
		root.Collection = &decl
	} else {
		decl := p.parseRangeVariableDecl()
		root.Range = &decl
	}
	for p.isJoinStart() {
		root.Joins = append(root.Joins, p.parseJoin())
	}
	return root
}

func (p *Parser) parseRangeVariableDecl() RangeVariableDecl {
	decl := RangeVariableDecl{EntityName: p.parseDottedName()}
	if p.matchReserved("as") {
		decl.As = true
		decl.Alias = p.identLike()
	} else if p.is(IdentifierToken) {
		decl.Alias = p.identLike()
	}
	return decl
}

func (p *Parser) parseCollectionMemberDecl() CollectionMemberDecl {
	p.expectReserved("in")
	p.expect(LeftParenToken, "'('")
	path := p.parseExpr()
	p.expect(RightParenToken, "')'")
	decl := CollectionMemberDecl{Path: path}
	if p.matchReserved("as") {
		decl.As = true
		decl.Alias = p.identLike()
	} else {
		decl.Alias = p.identLike()
	}
	return decl
}

func (p *Parser) isJoinStart() bool {
	return p.isReservedOneOf("join", "left", "inner")
}

func (p *Parser) parseJoin() Join {
	j := Join{Kind: JoinInner}
	switch {
	case p.matchReserved("left"):
		j.Kind = JoinLeft
		if p.matchReserved("outer") {
			j.Kind = JoinLeftOuter
		}
	case p.matchReserved("inner"):
		j.Kind = JoinInner
	}
	p.expectReserved("join")
	if p.matchReserved("fetch") {
		j.Fetch = true
	}
	if p.isReserved("treat") {
		p.advance()
		p.expect(LeftParenToken, "'('")
		j.Path = p.parseExpr()
		p.expectReserved("as")
		typeName := p.parseDottedName()
		j.Treat = &typeName
		p.expect(RightParenToken, "')'")
	} else {
		j.Path = p.parseExpr()
	}
	if p.matchReserved("as") {
		j.Alias = p.identLike()
	} else if p.is(IdentifierToken) {
		j.Alias = p.identLike()
	}
	if p.matchReserved("on") {
		j.On = p.parseExpr()
	}
	return j
}

// --- where/group by/having/order by --------------------------------------

func (p *Parser) parseWhereBody() WhereClause {
	return WhereClause{Cond: p.parseExpr()}
}

func (p *Parser) parseGroupByBody() GroupByClause {
	c := GroupByClause{}
	c.Items = append(c.Items, p.parseExpr())
	for p.is(CommaToken) {
		p.advance()
		c.Items = append(c.Items, p.parseExpr())
	}
	return c
}

func (p *Parser) parseHavingBody() HavingClause {
	return HavingClause{Cond: p.parseExpr()}
}

func (p *Parser) parseOrderByBody() OrderByClause {
	c := OrderByClause{}
	c.Items = append(c.Items, p.parseOrderByItem())
	for p.is(CommaToken) {
		p.advance()
		c.Items = append(c.Items, p.parseOrderByItem())
	}
	return c
}

func (p *Parser) parseOrderByItem() OrderByItem {
	item := OrderByItem{Expr: p.parseExpr(), Direction: "asc"}
	if p.matchReserved("asc") {
		item.Direction = "asc"
		item.Explicit = true
	} else if p.matchReserved("desc") {
		item.Direction = "desc"
		item.Explicit = true
	}
	return item
}

// --- expressions -----------------------------------------------------------

func (p *Parser) parseExpr() Expr { return p.parseOr() }

func (p *Parser) parseOr() Expr {
	left := p.parseAnd()
	for p.isReserved("or") {
		p.advance()
		right := p.parseAnd()
		left = &BinaryExpr{Op: "or", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() Expr {
	left := p.parseNot()
	for p.isReserved("and") {
		p.advance()
		right := p.parseNot()
		left = &BinaryExpr{Op: "and", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseNot() Expr {
	if p.isReserved("not") {
		p.advance()
		return &UnaryExpr{Op: "not", Expr: p.parseNot()}
	}
	return p.parsePredicate()
}

var comparisonTokenOps = map[TokenType]string{
	EqToken: "=", NeToken: "<>", LtToken: "<", LeToken: "<=", GtToken: ">", GeToken: ">=",
}

func (p *Parser) parsePredicate() Expr {
	lhs := p.parseAdditive()

	negate := false
	if p.isReserved("not") {
		save := *p.s
		p.advance()
		if p.isReservedOneOf("between", "like", "in", "member") {
			negate = true
		} else {
			*p.s = save
		}
	}

	switch {
	case p.matchReserved("between"):
		low := p.parseAdditive()
		p.expectReserved("and")
		high := p.parseAdditive()
		return &BetweenExpr{Not: negate, Expr: lhs, Low: low, High: high}
	case p.matchReserved("like"):
		pattern := p.parseAdditive()
		var escape Expr
		if p.matchReserved("escape") {
			escape = p.parseAdditive()
		}
		return &LikeExpr{Not: negate, Expr: lhs, Pattern: pattern, Escape: escape}
	case p.matchReserved("in"):
		p.expect(LeftParenToken, "'('")
		var in InExpr
		in.Not, in.Expr = negate, lhs
		if p.isReserved("select") {
			sub := p.parseSelectStatement()
			in.Subquery = &SubqueryExpr{Query: sub}
		} else {
			in.List = append(in.List, p.parseExpr())
			for p.is(CommaToken) {
				p.advance()
				in.List = append(in.List, p.parseExpr())
			}
		}
		p.expect(RightParenToken, "')'")
		return &in
	case p.matchReserved("member"):
		p.matchReserved("of")
		coll := p.parseAdditive()
		return &MemberOfExpr{Not: negate, Expr: lhs, Collection: coll}
	}

	if negate {
		p.fail("expected BETWEEN, LIKE, IN, or MEMBER after NOT")
	}

	if p.matchReserved("is") {
		isNot := p.matchReserved("not")
		switch {
		case p.matchReserved("null"):
			return &NullTestExpr{Not: isNot, Expr: lhs}
		case p.matchReserved("empty"):
			return &EmptyTestExpr{Not: isNot, Expr: lhs}
		}
		p.fail("expected NULL or EMPTY after IS")
	}

	if op, ok := comparisonTokenOps[p.s.TokenType()]; ok {
		p.advance()
		rhs := p.parseComparisonRHS()
		return &BinaryExpr{Op: op, Left: lhs, Right: rhs}
	}

	return lhs
}

func (p *Parser) parseComparisonRHS() Expr {
	if p.isReservedOneOf("all", "any", "some") {
		quant := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		sub := p.parseSelectStatement()
		p.expect(RightParenToken, "')'")
		return &QuantifiedExpr{Quantifier: quant, Subquery: &SubqueryExpr{Query: sub}}
	}
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() Expr {
	left := p.parseMultiplicative()
	for p.is(PlusToken) || p.is(MinusToken) {
		op := "+"
		if p.is(MinusToken) {
			op = "-"
		}
		p.advance()
		right := p.parseMultiplicative()
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() Expr {
	left := p.parseUnary()
	for p.is(StarToken) || p.is(SlashToken) {
		op := "*"
		if p.is(SlashToken) {
			op = "/"
		}
		p.advance()
		right := p.parseUnary()
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.is(PlusToken) || p.is(MinusToken) {
		op := "+"
		if p.is(MinusToken) {
			op = "-"
		}
		p.advance()
		return &UnaryExpr{Op: op, Expr: p.parseUnary()}
	}
	return p.parsePrimary()
}

func (p *Parser) parseExprListUntilRParen() []Expr {
	var items []Expr
	items = append(items, p.parseExpr())
	for p.is(CommaToken) {
		p.advance()
		items = append(items, p.parseExpr())
	}
	return items
}

func (p *Parser) parsePrimary() Expr {
	switch {
	case p.is(LeftParenToken):
		p.advance()
		if p.isReserved("select") {
			sub := p.parseSelectStatement()
			p.expect(RightParenToken, "')'")
			return &SubqueryExpr{Query: sub}
		}
		inner := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &ParenExpr{Inner: inner}

	case p.is(NumberLiteralToken):
		text := p.s.Token()
		p.advance()
		return &LiteralExpr{LiteralKind: LiteralNumber, Text: text}

	case p.is(StringLiteralToken):
		text := p.s.Token()
		p.advance()
		return &LiteralExpr{LiteralKind: LiteralString, Text: text}

	case p.is(DateTimeLiteralToken):
		text := p.s.Token()
		p.advance()
		return &LiteralExpr{LiteralKind: LiteralDateTime, Text: text}

	case p.is(NamedParamToken):
		text := p.s.Token()
		p.advance()
		return &ParameterExpr{Name: text[1:]}

	case p.is(PositionalParamToken):
		text := p.s.Token()
		p.advance()
		return &ParameterExpr{Positional: true, Index: text[1:]}

	case p.is(SpelEscapeToken):
		text := p.s.Token()
		p.advance()
		return &SpelExpr{Raw: text}

	case p.isReservedOneOf("key", "value", "entry"):
		qualifier := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		path := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &QualifiedPathExpr{Qualifier: qualifier, Path: path}

	case p.isReserved("treat"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		path := p.parseExpr()
		p.expectReserved("as")
		typeName := p.parseDottedName()
		p.expect(RightParenToken, "')'")
		return &TreatedPath{Path: path, TypeName: typeName}

	case p.isReserved("type"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		inner := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &TypeExpr{Expr: inner}

	case p.isReserved("case"):
		return p.parseCaseExpr()

	case p.isReserved("coalesce"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		args := p.parseExprListUntilRParen()
		p.expect(RightParenToken, "')'")
		return &CoalesceExpr{Args: args}

	case p.isReserved("nullif"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		left := p.parseExpr()
		p.expect(CommaToken, "','")
		right := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &NullIfExpr{Left: left, Right: right}

	case p.isReserved("extract"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		field := p.identLike()
		p.expectReserved("from")
		source := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &ExtractExpr{Field: field, Source: source}

	case p.isReserved("trim"):
		return p.parseTrimExpr()

	case p.isReserved("substring"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		source := p.parseExpr()
		p.expect(CommaToken, "','")
		start := p.parseExpr()
		var length Expr
		if p.is(CommaToken) {
			p.advance()
			length = p.parseExpr()
		}
		p.expect(RightParenToken, "')'")
		return &SubstringExpr{Source: source, Start: start, Length: length}

	case p.isReserved("concat"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		args := p.parseExprListUntilRParen()
		p.expect(RightParenToken, "')'")
		return &ConcatExpr{Args: args}

	case p.isReserved("locate"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		pattern := p.parseExpr()
		p.expect(CommaToken, "','")
		source := p.parseExpr()
		var start Expr
		if p.is(CommaToken) {
			p.advance()
			start = p.parseExpr()
		}
		p.expect(RightParenToken, "')'")
		return &LocateExpr{Pattern: pattern, Source: source, Start: start}

	case p.isReservedOneOf("lower", "upper", "abs", "ceiling", "floor", "exp", "ln", "sign", "sqrt", "round", "length"):
		name := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		args := p.parseExprListUntilRParen()
		p.expect(RightParenToken, "')'")
		return &FunctionCallExpr{Name: name, Args: args}

	case p.isReservedOneOf("mod", "power"):
		name := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		a := p.parseExpr()
		p.expect(CommaToken, "','")
		b := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &FunctionCallExpr{Name: name, Args: []Expr{a, b}}

	case p.isReserved("size"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		path := p.parseExpr()
		p.expect(RightParenToken, "')'")
		return &SizeExpr{Path: path}

	case p.isReserved("index"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		alias := p.identLike()
		p.expect(RightParenToken, "')'")
		return &IndexExpr{Alias: alias}

	case p.isReservedOneOf("current_date", "current_time", "current_timestamp"):
		word := p.s.ReservedWord()
		p.advance()
		which := word[len("current_"):]
		return &CurrentExpr{Which: which}

	case p.isReserved("local"):
		p.advance()
		if !p.isReservedOneOf("date", "time", "datetime") {
			p.fail("expected DATE, TIME, or DATETIME after LOCAL")
		}
		which := p.s.ReservedWord()
		p.advance()
		return &LocalExpr{Which: which}

	case p.isReserved("function"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		name := p.parseExpr()
		u := &UserFunctionExpr{Name: name}
		for p.is(CommaToken) {
			p.advance()
			u.Args = append(u.Args, p.parseExpr())
		}
		p.expect(RightParenToken, "')'")
		return u

	case p.isReservedOneOf("avg", "max", "min", "sum", "count"):
		op := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		agg := &AggregateExpr{Op: op}
		if p.matchReserved("distinct") {
			agg.Distinct = true
		}
		if op == "count" && p.is(StarToken) {
			p.advance()
			agg.Arg = &PathExpr{Segments: []string{"*"}}
		} else {
			agg.Arg = p.parseExpr()
		}
		p.expect(RightParenToken, "')'")
		return agg

	case p.isReserved("exists"):
		p.advance()
		p.expect(LeftParenToken, "'('")
		sub := p.parseSelectStatement()
		p.expect(RightParenToken, "')'")
		return &ExistsExpr{Subquery: &SubqueryExpr{Query: sub}}

	case p.isReservedOneOf("all", "any", "some"):
		quant := p.s.ReservedWord()
		p.advance()
		p.expect(LeftParenToken, "'('")
		sub := p.parseSelectStatement()
		p.expect(RightParenToken, "')'")
		return &QuantifiedExpr{Quantifier: quant, Subquery: &SubqueryExpr{Query: sub}}

	case p.isReservedOneOf("true", "false"):
		word := p.s.ReservedWord()
		p.advance()
		return &LiteralExpr{LiteralKind: LiteralBool, Text: word}

	case p.is(IdentifierToken) || p.is(ReservedWordToken):
		first := p.identLike()
		// An entity type literal (spec.md 4.1, used on the RHS of a TYPE(x)
		// comparison or inside an IN-list of types) is syntactically just a
		// bare name; nothing short of a class metamodel distinguishes it
		// from a single-segment path. We fall back to the same convention
		// JPA entity names follow: capitalized and never dotted, versus the
		// lower-case range-variable aliases a path expression starts from.
		if !p.is(DotToken) && startsWithUpper(first) {
			return &LiteralExpr{LiteralKind: LiteralEntityType, Text: first}
		}
		return p.parsePathFrom(first)
	}

	p.fail("unexpected token %q", p.s.Token())
	return nil
}

func startsWithUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func (p *Parser) parsePathFrom(first string) *PathExpr {
	segments := []string{first}
	for p.is(DotToken) {
		p.advance()
		segments = append(segments, p.identLike())
	}
	return &PathExpr{Segments: segments}
}

func (p *Parser) parseCaseExpr() *CaseExpr {
	p.expectReserved("case")
	c := &CaseExpr{}
	if !p.isReserved("when") {
		c.Operand = p.parseExpr()
	}
	for p.matchReserved("when") {
		when := p.parseExpr()
		p.expectReserved("then")
		result := p.parseExpr()
		c.Whens = append(c.Whens, WhenClause{When: when, Result: result})
	}
	if len(c.Whens) == 0 {
		p.fail("expected at least one WHEN clause")
	}
	p.expectReserved("else")
	c.Else = p.parseExpr()
	p.expectReserved("end")
	return c
}

func (p *Parser) parseTrimExpr() *TrimExpr {
	p.expectReserved("trim")
	p.expect(LeftParenToken, "'('")
	t := &TrimExpr{}
	if p.isReservedOneOf("leading", "trailing", "both") {
		t.Spec = p.s.ReservedWord()
		p.advance()
	}
	if !p.isReserved("from") && !p.is(RightParenToken) {
		t.Char = p.parseExpr()
	}
	p.matchReserved("from")
	t.Source = p.parseExpr()
	p.expect(RightParenToken, "')'")
	return t
}
