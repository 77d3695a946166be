package jpqlparser

// TokenType is the lexical category the Scanner assigns to a raw slice of
// input. It is unrelated to rewrite.Token, which carries an already-decided
// rendering of a *parsed* production.
type TokenType int

const (
	EOFToken TokenType = iota + 1
	WhitespaceToken

	LeftParenToken
	RightParenToken
	LeftBracketToken
	RightBracketToken
	LeftBraceToken
	RightBraceToken
	CommaToken
	DotToken

	EqToken
	NeToken
	LtToken
	LeToken
	GtToken
	GeToken
	PlusToken
	MinusToken
	StarToken
	SlashToken

	StringLiteralToken
	NumberLiteralToken
	DateTimeLiteralToken // JDBC escape: {d '...'}, {t '...'}, {ts '...'}
	NamedParamToken     // :name
	PositionalParamToken // ?1 or ?

	ReservedWordToken
	IdentifierToken

	SpelEscapeToken // #{...}

	UnterminatedStringErrorToken
	UnexpectedCharacterToken
)

func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return "UnknownToken"
}

var tokenTypeNames = map[TokenType]string{
	EOFToken:                     "EOFToken",
	WhitespaceToken:              "WhitespaceToken",
	LeftParenToken:               "LeftParenToken",
	RightParenToken:              "RightParenToken",
	LeftBracketToken:             "LeftBracketToken",
	RightBracketToken:            "RightBracketToken",
	LeftBraceToken:               "LeftBraceToken",
	RightBraceToken:              "RightBraceToken",
	CommaToken:                   "CommaToken",
	DotToken:                     "DotToken",
	EqToken:                      "EqToken",
	NeToken:                      "NeToken",
	LtToken:                      "LtToken",
	LeToken:                      "LeToken",
	GtToken:                      "GtToken",
	GeToken:                      "GeToken",
	PlusToken:                    "PlusToken",
	MinusToken:                   "MinusToken",
	StarToken:                    "StarToken",
	SlashToken:                   "SlashToken",
	StringLiteralToken:           "StringLiteralToken",
	NumberLiteralToken:           "NumberLiteralToken",
	DateTimeLiteralToken:         "DateTimeLiteralToken",
	NamedParamToken:              "NamedParamToken",
	PositionalParamToken:         "PositionalParamToken",
	ReservedWordToken:            "ReservedWordToken",
	IdentifierToken:              "IdentifierToken",
	SpelEscapeToken:              "SpelEscapeToken",
	UnterminatedStringErrorToken: "UnterminatedStringErrorToken",
	UnexpectedCharacterToken:     "UnexpectedCharacterToken",
}

// reservedWords are JPQL 3.1 keywords the scanner reports as ReservedWordToken
// so the parser can branch on them without a second identifier comparison.
// Keys are lower-case; JPQL keywords are case-insensitive.
var reservedWords = map[string]struct{}{
	"select": {}, "distinct": {}, "from": {}, "where": {}, "update": {}, "delete": {},
	"set": {}, "as": {}, "join": {}, "inner": {}, "outer": {}, "left": {}, "right": {},
	"fetch": {}, "on": {}, "treat": {}, "in": {}, "is": {}, "null": {}, "not": {},
	"and": {}, "or": {}, "like": {}, "escape": {}, "between": {}, "empty": {},
	"member": {}, "of": {}, "exists": {}, "all": {}, "any": {}, "some": {}, "new": {},
	"order": {}, "by": {}, "asc": {}, "desc": {}, "group": {}, "having": {},
	"case": {}, "when": {}, "then": {}, "else": {}, "end": {}, "coalesce": {}, "nullif": {},
	"avg": {}, "max": {}, "min": {}, "sum": {}, "count": {}, "extract": {},
	"trim": {}, "leading": {}, "trailing": {}, "both": {}, "substring": {},
	"concat": {}, "length": {}, "locate": {}, "lower": {}, "upper": {}, "abs": {},
	"ceiling": {}, "floor": {}, "exp": {}, "ln": {}, "sign": {}, "sqrt": {}, "mod": {},
	"power": {}, "round": {}, "size": {}, "index": {}, "current_date": {},
	"current_time": {}, "current_timestamp": {}, "local": {}, "date": {}, "time": {},
	"datetime": {}, "function": {}, "type": {}, "key": {}, "value": {}, "entry": {},
	"true": {}, "false": {}, "object": {}, "class": {},
}
