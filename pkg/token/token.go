// Package token defines the closed set of lexical token kinds produced by
// the Fangless Python lexer, along with the keyword reclassification table.
package token

import "github.com/cespare/xxhash/v2"

// TabWidth is the catalog's tab-expansion width. The lexer itself expands
// tabs by config.Config.TabWidth, whose default is the same value.
const TabWidth = 4

// Kind is a tag drawn from the closed Token Catalog.
type Kind int

const (
	EOF Kind = iota
	Error

	// Layout
	NEWLINE
	INDENT
	DEDENT

	// Literals and names
	ID
	NUMBER
	STRING

	// Keywords
	IF
	ELSE
	ELIF
	WHILE
	FOR
	DEF
	RETURN
	CLASS
	TRUE
	FALSE
	NONE
	AND
	OR
	NOT
	IN
	IS
	BREAK
	CONTINUE
	PASS
	IMPORT
	FROM
	AS

	// Arithmetic operators
	PLUS
	MINUS
	STAR
	SLASH
	DOUBLESLASH
	PERCENT
	DOUBLESTAR

	// Relational operators
	EQ
	NEQ
	LT
	GT
	LE
	GE

	// Assignment operators
	ASSIGN
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ
	DOUBLESLASHEQ
	PERCENTEQ
	DOUBLESTAREQ

	// Delimiters
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	COLON
	COMMA
	DOT
)

var names = map[Kind]string{
	EOF:     "EOF",
	Error:   "ERROR",
	NEWLINE: "NEWLINE",
	INDENT:  "INDENT",
	DEDENT:  "DEDENT",
	ID:      "ID",
	NUMBER:  "NUMBER",
	STRING:  "STRING",

	IF: "IF", ELSE: "ELSE", ELIF: "ELIF", WHILE: "WHILE", FOR: "FOR",
	DEF: "DEF", RETURN: "RETURN", CLASS: "CLASS", TRUE: "True", FALSE: "False",
	NONE: "None", AND: "AND", OR: "OR", NOT: "NOT", IN: "IN", IS: "IS",
	BREAK: "BREAK", CONTINUE: "CONTINUE", PASS: "PASS", IMPORT: "IMPORT",
	FROM: "FROM", AS: "AS",

	PLUS: "PLUS", MINUS: "MINUS", STAR: "STAR", SLASH: "SLASH",
	DOUBLESLASH: "DOUBLESLASH", PERCENT: "PERCENT", DOUBLESTAR: "DOUBLESTAR",

	EQ: "EQ", NEQ: "NEQ", LT: "LT", GT: "GT", LE: "LE", GE: "GE",

	ASSIGN: "ASSIGN", PLUSEQ: "PLUSEQ", MINUSEQ: "MINUSEQ", STAREQ: "STAREQ",
	SLASHEQ: "SLASHEQ", DOUBLESLASHEQ: "DOUBLESLASHEQ", PERCENTEQ: "PERCENTEQ",
	DOUBLESTAREQ: "DOUBLESTAREQ",

	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACK: "LBRACK", RBRACK: "RBRACK",
	LBRACE: "LBRACE", RBRACE: "RBRACE", COLON: "COLON", COMMA: "COMMA", DOT: "DOT",
}

// String returns the external text-format spelling of the kind (used by the
// CLI harness and any debug dump).
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsLayout reports whether a kind is one of the lexeme-less layout tokens:
// INDENT, DEDENT, NEWLINE, EOF.
func (k Kind) IsLayout() bool {
	switch k {
	case INDENT, DEDENT, NEWLINE, EOF:
		return true
	default:
		return false
	}
}

// Token is a record produced by the lexer: a kind, the verbatim source
// lexeme (empty for layout tokens), and tab-expanded, 1-based position.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Column  int
	AbsPos  int
}

// String renders a token in the textual token-stream format: identifiers,
// numbers and strings print as `KIND "lexeme"`; every other kind (layout
// tokens, keywords, operators, delimiters) prints as the bare kind name.
func (t Token) String() string {
	switch t.Kind {
	case ID, NUMBER, STRING:
		return t.Kind.String() + " \"" + t.Lexeme + "\""
	}
	return t.Kind.String()
}

// keywords maps the xxhash of each reserved word's lexeme to its Kind. The
// hash table is the idiomatic middle ground design note §9 asks for
// ("ideally perfect-hash or compile-time map") without hand-rolling a
// perfect-hash generator: lookups are a single xxhash.Sum64 plus one map
// probe, followed by the lexeme equality check inside LookupKeyword.
var keywords map[uint64]Kind

var keywordLexemes = map[Kind]string{
	IF: "if", ELSE: "else", ELIF: "elif", WHILE: "while", FOR: "for",
	DEF: "def", RETURN: "return", CLASS: "class", TRUE: "True", FALSE: "False",
	NONE: "None", AND: "and", OR: "or", NOT: "not", IN: "in", IS: "is",
	BREAK: "break", CONTINUE: "continue", PASS: "pass", IMPORT: "import",
	FROM: "from", AS: "as",
}

func init() {
	keywords = make(map[uint64]Kind, len(keywordLexemes))
	for kind, lexeme := range keywordLexemes {
		keywords[xxhash.Sum64String(lexeme)] = kind
	}
}

// LookupKeyword reclassifies an identifier lexeme against the keyword
// table, returning (kind, true) if it is a reserved word.
func LookupKeyword(lexeme string) (Kind, bool) {
	kind, ok := keywords[xxhash.Sum64String(lexeme)]
	if !ok {
		return ID, false
	}
	// Guard against an xxhash collision between a non-keyword lexeme and a
	// keyword's hash by confirming the lexeme round-trips.
	if keywordLexemes[kind] != lexeme {
		return ID, false
	}
	return kind, true
}
