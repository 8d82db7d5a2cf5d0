// Package lexer implements the Fangless Python lexical analysis core: a Raw
// Scanner, an Indentation Engine, and a Token Assembler that drives both and
// exposes a single next_token() style surface to the caller.
package lexer

import (
	"github.com/Andres-QG/transpyler/pkg/config"
	"github.com/Andres-QG/transpyler/pkg/diagnostics"
	"github.com/Andres-QG/transpyler/pkg/symtab"
	"github.com/Andres-QG/transpyler/pkg/token"
)

// Lexer is the Token Assembler: it drives the Raw Scanner, intercepts
// NEWLINE events through the Indentation Engine, and maintains the pending
// queue, bracket depth, and expect-indent state described by the data
// model.
type Lexer struct {
	source []rune
	pos    int
	line   int
	column int

	cfg     *config.Config
	errors  *diagnostics.Log
	symbols *symtab.SymbolTable

	indentStack  []int
	pending      []token.Token
	delimDepth   int
	expectIndent bool
}

// New builds a Lexer against cfg. This corresponds to spec's build(): it
// finalizes the scanner tables (the keyword map lives in pkg/token and is
// initialized once at package load) and prepares empty state; Input must be
// called before NextToken.
func New(cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	l := &Lexer{
		cfg:     cfg,
		errors:  diagnostics.NewLog(),
		symbols: symtab.New(),
	}
	l.reset()
	return l
}

func (l *Lexer) reset() {
	l.errors.Reset()
	l.indentStack = []int{0}
	l.pending = nil
	l.delimDepth = 0
	l.expectIndent = false
	l.line = 1
	l.column = 1
	l.pos = 0
}

// Input installs a new source buffer, resetting every piece of lexer state:
// Error Log, Indent Stack, Delimiter Depth, Pending Queue and Expect-Indent
// Flag, per spec.md §6. The Symbol Table is also cleared since it is scoped
// to a single source buffer.
func (l *Lexer) Input(source string) {
	l.source = []rune(source)
	l.symbols = symtab.New()
	l.reset()
	l.errors.SetSource(source)

	// Measure the leading indentation of the very first logical line: the
	// stack starts at [0], so this only produces an INDENT burst if the
	// file itself opens already indented (an edge case the engine handles
	// uniformly rather than special-casing).
	c := l.measureLeadingWhitespace()
	l.applyIndent(c, l.line, l.column)
}

// Errors returns the shared, append-only Error Log.
func (l *Lexer) Errors() *diagnostics.Log { return l.errors }

// Symbols returns the Symbol Table of first-seen identifiers.
func (l *Lexer) Symbols() *symtab.SymbolTable { return l.symbols }

// NextToken returns the next logical token, or EOF once the input and any
// trailing DEDENT burst are exhausted.
func (l *Lexer) NextToken() token.Token {
	for len(l.pending) == 0 {
		l.fill()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

// fill advances the scan by exactly one unit of work, appending whatever
// tokens that unit produces (zero or more) to the pending queue. Called
// repeatedly by NextToken until the queue is non-empty.
func (l *Lexer) fill() {
	for {
		ch := l.peekRune()
		switch {
		case ch == 0:
			l.atEOF()
			return
		case ch == ' ' || ch == '\t':
			l.advance()
		case ch == '\r':
			l.advance()
		case ch == '#':
			l.skipLineComment()
		case ch == '\n':
			l.handleNewline()
			if len(l.pending) > 0 {
				return
			}
		default:
			startLine, startCol, startPos := l.line, l.column, l.pos
			tok, ok := l.scanToken()
			if !ok {
				continue
			}
			l.assemble(tok, startLine, startCol, startPos)
			return
		}
	}
}

// assemble applies the Token Assembler's per-kind bookkeeping (steps 4-7 of
// spec.md §4.4) before queuing the token.
func (l *Lexer) assemble(tok token.Token, line, col, pos int) {
	switch tok.Kind {
	case token.LPAREN, token.LBRACK, token.LBRACE:
		l.delimDepth++
	case token.RPAREN, token.RBRACK, token.RBRACE:
		if l.delimDepth > 0 {
			l.delimDepth--
		} else {
			l.reportError(diagnostics.Bracket, "closing bracket without matching opener", tok.Lexeme, line, col)
		}
	case token.COLON:
		if l.delimDepth == 0 {
			l.expectIndent = true
		}
	case token.ID:
		l.symbols.Add(tok.Lexeme, line, col, tok.Kind)
	}
	l.pending = append(l.pending, tok)
}

func (l *Lexer) atEOF() {
	if len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.pending = append(l.pending, l.layoutToken(token.DEDENT, l.line, l.column))
		return
	}
	if l.delimDepth > 0 {
		l.reportError(diagnostics.Bracket, "unclosed bracket at end of file", "", l.line, l.column)
		l.delimDepth = 0
	}
	l.pending = append(l.pending, l.layoutToken(token.EOF, l.line, l.column))
}

func (l *Lexer) layoutToken(kind token.Kind, line, col int) token.Token {
	return token.Token{Kind: kind, Line: line, Column: col, AbsPos: l.pos}
}

// reportError records a diagnostic. data is the offending lexeme (or the
// partial text scanned so far, for productions that never complete), per
// spec.md §3; it is empty when the error is structural rather than tied to
// a specific lexeme (an unclosed bracket or a bad indent level).
func (l *Lexer) reportError(typ diagnostics.Type, msg, data string, line, col int) {
	l.errors.Append(diagnostics.Diagnostic{Message: msg, Line: line, Column: col, Type: typ, Data: data})
}

// --- cursor primitives shared by scanner.go and indent.go ---

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) advance() rune {
	r := l.source[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else if r == '\t' {
		// Columns are tab-expanded: a tab moves to the next TabWidth stop.
		l.column = ((l.column-1)/l.cfg.TabWidth+1)*l.cfg.TabWidth + 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipLineComment() {
	for {
		c := l.peekRune()
		if c == 0 || c == '\n' {
			return
		}
		l.advance()
	}
}
