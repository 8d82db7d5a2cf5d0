package lexer

import (
	"fmt"
	"os"

	"github.com/Andres-QG/transpyler/pkg/diagnostics"
	"github.com/Andres-QG/transpyler/pkg/token"
)

// handleNewline implements Token Assembler step 3 (spec.md §4.4): consume a
// physical newline; if Delimiter Depth > 0 it is an implicit continuation
// and produces nothing. Otherwise emit NEWLINE, measure the new line's
// leading column, and invoke the Indentation Engine.
func (l *Lexer) handleNewline() {
	nlLine, nlCol := l.line, l.column
	l.advance()

	if l.delimDepth > 0 {
		return
	}

	l.pending = append(l.pending, l.layoutToken(token.NEWLINE, nlLine, nlCol))

	c := l.measureLeadingWhitespace()
	l.applyIndent(c, l.line, l.column)
}

// measureLeadingWhitespace consumes a run of leading spaces/tabs, expanding
// tabs to the next TAB_WIDTH column boundary per spec.md §4.2, and returns
// the resulting tab-expanded column count.
func (l *Lexer) measureLeadingWhitespace() int {
	c := 0
	for {
		switch l.peekRune() {
		case ' ':
			c++
			l.advance()
		case '\t':
			c = (c/l.cfg.TabWidth + 1) * l.cfg.TabWidth
			l.advance()
		default:
			return c
		}
	}
}

// applyIndent is the Indentation Engine (spec.md §4.3): given the
// tab-expanded leading column c of a freshly started logical line, it
// queues zero or more INDENT/DEDENT tokens and adjusts the Indent Stack.
// Blank and comment-only lines leave the stack untouched.
func (l *Lexer) applyIndent(c, line, col int) {
	next := l.peekRune()
	if next == 0 || next == '\n' || next == '#' {
		return
	}

	top := l.indentStack[len(l.indentStack)-1]
	if l.cfg.Debug {
		fmt.Fprintf(os.Stderr, "indent: line=%d c=%d top=%d stack=%v\n", line, c, top, l.indentStack)
	}

	switch {
	case c == top:
		// no change
	case c > top:
		l.indentStack = append(l.indentStack, c)
		l.pending = append(l.pending, l.layoutToken(token.INDENT, line, col))
		if !l.expectIndent {
			l.reportError(diagnostics.Indent, "unexpected indentation", "", line, col)
		}
	default: // c < top
		for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > c {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.pending = append(l.pending, l.layoutToken(token.DEDENT, line, col))
		}
		if l.indentStack[len(l.indentStack)-1] != c {
			l.reportError(diagnostics.Indent, "inconsistent dedent - does not match any outer level", "", line, col)
		}
	}
	l.expectIndent = false
}
