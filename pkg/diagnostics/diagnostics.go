// Package diagnostics implements the shared, append-only Error Log described
// in spec.md §3/§7: a structured, non-fatal diagnostic sink aliased by both
// the lexer and its (external) syntactic analyzer.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Type is the coarse tag on a Diagnostic.
type Type string

const (
	Lexical     Type = "LEXICAL"
	Indent      Type = "INDENT"
	StringType  Type = "STRING"
	Escape      Type = "ESCAPE"
	UnknownChar Type = "UNKNOWN_CHAR"
	Bracket     Type = "BRACKET"
)

// Diagnostic is a single structured lexical error: {message, line, column,
// type, data} per spec.md §3. Data carries the offending lexeme (or the
// partial text scanned before the error), not the source buffer.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
	Type    Type
	Data    string
}

// String prints `line L, col C: <message> [<type>]` per spec.md §7.
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, col %d: %s [%s]", d.Line, d.Column, d.Message, d.Type)
}

// Log is the shared, ordered, append-only diagnostic sink. It is owned by
// the lexer but aliased to the syntactic analyzer; both sides may only
// append, per spec.md §5's shared-resource policy.
type Log struct {
	entries []Diagnostic
	source  string
}

// NewLog returns an empty Log.
func NewLog() *Log { return &Log{} }

// Append records a diagnostic. Scanning never aborts because of it.
func (l *Log) Append(d Diagnostic) {
	l.entries = append(l.entries, d)
}

// SetSource records the full source buffer the log's diagnostics were
// raised against, so the Printer can render caret-under-source context
// without duplicating the buffer into every Diagnostic.
func (l *Log) SetSource(src string) { l.source = src }

// Source returns the buffer last installed by SetSource.
func (l *Log) Source() string { return l.source }

// Reset clears the log's entries, used by Lexer.Input to start a fresh run.
func (l *Log) Reset() {
	l.entries = l.entries[:0]
}

// Len reports how many diagnostics have been recorded.
func (l *Log) Len() int { return len(l.entries) }

// Failed reports whether the lexer run that produced this log should be
// considered failed: non-empty, independent of whether tokens were
// produced, per spec.md §4.6/§7.
func (l *Log) Failed() bool { return len(l.entries) > 0 }

// All returns the diagnostics in detection order.
func (l *Log) All() []Diagnostic { return l.entries }

// Printer renders a Log to a writer, applying the presentation-only policy
// from spec.md §7 (same-line dedup, a hard cap collapsing the remainder into
// one "too many errors" entry) without mutating the underlying Log — every
// record detected during scanning stays in the Log for invariant checking.
type Printer struct {
	// MaxErrors caps the number of distinct diagnostics printed before the
	// remainder collapses into a single summary line. Zero means no cap.
	MaxErrors int
	// DedupeSameLine suppresses successive diagnostics on the same line.
	DedupeSameLine bool
	// Color forces ANSI color on/off; nil auto-detects via the output
	// stream's terminal-ness.
	Color *bool
}

// NewPrinter builds a Printer with the spec.md §7 presentation defaults.
func NewPrinter() *Printer {
	return &Printer{MaxErrors: 100, DedupeSameLine: true}
}

func (p *Printer) useColor(w io.Writer) bool {
	if p.Color != nil {
		return *p.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Print writes the Log's diagnostics to w, one per line, applying the
// presentation policy described above.
func (p *Printer) Print(w io.Writer, l *Log) {
	color := p.useColor(w)
	const red, none = "\x1b[31m", "\x1b[0m"

	printed := 0
	lastLine := -1
	for _, d := range l.entries {
		if p.DedupeSameLine && d.Line == lastLine {
			continue
		}
		if p.MaxErrors > 0 && printed >= p.MaxErrors {
			fmt.Fprintf(w, "too many errors (%d more suppressed)\n", len(l.entries)-printed)
			return
		}
		if color {
			fmt.Fprintf(w, "%s%s%s\n", red, d.String(), none)
		} else {
			fmt.Fprintln(w, d.String())
		}
		if ctx := SourceContext(l.source, d.Line, d.Column); ctx != "" {
			fmt.Fprintln(w, ctx)
		}
		lastLine = d.Line
		printed++
	}
}

// SourceContext renders the offending source line with a caret under the
// error column, mirroring the teacher's printErrorLine. data is the full
// source text the diagnostic was raised against.
func SourceContext(data string, line, column int) string {
	if data == "" {
		return ""
	}
	lines := strings.Split(data, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	src := lines[line-1]
	caretPos := column - 1
	if caretPos < 0 {
		caretPos = 0
	}
	if caretPos > len(src) {
		caretPos = len(src)
	}
	return src + "\n" + strings.Repeat(" ", caretPos) + "^"
}
