package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/Andres-QG/transpyler/pkg/diagnostics"
)

func TestDiagnosticString(t *testing.T) {
	d := diagnostics.Diagnostic{Message: "unexpected indentation", Line: 3, Column: 5, Type: diagnostics.Indent}
	want := `line 3, col 5: unexpected indentation [INDENT]`
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogAppendAndFailed(t *testing.T) {
	l := diagnostics.NewLog()
	if l.Failed() {
		t.Fatalf("empty log should not report failed")
	}
	l.Append(diagnostics.Diagnostic{Message: "bad char", Line: 1, Column: 1, Type: diagnostics.UnknownChar})
	if !l.Failed() {
		t.Fatalf("non-empty log should report failed")
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", l.Len())
	}
}

func TestLogReset(t *testing.T) {
	l := diagnostics.NewLog()
	l.Append(diagnostics.Diagnostic{Message: "x", Type: diagnostics.Lexical})
	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("expected empty log after Reset, got %d entries", l.Len())
	}
}

func TestPrinterDedupeSameLine(t *testing.T) {
	l := diagnostics.NewLog()
	l.Append(diagnostics.Diagnostic{Message: "first", Line: 1, Type: diagnostics.Lexical})
	l.Append(diagnostics.Diagnostic{Message: "second", Line: 1, Type: diagnostics.Lexical})
	l.Append(diagnostics.Diagnostic{Message: "third", Line: 2, Type: diagnostics.Lexical})

	p := diagnostics.NewPrinter()
	var sb strings.Builder
	p.Print(&sb, l)

	out := sb.String()
	if strings.Contains(out, "second") {
		t.Errorf("expected same-line dedup to suppress the second diagnostic on line 1, got:\n%s", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "third") {
		t.Errorf("expected first and third diagnostics to be printed, got:\n%s", out)
	}
}

func TestPrinterRendersSourceContext(t *testing.T) {
	l := diagnostics.NewLog()
	l.SetSource("x = (1 +\n")
	l.Append(diagnostics.Diagnostic{Message: "unclosed bracket at end of file", Line: 1, Column: 9, Type: diagnostics.Bracket})

	var sb strings.Builder
	diagnostics.NewPrinter().Print(&sb, l)

	out := sb.String()
	if !strings.Contains(out, "x = (1 +") {
		t.Errorf("expected the offending source line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected a caret marker in output, got:\n%s", out)
	}
}

func TestSourceContextEmptyWithoutSource(t *testing.T) {
	if got := diagnostics.SourceContext("", 1, 1); got != "" {
		t.Errorf("expected empty context with no source installed, got %q", got)
	}
}

func TestPrinterMaxErrors(t *testing.T) {
	l := diagnostics.NewLog()
	for i := 0; i < 5; i++ {
		l.Append(diagnostics.Diagnostic{Message: "err", Line: i + 1, Type: diagnostics.Lexical})
	}
	p := diagnostics.NewPrinter()
	p.MaxErrors = 2
	p.DedupeSameLine = false

	var sb strings.Builder
	p.Print(&sb, l)

	if !strings.Contains(sb.String(), "too many errors") {
		t.Errorf("expected a summary line once MaxErrors is exceeded, got:\n%s", sb.String())
	}
}
