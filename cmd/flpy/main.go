// Command flpy is the manual test harness for the Fangless Python lexer: it
// tokenizes a source file and either compares the result against an
// expected-token file or, with --generate-golden, writes one.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/Andres-QG/transpyler/pkg/cli"
	"github.com/Andres-QG/transpyler/pkg/config"
	"github.com/Andres-QG/transpyler/pkg/diagnostics"
	"github.com/Andres-QG/transpyler/pkg/lexer"
	"github.com/Andres-QG/transpyler/pkg/token"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.NewConfig()
	var debug, noColor, generateGolden bool

	app := cli.NewApp("flpy")
	app.Synopsis = "[options] <source_path> <expected_tokens_path>"
	app.Description = "Tokenizes a Fangless Python (.flpy) source file and compares the resulting token stream against an expected-tokens file."
	app.Authors = []string{"Andres-QG"}
	app.Repository = "github.com/Andres-QG/transpyler"
	app.FlagSet.Bool(&debug, "debug", "d", false, "print the indent-stack trace as lines are scanned")
	app.FlagSet.Bool(&noColor, "no-color", "", false, "disable ANSI color in diagnostic output")
	app.FlagSet.Bool(&generateGolden, "generate-golden", "g", false, "write the source file's tokenization to <expected_tokens_path> instead of comparing")

	exitCode := 0
	app.Action = func(positional []string) error {
		if len(positional) != 2 {
			fmt.Fprintln(os.Stderr, "usage: flpy [options] <source_path> <expected_tokens_path>")
			exitCode = 2
			return nil
		}
		cfg.SetDebug(debug)
		if noColor {
			cfg.SetColor(false)
		}
		exitCode = tokenizeAndCompare(cfg, positional[0], positional[1], generateGolden)
		return nil
	}

	if err := app.Run(args); err != nil {
		return 1
	}
	return exitCode
}

func tokenizeAndCompare(cfg *config.Config, sourcePath, expectedPath string, generateGolden bool) int {
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", sourcePath, err)
		return 1
	}

	lx := lexer.New(cfg)
	lx.Input(string(src))

	var actual []string
	for {
		tok := lx.NextToken()
		actual = append(actual, tok.String())
		if tok.Kind == token.EOF {
			break
		}
	}

	if generateGolden {
		fingerprint := xxhash.Sum64(src)
		body := strings.Join(actual, "\n") + "\n"
		if err := os.WriteFile(expectedPath, []byte(body), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", expectedPath, err)
			return 1
		}
		fmt.Printf("golden file written: %s (source fingerprint %016x)\n", expectedPath, fingerprint)
		return printErrors(cfg, lx.Errors())
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", expectedPath, err)
		return 1
	}

	var expected []string
	sc := bufio.NewScanner(strings.NewReader(string(expectedBytes)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		expected = append(expected, line)
	}

	mismatch := false
	if len(actual) != len(expected) {
		mismatch = true
		fmt.Printf("token count mismatch: expected %d, got %d\n", len(expected), len(actual))
		fmt.Println("\nActual tokens:")
		for _, t := range actual {
			fmt.Println(t)
		}
		fmt.Println("\nExpected tokens:")
		for _, t := range expected {
			fmt.Println(t)
		}
	} else {
		for i := range actual {
			if actual[i] != expected[i] {
				mismatch = true
				fmt.Printf("mismatch at token %d:\n%s", i+1, cmp.Diff(expected[i], actual[i]))
			}
		}
	}

	if mismatch {
		fmt.Println("FAIL: tokens did not match expected output")
	} else {
		fmt.Println("PASS: all tokens match expected output")
	}

	errExit := printErrors(cfg, lx.Errors())
	if mismatch {
		return 1
	}
	return errExit
}

func printErrors(cfg *config.Config, log *diagnostics.Log) int {
	if log.Len() == 0 {
		return 0
	}
	printer := diagnostics.NewPrinter()
	printer.MaxErrors = cfg.MaxErrors
	printer.DedupeSameLine = cfg.DedupeSameLine
	printer.Color = cfg.Color
	fmt.Println("\nLexical errors:")
	printer.Print(os.Stderr, log)
	return 1
}
