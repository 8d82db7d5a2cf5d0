// Package cli is a small flag-parsing and help-text framework, trimmed from
// the teacher's compiler-driver CLI down to what a single-binary harness
// needs: named bool/string flags, positional arguments, and a wrapped
// usage/help page sized to the terminal.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// IndentState renders nested indentation levels for help-text sections.
type IndentState struct{ unit int }

func NewIndentState() *IndentState { return &IndentState{unit: 2} }

func (is *IndentState) AtLevel(level int) string {
	return strings.Repeat(" ", is.unit*level)
}

// Value is a settable flag value, mirroring the teacher's Value interface.
type Value interface {
	String() string
	Set(string) error
}

type stringValue struct{ p *string }

func (v *stringValue) Set(s string) error { *v.p = s; return nil }
func (v *stringValue) String() string     { return *v.p }

func newStringValue(p *string) *stringValue { return &stringValue{p} }

type boolValue struct{ p *bool }

func (v *boolValue) Set(s string) error {
	if s == "" {
		*v.p = true
		return nil
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean value '%s': %w", s, err)
	}
	*v.p = val
	return nil
}
func (v *boolValue) String() string { return strconv.FormatBool(*v.p) }

func newBoolValue(p *bool) *boolValue { return &boolValue{p} }

// Flag describes a single named option.
type Flag struct {
	Name      string
	Shorthand string
	Usage     string
	Value     Value
	DefValue  string
}

// FlagSet holds a named flag collection plus the positional arguments left
// over after parsing.
type FlagSet struct {
	name       string
	flags      map[string]*Flag
	shorthands map[string]*Flag
	order      []string
	args       []string
}

// NewFlagSet returns an empty, named FlagSet.
func NewFlagSet(name string) *FlagSet {
	return &FlagSet{
		name:       name,
		flags:      make(map[string]*Flag),
		shorthands: make(map[string]*Flag),
	}
}

// Args returns the positional arguments left after Parse.
func (f *FlagSet) Args() []string { return f.args }

// Lookup returns the registered flag named name, or nil.
func (f *FlagSet) Lookup(name string) *Flag { return f.flags[name] }

// String registers a string-valued flag.
func (f *FlagSet) String(p *string, name, shorthand, value, usage string) {
	*p = value
	f.Var(newStringValue(p), name, shorthand, usage, value)
}

// Bool registers a boolean-valued flag.
func (f *FlagSet) Bool(p *bool, name, shorthand string, value bool, usage string) {
	*p = value
	f.Var(newBoolValue(p), name, shorthand, usage, strconv.FormatBool(value))
}

// Var registers an arbitrary Value under name (and optional shorthand).
func (f *FlagSet) Var(value Value, name, shorthand, usage, defValue string) {
	if name == "" {
		panic("flag name cannot be empty")
	}
	flag := &Flag{Name: name, Shorthand: shorthand, Usage: usage, Value: value, DefValue: defValue}
	if _, ok := f.flags[name]; ok {
		panic(fmt.Sprintf("flag redefined: %s", name))
	}
	f.flags[name] = flag
	f.order = append(f.order, name)
	if shorthand != "" {
		f.shorthands[shorthand] = flag
	}
}

// Parse splits arguments into flags (consumed) and positional args
// (returned by Args).
func (f *FlagSet) Parse(arguments []string) error {
	f.args = nil
	for i := 0; i < len(arguments); i++ {
		arg := arguments[i]
		if len(arg) < 2 || arg[0] != '-' {
			f.args = append(f.args, arg)
			continue
		}
		if arg == "--" {
			f.args = append(f.args, arguments[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "--") {
			if err := f.parseLongFlag(arg, arguments, &i); err != nil {
				return err
			}
			continue
		}
		if err := f.parseShortFlag(arg, arguments, &i); err != nil {
			return err
		}
	}
	return nil
}

func (f *FlagSet) parseLongFlag(arg string, arguments []string, i *int) error {
	parts := strings.SplitN(arg[2:], "=", 2)
	name := parts[0]
	if name == "" {
		return fmt.Errorf("empty flag name")
	}
	flag, ok := f.flags[name]
	if !ok {
		return fmt.Errorf("unknown flag: --%s", name)
	}
	if len(parts) == 2 {
		return flag.Value.Set(parts[1])
	}
	if _, isBool := flag.Value.(*boolValue); isBool {
		return flag.Value.Set("")
	}
	if *i+1 >= len(arguments) {
		return fmt.Errorf("flag needs an argument: --%s", name)
	}
	*i++
	return flag.Value.Set(arguments[*i])
}

func (f *FlagSet) parseShortFlag(arg string, arguments []string, i *int) error {
	shorthand := arg[1:2]
	flag, ok := f.shorthands[shorthand]
	if !ok {
		return fmt.Errorf("unknown shorthand flag: -%s", shorthand)
	}
	if _, isBool := flag.Value.(*boolValue); isBool {
		return flag.Value.Set("")
	}
	value := arg[2:]
	if value == "" {
		if *i+1 >= len(arguments) {
			return fmt.Errorf("flag needs an argument: -%s", shorthand)
		}
		*i++
		value = arguments[*i]
	}
	return flag.Value.Set(value)
}

// App is a named, described command with a FlagSet and an Action invoked
// with the leftover positional arguments.
type App struct {
	Name        string
	Synopsis    string
	Description string
	Authors     []string
	Repository  string
	FlagSet     *FlagSet
	Action      func(args []string) error
}

// NewApp returns an App with an initialized FlagSet.
func NewApp(name string) *App {
	return &App{Name: name, FlagSet: NewFlagSet(name)}
}

// Run parses arguments, handles --help, and otherwise invokes Action.
func (a *App) Run(arguments []string) error {
	help := false
	a.FlagSet.Bool(&help, "help", "h", false, "display this information")

	if err := a.FlagSet.Parse(arguments); err != nil {
		fmt.Fprintln(os.Stderr, err)
		a.generateUsagePage(os.Stderr)
		return err
	}
	if help {
		a.generateHelpPage(os.Stdout)
		return nil
	}
	if a.Action != nil {
		return a.Action(a.FlagSet.Args())
	}
	return nil
}

func (a *App) generateUsagePage(w *os.File) {
	fmt.Fprintf(w, "Usage: %s %s\n", a.Name, strings.ReplaceAll(strings.ReplaceAll(a.Synopsis, "[", "<"), "]", ">"))
	fmt.Fprintf(w, "Run '%s --help' for all available options.\n", a.Name)
}

func (a *App) generateHelpPage(w *os.File) {
	var sb strings.Builder
	termWidth := getTerminalWidth()
	indent := NewIndentState()

	if a.Synopsis != "" {
		fmt.Fprintf(&sb, "%sSynopsis\n", indent.AtLevel(1))
		fmt.Fprintf(&sb, "%s%s %s\n\n", indent.AtLevel(2), a.Name, a.Synopsis)
	}
	if a.Description != "" {
		fmt.Fprintf(&sb, "%sDescription\n", indent.AtLevel(1))
		for _, line := range wrapText(a.Description, termWidth-len(indent.AtLevel(2))) {
			fmt.Fprintf(&sb, "%s%s\n", indent.AtLevel(2), line)
		}
		sb.WriteString("\n")
	}

	names := append([]string(nil), a.FlagSet.order...)
	sort.Strings(names)
	maxWidth := 0
	for _, name := range names {
		if w := len(a.formatFlagString(a.FlagSet.flags[name])); w > maxWidth {
			maxWidth = w
		}
	}
	if len(names) > 0 {
		fmt.Fprintf(&sb, "%sOptions\n", indent.AtLevel(1))
		for _, name := range names {
			flag := a.FlagSet.flags[name]
			left := a.formatFlagString(flag)
			usageWidth := termWidth - len(indent.AtLevel(2)) - maxWidth - 2
			if usageWidth < 10 {
				usageWidth = 10
			}
			lines := wrapText(flag.Usage, usageWidth)
			first := ""
			if len(lines) > 0 {
				first = lines[0]
			}
			fmt.Fprintf(&sb, "%s%-*s  %s\n", indent.AtLevel(2), maxWidth, left, first)
			for _, rest := range lines[1:] {
				fmt.Fprintf(&sb, "%s%s  %s\n", indent.AtLevel(2), strings.Repeat(" ", maxWidth), rest)
			}
		}
	}
	if a.Repository != "" {
		fmt.Fprintf(&sb, "\nFor more details refer to %s\n", a.Repository)
	}
	fmt.Fprint(w, sb.String())
}

func (a *App) formatFlagString(flag *Flag) string {
	var b strings.Builder
	_, isBool := flag.Value.(*boolValue)
	if flag.Shorthand != "" {
		fmt.Fprintf(&b, "-%s, --%s", flag.Shorthand, flag.Name)
	} else {
		fmt.Fprintf(&b, "--%s", flag.Name)
	}
	if !isBool {
		b.WriteString(" <value>")
	}
	return b.String()
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 20 {
		return 80
	}
	return width
}

func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
