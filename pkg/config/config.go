// Package config holds the runtime knobs for the lexer and its CLI harness:
// the tab-expansion width, diagnostic presentation limits, and debug/color
// toggles.
package config

// Info describes a single named, toggleable setting for help/usage display,
// mirroring the teacher's Feature/Warning Info table.
type Info struct {
	Name        string
	Enabled     bool
	Description string
}

// Config collects every runtime knob the lexer and cmd/flpy read.
type Config struct {
	// TabWidth is the fixed column grid leading tabs expand to.
	TabWidth int
	// MaxErrors caps how many diagnostics the Printer renders before
	// collapsing the remainder into a summary line. Zero disables the cap.
	MaxErrors int
	// DedupeSameLine suppresses successive diagnostics on the same line.
	DedupeSameLine bool
	// Debug enables the indentation-stack trace described in SPEC_FULL.md.
	Debug bool
	// Color forces ANSI color on/off in diagnostics output; nil auto-detects.
	Color *bool

	infoMap map[string]*Info
}

// NewConfig returns a Config populated with spec.md defaults: TabWidth=4,
// MaxErrors=100, DedupeSameLine=true, Debug=false, Color auto-detected.
func NewConfig() *Config {
	c := &Config{
		TabWidth:       4,
		MaxErrors:      100,
		DedupeSameLine: true,
		infoMap:        make(map[string]*Info),
	}
	c.register("debug", false, "print the indent-stack trace as lines are scanned")
	c.register("no-color", false, "disable ANSI color in diagnostic output")
	c.register("dedupe-same-line", true, "suppress repeat diagnostics on the same source line")
	return c
}

func (c *Config) register(name string, enabled bool, desc string) {
	c.infoMap[name] = &Info{Name: name, Enabled: enabled, Description: desc}
}

// SetDebug toggles the Debug flag and keeps the Info table in sync.
func (c *Config) SetDebug(v bool) {
	c.Debug = v
	if info, ok := c.infoMap["debug"]; ok {
		info.Enabled = v
	}
}

// SetColor forces Color on or off and keeps the Info table in sync.
func (c *Config) SetColor(v bool) {
	disabled := !v
	c.Color = &v
	if info, ok := c.infoMap["no-color"]; ok {
		info.Enabled = disabled
	}
}

// SetDedupeSameLine toggles same-line diagnostic deduplication.
func (c *Config) SetDedupeSameLine(v bool) {
	c.DedupeSameLine = v
	if info, ok := c.infoMap["dedupe-same-line"]; ok {
		info.Enabled = v
	}
}

// Infos returns the registered settings in a stable order, for usage/help
// text rendering. cmd/flpy builds its help page from its own FlagSet and
// does not call it.
func (c *Config) Infos() []Info {
	order := []string{"debug", "no-color", "dedupe-same-line"}
	out := make([]Info, 0, len(order))
	for _, name := range order {
		if info, ok := c.infoMap[name]; ok {
			out = append(out, *info)
		}
	}
	return out
}
