package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/xterm-go/assets"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// Console renders session output with ANSI colors. Colors are dropped
// automatically when the output is not a terminal or NO_COLOR is set.
type Console struct {
	out    io.Writer
	banner string

	title *color.Color
	faint *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
}

// NewConsole returns a renderer writing to out (stdout when nil).
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{
		out:    out,
		banner: assets.BannerArt,
		title:  color.New(color.FgCyan, color.Bold),
		faint:  color.New(color.Faint),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		err:    color.New(color.FgRed),
	}
}

// Banner draws the title art followed by the toolbar hint.
func (c *Console) Banner(toolbar string) {
	c.title.Fprint(c.out, strings.TrimRight(c.banner, "\n")+"\n")
	if toolbar != "" {
		c.faint.Fprintln(c.out, toolbar)
	}
	fmt.Fprintln(c.out)
}

// Line prints one line of command output, prefixed by its icon for
// directory entries.
func (c *Console) Line(line domain.Classification) {
	if line.Kind == domain.LineDirectoryEntry && line.Icon != "" {
		fmt.Fprintf(c.out, "%s %s\n", line.Icon, line.Text)
		return
	}
	fmt.Fprintln(c.out, line.Text)
}

// Analysis prints the three nlp report lines.
func (c *Console) Analysis(a domain.Analysis) {
	tokens := make([]string, len(a.Tokens))
	for i, tok := range a.Tokens {
		tokens[i] = pyQuote(tok)
	}
	tags := make([]string, len(a.POSTags))
	for i, tag := range a.POSTags {
		tags[i] = fmt.Sprintf("(%s, %s)", pyQuote(tag.Text), pyQuote(tag.Tag))
	}
	entities := make([]string, len(a.Entities))
	for i, ent := range a.Entities {
		entities[i] = fmt.Sprintf("(%s, %s)", pyQuote(ent.Text), pyQuote(ent.Label))
	}

	c.Info("Tokens: " + listOf(tokens))
	c.Info("Part-of-Speech Tags: " + listOf(tags))
	c.Info("Entities: " + listOf(entities))
}

// Info prints a green status line.
func (c *Console) Info(msg string) {
	c.info.Fprintln(c.out, msg)
}

// Warn prints a yellow status line.
func (c *Console) Warn(msg string) {
	c.warn.Fprintln(c.out, msg)
}

// Error prints a red status line.
func (c *Console) Error(msg string) {
	c.err.Fprintln(c.out, msg)
}

func listOf(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// pyQuote renders s the way a Python list literal would show it.
func pyQuote(s string) string {
	quote := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = `"`
	}
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	if quote == "'" {
		escaped = strings.ReplaceAll(escaped, "'", `\'`)
	}
	return quote + escaped + quote
}

var _ ports.Renderer = (*Console)(nil)
