package printer

import (
	"github.com/fatih/color"
)

// Quote selects the delimiter used for string literals.
type Quote int

const (
	QuoteDouble Quote = iota
	QuoteSingle
)

// ParseQuote maps "double" or "single" to its Quote.
func ParseQuote(s string) (Quote, bool) {
	switch s {
	case "double":
		return QuoteDouble, true
	case "single":
		return QuoteSingle, true
	}
	return QuoteDouble, false
}

const defaultTabWidth = 4

type config struct {
	tabWidth int
	quote    Quote
	colors   *Colors
}

// Option configures Print.
type Option func(*config)

// TabWidth sets the number of spaces per indentation level. Values below
// one are ignored.
func TabWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabWidth = n
		}
	}
}

// Quotes sets the string delimiter.
func Quotes(q Quote) Option {
	return func(c *config) { c.quote = q }
}

// WithColors enables syntax highlighting. A nil palette disables it.
func WithColors(p *Colors) Option {
	return func(c *config) { c.colors = p }
}

// Colors wraps printed text by token class. Nil fields print plain text.
type Colors struct {
	Keyword    func(string) string
	Identifier func(string) string
	String     func(string) string
	Number     func(string) string
	Punct      func(string) string
}

// NewColors returns the default ANSI palette. Colors are forced on; callers
// decide whether the destination is a terminal.
func NewColors() *Colors {
	return &Colors{
		Keyword:    paint(color.FgMagenta),
		Identifier: paint(color.FgCyan),
		String:     paint(color.FgGreen),
		Number:     paint(color.FgYellow),
		Punct:      paint(color.Faint),
	}
}

func paint(attr color.Attribute) func(string) string {
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}
