package printer

import (
	"fmt"
	"strings"
)

// quote escapes s the way JSON.stringify does. In single-quote mode the
// delimiters swap roles: `'` is escaped and `"` is left alone.
func quote(s string, q Quote) string {
	delim := '"'
	if q == QuoteSingle {
		delim = '\''
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(delim)
	for _, r := range s {
		switch r {
		case delim:
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteRune(delim)
	return b.String()
}
