package gen

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Check compares an existing file with freshly generated output. It reports
// whether the file is stale and, if so, a line diff prefixed with "-" for
// removed and "+" for added lines.
func Check(existing, generated string) (string, bool) {
	if existing == generated {
		return "", false
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(existing, generated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String(), true
}
