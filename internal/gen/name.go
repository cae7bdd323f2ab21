package gen

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/example/jsbuild/token"
)

// NameFromPath derives a binding name from a file path: the extension is
// dropped and the stem is camel-cased, so "data/app-config.yaml" becomes
// appConfig.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return camelIdentifier(strings.TrimSuffix(base, filepath.Ext(base)))
}

// RequireName derives the binding name for a required package from its last
// path segment: "node:fs" binds fs, "@scope/some-lib" binds someLib.
func RequireName(pkg string) string {
	pkg = strings.TrimPrefix(pkg, "node:")
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}
	return camelIdentifier(pkg)
}

// camelIdentifier joins the letter and digit runs of s in camel case and
// makes the result a usable identifier.
func camelIdentifier(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$'
	})

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	name := b.String()
	switch {
	case name == "":
		return "_"
	case unicode.IsDigit([]rune(name)[0]):
		name = "_" + name
	}
	if token.IsKeyword(name) {
		name = "_" + name
	}
	return name
}
