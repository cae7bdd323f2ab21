package token

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	// Literals
	Illegal TokenType = iota
	Identifier
	Number
	String

	// Operators and delimiters
	Assign
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Colon
	Comma
	Dot
	Spread // ...

	// Keywords
	Var
	Let
	Const
	Function
	Return
	If
	Else
	While
	For
	Do
	Break
	Continue
	Switch
	Case
	Default
	Throw
	Try
	Catch
	Finally
	New
	Delete
	Typeof
	Void
	In
	Instanceof
	This
	Class
	Extends
	Super
	Import
	Export
	Yield
	Await
	True
	False
	Null
	Debugger
	With
	Enum
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// Synthetic returns a token for a node that never came from source text.
// Line and Column stay zero.
func Synthetic(t TokenType, literal string) Token {
	return Token{Type: t, Literal: literal}
}

// Keywords lists the reserved words of the language. Contextual words such as
// "of", "as" and "async" are valid identifiers and are not listed.
var Keywords = map[string]TokenType{
	"var":        Var,
	"let":        Let,
	"const":      Const,
	"function":   Function,
	"return":     Return,
	"if":         If,
	"else":       Else,
	"while":      While,
	"for":        For,
	"do":         Do,
	"break":      Break,
	"continue":   Continue,
	"switch":     Switch,
	"case":       Case,
	"default":    Default,
	"throw":      Throw,
	"try":        Try,
	"catch":      Catch,
	"finally":    Finally,
	"new":        New,
	"delete":     Delete,
	"typeof":     Typeof,
	"void":       Void,
	"in":         In,
	"instanceof": Instanceof,
	"this":       This,
	"class":      Class,
	"extends":    Extends,
	"super":      Super,
	"import":     Import,
	"export":     Export,
	"yield":      Yield,
	"await":      Await,
	"true":       True,
	"false":      False,
	"null":       Null,
	"debugger":   Debugger,
	"with":       With,
	"enum":       Enum,
}

func LookupIdentifier(ident string) TokenType {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return Identifier
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := Keywords[name]
	return ok
}

// IsIdentifierName reports whether s can be written without quotes as a
// non-computed property key or after a dot. Reserved words qualify.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 {
			if !isIdentStart(ch) {
				return false
			}
			continue
		}
		if !isIdentPart(ch) {
			return false
		}
	}
	return true
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch > 127 && unicode.IsLetter(ch))
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9') || ch == '\u200C' || ch == '\u200D'
}

var names = map[TokenType]string{
	Illegal:      "ILLEGAL",
	Identifier:   "IDENT",
	Number:       "NUMBER",
	String:       "STRING",
	Assign:       "=",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	LeftBracket:  "[",
	RightBracket: "]",
	Semicolon:    ";",
	Colon:        ":",
	Comma:        ",",
	Dot:          ".",
	Spread:       "...",
}

func init() {
	for word, t := range Keywords {
		names[t] = word
	}
}

// String returns the source spelling of punctuation and keywords, and a
// descriptive name for the literal classes.
func (t TokenType) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}
