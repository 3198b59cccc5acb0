package token

import (
	"fmt"
)

type Kind int

const (
	EOF = Kind(iota)
	Illegal
	Ident
	Int

	Assign
	Plus
	Minus
	Bang
	Asterisk
	Slash
	LT
	GT
	EQ
	NotEQ

	Comma
	Semicolon
	LParen
	RParen
	LBrace
	RBrace

	Function
	Let
	True
	False
	If
	Else
	Return
)

// String returns the name used for the kind in parser diagnostics. Operators and delimiters
// are named by their literal text and keywords by the keyword itself.
func (k Kind) String() (s string) {
	switch k {
	case EOF:
		s = `EOF`
	case Illegal:
		s = `illegal`
	case Ident:
		s = `identifier`
	case Int:
		s = `int`
	case Assign:
		s = `=`
	case Plus:
		s = `+`
	case Minus:
		s = `-`
	case Bang:
		s = `!`
	case Asterisk:
		s = `*`
	case Slash:
		s = `/`
	case LT:
		s = `<`
	case GT:
		s = `>`
	case EQ:
		s = `==`
	case NotEQ:
		s = `!=`
	case Comma:
		s = `,`
	case Semicolon:
		s = `;`
	case LParen:
		s = `(`
	case RParen:
		s = `)`
	case LBrace:
		s = `{`
	case RBrace:
		s = `}`
	case Function:
		s = `fn`
	case Let:
		s = `let`
	case True:
		s = `true`
	case False:
		s = `false`
	case If:
		s = `if`
	case Else:
		s = `else`
	case Return:
		s = `return`
	default:
		s = `*UNKNOWN TOKEN*`
	}
	return
}

var keywords = map[string]Kind{
	`fn`:     Function,
	`let`:    Let,
	`true`:   True,
	`false`:  False,
	`if`:     If,
	`else`:   Else,
	`return`: Return,
}

// LookupIdent returns the keyword kind for word, or Ident when word is not a keyword. The
// match is exact and case sensitive.
func LookupIdent(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Ident
}

// Token is a lexeme together with its kind and the 1-based line and column where it starts.
// A Token is an issue.Location.
type Token struct {
	Kind    Kind
	Literal string
	Ln      int
	Col     int
}

func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

func (t Token) File() string {
	return ``
}

func (t Token) Line() int {
	return t.Ln
}

func (t Token) Pos() int {
	return t.Col
}

func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

func (t Token) String() string {
	return fmt.Sprintf("%s: '%s'", t.Kind.String(), t.Literal)
}
