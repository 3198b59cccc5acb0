package lexer

import (
	"bytes"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/token"
	"github.com/lyraproj/monkey-evaluator/utils"
)

// Lexer produces tokens from a source string, one at a time. A Lexer is not safe for
// concurrent use.
type Lexer struct {
	sr      *utils.StringReader
	buf     *bytes.Buffer
	illegal *token.Token
	err     issue.Reported
}

func New(src string) *Lexer {
	return &Lexer{sr: utils.NewStringReader(src), buf: bytes.NewBufferString(``)}
}

// Err returns the issue reported for an illegal character, or nil if no such character has
// been encountered.
func (l *Lexer) Err() issue.Reported {
	return l.err
}

// NextToken returns the next token of the source. Once the end of input has been reached,
// NextToken returns a token of kind token.EOF on every call. When an illegal character is
// found, NextToken returns a token of kind token.Illegal, records the issue returned by Err,
// and keeps returning that token.
func (l *Lexer) NextToken() token.Token {
	if l.illegal != nil {
		return *l.illegal
	}

	sr := l.sr
	for isSpace(sr.Peek()) && !sr.AtEnd() {
		sr.Next()
	}

	if sr.AtEnd() {
		return token.Token{Kind: token.EOF, Ln: sr.NextLine(), Col: sr.NextColumn()}
	}

	r := sr.Next()
	t := token.Token{Ln: sr.Line(), Col: sr.Column()}

	switch r {
	case '=':
		if sr.Peek() == '=' {
			sr.Next()
			t.Kind, t.Literal = token.EQ, `==`
		} else {
			t.Kind, t.Literal = token.Assign, `=`
		}
	case '!':
		if sr.Peek() == '=' {
			sr.Next()
			t.Kind, t.Literal = token.NotEQ, `!=`
		} else {
			t.Kind, t.Literal = token.Bang, `!`
		}
	case '+':
		t.Kind, t.Literal = token.Plus, `+`
	case '-':
		t.Kind, t.Literal = token.Minus, `-`
	case '*':
		t.Kind, t.Literal = token.Asterisk, `*`
	case '/':
		t.Kind, t.Literal = token.Slash, `/`
	case '<':
		t.Kind, t.Literal = token.LT, `<`
	case '>':
		t.Kind, t.Literal = token.GT, `>`
	case ',':
		t.Kind, t.Literal = token.Comma, `,`
	case ';':
		t.Kind, t.Literal = token.Semicolon, `;`
	case '(':
		t.Kind, t.Literal = token.LParen, `(`
	case ')':
		t.Kind, t.Literal = token.RParen, `)`
	case '{':
		t.Kind, t.Literal = token.LBrace, `{`
	case '}':
		t.Kind, t.Literal = token.RBrace, `}`
	default:
		switch {
		case isLetter(r):
			t.Literal = l.readWhile(r, func(c rune) bool { return isLetter(c) || isDigit(c) })
			t.Kind = token.LookupIdent(t.Literal)
		case isDigit(r):
			t.Literal = l.readWhile(r, isDigit)
			t.Kind = token.Int
		default:
			t.Kind, t.Literal = token.Illegal, string(r)
			l.illegal = &t
			l.err = issue.NewReported(IllegalCharacter, issue.SEVERITY_ERROR, issue.H{`char`: t.Literal}, t)
		}
	}
	return t
}

// Tokens lexes all of src and returns the tokens up to and including the terminating EOF or
// Illegal token.
func Tokens(src string) ([]token.Token, issue.Reported) {
	l := New(src)
	ts := make([]token.Token, 0, len(src)/2+1)
	for {
		t := l.NextToken()
		ts = append(ts, t)
		if t.Kind == token.EOF || t.Kind == token.Illegal {
			return ts, l.err
		}
	}
}

func (l *Lexer) readWhile(first rune, accept func(rune) bool) string {
	buf := l.buf
	buf.Reset()
	buf.WriteRune(first)
	for !l.sr.AtEnd() && accept(l.sr.Peek()) {
		buf.WriteRune(l.sr.Next())
	}
	return buf.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

func isLetter(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
