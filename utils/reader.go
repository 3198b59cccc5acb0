package utils

import (
	"unicode/utf8"
)

// StringReader reads runes from a string and keeps track of the line and column of the
// last rune read. Lines and columns are 1-based.
type StringReader struct {
	p int
	l int
	c int
	s string
}

func NewStringReader(s string) *StringReader {
	return &StringReader{p: 0, l: 1, c: 0, s: s}
}

// Next returns the next rune and advances the reader. It returns 0 when the end of the
// string has been reached. An invalid UTF-8 sequence is consumed one byte at a time and
// returned as utf8.RuneError.
func (r *StringReader) Next() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c < utf8.RuneSelf {
		r.p++
	} else {
		var size int
		c, size = utf8.DecodeRuneInString(r.s[r.p:])
		r.p += size
	}
	if r.c < 0 {
		r.l++
		r.c = 0
	}
	r.c++
	if c == '\n' {
		// The newline itself belongs to the line it terminates
		r.c = -1
	}
	return c
}

// Peek returns the rune that the next call to Next will return without advancing.
func (r *StringReader) Peek() rune {
	if r.p >= len(r.s) {
		return 0
	}
	c := rune(r.s[r.p])
	if c >= utf8.RuneSelf {
		c, _ = utf8.DecodeRuneInString(r.s[r.p:])
	}
	return c
}

// AtEnd returns true when all runes have been read.
func (r *StringReader) AtEnd() bool {
	return r.p >= len(r.s)
}

// Column returns the column of the last rune read.
func (r *StringReader) Column() int {
	if r.c < 0 {
		return 0
	}
	return r.c
}

// Line returns the line of the last rune read.
func (r *StringReader) Line() int {
	return r.l
}

// NextLine and NextColumn return the position of the rune that Next will return.
func (r *StringReader) NextLine() int {
	if r.c < 0 {
		return r.l + 1
	}
	return r.l
}

func (r *StringReader) NextColumn() int {
	if r.c < 0 {
		return 1
	}
	return r.c + 1
}
