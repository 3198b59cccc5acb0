package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{`a`, `b`}, `b`))
	require.False(t, ContainsString([]string{`a`, `b`}, `c`))
	require.False(t, ContainsString([]string{``}, ``))
}

func TestIndent(t *testing.T) {
	require.Equal(t, "a\n\tb\n\tc", Indent("a\nb\nc", "\t"))
}

func TestStringReader(t *testing.T) {
	r := NewStringReader("aé\nb")
	require.Equal(t, 'a', r.Next())
	require.Equal(t, 1, r.Column())
	require.Equal(t, 'é', r.Peek())
	require.Equal(t, 'é', r.Next())
	require.Equal(t, 2, r.Column())
	require.Equal(t, '\n', r.Next())
	require.Equal(t, 1, r.Line())
	require.Equal(t, 2, r.NextLine())
	require.Equal(t, 1, r.NextColumn())
	require.Equal(t, 'b', r.Next())
	require.Equal(t, 2, r.Line())
	require.Equal(t, 1, r.Column())
	require.True(t, r.AtEnd())
	require.Equal(t, rune(0), r.Next())
}
