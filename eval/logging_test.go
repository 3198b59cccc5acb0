package eval_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/stretchr/testify/require"
)

func TestArrayLogger(t *testing.T) {
	l := eval.NewArrayLogger()
	eval.Debug(l, `evaluating %s`, `x`)
	eval.Warning(l, `careful`)
	l.Log(eval.INFO, eval.WrapInteger(1), eval.True)

	require.Equal(t, []string{`evaluating x`}, l.Entries(eval.DEBUG))
	require.Equal(t, []string{`careful`}, l.Entries(eval.WARNING))
	require.Equal(t, []string{`1true`}, l.Entries(eval.INFO))
	require.Empty(t, l.Entries(eval.ERR))
}

func TestArrayLoggerLogIssue(t *testing.T) {
	l := eval.NewArrayLogger()
	l.LogIssue(issue.NewReported(eval.IllegalValue, issue.SEVERITY_ERROR, issue.H{`value`: `x`}, nil))
	require.Len(t, l.Entries(eval.ERR), 1)
	require.Contains(t, l.Entries(eval.ERR)[0], `x`)
}

func TestWriterLoggerFiltersAndRoutes(t *testing.T) {
	out := bytes.NewBufferString(``)
	err := bytes.NewBufferString(``)
	l := eval.NewWriterLogger(out, err, eval.INFO)

	eval.Debug(l, `hidden`)
	eval.Info(l, `shown %d`, 1)
	eval.Err(l, `failed`)

	require.Equal(t, "info: shown 1\n", out.String())
	require.Equal(t, "err: failed\n", err.String())
	require.Equal(t, eval.INFO, l.Level())
}

func TestLogLevelSeverity(t *testing.T) {
	require.True(t, eval.DEBUG.Severity() < eval.WARNING.Severity())
	require.True(t, eval.ERR.Severity() < eval.EMERG.Severity())
	require.True(t, eval.NOTICE.IsValid())
	require.False(t, eval.LogLevel(`verbose`).IsValid())
}

func TestWriterLoggerConcurrentEntries(t *testing.T) {
	err := bytes.NewBufferString(``)
	l := eval.NewWriterLogger(bytes.NewBufferString(``), err, eval.DEBUG)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eval.Err(l, `file %d failed`, i)
			l.LogIssue(issue.NewReported(eval.IllegalValue, issue.SEVERITY_ERROR, issue.H{`value`: i}, nil))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(err.String(), "\n"), "\n")
	require.Len(t, lines, 32)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, `err: `), line)
	}
}
