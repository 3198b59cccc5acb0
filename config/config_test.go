package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/config"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(os.TempDir(), `no-such-dir`, `monkey.yaml`))
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, eval.WARNING, c.LogLevel)
	require.Equal(t, `text`, c.Format)
	require.Equal(t, `>> `, c.Prompt)
	require.Equal(t, 4, c.Parallelism)
}

func TestLoadOverridesDefaults(t *testing.T) {
	c, err := config.Load(writeFile(t, "log_level: debug\nformat: json\n"))
	require.NoError(t, err)
	require.Equal(t, eval.DEBUG, c.LogLevel)
	require.Equal(t, config.FormatJSON, c.Format)
	require.Equal(t, `>> `, c.Prompt)
	require.Equal(t, 4, c.Parallelism)
}

func TestIllegalSettings(t *testing.T) {
	for _, content := range []string{"format: xml\n", "log_level: verbose\n", "parallelism: 0\n"} {
		_, err := config.Load(writeFile(t, content))
		require.Error(t, err, content)
		require.Equal(t, issue.Code(config.IllegalSetting), err.(issue.Reported).Code(), content)
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := config.Load(writeFile(t, "colour: red\n"))
	require.Error(t, err)
	require.Equal(t, issue.Code(config.ParseError), err.(issue.Reported).Code())
}
