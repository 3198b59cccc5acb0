package config

import (
	"io/ioutil"
	"os"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/lyraproj/monkey-evaluator/utils"
	ym "gopkg.in/yaml.v2"
)

// DefaultFile is the configuration file read by the command line tool unless another one
// is named
const DefaultFile = `.monkey.yaml`

// Output formats
const (
	FormatText  = `text`
	FormatJSON  = `json`
	FormatProto = `proto`
)

var Formats = []string{FormatText, FormatJSON, FormatProto}

// Config holds the settings of the command line tool
type Config struct {
	LogLevel    eval.LogLevel `yaml:"log_level"`
	Format      string        `yaml:"format"`
	Prompt      string        `yaml:"prompt"`
	Parallelism int           `yaml:"parallelism"`
}

// Default returns a Config with all settings at their default values
func Default() *Config {
	return &Config{
		LogLevel:    eval.WARNING,
		Format:      FormatText,
		Prompt:      `>> `,
		Parallelism: 4,
	}
}

// Load reads the YAML file at path on top of the default settings. A missing file is not an
// error. The result is validated.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err = ym.UnmarshalStrict(data, c); err != nil {
		return nil, issue.NewReported(ParseError, issue.SEVERITY_ERROR, issue.H{`path`: path, `detail`: err.Error()}, nil)
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that all settings have legal values
func (c *Config) Validate() error {
	if !c.LogLevel.IsValid() {
		return illegal(`log_level`, c.LogLevel, `unknown log level`)
	}
	if !IsFormat(c.Format) {
		return illegal(`format`, c.Format, `expected one of text, json, or proto`)
	}
	if c.Parallelism < 1 {
		return illegal(`parallelism`, c.Parallelism, `must be at least 1`)
	}
	return nil
}

func IsFormat(f string) bool {
	return utils.ContainsString(Formats, f)
}

func illegal(name string, value interface{}, reason string) error {
	return issue.NewReported(IllegalSetting, issue.SEVERITY_ERROR, issue.H{`name`: name, `value`: value, `reason`: reason}, nil)
}
