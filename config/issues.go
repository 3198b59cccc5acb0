package config

import "github.com/lyraproj/issue/issue"

const (
	IllegalSetting = `CONFIG_ILLEGAL_SETTING`
	ParseError     = `CONFIG_PARSE_ERROR`
)

func init() {
	issue.Hard(IllegalSetting, `setting '%{name}' cannot be %{value}: %{reason}`)
	issue.Hard(ParseError, `unable to parse configuration file %{path}: %{detail}`)
}
