package yaml

import "github.com/lyraproj/issue/issue"

const (
	ParseError = `YAML_PARSE_ERROR`
)

func init() {
	issue.Hard(ParseError, `unable to parse YAML: %{detail}`)
}
