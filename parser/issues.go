package parser

import "github.com/lyraproj/issue/issue"

const (
	ParseError = `PARSE_ERROR`
)

func init() {
	issue.Hard(ParseError, `%{message}`)
}
