package mspec

import "github.com/lyraproj/issue/issue"

const (
	SuiteParseError  = `MSPEC_PARSE_ERROR`
	BadLanguageRange = `MSPEC_BAD_LANGUAGE_RANGE`
)

func init() {
	issue.Hard(SuiteParseError, `unable to parse suite %{path}: %{detail}`)
	issue.Hard(BadLanguageRange, `suite %{suite} has an invalid language range '%{range}': %{detail}`)
}
