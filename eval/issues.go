package eval

import "github.com/lyraproj/issue/issue"

const (
	IllegalValue = `EVAL_ILLEGAL_VALUE`
)

func init() {
	issue.Hard(IllegalValue, `the value %{value} cannot be converted into a runtime value`)
}
