package yaml

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
	ym "gopkg.in/yaml.v2"
)

// Unmarshal parses a YAML document that holds a single scalar and returns the runtime value
// for it. An empty document or a YAML null yields eval.Null.
func Unmarshal(data []byte) (eval.Value, error) {
	var itm interface{}
	if err := ym.Unmarshal(data, &itm); err != nil {
		return nil, issue.NewReported(ParseError, issue.SEVERITY_ERROR, issue.H{`detail`: err.Error()}, nil)
	}
	return WrapValue(itm)
}

// WrapValue converts a value produced by the YAML decoder into a runtime value
func WrapValue(v interface{}) (eval.Value, error) {
	switch v.(type) {
	case ym.MapSlice, map[interface{}]interface{}, []interface{}:
		// no runtime counterpart for collections
	default:
		if ev, ok := eval.Wrap(v); ok {
			return ev, nil
		}
	}
	return nil, issue.NewReported(eval.IllegalValue, issue.SEVERITY_ERROR, issue.H{`value`: fmt.Sprintf(`%v`, v)}, nil)
}
