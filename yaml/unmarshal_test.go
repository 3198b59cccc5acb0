package yaml_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/lyraproj/monkey-evaluator/yaml"
	"github.com/stretchr/testify/require"
)

func ExampleUnmarshal() {
	for _, doc := range []string{`17`, `false`, `~`, ``} {
		v, _ := yaml.Unmarshal([]byte(doc))
		fmt.Println(v)
	}
	// Output:
	// 17
	// false
	// null
	// null
}

func TestUnmarshalRejectsCollectionsAndStrings(t *testing.T) {
	for _, doc := range []string{`[1, 2]`, `a: 1`, `hello`, `1.5`} {
		_, err := yaml.Unmarshal([]byte(doc))
		require.Error(t, err, doc)
		require.Equal(t, issue.Code(eval.IllegalValue), err.(issue.Reported).Code(), doc)
	}
}

func TestUnmarshalSyntaxError(t *testing.T) {
	_, err := yaml.Unmarshal([]byte("a: [1,\n"))
	require.Error(t, err)
	require.Equal(t, issue.Code(yaml.ParseError), err.(issue.Reported).Code())
}

func TestWrapValue(t *testing.T) {
	v, err := yaml.WrapValue(-4)
	require.NoError(t, err)
	require.True(t, eval.WrapInteger(-4).Equals(v))
}
