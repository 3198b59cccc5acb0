package evaluator

import (
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/eval"
)

// booleanInfix compares two booleans. Equality is the only relation defined for them.
func booleanInfix(expr *ast.InfixExpression, a, b eval.Boolean) eval.Value {
	switch expr.Operator {
	case `==`:
		return eval.WrapBoolean(a == b)
	case `!=`:
		return eval.WrapBoolean(a != b)
	default:
		panic(unsupportedOperator(expr, eval.BooleanType, eval.BooleanType))
	}
}
