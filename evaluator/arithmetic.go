package evaluator

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/eval"
)

// integerInfix applies an arithmetic or comparison operator to two integers. Arithmetic wraps
// on overflow and division truncates toward zero.
func integerInfix(expr *ast.InfixExpression, a, b int64) eval.Value {
	switch expr.Operator {
	case `+`:
		return eval.WrapInteger(a + b)
	case `-`:
		return eval.WrapInteger(a - b)
	case `*`:
		return eval.WrapInteger(a * b)
	case `/`:
		if b == 0 {
			panic(evalError(DivisionByZero, expr.Right.Location(), issue.NO_ARGS))
		}
		return eval.WrapInteger(a / b)
	case `<`:
		return eval.WrapBoolean(a < b)
	case `>`:
		return eval.WrapBoolean(a > b)
	case `==`:
		return eval.WrapBoolean(a == b)
	case `!=`:
		return eval.WrapBoolean(a != b)
	default:
		panic(unsupportedOperator(expr, eval.IntegerType, eval.IntegerType))
	}
}
