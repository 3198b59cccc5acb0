package evaluator_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/lyraproj/monkey-evaluator/evaluator"
	"github.com/lyraproj/monkey-evaluator/parser"
	"github.com/lyraproj/monkey-evaluator/token"
	"github.com/stretchr/testify/require"
)

func ExampleEvaluate() {
	program, _, _ := parser.Parse(`if (10 > 1) { return 1 + 2 * 3; 99 } else { 0 }`)
	v, err := evaluator.Evaluate(program)
	fmt.Println(v, v.Type(), err)
	// Output: 7 INTEGER <nil>
}

func evaluate(t *testing.T, src string) (eval.Value, error) {
	t.Helper()
	program, errs, err := parser.Parse(src)
	require.NoError(t, err)
	require.Empty(t, errs, src)
	return evaluator.Evaluate(program)
}

func evaluateOK(t *testing.T, src string) eval.Value {
	t.Helper()
	v, err := evaluate(t, src)
	require.NoError(t, err, src)
	return v
}

func requireIssue(t *testing.T, src string, code issue.Code, message string) {
	t.Helper()
	v, err := evaluate(t, src)
	require.Nil(t, v, src)
	require.Error(t, err, src)
	ri, ok := err.(issue.Reported)
	require.True(t, ok, src)
	require.Equal(t, code, ri.Code(), src)
	require.Contains(t, ri.Error(), message, src)
}

func TestIntegerExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{`5`, 5},
		{`10`, 10},
		{`-5`, -5},
		{`--5`, 5},
		{`5 + 5 + 5 + 5 - 10`, 10},
		{`2 * 2 * 2 * 2 * 2`, 32},
		{`-50 + 100 + -50`, 0},
		{`5 * 2 + 10`, 20},
		{`5 + 2 * 10`, 25},
		{`1 + 2 * 3`, 7},
		{`20 + 2 * -10`, 0},
		{`50 / 2 * 2 + 10`, 60},
		{`2 * (5 + 10)`, 30},
		{`3 * 3 * 3 + 10`, 37},
		{`3 * (3 * 3) + 10`, 37},
		{`(5 + 10 * 2 + 15 / 3) * 2 + -10`, 50},
		{`7 / 2`, 3},
		{`-7 / 2`, -3},
		{`7 / -2`, -3},
	}
	for _, tt := range tests {
		require.True(t, eval.WrapInteger(tt.want).Equals(evaluateOK(t, tt.src)), tt.src)
	}
}

func TestIntegerOverflowWraps(t *testing.T) {
	max := strconv.FormatInt(math.MaxInt64, 10)
	v := evaluateOK(t, max+` + 1`)
	require.Equal(t, int64(math.MinInt64), v.(*eval.Integer).Int())
}

func TestBooleanExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1 < 2`, true},
		{`1 > 2`, false},
		{`1 < 1`, false},
		{`1 > 1`, false},
		{`1 == 1`, true},
		{`1 != 1`, false},
		{`1 == 2`, false},
		{`1 != 2`, true},
		{`true == true`, true},
		{`false == false`, true},
		{`true == false`, false},
		{`true != false`, true},
		{`false != true`, true},
		{`(1 < 2) == true`, true},
		{`(1 < 2) == false`, false},
		{`(1 > 2) == true`, false},
		{`(1 > 2) == false`, true},
	}
	for _, tt := range tests {
		require.Equal(t, eval.WrapBoolean(tt.want), evaluateOK(t, tt.src), tt.src)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{`!true`, false},
		{`!false`, true},
		{`!5`, false},
		{`!!true`, true},
		{`!!false`, false},
		{`!!5`, true},
		{`!0`, true},
		{`!null`, true},
	}
	for _, tt := range tests {
		require.Equal(t, eval.WrapBoolean(tt.want), evaluateOK(t, tt.src), tt.src)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want eval.Value
	}{
		{`if (true) { 10 }`, eval.WrapInteger(10)},
		{`if (false) { 10 }`, eval.Null},
		{`if (1) { 10 }`, eval.WrapInteger(10)},
		{`if (0) { 10 }`, eval.Null},
		{`if (null) { 10 } else { 5 }`, eval.WrapInteger(5)},
		{`if (1 < 2) { 10 }`, eval.WrapInteger(10)},
		{`if (1 > 2) { 10 }`, eval.Null},
		{`if (1 > 2) { 10 } else { 20 }`, eval.WrapInteger(20)},
		{`if (1 < 2) { 10 } else { 20 }`, eval.WrapInteger(10)},
	}
	for _, tt := range tests {
		require.True(t, tt.want.Equals(evaluateOK(t, tt.src)), tt.src)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{`return 10;`, 10},
		{`return 10; 9;`, 10},
		{`return 2 * 5; 9;`, 10},
		{`9; return 2 * 5; 9;`, 10},
		{`if (10 > 1) { if (10 > 1) { return 10; } return 1; }`, 10},
		{`if (10 > 1) { return if (true) { return 10 } }; 1`, 10},
		{`1 + if (true) { return 10 }`, 10},
		{`-if (true) { return 10 }`, 10},
		{`if (if (true) { return 10 }) { 1 }; 2`, 10},
	}
	for _, tt := range tests {
		v := evaluateOK(t, tt.src)
		require.Equal(t, eval.IntegerType, v.Type(), tt.src)
		require.Equal(t, tt.want, v.(*eval.Integer).Int(), tt.src)
	}
}

func TestNestedBlockPropagatesWrappedReturn(t *testing.T) {
	program, _, _ := parser.Parse(`if (true) { return 3 }`)
	block := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.IfExpression).Consequence
	v, err := evaluator.Evaluate(block)
	require.NoError(t, err)
	require.Equal(t, eval.ReturnType, v.Type())
	require.True(t, eval.WrapInteger(3).Equals(v.(*eval.ReturnValue).Unwrap()))
}

func TestNullIdentifier(t *testing.T) {
	require.Equal(t, eval.Null, evaluateOK(t, `null`))
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		src     string
		code    issue.Code
		message string
	}{
		{`5 + true;`, evaluator.TypeMismatch, `type mismatch: INTEGER + BOOLEAN`},
		{`5 + true; 5;`, evaluator.TypeMismatch, `type mismatch: INTEGER + BOOLEAN`},
		{`true == 1`, evaluator.TypeMismatch, `type mismatch: BOOLEAN == INTEGER`},
		{`null == 1`, evaluator.TypeMismatch, `type mismatch: NULL == INTEGER`},
		{`-true`, evaluator.OperandTypeMismatch, `type mismatch: -BOOLEAN`},
		{`true + false;`, evaluator.UnsupportedOperator, `unknown operator: BOOLEAN + BOOLEAN`},
		{`true < false;`, evaluator.UnsupportedOperator, `unknown operator: BOOLEAN < BOOLEAN`},
		{`5; true + false; 5`, evaluator.UnsupportedOperator, `unknown operator: BOOLEAN + BOOLEAN`},
		{`if (10 > 1) { true + false; }`, evaluator.UnsupportedOperator, `unknown operator: BOOLEAN + BOOLEAN`},
		{`null == null`, evaluator.UnsupportedOperator, `unknown operator: NULL == NULL`},
		{`foobar`, evaluator.UnboundIdentifier, `identifier not found: foobar`},
		{`let a = 5;`, evaluator.NotImplemented, `evaluation of let statement is not implemented`},
		{`fn(x) { x }`, evaluator.NotImplemented, `evaluation of function literal is not implemented`},
		{`10 / (5 - 5)`, evaluator.DivisionByZero, `division by zero`},
		{`if (true) {}`, evaluator.IllegalArgument, `cannot evaluate an empty block`},
		{``, evaluator.IllegalArgument, `cannot evaluate an empty program`},
	}
	for _, tt := range tests {
		requireIssue(t, tt.src, tt.code, tt.message)
	}
}

func TestIssueLocation(t *testing.T) {
	_, err := evaluate(t, "1;\n  2 + true")
	ri := err.(issue.Reported)
	require.Equal(t, 2, ri.Location().Line())
	require.Equal(t, 5, ri.Location().Pos())
}

func TestLeftOperandIsEvaluatedFirst(t *testing.T) {
	_, err := evaluate(t, `a + b`)
	require.Contains(t, err.Error(), `identifier not found: a`)
}

func TestUnhandledNode(t *testing.T) {
	v, err := evaluator.Evaluate(nil)
	require.Nil(t, v)
	require.Equal(t, issue.Code(evaluator.UnhandledExpression), err.(issue.Reported).Code())
}

func TestNilPointerNodes(t *testing.T) {
	nodes := []ast.Node{
		(*ast.Program)(nil),
		(*ast.InfixExpression)(nil),
		(*ast.BlockStatement)(nil),
	}
	for _, node := range nodes {
		e := evaluator.New(eval.NewArrayLogger())
		v, err := e.Evaluate(node)
		require.Nil(t, v)
		require.Error(t, err)
		require.Equal(t, issue.Code(evaluator.UnhandledExpression), err.(issue.Reported).Code())
	}
}

func TestHandBuiltPrefixWithUnknownOperator(t *testing.T) {
	expr := &ast.PrefixExpression{
		Token:    token.New(token.Plus, `+`),
		Operator: `+`,
		Right:    &ast.IntegerLiteral{Token: token.New(token.Int, `1`), Value: 1},
	}
	_, err := evaluator.Evaluate(expr)
	require.Contains(t, err.Error(), `unknown operator: +INTEGER`)
}

func TestLogging(t *testing.T) {
	logger := eval.NewArrayLogger()
	e := evaluator.New(logger)
	require.Equal(t, logger, e.Logger())

	program, _, _ := parser.Parse(`1 + 2`)
	_, err := e.Evaluate(program)
	require.NoError(t, err)
	require.Equal(t, []string{`evaluating (1 + 2)`}, logger.Entries(eval.DEBUG))

	program, _, _ = parser.Parse(`1 + true`)
	_, err = e.Evaluate(program)
	require.Error(t, err)
	errs := logger.Entries(eval.ERR)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], `type mismatch: INTEGER + BOOLEAN`)
}

func TestEvaluatorIsReusable(t *testing.T) {
	e := evaluator.New(eval.NewNoopLogger())
	for i := 0; i < 3; i++ {
		program, _, _ := parser.Parse(strconv.Itoa(i) + ` * 2`)
		v, err := e.Evaluate(program)
		require.NoError(t, err)
		require.Equal(t, int64(i*2), v.(*eval.Integer).Int())
	}
}
