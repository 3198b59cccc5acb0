package evaluator

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/eval"
)

// Evaluator walks a syntax tree and computes its value. An Evaluator holds no state besides
// its logger and may be used for any number of evaluations.
type Evaluator struct {
	logger eval.Logger
}

func New(logger eval.Logger) *Evaluator {
	if logger == nil {
		logger = eval.NewNoopLogger()
	}
	return &Evaluator{logger: logger}
}

// Evaluate evaluates node using an evaluator that discards all log output
func Evaluate(node ast.Node) (eval.Value, error) {
	return New(nil).Evaluate(node)
}

func (e *Evaluator) Logger() eval.Logger {
	return e.logger
}

// Evaluate evaluates node and returns its value. A failure is returned as an issue.Reported
// and is also logged. No value is returned together with a failure.
func (e *Evaluator) Evaluate(node ast.Node) (result eval.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				result = nil
				err = ri
				e.logger.LogIssue(ri)
				return
			}
			panic(r)
		}
	}()

	if !isNilNode(node) {
		eval.Debug(e.logger, `evaluating %s`, node)
	}
	result = e.Eval(node)
	return
}

// Eval evaluates node and panics with an issue.Reported when evaluation fails
func (e *Evaluator) Eval(node ast.Node) eval.Value {
	return BasicEval(e, node)
}

func evalError(code issue.Code, location issue.Location, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, location)
}

// isNilNode is true for a nil interface and for a nil pointer to a node
func isNilNode(node ast.Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// BasicEval dispatches on the kind of node
func BasicEval(e *Evaluator, node ast.Node) eval.Value {
	if isNilNode(node) {
		panic(evalError(UnhandledExpression, nil, issue.H{`expression`: fmt.Sprintf(`%T`, node)}))
	}
	switch n := node.(type) {
	case *ast.Program:
		return evalProgram(e, n)
	case *ast.BlockStatement:
		return evalBlockStatement(e, n)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression)
	case *ast.ReturnStatement:
		return evalReturnStatement(e, n)
	case *ast.LetStatement:
		panic(evalError(NotImplemented, n.Location(), issue.H{`feature`: `let statement`}))
	case *ast.IntegerLiteral:
		return eval.WrapInteger(n.Value)
	case *ast.BooleanLiteral:
		return eval.WrapBoolean(n.Value)
	case *ast.Identifier:
		return evalIdentifier(n)
	case *ast.PrefixExpression:
		return evalPrefixExpression(e, n)
	case *ast.InfixExpression:
		return evalInfixExpression(e, n)
	case *ast.IfExpression:
		return evalIfExpression(e, n)
	case *ast.FunctionLiteral:
		panic(evalError(NotImplemented, n.Location(), issue.H{`feature`: `function literal`}))
	default:
		panic(evalError(UnhandledExpression, node.Location(), issue.H{`expression`: fmt.Sprintf(`%T`, node)}))
	}
}

// isReturn is true when v is unwinding a return statement
func isReturn(v eval.Value) bool {
	_, ok := v.(*eval.ReturnValue)
	return ok
}

func evalProgram(e *Evaluator, program *ast.Program) eval.Value {
	if len(program.Statements) == 0 {
		panic(evalError(IllegalArgument, program.Location(), issue.H{`container`: `program`}))
	}
	var result eval.Value
	for _, stmt := range program.Statements {
		result = e.Eval(stmt)
		if rv, ok := result.(*eval.ReturnValue); ok {
			return rv.Unwrap()
		}
	}
	return result
}

func evalBlockStatement(e *Evaluator, block *ast.BlockStatement) eval.Value {
	if len(block.Statements) == 0 {
		panic(evalError(IllegalArgument, block.Location(), issue.H{`container`: `block`}))
	}
	var result eval.Value
	for _, stmt := range block.Statements {
		result = e.Eval(stmt)
		if isReturn(result) {
			break
		}
	}
	return result
}

func evalReturnStatement(e *Evaluator, stmt *ast.ReturnStatement) eval.Value {
	v := e.Eval(stmt.Value)
	if isReturn(v) {
		return v
	}
	return eval.WrapReturn(v)
}

func evalIdentifier(ident *ast.Identifier) eval.Value {
	if ident.Value == `null` {
		return eval.Null
	}
	panic(evalError(UnboundIdentifier, ident.Location(), issue.H{`name`: ident.Value}))
}

func evalPrefixExpression(e *Evaluator, expr *ast.PrefixExpression) eval.Value {
	right := e.Eval(expr.Right)
	if isReturn(right) {
		return right
	}
	switch expr.Operator {
	case `!`:
		return eval.WrapBoolean(!eval.IsTruthy(right))
	case `-`:
		if iv, ok := right.(*eval.Integer); ok {
			return eval.WrapInteger(-iv.Int())
		}
		panic(evalError(OperandTypeMismatch, expr.Location(), issue.H{`operator`: expr.Operator, `right`: right.Type().String()}))
	default:
		panic(evalError(UnsupportedPrefixOperator, expr.Location(), issue.H{`operator`: expr.Operator, `right`: right.Type().String()}))
	}
}

func evalInfixExpression(e *Evaluator, expr *ast.InfixExpression) eval.Value {
	left := e.Eval(expr.Left)
	if isReturn(left) {
		return left
	}
	right := e.Eval(expr.Right)
	if isReturn(right) {
		return right
	}

	switch l := left.(type) {
	case *eval.Integer:
		if r, ok := right.(*eval.Integer); ok {
			return integerInfix(expr, l.Int(), r.Int())
		}
	case eval.Boolean:
		if r, ok := right.(eval.Boolean); ok {
			return booleanInfix(expr, l, r)
		}
	}

	args := issue.H{`left`: left.Type().String(), `operator`: expr.Operator, `right`: right.Type().String()}
	if left.Type() != right.Type() {
		panic(evalError(TypeMismatch, expr.Location(), args))
	}
	panic(evalError(UnsupportedOperator, expr.Location(), args))
}

func evalIfExpression(e *Evaluator, expr *ast.IfExpression) eval.Value {
	cond := e.Eval(expr.Condition)
	if isReturn(cond) {
		return cond
	}
	if eval.IsTruthy(cond) {
		return e.Eval(expr.Consequence)
	}
	if expr.Alternative != nil {
		return e.Eval(expr.Alternative)
	}
	return eval.Null
}

func unsupportedOperator(expr *ast.InfixExpression, left, right eval.ValueType) issue.Reported {
	return evalError(UnsupportedOperator, expr.Location(), issue.H{`left`: left.String(), `operator`: expr.Operator, `right`: right.String()})
}
