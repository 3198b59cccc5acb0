package evaluator

import "github.com/lyraproj/issue/issue"

const (
	TypeMismatch              = `EVAL_TYPE_MISMATCH`
	OperandTypeMismatch       = `EVAL_OPERAND_TYPE_MISMATCH`
	UnsupportedOperator       = `EVAL_UNSUPPORTED_OPERATOR`
	UnsupportedPrefixOperator = `EVAL_UNSUPPORTED_PREFIX_OPERATOR`
	UnboundIdentifier         = `EVAL_UNBOUND_IDENTIFIER`
	NotImplemented            = `EVAL_NOT_IMPLEMENTED`
	IllegalArgument           = `EVAL_ILLEGAL_ARGUMENT`
	DivisionByZero            = `EVAL_DIVISION_BY_ZERO`
	UnhandledExpression       = `EVAL_UNHANDLED_EXPRESSION`
)

func init() {
	issue.Hard(TypeMismatch, `type mismatch: %{left} %{operator} %{right}`)
	issue.Hard(OperandTypeMismatch, `type mismatch: %{operator}%{right}`)
	issue.Hard(UnsupportedOperator, `unknown operator: %{left} %{operator} %{right}`)
	issue.Hard(UnsupportedPrefixOperator, `unknown operator: %{operator}%{right}`)
	issue.Hard(UnboundIdentifier, `identifier not found: %{name}`)
	issue.Hard(NotImplemented, `evaluation of %{feature} is not implemented`)
	issue.Hard(IllegalArgument, `cannot evaluate an empty %{container}`)
	issue.Hard(DivisionByZero, `division by zero`)
	issue.Hard(UnhandledExpression, `unhandled expression %{expression}`)
}
