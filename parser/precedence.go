package parser

import "github.com/lyraproj/monkey-evaluator/token"

// Binding power of operators, lowest first
const (
	_ int = iota
	Lowest
	Equals
	LessGreater
	Sum
	Product
	Prefix
)

var precedences = map[token.Kind]int{
	token.EQ:       Equals,
	token.NotEQ:    Equals,
	token.LT:       LessGreater,
	token.GT:       LessGreater,
	token.Plus:     Sum,
	token.Minus:    Sum,
	token.Asterisk: Product,
	token.Slash:    Product,
}

func precedenceOf(k token.Kind) int {
	if p, ok := precedences[k]; ok {
		return p
	}
	return Lowest
}
