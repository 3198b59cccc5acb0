package ast

import (
	"bytes"
	"strconv"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/token"
)

type (
	// Node is implemented by all nodes of the syntax tree. The set of implementations is
	// closed; nodes are immutable once the parser has returned them.
	Node interface {
		// TokenLiteral returns the literal of the token that the node originates from
		TokenLiteral() string

		// String returns the canonical, fully parenthesized rendering of the node
		String() string

		// Location returns the location of the originating token
		Location() issue.Location

		toString(b *bytes.Buffer)
	}

	Statement interface {
		Node
		statementNode()
	}

	Expression interface {
		Node
		expressionNode()
	}

	Program struct {
		Statements []Statement
	}

	LetStatement struct {
		Token token.Token
		Name  *Identifier
		Value Expression
	}

	ReturnStatement struct {
		Token token.Token
		Value Expression
	}

	ExpressionStatement struct {
		Token      token.Token
		Expression Expression
	}

	BlockStatement struct {
		Token      token.Token
		Statements []Statement
	}

	Identifier struct {
		Token token.Token
		Value string
	}

	IntegerLiteral struct {
		Token token.Token
		Value int64
	}

	BooleanLiteral struct {
		Token token.Token
		Value bool
	}

	PrefixExpression struct {
		Token    token.Token
		Operator string
		Right    Expression
	}

	InfixExpression struct {
		Token    token.Token
		Operator string
		Left     Expression
		Right    Expression
	}

	// IfExpression has a nil Alternative when no else branch was given
	IfExpression struct {
		Token       token.Token
		Condition   Expression
		Consequence *BlockStatement
		Alternative *BlockStatement
	}

	FunctionLiteral struct {
		Token      token.Token
		Parameters []*Identifier
		Body       *BlockStatement
	}
)

const statementSeparator = `; `

func render(n Node) string {
	b := bytes.NewBufferString(``)
	n.toString(b)
	return b.String()
}

func writeStatements(b *bytes.Buffer, ss []Statement) {
	for i, s := range ss {
		if i > 0 {
			b.WriteString(statementSeparator)
		}
		s.toString(b)
	}
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ``
}

func (p *Program) String() string { return render(p) }

func (p *Program) Location() issue.Location {
	if len(p.Statements) > 0 {
		return p.Statements[0].Location()
	}
	return issue.NewLocation(``, 1, 1)
}

func (p *Program) toString(b *bytes.Buffer) {
	writeStatements(b, p.Statements)
}

func (s *LetStatement) statementNode()           {}
func (s *LetStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *LetStatement) String() string           { return render(s) }
func (s *LetStatement) Location() issue.Location { return s.Token }

func (s *LetStatement) toString(b *bytes.Buffer) {
	b.WriteString(s.Token.Literal)
	b.WriteByte(' ')
	s.Name.toString(b)
	b.WriteString(` = `)
	s.Value.toString(b)
}

func (s *ReturnStatement) statementNode()           {}
func (s *ReturnStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *ReturnStatement) String() string           { return render(s) }
func (s *ReturnStatement) Location() issue.Location { return s.Token }

func (s *ReturnStatement) toString(b *bytes.Buffer) {
	b.WriteString(s.Token.Literal)
	b.WriteByte(' ')
	s.Value.toString(b)
}

func (s *ExpressionStatement) statementNode()           {}
func (s *ExpressionStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *ExpressionStatement) String() string           { return render(s) }
func (s *ExpressionStatement) Location() issue.Location { return s.Token }

func (s *ExpressionStatement) toString(b *bytes.Buffer) {
	s.Expression.toString(b)
}

func (s *BlockStatement) statementNode()           {}
func (s *BlockStatement) TokenLiteral() string     { return s.Token.Literal }
func (s *BlockStatement) String() string           { return render(s) }
func (s *BlockStatement) Location() issue.Location { return s.Token }

func (s *BlockStatement) toString(b *bytes.Buffer) {
	if len(s.Statements) == 0 {
		b.WriteString(`{}`)
		return
	}
	b.WriteString(`{ `)
	writeStatements(b, s.Statements)
	b.WriteString(` }`)
}

func (e *Identifier) expressionNode()          {}
func (e *Identifier) TokenLiteral() string     { return e.Token.Literal }
func (e *Identifier) String() string           { return e.Value }
func (e *Identifier) Location() issue.Location { return e.Token }
func (e *Identifier) toString(b *bytes.Buffer) { b.WriteString(e.Value) }

func (e *IntegerLiteral) expressionNode()          {}
func (e *IntegerLiteral) TokenLiteral() string     { return e.Token.Literal }
func (e *IntegerLiteral) String() string           { return render(e) }
func (e *IntegerLiteral) Location() issue.Location { return e.Token }

func (e *IntegerLiteral) toString(b *bytes.Buffer) {
	b.WriteString(strconv.FormatInt(e.Value, 10))
}

func (e *BooleanLiteral) expressionNode()          {}
func (e *BooleanLiteral) TokenLiteral() string     { return e.Token.Literal }
func (e *BooleanLiteral) String() string           { return render(e) }
func (e *BooleanLiteral) Location() issue.Location { return e.Token }

func (e *BooleanLiteral) toString(b *bytes.Buffer) {
	b.WriteString(strconv.FormatBool(e.Value))
}

func (e *PrefixExpression) expressionNode()          {}
func (e *PrefixExpression) TokenLiteral() string     { return e.Token.Literal }
func (e *PrefixExpression) String() string           { return render(e) }
func (e *PrefixExpression) Location() issue.Location { return e.Token }

func (e *PrefixExpression) toString(b *bytes.Buffer) {
	b.WriteByte('(')
	b.WriteString(e.Operator)
	e.Right.toString(b)
	b.WriteByte(')')
}

func (e *InfixExpression) expressionNode()          {}
func (e *InfixExpression) TokenLiteral() string     { return e.Token.Literal }
func (e *InfixExpression) String() string           { return render(e) }
func (e *InfixExpression) Location() issue.Location { return e.Token }

func (e *InfixExpression) toString(b *bytes.Buffer) {
	b.WriteByte('(')
	e.Left.toString(b)
	b.WriteByte(' ')
	b.WriteString(e.Operator)
	b.WriteByte(' ')
	e.Right.toString(b)
	b.WriteByte(')')
}

func (e *IfExpression) expressionNode()          {}
func (e *IfExpression) TokenLiteral() string     { return e.Token.Literal }
func (e *IfExpression) String() string           { return render(e) }
func (e *IfExpression) Location() issue.Location { return e.Token }

func (e *IfExpression) toString(b *bytes.Buffer) {
	b.WriteString(`if (`)
	e.Condition.toString(b)
	b.WriteString(`) `)
	e.Consequence.toString(b)
	if e.Alternative != nil {
		b.WriteString(` else `)
		e.Alternative.toString(b)
	}
}

func (e *FunctionLiteral) expressionNode()          {}
func (e *FunctionLiteral) TokenLiteral() string     { return e.Token.Literal }
func (e *FunctionLiteral) String() string           { return render(e) }
func (e *FunctionLiteral) Location() issue.Location { return e.Token }

func (e *FunctionLiteral) toString(b *bytes.Buffer) {
	b.WriteString(e.Token.Literal)
	b.WriteByte('(')
	for i, p := range e.Parameters {
		if i > 0 {
			b.WriteString(`, `)
		}
		p.toString(b)
	}
	b.WriteString(`) `)
	e.Body.toString(b)
}
