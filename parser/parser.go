package parser

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/lexer"
	"github.com/lyraproj/monkey-evaluator/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression

	// Parser is a Pratt parser that builds an ast.Program from the tokens of a lexer.Lexer. A
	// Parser is intended for a single call to ParseProgram and is not safe for concurrent use.
	Parser struct {
		l         *lexer.Lexer
		curToken  token.Token
		peekToken token.Token
		primed    bool
		errors    []string
		issues    []issue.Reported

		prefixParseFns map[token.Kind]prefixParseFn
		infixParseFns  map[token.Kind]infixParseFn
	}
)

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: make([]string, 0), issues: make([]issue.Reported, 0)}

	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.Ident:    p.parseIdentifier,
		token.Int:      p.parseIntegerLiteral,
		token.True:     p.parseBooleanLiteral,
		token.False:    p.parseBooleanLiteral,
		token.Bang:     p.parsePrefixExpression,
		token.Minus:    p.parsePrefixExpression,
		token.LParen:   p.parseGroupedExpression,
		token.If:       p.parseIfExpression,
		token.Function: p.parseFunctionLiteral,
	}

	p.infixParseFns = make(map[token.Kind]infixParseFn, len(precedences))
	for k := range precedences {
		p.infixParseFns[k] = p.parseInfixExpression
	}
	return p
}

// Parse parses src and returns the program together with the recoverable parse errors. The
// returned error is non nil only when lexing failed.
func Parse(src string) (*ast.Program, []string, error) {
	p := New(lexer.New(src))
	program, err := p.ParseProgram()
	return program, p.Errors(), err
}

// Errors returns the messages of the recoverable errors in the order they were found
func (p *Parser) Errors() []string {
	return p.errors
}

// Issues returns the recoverable errors as located issues
func (p *Parser) Issues() []issue.Reported {
	return p.issues
}

// Err returns all recoverable errors combined into one error, or nil when there are none.
func (p *Parser) Err() error {
	var result *multierror.Error
	for _, i := range p.issues {
		result = multierror.Append(result, i)
	}
	return result.ErrorOrNil()
}

// ParseProgram parses statements until the end of input. Recoverable errors are collected and
// parsing resumes after the failed statement. A lexer failure stops the parse at once, the
// statements parsed so far are returned together with the lexer issue.
func (p *Parser) ParseProgram() (program *ast.Program, err error) {
	program = &ast.Program{Statements: []ast.Statement{}}
	defer func() {
		if r := recover(); r != nil {
			if ri, ok := r.(issue.Reported); ok {
				err = ri
				return
			}
			panic(r)
		}
	}()

	if !p.primed {
		p.primed = true
		p.nextToken()
		p.nextToken()
	}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	if p.peekToken.Kind == token.Illegal {
		panic(p.l.Err())
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool {
	return p.curToken.Kind == k
}

func (p *Parser) peekTokenIs(k token.Kind) bool {
	return p.peekToken.Kind == k
}

// expectPeek advances when the peek token is of kind k and records an error otherwise
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.error(p.peekToken, `expected next token to be %s, got %s instead`, k, p.peekToken.Kind)
	return false
}

func (p *Parser) error(at token.Token, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, msg)
	p.issues = append(p.issues, issue.NewReported(ParseError, issue.SEVERITY_ERROR, issue.H{`message`: msg}, at))
}

func (p *Parser) skipSemicolons() {
	for p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
}

func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peekToken.Kind)
}

func (p *Parser) curPrecedence() int {
	return precedenceOf(p.curToken.Kind)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	t := p.curToken
	if !p.expectPeek(token.Ident) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	p.skipSemicolons()
	return &ast.LetStatement{Token: t, Name: name, Value: value}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	t := p.curToken
	p.nextToken()
	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	p.skipSemicolons()
	return &ast.ReturnStatement{Token: t, Value: value}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	t := p.curToken
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	p.skipSemicolons()
	return &ast.ExpressionStatement{Token: t, Expression: expr}
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.error(p.curToken, `no prefix parse function for %s found`, p.curToken.Kind)
		return nil
	}
	left := prefix()
	for left != nil && !p.peekTokenIs(token.Semicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.error(p.curToken, `could not parse %q as integer`, p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.True)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	t := p.curToken
	p.nextToken()
	right := p.parseExpression(Prefix)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpression{Token: t, Operator: t.Literal, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	t := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: t, Operator: t.Literal, Left: left, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(Lowest)
	if expr == nil || !p.expectPeek(token.RParen) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	t := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if cond == nil || !p.expectPeek(token.RParen) || !p.expectPeek(token.LBrace) {
		return nil
	}
	consequence := p.parseBlockStatement()
	if consequence == nil {
		return nil
	}

	var alternative *ast.BlockStatement
	if p.peekTokenIs(token.Else) {
		p.nextToken()
		if !p.expectPeek(token.LBrace) {
			return nil
		}
		if alternative = p.parseBlockStatement(); alternative == nil {
			return nil
		}
	}
	return &ast.IfExpression{Token: t, Condition: cond, Consequence: consequence, Alternative: alternative}
}

// parseBlockStatement is called with the opening brace as the current token and returns with
// the closing brace as the current token. It returns nil when the input ends before the block
// is closed.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else if p.curTokenIs(token.RBrace) {
			// the failed statement stopped at the closing brace
			break
		}
		p.nextToken()
	}
	if p.curTokenIs(token.EOF) {
		p.error(p.curToken, `expected next token to be %s, got %s instead`, token.RBrace, token.EOF)
		return nil
	}
	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	t := p.curToken
	if !p.expectPeek(token.LParen) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok || !p.expectPeek(token.LBrace) {
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}
	return &ast.FunctionLiteral{Token: t, Parameters: params, Body: body}
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}
	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return params, true
	}
	if !p.expectPeek(token.Ident) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		if !p.expectPeek(token.Ident) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}
	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return params, true
}
