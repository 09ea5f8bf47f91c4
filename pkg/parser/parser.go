package parser

import (
	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
)

// Parse builds one statement per top-level declaration. Statements that fail
// to parse are reported in err and left out of the result; parsing resumes at
// the next statement boundary.
func Parse(tokens []token.Token) ([]Statement, error) {
	return New(tokens).Parse()
}

type Parser struct {
	tokens  []token.Token
	current int

	errs *loxerr.ErrorSet
}

func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF, Line: line})
	}

	return &Parser{
		tokens: tokens,
		errs:   loxerr.NewErrorSet(),
	}
}

func (p *Parser) Parse() ([]Statement, error) {
	var stmts []Statement
	for !p.atEnd() {
		stmt, ok := p.declaration()
		if ok {
			stmts = append(stmts, stmt)
		}
	}

	return stmts, p.errs.Defer(nil)
}

func (p *Parser) declaration() (Statement, bool) {
	var stmt Statement
	var err error
	if p.match(token.Var) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}

	if err != nil {
		p.errs.Add(err)
		p.synchronize()
		return nil, false
	}

	return stmt, true
}

func (p *Parser) varDeclaration() (Statement, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	if err != nil {
		return nil, err
	}

	return VarStatement{
		Name:        name,
		Initializer: initializer,
	}, nil
}

func (p *Parser) statement() (Statement, error) {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}

		return BlockStatement{Statements: stmts}, nil
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after value.")
	if err != nil {
		return nil, err
	}

	return PrintStatement{Expr: expr}, nil
}

func (p *Parser) expressionStatement() (Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after expression.")
	if err != nil {
		return nil, err
	}

	return ExprStatement{Expr: expr}, nil
}

func (p *Parser) block() ([]Statement, error) {
	var stmts []Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, ok := p.declaration()
		if ok {
			stmts = append(stmts, stmt)
		}
	}

	_, err := p.consume(token.RightBrace, "Expect '}' after block.")
	if err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) ifStatement() (Statement, error) {
	_, err := p.consume(token.LeftParen, "Expect '(' after 'if'.")
	if err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(token.RightParen, "Expect ')' after if condition.")
	if err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els Statement
	if p.match(token.Else) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return IfStatement{
		Condition: cond,
		Then:      then,
		Else:      els,
	}, nil
}

func (p *Parser) whileStatement() (Statement, error) {
	_, err := p.consume(token.LeftParen, "Expect '(' after 'while'.")
	if err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(token.RightParen, "Expect ')' after condition.")
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return WhileStatement{
		Condition: cond,
		Body:      body,
	}, nil
}

// forStatement desugars a C-style for loop into a while loop wrapped in the
// blocks needed to scope the initializer and run the increment.
func (p *Parser) forStatement() (Statement, error) {
	_, err := p.consume(token.LeftParen, "Expect '(' after 'for'.")
	if err != nil {
		return nil, err
	}

	var initializer Statement
	switch {
	case p.match(token.Semicolon):
	case p.match(token.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after loop condition.")
	if err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(token.RightParen) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	_, err = p.consume(token.RightParen, "Expect ')' after for clauses.")
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = BlockStatement{Statements: []Statement{body, ExprStatement{Expr: incr}}}
	}

	if cond == nil {
		cond = LiteralExpr{Value: value.Bool(true)}
	}

	body = WhileStatement{Condition: cond, Body: body}

	if initializer != nil {
		body = BlockStatement{Statements: []Statement{initializer, body}}
	}

	return body, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if !p.match(token.Equal) {
		return expr, nil
	}

	equals := p.previous()
	val, err := p.assignment()
	if err != nil {
		return nil, err
	}

	variable, ok := expr.(VariableExpr)
	if !ok {
		return nil, loxerr.At(equals, "Invalid assignment target.")
	}

	return AssignExpr{
		Name:  variable.Name,
		Value: val,
	}, nil
}

func (p *Parser) or() (Expr, error) {
	return p.logical(p.and, token.Or)
}

func (p *Parser) and() (Expr, error) {
	return p.logical(p.equality, token.And)
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

func (p *Parser) binary(operand func() (Expr, error), ops ...token.Kind) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}

		expr = BinaryExpr{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}

	return expr, nil
}

func (p *Parser) logical(operand func() (Expr, error), kind token.Kind) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(kind) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}

		expr = LogicalExpr{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}

	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.primary()
	}

	op := p.previous()
	right, err := p.unary()
	if err != nil {
		return nil, err
	}

	return UnaryExpr{
		Operator: op,
		Right:    right,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(token.False):
		return LiteralExpr{Value: value.Bool(false)}, nil
	case p.match(token.True):
		return LiteralExpr{Value: value.Bool(true)}, nil
	case p.match(token.Nil):
		return LiteralExpr{Value: value.Nil{}}, nil
	case p.match(token.Number, token.String):
		return LiteralExpr{Value: value.OrNil(p.previous().Literal)}, nil
	case p.match(token.Identifier):
		return VariableExpr{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		_, err = p.consume(token.RightParen, "Expect ')' after expression.")
		if err != nil {
			return nil, err
		}

		return GroupingExpr{Expr: expr}, nil
	default:
		return nil, loxerr.At(p.peek(), "Expect expression.")
	}
}

// synchronize discards tokens until the start of what is likely the next
// statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		if p.peek().Kind.StartsStatement() {
			return
		}

		p.advance()
	}
}

func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, loxerr.At(p.peek(), msg)
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return token.Token{}
	}

	return p.tokens[p.current-1]
}
