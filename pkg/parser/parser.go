// Package parser implements Mython's recursive-descent parser: tokens
// from pkg/lexer in, pkg/ast nodes out. One token of lookahead, no
// backtracking.
//
// Design: match/check/advance/consume/error helpers over a single
// current token, widened to cover every statement and expression
// form in the full grammar.
package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/lexer"
	"github.com/GriffinCanCode/mython/pkg/token"
)

// Error is a parser error: malformed syntax. Fatal to the current
// interpretation run.
type Error struct {
	Line, Col int
	Msg       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parser consumes a lexer and produces an *ast.Compound module body.
type Parser struct {
	lex *lexer.Lexer
	cur token.Token
	err error
}

// New constructs a Parser over lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex, cur: lex.Current()}
}

// Parse parses a full program and returns its statement list as a
// single ast.Compound, or the first error encountered.
func (p *Parser) Parse() (ast.Stmt, error) {
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.Eof) && p.err == nil {
		stmts = append(stmts, p.statement())
		p.skipNewlines()
	}
	if p.err != nil {
		return nil, p.err
	}
	if lexErr := p.lex.Err(); lexErr != nil {
		return nil, lexErr
	}
	return &ast.Compound{Stmts: stmts}, nil
}

func (p *Parser) skipNewlines() {
	for p.check(token.Newline) {
		p.advance()
	}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch p.cur.Type {
	case token.Class:
		return p.classDef()
	case token.Def:
		return p.methodDefAsStandalone()
	case token.If:
		return p.ifElse()
	case token.Return:
		return p.returnStmt()
	case token.Print:
		return p.printStmt()
	default:
		return p.simpleStatement()
	}
}

func (p *Parser) block() ast.Stmt {
	if p.err != nil {
		return &ast.Compound{}
	}
	p.expectCharValue(":", "expected ':'")
	p.expect(token.Newline, "expected newline after ':'")
	p.expect(token.Indent, "expected indented block")
	var stmts []ast.Stmt
	for !p.check(token.Dedent) && !p.check(token.Eof) && p.err == nil {
		stmts = append(stmts, p.statement())
		p.skipNewlines()
	}
	p.expect(token.Dedent, "expected dedent")
	return &ast.Compound{Stmts: stmts}
}

func (p *Parser) classDef() ast.Stmt {
	p.advance() // 'class'
	name := p.expectId("expected class name")
	parent := ""
	if p.checkChar('(') {
		p.advance()
		parent = p.expectId("expected parent class name")
		p.expectCharValue(")", "expected ')'")
	}
	p.expectCharValue(":", "expected ':'")
	p.expect(token.Newline, "expected newline after ':'")
	p.expect(token.Indent, "expected indented class body")
	var methods []ast.MethodDef
	for !p.check(token.Dedent) && !p.check(token.Eof) && p.err == nil {
		if p.check(token.Def) {
			methods = append(methods, p.methodDef())
		} else {
			p.fail("expected method definition inside class body")
			break
		}
		p.skipNewlines()
	}
	p.expect(token.Dedent, "expected dedent")
	return &ast.ClassDefinition{Name: name, Parent: parent, Methods: methods}
}

func (p *Parser) methodDef() ast.MethodDef {
	p.advance() // 'def'
	name := p.expectId("expected method name")
	p.expectCharValue("(", "expected '('")
	var params []string
	if !p.checkChar(')') {
		for {
			params = append(params, p.expectId("expected parameter name"))
			if !p.checkChar(',') {
				break
			}
			p.advance()
		}
	}
	p.expectCharValue(")", "expected ')'")
	body := p.block()
	return ast.MethodDef{Name: name, Params: params, Body: &ast.MethodBody{Body: body}}
}

// methodDefAsStandalone rejects a bare `def` at module scope with a
// parse error: def is only valid inside a class body.
func (p *Parser) methodDefAsStandalone() ast.Stmt {
	p.fail("'def' is only valid inside a class body")
	p.advance()
	return &ast.Compound{}
}

func (p *Parser) ifElse() ast.Stmt {
	p.advance() // 'if'
	cond := p.expression()
	then := p.block()
	var els ast.Stmt
	if p.check(token.Else) {
		p.advance()
		els = p.block()
	}
	return &ast.IfElse{Cond: cond, Then: then, Else: els}
}

func (p *Parser) returnStmt() ast.Stmt {
	p.advance() // 'return'
	var expr ast.Expr
	if !p.check(token.Newline) && !p.check(token.Eof) {
		expr = p.expression()
	}
	return &ast.Return{Expr: expr}
}

func (p *Parser) printStmt() ast.Stmt {
	p.advance() // 'print'
	var args []ast.Expr
	if !p.check(token.Newline) && !p.check(token.Eof) {
		args = append(args, p.expression())
		for p.checkChar(',') {
			p.advance()
			args = append(args, p.expression())
		}
	}
	return &ast.Print{Args: args}
}

// simpleStatement handles assignment, field assignment, and bare
// expression statements, distinguished by what follows a leading
// dotted-name chain.
func (p *Parser) simpleStatement() ast.Stmt {
	expr := p.expression()
	if p.checkCharValue('=') {
		p.advance()
		rhs := p.expression()
		switch lv := expr.(type) {
		case *ast.VariableValue:
			if len(lv.Names) == 1 {
				return &ast.Assignment{Name: lv.Names[0], Expr: rhs}
			}
			return &ast.FieldAssignment{
				Object: fieldObjectExpr(lv),
				Field:  lv.Names[len(lv.Names)-1],
				Expr:   rhs,
			}
		case *fieldAccess:
			return &ast.FieldAssignment{Object: lv.Object, Field: lv.Field, Expr: rhs}
		default:
			p.fail("invalid assignment target")
			return &ast.Compound{}
		}
	}
	return &ast.ExprStmt{Expr: expr}
}

// fieldObjectExpr rebuilds the "object" portion of a dotted-name chain
// (everything but the final name) as a VariableValue, or a bare
// VariableValue of length 1 if there is exactly one leading name.
func fieldObjectExpr(lv *ast.VariableValue) ast.Expr {
	if len(lv.Names) == 2 {
		return &ast.VariableValue{Names: []string{lv.Names[0]}}
	}
	return &ast.VariableValue{Names: lv.Names[:len(lv.Names)-1]}
}

// fieldAccess is an intermediate expression produced while parsing a
// dotted chain that ends in a method call before the final field,
// e.g. `a.b().c`. As an assignment target, simpleStatement rewrites it
// into FieldAssignment. In any other position it is left in the tree
// as is, and the evaluator rejects it as an unknown expression node.
type fieldAccess struct {
	ast.Expr
	Object ast.Expr
	Field  string
}

// --- expressions, precedence-climbing ---

func (p *Parser) expression() ast.Expr {
	return p.or()
}

func (p *Parser) or() ast.Expr {
	lhs := p.and()
	for p.check(token.Or) {
		p.advance()
		rhs := p.and()
		lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) and() ast.Expr {
	lhs := p.not()
	for p.check(token.And) {
		p.advance()
		rhs := p.not()
		lhs = &ast.And{Lhs: lhs, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) not() ast.Expr {
	if p.check(token.Not) {
		p.advance()
		return &ast.Not{Expr: p.not()}
	}
	return p.comparison()
}

func (p *Parser) comparison() ast.Expr {
	lhs := p.additive()
	op, ok := p.compareOp()
	if !ok {
		return lhs
	}
	p.advance()
	rhs := p.additive()
	return &ast.Comparison{Op: op, Lhs: lhs, Rhs: rhs}
}

func (p *Parser) compareOp() (ast.CompareOp, bool) {
	switch p.cur.Type {
	case token.Eq:
		return ast.CmpEq, true
	case token.NotEq:
		return ast.CmpNotEq, true
	case token.LessOrEq:
		return ast.CmpLessOrEq, true
	case token.GreaterOrEq:
		return ast.CmpGreaterOrEq, true
	case token.Char:
		switch p.cur.Str {
		case "<":
			return ast.CmpLess, true
		case ">":
			return ast.CmpGreater, true
		}
	}
	return 0, false
}

func (p *Parser) additive() ast.Expr {
	lhs := p.multiplicative()
	for p.checkCharValue('+') || p.checkCharValue('-') {
		op := p.cur.Str
		p.advance()
		rhs := p.multiplicative()
		if op == "+" {
			lhs = &ast.Add{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Sub{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs
}

func (p *Parser) multiplicative() ast.Expr {
	lhs := p.unary()
	for p.checkCharValue('*') || p.checkCharValue('/') {
		op := p.cur.Str
		p.advance()
		rhs := p.unary()
		if op == "*" {
			lhs = &ast.Mult{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Div{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs
}

func (p *Parser) unary() ast.Expr {
	return p.postfix(p.primary())
}

// postfix handles trailing `.name` and `.name(args)` applied
// left-to-right onto a primary expression, building up VariableValue
// dotted chains and MethodCall nodes. A call `Name(args)` is parsed by
// primary instead.
func (p *Parser) postfix(expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.checkCharValue('.'):
			p.advance()
			name := p.expectId("expected field or method name")
			if p.checkChar('(') {
				p.advance()
				args := p.argList()
				p.expectCharValue(")", "expected ')'")
				expr = &ast.MethodCall{Object: expr, Method: name, Args: args}
				continue
			}
			if vv, ok := expr.(*ast.VariableValue); ok {
				expr = &ast.VariableValue{Names: append(append([]string{}, vv.Names...), name)}
				continue
			}
			expr = &fieldAccess{Object: expr, Field: name}
		default:
			return expr
		}
	}
}

func (p *Parser) argList() []ast.Expr {
	var args []ast.Expr
	if p.checkChar(')') {
		return args
	}
	args = append(args, p.expression())
	for p.checkChar(',') {
		p.advance()
		args = append(args, p.expression())
	}
	return args
}

func (p *Parser) primary() ast.Expr {
	switch p.cur.Type {
	case token.Number:
		v := p.cur.Num
		p.advance()
		return &ast.NumberLiteral{Value: v}
	case token.String:
		v := p.cur.Str
		p.advance()
		return &ast.StringLiteral{Value: v}
	case token.True:
		p.advance()
		return &ast.BoolLiteral{Value: true}
	case token.False:
		p.advance()
		return &ast.BoolLiteral{Value: false}
	case token.None:
		p.advance()
		return &ast.NoneLiteral{}
	case token.Id:
		name := p.cur.Str
		p.advance()
		if p.checkChar('(') {
			p.advance()
			args := p.argList()
			p.expectCharValue(")", "expected ')'")
			if name == "str" {
				if len(args) != 1 {
					p.fail("str() takes exactly one argument")
					return &ast.NoneLiteral{}
				}
				return &ast.Stringify{Expr: args[0]}
			}
			return &ast.NewInstance{ClassName: name, Args: args}
		}
		return &ast.VariableValue{Names: []string{name}}
	case token.Char:
		switch p.cur.Str {
		case "(":
			p.advance()
			inner := p.expression()
			p.expectCharValue(")", "expected ')'")
			return inner
		case "-":
			p.advance()
			return &ast.Sub{Lhs: &ast.NumberLiteral{Value: 0}, Rhs: p.unary()}
		}
	}
	p.fail(fmt.Sprintf("unexpected token %s", p.cur))
	p.advance()
	return &ast.NoneLiteral{}
}

// --- helpers ---

func (p *Parser) advance() token.Token {
	prev := p.cur
	p.cur = p.lex.Next()
	return prev
}

func (p *Parser) check(tt token.Type) bool {
	return p.cur.Type == tt
}

func (p *Parser) checkChar(c byte) bool {
	return p.cur.Type == token.Char && p.cur.Str == string(c)
}

func (p *Parser) checkCharValue(c byte) bool {
	return p.checkChar(c)
}

func (p *Parser) expect(tt token.Type, msg string) {
	if p.err != nil {
		return
	}
	if !p.check(tt) {
		p.fail(msg)
		return
	}
	p.advance()
}

func (p *Parser) expectCharValue(c string, msg string) {
	if p.err != nil {
		return
	}
	if !(p.cur.Type == token.Char && p.cur.Str == c) {
		p.fail(msg)
		return
	}
	p.advance()
}

func (p *Parser) expectId(msg string) string {
	if p.err != nil {
		return ""
	}
	if p.cur.Type != token.Id {
		p.fail(msg)
		return ""
	}
	name := p.cur.Str
	p.advance()
	return name
}

func (p *Parser) fail(msg string) {
	if p.err != nil {
		return
	}
	p.err = errors.WithStack(&Error{Line: p.cur.Line, Col: p.cur.Col, Msg: msg})
}
