// Package parser implements the Hemlock parser using Pratt parsing.
//
// Key patterns, carried over from the lexical-analysis idiom used
// throughout this codebase:
//   - curToken/peekToken pair with nextToken() advancing both
//   - prefixParseFn / infixParseFn tables keyed by token type
//   - errors accumulate in a slice rather than panicking; callers inspect
//     Errors() after ParseProgram returns
package parser

import (
	"fmt"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	TERNARY     // ?:
	COALESCE    // ??
	OR          // ||
	AND         // &&
	BITOR       // |
	BITXOR      // ^
	BITAND      // &
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SHIFT       // << >>
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x ~x ++x --x
	POSTFIX     // x++ x--
	CALL        // f(args)
	INDEX       // a[i]
	MEMBER      // a.b
)

var precedences = map[token.Type]int{
	token.ASSIGN:     ASSIGN,
	token.PLUS_EQ:    ASSIGN,
	token.MINUS_EQ:   ASSIGN,
	token.STAR_EQ:    ASSIGN,
	token.SLASH_EQ:   ASSIGN,
	token.PERCENT_EQ: ASSIGN,
	token.QUESTION:   TERNARY,
	token.QQ:         COALESCE,
	token.OR_OR:      OR,
	token.AND_AND:    AND,
	token.PIPE:       BITOR,
	token.CARET:      BITXOR,
	token.AMP:        BITAND,
	token.EQ:         EQUALS,
	token.NE:         EQUALS,
	token.LT:         LESSGREATER,
	token.GT:         LESSGREATER,
	token.LE:         LESSGREATER,
	token.GE:         LESSGREATER,
	token.SHL:        SHIFT,
	token.SHR:        SHIFT,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.STAR:       PRODUCT,
	token.SLASH:      PRODUCT,
	token.PERCENT:    PRODUCT,
	token.INC:        POSTFIX,
	token.DEC:        POSTFIX,
	token.LPAREN:     CALL,
	token.LBRACKET:   INDEX,
	token.DOT:        MEMBER,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// ParseError is a single parser diagnostic with source position.
type ParseError struct {
	Msg string
	Pos token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parser turns a token stream into a Program. It never panics on
// malformed input; it records a ParseError and tries to keep going so a
// single source file can report more than one mistake per run.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	errors []error
}

// New creates a Parser reading from l and primes curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseNumberLiteral,
		token.FLOAT:    p.parseNumberLiteral,
		token.STRING:   p.parseStringLiteral,
		token.RUNE:     p.parseRuneLiteral,
		token.TRUE:     p.parseBoolLiteral,
		token.FALSE:    p.parseBoolLiteral,
		token.NULL:     p.parseNullLiteral,
		token.MINUS:    p.parsePrefixExpression,
		token.BANG:     p.parsePrefixExpression,
		token.TILDE:    p.parsePrefixExpression,
		token.INC:      p.parsePrefixIncDec,
		token.DEC:      p.parsePrefixIncDec,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseObjectLiteral,
		token.FN:       p.parseFunctionLiteral,
		token.AWAIT:    p.parseAwaitExpression,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:       p.parseBinaryExpression,
		token.MINUS:      p.parseBinaryExpression,
		token.STAR:       p.parseBinaryExpression,
		token.SLASH:      p.parseBinaryExpression,
		token.PERCENT:    p.parseBinaryExpression,
		token.EQ:         p.parseBinaryExpression,
		token.NE:         p.parseBinaryExpression,
		token.LT:         p.parseBinaryExpression,
		token.LE:         p.parseBinaryExpression,
		token.GT:         p.parseBinaryExpression,
		token.GE:         p.parseBinaryExpression,
		token.AND_AND:    p.parseBinaryExpression,
		token.OR_OR:      p.parseBinaryExpression,
		token.AMP:        p.parseBinaryExpression,
		token.PIPE:       p.parseBinaryExpression,
		token.CARET:      p.parseBinaryExpression,
		token.SHL:        p.parseBinaryExpression,
		token.SHR:        p.parseBinaryExpression,
		token.LPAREN:     p.parseCallExpression,
		token.LBRACKET:   p.parseIndexExpression,
		token.DOT:        p.parseGetPropertyExpression,
		token.ASSIGN:     p.parseAssignExpression,
		token.PLUS_EQ:    p.parseCompoundAssignExpression,
		token.MINUS_EQ:   p.parseCompoundAssignExpression,
		token.STAR_EQ:    p.parseCompoundAssignExpression,
		token.SLASH_EQ:   p.parseCompoundAssignExpression,
		token.PERCENT_EQ: p.parseCompoundAssignExpression,
		token.QUESTION:   p.parseTernaryExpression,
		token.QQ:         p.parseNullCoalesceExpression,
		token.INC:        p.parsePostfixIncDec,
		token.DEC:        p.parsePostfixIncDec,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every diagnostic recorded while parsing.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, &ParseError{
		Msg: fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type),
		Pos: p.peekToken.Pos,
	})
}

func (p *Parser) addError(pos token.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	p.addError(t.Pos, "no prefix parse function for %s found", t.Type)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram consumes the entire token stream and returns the resulting
// Program. Parse errors are recorded in p.errors rather than aborting, so a
// caller can still inspect the partially-built tree.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}
