package parser

import (
	"strconv"
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	lit := &ast.NumberLiteral{Token: tok}
	if tok.Type == token.FLOAT {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addError(tok.Pos, "could not parse %q as float", tok.Literal)
			return nil
		}
		lit.IsFloat = true
		lit.FloatValue = f
		return lit
	}
	i, err := strconv.ParseInt(tok.Literal, 0, 64)
	if err != nil {
		p.addError(tok.Pos, "could not parse %q as integer", tok.Literal)
		return nil
	}
	lit.IntValue = i
	return lit
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseRuneLiteral() ast.Expression {
	tok := p.curToken
	runes := []rune(tok.Literal)
	if len(runes) == 0 {
		p.addError(tok.Pos, "empty rune literal")
		return &ast.RuneLiteral{Token: tok}
	}
	return &ast.RuneLiteral{Token: tok, Value: runes[0]}
}

// parseStringLiteral splits a raw string literal on "${"/"}" interpolation
// markers. A literal with no markers becomes a plain StringLiteral; one
// with markers becomes a StringInterpolation whose embedded expression
// substrings are independently re-lexed and re-parsed.
func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	if !strings.Contains(tok.Literal, "${") {
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	}

	literals, exprSrcs := splitInterpolation(tok.Literal)
	parts := make([]ast.Expression, 0, len(exprSrcs))
	for _, src := range exprSrcs {
		parts = append(parts, p.parseEmbeddedExpression(tok.Pos, src))
	}
	return &ast.StringInterpolation{Token: tok, Literals: literals, Parts: parts}
}

// splitInterpolation breaks raw into the literal text chunks and the
// embedded-expression source chunks that appear between "${" and "}".
// len(literals) == len(exprSrcs)+1: literals[i] is the text before the
// i-th embedded expression, and literals[len-1] is the trailing text.
func splitInterpolation(raw string) (literals []string, exprSrcs []string) {
	var lit strings.Builder
	i := 0
	for i < len(raw) {
		if i+1 < len(raw) && raw[i] == '$' && raw[i+1] == '{' {
			literals = append(literals, lit.String())
			lit.Reset()
			i += 2
			depth := 1
			start := i
			for i < len(raw) && depth > 0 {
				switch raw[i] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						continue
					}
				}
				i++
			}
			exprSrcs = append(exprSrcs, raw[start:i])
			i++ // consume closing '}'
			continue
		}
		lit.WriteByte(raw[i])
		i++
	}
	literals = append(literals, lit.String())
	return literals, exprSrcs
}

func (p *Parser) parseEmbeddedExpression(pos token.Position, src string) ast.Expression {
	sub := New(lexer.New(src))
	expr := sub.parseExpression(LOWEST)
	for _, e := range sub.Errors() {
		p.errors = append(p.errors, e)
	}
	if expr == nil {
		p.addError(pos, "invalid expression in string interpolation: %q", src)
	}
	return expr
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	op := unaryOpFor(tok.Type)
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Op: op, Operand: operand}
}

func unaryOpFor(t token.Type) ast.UnaryOp {
	switch t {
	case token.MINUS:
		return ast.NEGATE
	case token.BANG:
		return ast.NOT
	case token.TILDE:
		return ast.BIT_NOT
	default:
		return ast.NEGATE
	}
}

func (p *Parser) parsePrefixIncDec() ast.Expression {
	tok := p.curToken
	op := ast.INC
	if tok.Type == token.DEC {
		op = ast.DEC
	}
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.PrefixIncDecExpression{Token: tok, Op: op, Operand: operand}
}

func (p *Parser) parsePostfixIncDec(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := ast.INC
	if tok.Type == token.DEC {
		op = ast.DEC
	}
	return &ast.PostfixIncDecExpression{Token: tok, Op: op, Operand: left}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := binaryOpFor(tok.Type)
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryExpression{Token: tok, Left: left, Op: op, Right: right}
}

func binaryOpFor(t token.Type) ast.BinaryOp {
	switch t {
	case token.PLUS:
		return ast.ADD
	case token.MINUS:
		return ast.SUB
	case token.STAR:
		return ast.MUL
	case token.SLASH:
		return ast.DIV
	case token.PERCENT:
		return ast.MOD
	case token.EQ:
		return ast.EQ
	case token.NE:
		return ast.NE
	case token.LT:
		return ast.LT
	case token.LE:
		return ast.LE
	case token.GT:
		return ast.GT
	case token.GE:
		return ast.GE
	case token.AND_AND:
		return ast.AND
	case token.OR_OR:
		return ast.OR
	case token.AMP:
		return ast.BIT_AND
	case token.PIPE:
		return ast.BIT_OR
	case token.CARET:
		return ast.BIT_XOR
	case token.SHL:
		return ast.BIT_LSHIFT
	case token.SHR:
		return ast.BIT_RSHIFT
	default:
		return ast.ADD
	}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.GroupedExpression{Token: tok, Expression: inner}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	expr := &ast.IndexExpression{Token: tok, Object: object, Index: index}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.IndexAssignExpression{Token: tok, Object: object, Index: index, Value: value}
	}
	return expr
}

func (p *Parser) parseGetPropertyExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.GetPropertyExpression{Token: tok, Object: object, Name: p.curToken.Literal}
}

func (p *Parser) parseAssignExpression(target ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(ASSIGN - 1)
	return &ast.AssignExpression{Token: tok, Target: target, Value: value}
}

// parseCompoundAssignExpression desugars `target += value` into
// `target = target + value`, reusing the plain ADD/SUB/... binary rules
// rather than giving compound assignment its own evaluator path.
func (p *Parser) parseCompoundAssignExpression(target ast.Expression) ast.Expression {
	tok := p.curToken
	op := compoundOpFor(tok.Type)
	p.nextToken()
	rhs := p.parseExpression(ASSIGN - 1)
	combined := &ast.BinaryExpression{Token: tok, Left: target, Op: op, Right: rhs}
	return &ast.AssignExpression{Token: tok, Target: target, Value: combined}
}

func compoundOpFor(t token.Type) ast.BinaryOp {
	switch t {
	case token.PLUS_EQ:
		return ast.ADD
	case token.MINUS_EQ:
		return ast.SUB
	case token.STAR_EQ:
		return ast.MUL
	case token.SLASH_EQ:
		return ast.DIV
	case token.PERCENT_EQ:
		return ast.MOD
	default:
		return ast.ADD
	}
}

func (p *Parser) parseTernaryExpression(cond ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	then := p.parseExpression(TERNARY)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	elseExpr := p.parseExpression(TERNARY)
	return &ast.TernaryExpression{Token: tok, Condition: cond, Then: then, Else: elseExpr}
}

func (p *Parser) parseNullCoalesceExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.NullCoalesceExpression{Token: tok, Left: left, Right: right}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	obj := &ast.ObjectLiteral{Token: tok}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		var key string
		switch {
		case p.curTokenIs(token.IDENT), p.curTokenIs(token.STRING):
			key = p.curToken.Literal
		default:
			p.addError(p.curToken.Pos, "expected object key, got %s", p.curToken.Type)
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		obj.Keys = append(obj.Keys, key)
		obj.Values = append(obj.Values, value)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return obj
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.AwaitExpression{Token: tok, Operand: operand}
}

// parseFunctionLiteral parses both the named declaration form consumed by
// parseFunctionDeclStatement and the anonymous
// expression form `fn(params) => expr` / `fn(params) { ... }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken
	fn := &ast.FunctionLiteral{Token: tok}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fn.Name = p.curToken.Literal
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.parseFunctionParams(fn)

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		fn.ArrowBody = p.parseExpression(LOWEST)
		return fn
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

func (p *Parser) parseFunctionParams(fn *ast.FunctionLiteral) {
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return
	}
	p.nextToken()
	fn.Params = append(fn.Params, p.curToken.Literal)
	fn.IsRest = append(fn.IsRest, false)
	fn.ParamTypes = append(fn.ParamTypes, p.parseOptionalTypeAnnotation())

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		fn.Params = append(fn.Params, p.curToken.Literal)
		fn.IsRest = append(fn.IsRest, false)
		fn.ParamTypes = append(fn.ParamTypes, p.parseOptionalTypeAnnotation())
	}
	p.expectPeek(token.RPAREN)
}

// parseOptionalTypeAnnotation consumes `: Name` if present and returns the
// resolved *types.Type, or nil if there is no annotation.
func (p *Parser) parseOptionalTypeAnnotation() *types.Type {
	if !p.peekTokenIs(token.COLON) {
		return nil
	}
	p.nextToken()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return types.FromName(p.curToken.Literal)
}
