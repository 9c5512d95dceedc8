package parser

import (
	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.CONST:
		return p.parseConstStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	case token.CONTINUE:
		return &ast.ContinueStatement{Token: p.curToken}
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.FN:
		if p.peekTokenIs(token.IDENT) {
			return p.parseFunctionDeclStatement()
		}
		return p.parseExpressionStatement()
	case token.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeAnnotation()
	}

	if !p.peekTokenIs(token.ASSIGN) {
		p.consumeOptionalSemicolon()
		return stmt
	}
	p.nextToken()
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.consumeOptionalSemicolon()
	return stmt
}

func (p *Parser) parseConstStatement() ast.Statement {
	stmt := &ast.ConstStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeAnnotation()
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.consumeOptionalSemicolon()
	return stmt
}

// parseTypeAnnotation expects curToken to be sitting on the ':' and
// advances past the type name, building an ArrayOf wrapper for `T[]`.
func (p *Parser) parseTypeAnnotation() *types.Type {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	base := types.FromName(p.curToken.Literal)
	if p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return types.ArrayOf(base)
	}
	return base
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	p.consumeOptionalSemicolon()
	return stmt
}

// consumeOptionalSemicolon consumes a trailing ';' if present. Hemlock
// statements are semicolon-terminated by convention but the parser does
// not hard-require it, matching how block-ending constructs (if/while/fn)
// are written without one in the example programs (spec §8).
func (p *Parser) consumeOptionalSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Then = p.parseStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

// parseForStatement parses `for (init; cond; incr) body`. Each header
// section is optional; the three are strictly semicolon-separated
// regardless of the general statement-level optional-semicolon rule, since
// the separators are what delimit the header's three clauses.
func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	if p.curTokenIs(token.SEMICOLON) {
		stmt.Init = nil
	} else if p.curTokenIs(token.LET) {
		stmt.Init = p.parseForLetInit()
	} else {
		stmt.Init = &ast.ExpressionStatement{Token: p.curToken, Expression: p.parseExpression(LOWEST)}
	}
	if !p.curTokenIs(token.SEMICOLON) && !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
	}
	if !p.curTokenIs(token.SEMICOLON) && !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	if !p.curTokenIs(token.RPAREN) {
		stmt.Incr = &ast.ExpressionStatement{Token: p.curToken, Expression: p.parseExpression(LOWEST)}
	}
	if !p.curTokenIs(token.RPAREN) && !p.expectPeek(token.RPAREN) {
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

// parseForLetInit is parseLetStatement without consuming a trailing ';':
// the for-header semicolon handling in parseForStatement owns that.
func (p *Parser) parseForLetInit() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeAnnotation()
	}
	if !p.peekTokenIs(token.ASSIGN) {
		return stmt
	}
	p.nextToken()
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.consumeOptionalSemicolon()
	return stmt
}

func (p *Parser) parseFunctionDeclStatement() ast.Statement {
	stmt := &ast.FunctionDeclStatement{Token: p.curToken}
	fn := p.parseFunctionLiteral()
	literal, ok := fn.(*ast.FunctionLiteral)
	if !ok || literal == nil {
		return nil
	}
	stmt.Function = literal
	return stmt
}
