package parser

import (
	"strings"

	"gascan/internal/ast"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(LEFT_BRACE, "expected '{' to open block")

	block := &ast.Block{Pos: p.makePos(start)}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.fatal {
		stmt := p.parseStatement()
		if p.panicMode {
			p.synchronize()
			p.panicMode = false
			continue
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close block")
	block.EndPos = p.makeEndPos(end)
	return block
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case LEFT_BRACE:
		return p.parseBlock()
	case IF:
		return p.parseIf()
	case FOR:
		return p.parseFor()
	case WHILE:
		return p.parseWhile()
	case DO:
		return p.parseDoWhile()
	case RETURN:
		return p.parseReturn()
	case EMIT:
		return p.parseEmit()
	case REVERT:
		return p.parseRevert()
	case REQUIRE, ASSERT:
		return p.parseRequire()
	case UNCHECKED:
		return p.parseUnchecked()
	case ASSEMBLY:
		return p.parseAssembly()
	case TRY:
		return p.parseTry()
	case BREAK:
		start := p.advance()
		end := p.consume(SEMICOLON, "expected ';' after 'break'")
		return &ast.BreakStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	case CONTINUE:
		start := p.advance()
		end := p.consume(SEMICOLON, "expected ';' after 'continue'")
		return &ast.ContinueStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	}

	if p.looksLikeDeclaration() {
		return p.parseVarDeclStmt()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.advance() // if
	p.consume(LEFT_PAREN, "expected '(' after 'if'")
	condition := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after if condition")

	then := p.parseStatement()

	stmt := &ast.IfStmt{
		Pos:       p.makePos(start),
		Condition: condition,
		Then:      then,
	}
	if p.match(ELSE) {
		stmt.Else = p.parseStatement()
	}

	switch {
	case stmt.Else != nil:
		stmt.EndPos = stmt.Else.NodeEndPos()
	case then != nil:
		stmt.EndPos = then.NodeEndPos()
	default:
		stmt.EndPos = p.makeEndPos(p.previous())
	}
	return stmt
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.advance() // for
	p.consume(LEFT_PAREN, "expected '(' after 'for'")

	stmt := &ast.ForStmt{Pos: p.makePos(start)}

	if p.match(SEMICOLON) {
		// no init clause
	} else if p.looksLikeDeclaration() {
		stmt.Init = p.parseVarDeclStmt()
	} else {
		stmt.Init = p.parseExprStmt()
	}

	if !p.check(SEMICOLON) {
		stmt.Condition = p.parseExpression()
	}
	p.consume(SEMICOLON, "expected ';' after for condition")

	if !p.check(RIGHT_PAREN) {
		stmt.Update = p.parseExpression()
	}
	p.consume(RIGHT_PAREN, "expected ')' to close for clauses")

	stmt.Body = p.parseStatement()
	if stmt.Body != nil {
		stmt.EndPos = stmt.Body.NodeEndPos()
	} else {
		stmt.EndPos = p.makeEndPos(p.previous())
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.advance() // while
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	condition := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after while condition")

	body := p.parseStatement()

	stmt := &ast.WhileStmt{
		Pos:       p.makePos(start),
		Condition: condition,
		Body:      body,
	}
	if body != nil {
		stmt.EndPos = body.NodeEndPos()
	} else {
		stmt.EndPos = p.makeEndPos(p.previous())
	}
	return stmt
}

func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.advance() // do
	body := p.parseStatement()

	p.consume(WHILE, "expected 'while' after do body")
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	condition := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after do-while condition")
	end := p.consume(SEMICOLON, "expected ';' after do-while statement")

	return &ast.DoWhileStmt{
		Pos:       p.makePos(start),
		EndPos:    p.makeEndPos(end),
		Body:      body,
		Condition: condition,
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.advance() // return

	stmt := &ast.ReturnStmt{Pos: p.makePos(start)}
	if !p.check(SEMICOLON) {
		stmt.Value = p.parseExpression()
	}
	end := p.consume(SEMICOLON, "expected ';' after return statement")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseEmit() ast.Stmt {
	start := p.advance() // emit
	call := p.parseExpression()
	end := p.consume(SEMICOLON, "expected ';' after emit statement")

	return &ast.EmitStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Call:   call,
	}
}

func (p *Parser) parseRevert() ast.Stmt {
	start := p.advance() // revert

	stmt := &ast.RevertStmt{Pos: p.makePos(start)}
	if p.check(IDENTIFIER) {
		stmt.ErrorName = p.advance().Lexeme
	}
	if p.check(LEFT_PAREN) {
		p.advance()
		stmt.Args = p.parseExprList(RIGHT_PAREN)
		p.consume(RIGHT_PAREN, "expected ')' after revert arguments")
	}
	end := p.consume(SEMICOLON, "expected ';' after revert statement")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseRequire() ast.Stmt {
	start := p.advance() // require or assert

	stmt := &ast.RequireStmt{
		Pos:      p.makePos(start),
		IsAssert: start.Type == ASSERT,
	}

	p.consume(LEFT_PAREN, "expected '(' after '"+start.Lexeme+"'")
	stmt.Args = p.parseExprList(RIGHT_PAREN)
	p.consume(RIGHT_PAREN, "expected ')' after "+start.Lexeme+" arguments")
	end := p.consume(SEMICOLON, "expected ';' after "+start.Lexeme+" statement")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseUnchecked() ast.Stmt {
	start := p.advance() // unchecked
	body := p.parseBlock()

	stmt := &ast.UncheckedBlock{
		Pos:  p.makePos(start),
		Body: body,
	}
	if body != nil {
		stmt.EndPos = body.EndPos
	} else {
		stmt.EndPos = p.makeEndPos(p.previous())
	}
	return stmt
}

// parseAssembly captures an inline assembly body opaquely: the tokens between
// the braces are never parsed, only collected by brace balance.
func (p *Parser) parseAssembly() ast.Stmt {
	start := p.advance() // assembly

	stmt := &ast.AssemblyBlock{Pos: p.makePos(start)}
	if p.check(STRING) {
		stmt.Dialect = p.advance().Lexeme
	}
	if p.check(LEFT_PAREN) {
		p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
	}

	p.consume(LEFT_BRACE, "expected '{' to open assembly block")
	depth := 1
	var body []string
	for depth > 0 && !p.isAtEnd() {
		tok := p.advance()
		switch tok.Type {
		case LEFT_BRACE:
			depth++
		case RIGHT_BRACE:
			depth--
			if depth == 0 {
				continue
			}
		}
		body = append(body, tok.Lexeme)
	}

	stmt.Body = strings.Join(body, " ")
	stmt.EndPos = p.makeEndPos(p.previous())
	return stmt
}

func (p *Parser) parseTry() ast.Stmt {
	start := p.advance() // try

	stmt := &ast.TryStmt{
		Pos:  p.makePos(start),
		Call: p.parseExpression(),
	}

	if p.match(RETURNS) {
		stmt.Returns = p.parseParamList()
	}
	stmt.Body = p.parseBlock()

	for p.check(CATCH) && !p.fatal {
		catchStart := p.advance()
		clause := &ast.CatchClause{Pos: p.makePos(catchStart)}
		if p.check(IDENTIFIER) {
			clause.Kind = p.advance().Lexeme
		}
		if p.check(LEFT_PAREN) {
			clause.Params = p.parseParamList()
		}
		clause.Body = p.parseBlock()
		if clause.Body != nil {
			clause.EndPos = clause.Body.EndPos
		} else {
			clause.EndPos = p.makeEndPos(p.previous())
		}
		stmt.Catches = append(stmt.Catches, clause)
	}

	stmt.EndPos = p.makeEndPos(p.previous())
	return stmt
}

func (p *Parser) parseVarDeclStmt() ast.Stmt {
	start := p.peek()

	stmt := &ast.VarDeclStmt{
		Pos:          p.makePos(start),
		DeclaredType: p.parseTypeName(),
	}

	switch p.peek().Type {
	case MEMORY, STORAGE, CALLDATA:
		stmt.DataLocation = p.advance().Lexeme
	}

	name := p.consume(IDENTIFIER, "expected variable name")
	stmt.Name = name.Lexeme

	if p.match(EQUAL) {
		stmt.Initializer = p.parseExpression()
	}
	end := p.consume(SEMICOLON, "expected ';' after variable declaration")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.peek()
	expr := p.parseExpression()
	end := p.consume(SEMICOLON, "expected ';' after expression")

	return &ast.ExprStmt{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Expression: expr,
	}
}
