package parser

import "gascan/internal/ast"

// binaryPrecedence ranks binary operators by lexeme. Higher binds tighter.
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"|":  5,
	"^":  6,
	"&":  7,
	"<<": 8, ">>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
	"**": 11,
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expr {
	target := p.parseTernary()

	switch p.peek().Type {
	case EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL,
		PERCENT_EQUAL, SHIFT_LEFT_EQUAL, SHIFT_RIGHT_EQUAL:
		op := p.advance()
		value := p.parseAssignment()
		return &ast.AssignExpr{
			Pos:    target.NodePos(),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Target: target,
			Value:  value,
		}
	}
	return target
}

func (p *Parser) parseTernary() ast.Expr {
	condition := p.parseBinary(0)

	if !p.match(QUESTION) {
		return condition
	}

	then := p.parseTernary()
	p.consume(COLON, "expected ':' in ternary expression")
	otherwise := p.parseTernary()

	return &ast.TernaryExpr{
		Pos:       condition.NodePos(),
		EndPos:    otherwise.NodeEndPos(),
		Condition: condition,
		Then:      then,
		Else:      otherwise,
	}
}

// parseBinary is a precedence climber over binaryPrecedence. Exponentiation
// is right-associative; everything else associates left.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		op := p.peek()
		prec, ok := binaryPrecedence[op.Lexeme]
		if !ok || prec <= minPrec || !isBinaryOp(op.Type) {
			return left
		}
		p.advance()

		var right ast.Expr
		if op.Lexeme == "**" {
			right = p.parseBinary(prec - 1)
		} else {
			right = p.parseBinary(prec)
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   left,
			Right:  right,
		}
	}
}

func isBinaryOp(tt TokenType) bool {
	switch tt {
	case OR, AND, EQUAL_EQUAL, BANG_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		PIPE, CARET, AMPERSAND, SHIFT_LEFT, SHIFT_RIGHT,
		PLUS, MINUS, STAR, SLASH, PERCENT, STAR_STAR:
		return true
	}
	return false
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.peek().Type {
	case BANG, TILDE, MINUS, INCREMENT, DECREMENT, DELETE:
		op := p.advance()
		value := p.parseUnary()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Prefix: true,
			Value:  value,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch p.peek().Type {
		case INCREMENT, DECREMENT:
			op := p.advance()
			expr = &ast.UnaryExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(op),
				Op:     op.Lexeme,
				Prefix: false,
				Value:  expr,
			}

		case DOT:
			p.advance()
			member := p.consume(IDENTIFIER, "expected member name after '.'")
			expr = &ast.MemberAccessExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(member),
				Target: expr,
				Member: member.Lexeme,
			}

		case LEFT_BRACKET:
			p.advance()
			index := p.parseExpression()
			end := p.consume(RIGHT_BRACKET, "expected ']' after index")
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Target: expr,
				Index:  index,
			}

		case LEFT_PAREN:
			p.advance()
			args := p.parseExprList(RIGHT_PAREN)
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Callee: expr,
				Args:   args,
			}

		case LEFT_BRACE:
			// Only a struct literal when the braces hold `name:` fields;
			// otherwise the brace belongs to an enclosing statement.
			if !p.checkAhead(1, IDENTIFIER) || !p.checkAhead(2, COLON) {
				return expr
			}
			lit := p.parseStructLiteralBody()
			lit.Pos = expr.NodePos()
			lit.Target = expr
			expr = lit

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case NUMBER:
		p.advance()
		return &ast.LiteralExpr{
			Pos: p.makePos(tok), EndPos: p.makeEndPos(tok),
			Kind: ast.NumberLiteral, Value: tok.Lexeme,
		}

	case STRING:
		p.advance()
		return &ast.LiteralExpr{
			Pos: p.makePos(tok), EndPos: p.makeEndPos(tok),
			Kind: ast.StringLiteral, Value: tok.Lexeme,
		}

	case HEX_STRING:
		p.advance()
		return &ast.LiteralExpr{
			Pos: p.makePos(tok), EndPos: p.makeEndPos(tok),
			Kind: ast.HexLiteral, Value: tok.Lexeme,
		}

	case TRUE, FALSE:
		p.advance()
		return &ast.LiteralExpr{
			Pos: p.makePos(tok), EndPos: p.makeEndPos(tok),
			Kind: ast.BoolLiteral, Value: tok.Lexeme,
		}

	case IDENTIFIER, ADDRESS, BOOL, STRING_KW, BYTES_KW, PAYABLE:
		// Elementary type keywords appear in expressions as cast callees,
		// e.g. address(0) or payable(msg.sender).
		p.advance()
		return &ast.IdentExpr{
			Pos: p.makePos(tok), EndPos: p.makeEndPos(tok),
			Name: tok.Lexeme,
		}

	case NEW:
		p.advance()
		typeName := p.parseTypeName()
		return &ast.NewExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(p.previous()),
			Type:   typeName,
		}

	case LEFT_PAREN:
		return p.parseParenOrTuple()

	case LEFT_BRACKET:
		return p.parseArrayLiteral()

	case LEFT_BRACE:
		// Bare struct literal as a named-argument call, e.g. f({a: 1}).
		lit := p.parseStructLiteralBody()
		return lit
	}

	p.errorAtCurrent("expected expression")
	bad := &ast.BadExpr{
		Pos:     p.makePos(tok),
		EndPos:  p.makeEndPos(tok),
		Message: "expected expression, found '" + tok.Lexeme + "'",
	}
	p.advance()
	return bad
}

// parseParenOrTuple handles both grouping parens and tuples. A single
// parenthesized expression yields the inner expression unchanged; zero or
// several comma-separated elements yield a tuple.
func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.advance() // (

	if p.check(RIGHT_PAREN) {
		end := p.advance()
		return &ast.TupleExpr{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	}

	first := p.parseExpression()
	if !p.check(COMMA) {
		p.consume(RIGHT_PAREN, "expected ')' after expression")
		return first
	}

	elements := []ast.Expr{first}
	for p.match(COMMA) {
		if p.check(RIGHT_PAREN) {
			break
		}
		elements = append(elements, p.parseExpression())
	}
	end := p.consume(RIGHT_PAREN, "expected ')' to close tuple")

	return &ast.TupleExpr{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Elements: elements,
	}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.advance() // [

	lit := &ast.ArrayLiteralExpr{Pos: p.makePos(start)}
	lit.Elements = p.parseExprList(RIGHT_BRACKET)
	end := p.consume(RIGHT_BRACKET, "expected ']' to close array literal")
	lit.EndPos = p.makeEndPos(end)
	return lit
}

func (p *Parser) parseStructLiteralBody() *ast.StructLiteralExpr {
	start := p.advance() // {

	lit := &ast.StructLiteralExpr{Pos: p.makePos(start)}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.panicMode {
		name := p.consume(IDENTIFIER, "expected field name in struct literal")
		p.consume(COLON, "expected ':' after field name")
		value := p.parseExpression()

		field := &ast.StructLiteralField{
			Pos:   p.makePos(name),
			Name:  name.Lexeme,
			Value: value,
		}
		if value != nil {
			field.EndPos = value.NodeEndPos()
		}
		lit.Fields = append(lit.Fields, field)

		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close struct literal")
	lit.EndPos = p.makeEndPos(end)
	return lit
}

// parseExprList parses comma-separated expressions up to (not including) the
// terminator. Trailing commas are tolerated.
func (p *Parser) parseExprList(terminator TokenType) []ast.Expr {
	var exprs []ast.Expr
	for !p.check(terminator) && !p.isAtEnd() && !p.panicMode {
		exprs = append(exprs, p.parseExpression())
		if !p.match(COMMA) {
			break
		}
	}
	return exprs
}
