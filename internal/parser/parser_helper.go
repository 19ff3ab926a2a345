package parser

import "gascan/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkAhead(offset int, tt TokenType) bool {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return false
	}
	return p.tokens[idx].Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{Type: ILLEGAL, Position: p.peek().Position}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(message string) {
	if p.fatal {
		return
	}
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.peek().Position,
	})
	p.panicMode = true
	if len(p.errors) > maxParseErrors {
		p.fatal = true
	}
}

// synchronize skips forward to a statement or member boundary: it stops just
// past a ';', or right before a '}' or a keyword that begins a new
// declaration. This bounds error propagation to the current statement or
// member.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case CONTRACT, FUNCTION, MODIFIER, EVENT, STRUCT, ENUM, RIGHT_BRACE:
			return
		}
		if p.advance().Type == SEMICOLON {
			return
		}
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// docFor returns the doc comment attached to the token, if any.
func (p *Parser) docFor(tok Token) string {
	return p.docs[tok.Position.Offset]
}
