package parser

func isTypeStart(tt TokenType) bool {
	switch tt {
	case IDENTIFIER, ADDRESS, BOOL, STRING_KW, BYTES_KW, MAPPING:
		return true
	}
	return false
}

// parseTypeName consumes a type and returns its composite name, e.g.
// "uint256", "address payable", "uint256[][10]", "mapping(address => uint256)".
func (p *Parser) parseTypeName() string {
	if p.check(MAPPING) {
		return p.parseMappingType()
	}

	if !isTypeStart(p.peek().Type) {
		p.errorAtCurrent("expected type name")
		p.advance()
		return "error"
	}

	base := p.advance()
	name := base.Lexeme
	if base.Type == ADDRESS && p.check(PAYABLE) {
		p.advance()
		name += " payable"
	}

	for p.check(LEFT_BRACKET) {
		p.advance()
		size := ""
		if p.check(NUMBER) {
			size = p.advance().Lexeme
		}
		p.consume(RIGHT_BRACKET, "expected ']' in array type")
		name += "[" + size + "]"
	}

	return name
}

func (p *Parser) parseMappingType() string {
	p.advance() // mapping
	p.consume(LEFT_PAREN, "expected '(' after 'mapping'")

	key := p.parseTypeName()
	p.match(IDENTIFIER) // optional named key
	p.consume(FAT_ARROW, "expected '=>' in mapping type")

	value := p.parseTypeName()
	p.match(IDENTIFIER) // optional named value

	p.consume(RIGHT_PAREN, "expected ')' to close mapping type")
	return "mapping(" + key + " => " + value + ")"
}

// looksLikeDeclaration decides whether the upcoming tokens start a variable
// declaration rather than an expression: a type name, optionally followed by
// array-bracket suffixes and a data-location keyword, then another identifier.
func (p *Parser) looksLikeDeclaration() bool {
	i := p.current
	tt := p.tokens[i].Type
	if tt == MAPPING {
		return true
	}
	if !isTypeStart(tt) {
		return false
	}
	i++

	if tt == ADDRESS && i < len(p.tokens) && p.tokens[i].Type == PAYABLE {
		i++
	}

	for i < len(p.tokens) && p.tokens[i].Type == LEFT_BRACKET {
		depth := 1
		i++
		for i < len(p.tokens) && depth > 0 {
			switch p.tokens[i].Type {
			case LEFT_BRACKET:
				depth++
			case RIGHT_BRACKET:
				depth--
			case EOF:
				return false
			}
			i++
		}
	}

	if i < len(p.tokens) {
		switch p.tokens[i].Type {
		case MEMORY, STORAGE, CALLDATA:
			i++
		}
	}

	return i < len(p.tokens) && p.tokens[i].Type == IDENTIFIER
}
