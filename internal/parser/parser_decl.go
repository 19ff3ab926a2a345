package parser

import "gascan/internal/ast"

func (p *Parser) parseContractDef() ast.Node {
	start := p.peek()
	doc := p.docFor(start)

	abstract := p.match(ABSTRACT)

	kind := "contract"
	switch p.peek().Type {
	case CONTRACT, INTERFACE, LIBRARY:
		kind = p.advance().Lexeme
	default:
		p.errorAtCurrent("expected 'contract', 'interface', or 'library'")
		return nil
	}

	name := p.consume(IDENTIFIER, "expected "+kind+" name")

	var inherits []string
	if p.match(IS) {
		for !p.isAtEnd() {
			base := p.consume(IDENTIFIER, "expected base contract name")
			if base.Type == ILLEGAL {
				break
			}
			inherits = append(inherits, base.Lexeme)
			// Base constructor arguments are not analyzed, skip them.
			if p.check(LEFT_PAREN) {
				p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
			}
			if !p.match(COMMA) {
				break
			}
		}
	}

	def := &ast.ContractDef{
		Pos:      p.makePos(start),
		Doc:      doc,
		Kind:     kind,
		Abstract: abstract,
		Name:     name.Lexeme,
	}

	p.consume(LEFT_BRACE, "expected '{' to open "+kind+" body")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.fatal {
		member := p.parseContractMember()
		if p.panicMode {
			p.synchronize()
			p.panicMode = false
			continue
		}
		if member != nil {
			def.Items = append(def.Items, member)
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close "+kind+" body")

	def.Inherits = inherits
	def.EndPos = p.makeEndPos(end)
	return def
}

func (p *Parser) parseContractMember() ast.Node {
	switch p.peek().Type {
	case FUNCTION:
		return p.parseFunction()
	case CONSTRUCTOR:
		return p.parseConstructor()
	case MODIFIER:
		return p.parseModifierDef()
	case STRUCT:
		return p.parseStructDef()
	case ENUM:
		return p.parseEnumDef()
	case EVENT:
		return p.parseEventDef()
	case ERROR:
		return p.parseErrorDef()
	case USING:
		p.skipThroughSemicolon()
		return nil
	default:
		return p.parseStateVar()
	}
}

func (p *Parser) parseStateVar() ast.Node {
	start := p.peek()
	doc := p.docFor(start)

	if !isTypeStart(start.Type) {
		p.errorAtCurrent("expected state variable declaration")
		p.advance()
		return nil
	}

	declaredType := p.parseTypeName()

	decl := &ast.StateVarDecl{
		Pos:          p.makePos(start),
		Doc:          doc,
		DeclaredType: declaredType,
	}

	for {
		switch p.peek().Type {
		case PUBLIC, PRIVATE, INTERNAL:
			decl.Visibility = p.advance().Lexeme
			continue
		case CONSTANT:
			p.advance()
			decl.IsConstant = true
			continue
		case IMMUTABLE:
			p.advance()
			decl.IsImmutable = true
			continue
		case OVERRIDE:
			p.advance()
			if p.check(LEFT_PAREN) {
				p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
			}
			continue
		}
		break
	}

	name := p.consume(IDENTIFIER, "expected state variable name")
	decl.Name = name.Lexeme

	if p.match(EQUAL) {
		decl.Initializer = p.parseExpression()
	}
	end := p.consume(SEMICOLON, "expected ';' after state variable declaration")
	decl.EndPos = p.makeEndPos(end)
	return decl
}

func (p *Parser) parseFunction() ast.Node {
	start := p.advance() // function
	doc := p.docFor(start)

	name := p.consume(IDENTIFIER, "expected function name")

	fn := &ast.Function{
		Pos:        p.makePos(start),
		Doc:        doc,
		Name:       name.Lexeme,
		Visibility: "public",
		Params:     p.parseParamList(),
	}

	for !p.isAtEnd() {
		switch p.peek().Type {
		case PUBLIC, PRIVATE, INTERNAL, EXTERNAL:
			fn.Visibility = p.advance().Lexeme
			continue
		case PURE, VIEW, PAYABLE:
			fn.Mutability = p.advance().Lexeme
			continue
		case VIRTUAL:
			p.advance()
			fn.Virtual = true
			continue
		case OVERRIDE:
			p.advance()
			fn.Override = true
			if p.check(LEFT_PAREN) {
				p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
			}
			continue
		case IDENTIFIER:
			fn.Modifiers = append(fn.Modifiers, p.parseModifierInvocation())
			continue
		}
		break
	}

	if p.match(RETURNS) {
		fn.Returns = p.parseParamList()
	}

	if p.match(SEMICOLON) {
		// Interface or abstract declaration: no body.
		fn.EndPos = p.makeEndPos(p.previous())
		return fn
	}

	fn.Body = p.parseBlock()
	if fn.Body != nil {
		fn.EndPos = fn.Body.EndPos
	} else {
		fn.EndPos = p.makeEndPos(p.previous())
	}
	return fn
}

func (p *Parser) parseConstructor() ast.Node {
	start := p.advance() // constructor

	ctor := &ast.Constructor{
		Pos:    p.makePos(start),
		Params: p.parseParamList(),
	}

	for !p.isAtEnd() {
		switch p.peek().Type {
		case PUBLIC, INTERNAL, PAYABLE:
			p.advance()
			continue
		case IDENTIFIER:
			ctor.Modifiers = append(ctor.Modifiers, p.parseModifierInvocation())
			continue
		}
		break
	}

	ctor.Body = p.parseBlock()
	if ctor.Body != nil {
		ctor.EndPos = ctor.Body.EndPos
	} else {
		ctor.EndPos = p.makeEndPos(p.previous())
	}
	return ctor
}

func (p *Parser) parseModifierDef() ast.Node {
	start := p.advance() // modifier
	name := p.consume(IDENTIFIER, "expected modifier name")

	def := &ast.ModifierDef{
		Pos:  p.makePos(start),
		Name: name.Lexeme,
	}

	if p.check(LEFT_PAREN) {
		def.Params = p.parseParamList()
	}
	for p.match(VIRTUAL) {
	}
	if p.match(OVERRIDE) {
		if p.check(LEFT_PAREN) {
			p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
		}
	}

	if p.match(SEMICOLON) {
		def.EndPos = p.makeEndPos(p.previous())
		return def
	}

	def.Body = p.parseBlock()
	if def.Body != nil {
		def.EndPos = def.Body.EndPos
	} else {
		def.EndPos = p.makeEndPos(p.previous())
	}
	return def
}

func (p *Parser) parseModifierInvocation() ast.ModifierInvocation {
	name := p.advance()
	inv := ast.ModifierInvocation{Name: name.Lexeme}
	if p.check(LEFT_PAREN) {
		p.advance()
		inv.Args = p.parseExprList(RIGHT_PAREN)
		p.consume(RIGHT_PAREN, "expected ')' after modifier arguments")
	}
	return inv
}

func (p *Parser) parseStructDef() ast.Node {
	start := p.advance() // struct
	name := p.consume(IDENTIFIER, "expected struct name")

	def := &ast.StructDef{
		Pos:  p.makePos(start),
		Name: name.Lexeme,
	}

	p.consume(LEFT_BRACE, "expected '{' to open struct body")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.panicMode {
		fieldStart := p.peek()
		declaredType := p.parseTypeName()
		fieldName := p.consume(IDENTIFIER, "expected struct field name")
		end := p.consume(SEMICOLON, "expected ';' after struct field")
		def.Fields = append(def.Fields, &ast.Param{
			Pos:          p.makePos(fieldStart),
			EndPos:       p.makeEndPos(end),
			Name:         fieldName.Lexeme,
			DeclaredType: declaredType,
		})
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close struct body")
	def.EndPos = p.makeEndPos(end)
	return def
}

func (p *Parser) parseEnumDef() ast.Node {
	start := p.advance() // enum
	name := p.consume(IDENTIFIER, "expected enum name")

	def := &ast.EnumDef{
		Pos:  p.makePos(start),
		Name: name.Lexeme,
	}

	p.consume(LEFT_BRACE, "expected '{' to open enum body")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.panicMode {
		member := p.consume(IDENTIFIER, "expected enum member name")
		if member.Type != ILLEGAL {
			def.Members = append(def.Members, member.Lexeme)
		}
		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close enum body")
	def.EndPos = p.makeEndPos(end)
	return def
}

func (p *Parser) parseEventDef() ast.Node {
	start := p.advance() // event
	name := p.consume(IDENTIFIER, "expected event name")

	def := &ast.EventDef{
		Pos:    p.makePos(start),
		Name:   name.Lexeme,
		Params: p.parseParamList(),
	}
	def.Anonymous = p.match(ANONYMOUS)
	end := p.consume(SEMICOLON, "expected ';' after event declaration")
	def.EndPos = p.makeEndPos(end)
	return def
}

func (p *Parser) parseErrorDef() ast.Node {
	start := p.advance() // error
	name := p.consume(IDENTIFIER, "expected error name")

	def := &ast.ErrorDef{
		Pos:    p.makePos(start),
		Name:   name.Lexeme,
		Params: p.parseParamList(),
	}
	end := p.consume(SEMICOLON, "expected ';' after error declaration")
	def.EndPos = p.makeEndPos(end)
	return def
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param

	p.consume(LEFT_PAREN, "expected '(' to open parameter list")
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() && !p.panicMode {
		params = append(params, p.parseParam())
		if !p.match(COMMA) {
			break
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' to close parameter list")
	return params
}

func (p *Parser) parseParam() *ast.Param {
	start := p.peek()
	param := &ast.Param{
		Pos:          p.makePos(start),
		DeclaredType: p.parseTypeName(),
	}

	for {
		switch p.peek().Type {
		case INDEXED:
			p.advance()
			param.Indexed = true
			continue
		case MEMORY, STORAGE, CALLDATA:
			param.DataLocation = p.advance().Lexeme
			continue
		}
		break
	}

	if p.check(IDENTIFIER) {
		param.Name = p.advance().Lexeme
	}
	param.EndPos = p.makeEndPos(p.previous())
	return param
}

// skipBalanced consumes from an opening delimiter through its matching
// closer, tolerating nesting.
func (p *Parser) skipBalanced(open, close TokenType) {
	if !p.check(open) {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 && !p.isAtEnd() {
		switch p.advance().Type {
		case open:
			depth++
		case close:
			depth--
		}
	}
}
