package parser

import (
	"fmt"
	"strings"

	"gascan/internal/ast"
)

// maxParseErrors bounds error recovery: once more than this many recoverable
// syntax errors accumulate, parsing aborts with a hard error.
const maxParseErrors = 10

type ParseError struct {
	Message  string
	Position Position
}

type Parser struct {
	filename  string
	source    string
	tokens    []Token
	docs      map[int]string // token offset -> preceding doc comment text
	current   int
	errors    []ParseError
	panicMode bool
	fatal     bool
}

// NewParser prepares a parser over a scanned token stream. Plain comments are
// dropped; doc comments are lifted out of the stream and attached to the
// declaration that follows them.
func NewParser(filename string, tokens []Token, source string) *Parser {
	kept := make([]Token, 0, len(tokens))
	docs := make(map[int]string)
	var pending []string

	for _, tok := range tokens {
		switch tok.Type {
		case COMMENT:
			continue
		case DOC_COMMENT:
			pending = append(pending, tok.Lexeme)
			continue
		}
		if len(pending) > 0 {
			docs[tok.Position.Offset] = strings.Join(pending, "\n")
			pending = nil
		}
		kept = append(kept, tok)
	}

	return &Parser{
		filename: filename,
		source:   source,
		tokens:   kept,
		docs:     docs,
	}
}

// ParseSourceUnit parses the whole token stream into a single-rooted AST.
// Recoverable syntax errors resynchronize at statement boundaries; the parse
// fails outright only when the error budget is exceeded.
func (p *Parser) ParseSourceUnit() (*ast.SourceUnit, error) {
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("empty token stream")
	}

	unit := &ast.SourceUnit{Pos: p.makePos(p.peek())}

	for !p.isAtEnd() && !p.fatal {
		item := p.parseSourceItem()
		if p.panicMode {
			p.synchronize()
			p.panicMode = false
			continue
		}
		if item != nil {
			unit.Items = append(unit.Items, item)
		}
	}
	unit.EndPos = p.makeEndPos(p.peek())

	if p.fatal {
		last := p.errors[len(p.errors)-1]
		return nil, fmt.Errorf("aborting after %d syntax errors, last at line %d: %s",
			len(p.errors), last.Position.Line, last.Message)
	}
	return unit, nil
}

// Errors returns the recoverable syntax errors accumulated so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) parseSourceItem() ast.Node {
	switch p.peek().Type {
	case PRAGMA:
		return p.parsePragma()
	case IMPORT:
		return p.parseImport()
	case ABSTRACT, CONTRACT, INTERFACE, LIBRARY:
		return p.parseContractDef()
	case STRUCT:
		return p.parseStructDef()
	case ENUM:
		return p.parseEnumDef()
	case EVENT:
		return p.parseEventDef()
	case ERROR:
		return p.parseErrorDef()
	case FUNCTION:
		return p.parseFunction()
	case USING:
		p.skipThroughSemicolon()
		return nil
	default:
		p.errorAtCurrent("unexpected token at top level")
		p.advance()
		return nil
	}
}

func (p *Parser) parsePragma() ast.Node {
	start := p.advance() // pragma
	name := p.consume(IDENTIFIER, "expected pragma name")

	valueStart := p.peek().Position.Offset
	valueEnd := valueStart
	for !p.isAtEnd() && !p.check(SEMICOLON) {
		tok := p.advance()
		valueEnd = tok.Position.Offset + len(tok.Lexeme)
	}
	end := p.consume(SEMICOLON, "expected ';' after pragma")

	value := ""
	if valueEnd > valueStart && valueEnd <= len(p.source) {
		value = strings.TrimSpace(p.source[valueStart:valueEnd])
	}

	return &ast.Pragma{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name.Lexeme,
		Value:  value,
	}
}

func (p *Parser) parseImport() ast.Node {
	start := p.advance() // import
	path := ""
	for !p.isAtEnd() && !p.check(SEMICOLON) {
		tok := p.advance()
		if tok.Type == STRING {
			path = tok.Lexeme
		}
	}
	end := p.consume(SEMICOLON, "expected ';' after import")

	return &ast.Import{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path,
	}
}

// skipThroughSemicolon discards tokens up to and including the next ';'.
// Used for directives the analyzer has no interest in, like `using A for B;`.
func (p *Parser) skipThroughSemicolon() {
	for !p.isAtEnd() && !p.check(SEMICOLON) {
		p.advance()
	}
	if p.check(SEMICOLON) {
		p.advance()
	}
}
