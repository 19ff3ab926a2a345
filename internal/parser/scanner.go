package parser

import (
	"strings"
	"unicode"
)

// Scanner turns Solidity source text into a flat token stream. It is total:
// every byte either starts a token or is skipped, and the last token is
// always EOF.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
}

type opEntry struct {
	lexeme    string
	tokenType TokenType
}

// Multi-character operators must be matched before shorter prefixes of
// themselves, so each table is probed longest-first.
var threeCharOps = []opEntry{
	{">>=", SHIFT_RIGHT_EQUAL},
	{"<<=", SHIFT_LEFT_EQUAL},
}

var twoCharOps = []opEntry{
	{"++", INCREMENT},
	{"--", DECREMENT},
	{"**", STAR_STAR},
	{"+=", PLUS_EQUAL},
	{"-=", MINUS_EQUAL},
	{"*=", STAR_EQUAL},
	{"/=", SLASH_EQUAL},
	{"%=", PERCENT_EQUAL},
	{"==", EQUAL_EQUAL},
	{"!=", BANG_EQUAL},
	{"<=", LESS_EQUAL},
	{">=", GREATER_EQUAL},
	{"&&", AND},
	{"||", OR},
	{"=>", FAT_ARROW},
	{"<<", SHIFT_LEFT},
	{">>", SHIFT_RIGHT},
}

var oneCharOps = []opEntry{
	{"+", PLUS},
	{"-", MINUS},
	{"*", STAR},
	{"/", SLASH},
	{"%", PERCENT},
	{"=", EQUAL},
	{"<", LESS},
	{">", GREATER},
	{"!", BANG},
	{"~", TILDE},
	{"&", AMPERSAND},
	{"|", PIPE},
	{"^", CARET},
	{"?", QUESTION},
	{":", COLON},
	{";", SEMICOLON},
	{",", COMMA},
	{".", DOT},
	{"(", LEFT_PAREN},
	{")", RIGHT_PAREN},
	{"{", LEFT_BRACE},
	{"}", RIGHT_BRACE},
	{"[", LEFT_BRACKET},
	{"]", RIGHT_BRACKET},
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.peek()
	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		s.advance()
	case c == '/' && s.peekNext() == '/':
		s.scanLineComment()
	case c == '/' && s.peekNext() == '*':
		s.scanBlockComment()
	case c == '"' || c == '\'':
		s.scanString(c)
	case c == 'h' && strings.HasPrefix(s.source[s.current:], `hex"`):
		s.scanHexString()
	case isDigit(c):
		s.scanNumber()
	case isIdentStart(c):
		s.scanIdentifier()
	default:
		s.scanOperator()
	}
}

func (s *Scanner) scanOperator() {
	for _, table := range [][]opEntry{threeCharOps, twoCharOps, oneCharOps} {
		for _, op := range table {
			if strings.HasPrefix(s.source[s.current:], op.lexeme) {
				for range op.lexeme {
					s.advance()
				}
				s.addToken(op.tokenType)
				return
			}
		}
	}
	// Unrecognized character: skip it silently, the lexer never fails.
	s.advance()
}

func (s *Scanner) scanLineComment() {
	s.advance() // /
	s.advance() // /
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	text := s.source[s.start:s.current]
	tokenType := COMMENT
	if len(text) >= 3 && (text[2] == '/' || text[2] == '!') {
		tokenType = DOC_COMMENT
	}
	s.addTokenLexeme(tokenType, text)
}

func (s *Scanner) scanBlockComment() {
	s.advance() // /
	s.advance() // *
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			break
		}
		s.advance()
	}
	text := s.source[s.start:s.current]
	tokenType := COMMENT
	if len(text) >= 3 && (text[2] == '/' || text[2] == '!') {
		tokenType = DOC_COMMENT
	}
	s.addTokenLexeme(tokenType, text)
}

// scanString consumes a string delimited by quote. Escape sequences are kept
// verbatim: the backslash and the following character are copied, not decoded.
func (s *Scanner) scanString(quote byte) {
	s.advance() // opening quote
	for !s.isAtEnd() {
		c := s.peek()
		if c == '\\' {
			s.advance()
			if !s.isAtEnd() {
				s.advance()
			}
			continue
		}
		if c == quote {
			break
		}
		s.advance()
	}
	value := s.source[s.start+1 : s.current]
	if !s.isAtEnd() {
		s.advance() // closing quote
	}
	s.addTokenLexeme(STRING, value)
}

func (s *Scanner) scanHexString() {
	s.advance() // h
	s.advance() // e
	s.advance() // x
	s.advance() // "
	for isHexDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '"' {
		s.advance()
	}
	s.addTokenLexeme(HEX_STRING, s.source[s.start:s.current])
}

func (s *Scanner) scanNumber() {
	c := s.advance()
	if c == '0' && (s.peek() == 'x' || s.peek() == 'X') && isHexDigit(s.peekNext()) {
		s.advance()
		for isHexDigit(s.peek()) {
			s.advance()
		}
	} else {
		for isDigit(s.peek()) {
			s.advance()
		}
		if s.peek() == '.' && isDigit(s.peekNext()) {
			s.advance()
			for isDigit(s.peek()) {
				s.advance()
			}
		}
		if e := s.peek(); e == 'e' || e == 'E' {
			i := s.current + 1
			if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
				i++
			}
			if i < len(s.source) && isDigit(s.source[i]) {
				for s.current <= i {
					s.advance()
				}
				for isDigit(s.peek()) {
					s.advance()
				}
			}
		}
	}

	value := s.source[s.start:s.current]

	// A trailing time or currency unit belongs to the literal: "10 ether"
	// lexes as one number token with the unit joined by a single space.
	j := s.current
	for j < len(s.source) && (s.source[j] == ' ' || s.source[j] == '\t') {
		j++
	}
	k := j
	for k < len(s.source) && isIdentPart(s.source[k]) {
		k++
	}
	if word := s.source[j:k]; unitSuffixes[word] {
		for s.current < k {
			s.advance()
		}
		value = value + " " + word
	}

	s.addTokenLexeme(NUMBER, value)
}

func (s *Scanner) scanIdentifier() {
	s.advance()
	for isIdentPart(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addTokenLexeme(lookupIdentifier(text), text)
}

func lookupIdentifier(text string) TokenType {
	if tt, ok := KEYWORDS[text]; ok {
		return tt
	}
	return IDENTIFIER
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

// FilterComments drops plain comments from a token stream. Doc comments pass
// through so the parser can attach them to declarations.
func FilterComments(tokens []Token) []Token {
	filtered := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == COMMENT {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isIdentStart(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_' || c == '$'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
