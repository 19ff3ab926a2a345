package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING
	HEX_STRING

	// Keywords
	PRAGMA
	IMPORT
	CONTRACT
	INTERFACE
	LIBRARY
	ABSTRACT
	IS
	STRUCT
	ENUM
	EVENT
	ERROR
	FUNCTION
	CONSTRUCTOR
	MODIFIER
	MAPPING
	MEMORY
	STORAGE
	CALLDATA
	PUBLIC
	PRIVATE
	INTERNAL
	EXTERNAL
	PURE
	VIEW
	PAYABLE
	VIRTUAL
	OVERRIDE
	CONSTANT
	IMMUTABLE
	RETURNS
	RETURN
	IF
	ELSE
	FOR
	WHILE
	DO
	BREAK
	CONTINUE
	EMIT
	REVERT
	REQUIRE
	ASSERT
	UNCHECKED
	ASSEMBLY
	TRY
	CATCH
	NEW
	DELETE
	USING
	INDEXED
	ANONYMOUS
	TRUE
	FALSE
	ADDRESS
	BOOL
	STRING_KW
	BYTES_KW

	// Operators
	PLUS
	INCREMENT
	MINUS
	DECREMENT
	STAR
	STAR_STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	TILDE
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	AMPERSAND
	OR
	PIPE
	CARET
	SHIFT_LEFT
	SHIFT_RIGHT
	QUESTION
	FAT_ARROW

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	SHIFT_LEFT_EQUAL
	SHIFT_RIGHT_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Comments
	COMMENT
	DOC_COMMENT
)

var tokenNames = map[TokenType]string{
	ILLEGAL:           "ILLEGAL",
	EOF:               "EOF",
	IDENTIFIER:        "IDENTIFIER",
	NUMBER:            "NUMBER",
	STRING:            "STRING",
	HEX_STRING:        "HEX_STRING",
	PRAGMA:            "PRAGMA",
	IMPORT:            "IMPORT",
	CONTRACT:          "CONTRACT",
	INTERFACE:         "INTERFACE",
	LIBRARY:           "LIBRARY",
	ABSTRACT:          "ABSTRACT",
	IS:                "IS",
	STRUCT:            "STRUCT",
	ENUM:              "ENUM",
	EVENT:             "EVENT",
	ERROR:             "ERROR",
	FUNCTION:          "FUNCTION",
	CONSTRUCTOR:       "CONSTRUCTOR",
	MODIFIER:          "MODIFIER",
	MAPPING:           "MAPPING",
	MEMORY:            "MEMORY",
	STORAGE:           "STORAGE",
	CALLDATA:          "CALLDATA",
	PUBLIC:            "PUBLIC",
	PRIVATE:           "PRIVATE",
	INTERNAL:          "INTERNAL",
	EXTERNAL:          "EXTERNAL",
	PURE:              "PURE",
	VIEW:              "VIEW",
	PAYABLE:           "PAYABLE",
	VIRTUAL:           "VIRTUAL",
	OVERRIDE:          "OVERRIDE",
	CONSTANT:          "CONSTANT",
	IMMUTABLE:         "IMMUTABLE",
	RETURNS:           "RETURNS",
	RETURN:            "RETURN",
	IF:                "IF",
	ELSE:              "ELSE",
	FOR:               "FOR",
	WHILE:             "WHILE",
	DO:                "DO",
	BREAK:             "BREAK",
	CONTINUE:          "CONTINUE",
	EMIT:              "EMIT",
	REVERT:            "REVERT",
	REQUIRE:           "REQUIRE",
	ASSERT:            "ASSERT",
	UNCHECKED:         "UNCHECKED",
	ASSEMBLY:          "ASSEMBLY",
	TRY:               "TRY",
	CATCH:             "CATCH",
	NEW:               "NEW",
	DELETE:            "DELETE",
	USING:             "USING",
	INDEXED:           "INDEXED",
	ANONYMOUS:         "ANONYMOUS",
	TRUE:              "TRUE",
	FALSE:             "FALSE",
	ADDRESS:           "ADDRESS",
	BOOL:              "BOOL",
	STRING_KW:         "STRING_KW",
	BYTES_KW:          "BYTES_KW",
	PLUS:              "PLUS",
	INCREMENT:         "INCREMENT",
	MINUS:             "MINUS",
	DECREMENT:         "DECREMENT",
	STAR:              "STAR",
	STAR_STAR:         "STAR_STAR",
	SLASH:             "SLASH",
	PERCENT:           "PERCENT",
	BANG:              "BANG",
	BANG_EQUAL:        "BANG_EQUAL",
	TILDE:             "TILDE",
	EQUAL:             "EQUAL",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	LESS:              "LESS",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER:           "GREATER",
	GREATER_EQUAL:     "GREATER_EQUAL",
	AND:               "AND",
	AMPERSAND:         "AMPERSAND",
	OR:                "OR",
	PIPE:              "PIPE",
	CARET:             "CARET",
	SHIFT_LEFT:        "SHIFT_LEFT",
	SHIFT_RIGHT:       "SHIFT_RIGHT",
	QUESTION:          "QUESTION",
	FAT_ARROW:         "FAT_ARROW",
	PLUS_EQUAL:        "PLUS_EQUAL",
	MINUS_EQUAL:       "MINUS_EQUAL",
	STAR_EQUAL:        "STAR_EQUAL",
	SLASH_EQUAL:       "SLASH_EQUAL",
	PERCENT_EQUAL:     "PERCENT_EQUAL",
	SHIFT_LEFT_EQUAL:  "SHIFT_LEFT_EQUAL",
	SHIFT_RIGHT_EQUAL: "SHIFT_RIGHT_EQUAL",
	COMMA:             "COMMA",
	DOT:               "DOT",
	SEMICOLON:         "SEMICOLON",
	COLON:             "COLON",
	LEFT_PAREN:        "LEFT_PAREN",
	RIGHT_PAREN:       "RIGHT_PAREN",
	LEFT_BRACE:        "LEFT_BRACE",
	RIGHT_BRACE:       "RIGHT_BRACE",
	LEFT_BRACKET:      "LEFT_BRACKET",
	RIGHT_BRACKET:     "RIGHT_BRACKET",
	COMMENT:           "COMMENT",
	DOC_COMMENT:       "DOC_COMMENT",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}
