package parser

// KEYWORDS maps reserved words to their token types. Classification is an
// exact, case-sensitive match; anything else lexically valid is an identifier.
var KEYWORDS = map[string]TokenType{
	"pragma":      PRAGMA,
	"import":      IMPORT,
	"contract":    CONTRACT,
	"interface":   INTERFACE,
	"library":     LIBRARY,
	"abstract":    ABSTRACT,
	"is":          IS,
	"struct":      STRUCT,
	"enum":        ENUM,
	"event":       EVENT,
	"error":       ERROR,
	"function":    FUNCTION,
	"constructor": CONSTRUCTOR,
	"modifier":    MODIFIER,
	"mapping":     MAPPING,
	"memory":      MEMORY,
	"storage":     STORAGE,
	"calldata":    CALLDATA,
	"public":      PUBLIC,
	"private":     PRIVATE,
	"internal":    INTERNAL,
	"external":    EXTERNAL,
	"pure":        PURE,
	"view":        VIEW,
	"payable":     PAYABLE,
	"virtual":     VIRTUAL,
	"override":    OVERRIDE,
	"constant":    CONSTANT,
	"immutable":   IMMUTABLE,
	"returns":     RETURNS,
	"return":      RETURN,
	"if":          IF,
	"else":        ELSE,
	"for":         FOR,
	"while":       WHILE,
	"do":          DO,
	"break":       BREAK,
	"continue":    CONTINUE,
	"emit":        EMIT,
	"revert":      REVERT,
	"require":     REQUIRE,
	"assert":      ASSERT,
	"unchecked":   UNCHECKED,
	"assembly":    ASSEMBLY,
	"try":         TRY,
	"catch":       CATCH,
	"new":         NEW,
	"delete":      DELETE,
	"using":       USING,
	"indexed":     INDEXED,
	"anonymous":   ANONYMOUS,
	"true":        TRUE,
	"false":       FALSE,
	"address":     ADDRESS,
	"bool":        BOOL,
	"string":      STRING_KW,
	"bytes":       BYTES_KW,
}

// unitSuffixes are the time and currency units that may trail a number
// literal. The unit is folded into the number token's value.
var unitSuffixes = map[string]bool{
	"wei":     true,
	"gwei":    true,
	"ether":   true,
	"seconds": true,
	"minutes": true,
	"hours":   true,
	"days":    true,
	"weeks":   true,
}
