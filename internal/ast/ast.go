// Package ast defines the syntax tree produced by the parser. Each node kind
// is its own struct carrying only the fields meaningful to that kind; context
// during traversal (current contract, current function) is threaded by the
// caller, never stored on nodes.
package ast

// Position tracks location information for findings and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type NodeType int

const (
	SOURCE_UNIT NodeType = iota
	PRAGMA
	IMPORT
	CONTRACT_DEF
	STRUCT_DEF
	ENUM_DEF
	EVENT_DEF
	ERROR_DEF
	FUNCTION
	CONSTRUCTOR
	MODIFIER_DEF
	STATE_VAR_DECL
	PARAM

	BLOCK
	IF_STMT
	FOR_STMT
	WHILE_STMT
	DO_WHILE_STMT
	RETURN_STMT
	EMIT_STMT
	REVERT_STMT
	REQUIRE_STMT
	UNCHECKED_BLOCK
	ASSEMBLY_BLOCK
	TRY_STMT
	CATCH_CLAUSE
	VAR_DECL_STMT
	EXPR_STMT
	BREAK_STMT
	CONTINUE_STMT

	BINARY_EXPR
	UNARY_EXPR
	ASSIGN_EXPR
	TERNARY_EXPR
	CALL_EXPR
	MEMBER_ACCESS_EXPR
	INDEX_EXPR
	STRUCT_LITERAL_EXPR
	TUPLE_EXPR
	ARRAY_LITERAL_EXPR
	IDENT_EXPR
	LITERAL_EXPR
	NEW_EXPR
	BAD_EXPR
)

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// LiteralKind distinguishes literal flavors without semantic typing.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BoolLiteral
	HexLiteral
)
