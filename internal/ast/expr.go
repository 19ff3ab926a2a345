package ast

// BinaryExpr represents binary operations. Pos is the start of the left
// operand, not the operator.
// Example: "balance >= amount", "a * 4"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents prefix and postfix unary operations
// Example: "!paused", "-x", "i++" (Prefix false)
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Prefix bool
	Value  Expr
}

// AssignExpr represents assignments, including compound operators
// Example: "total = total + 1", "balance -= amount"
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Op     string // "=", "+=", "-=", "*=", "/="
	Target Expr
	Value  Expr
}

// TernaryExpr represents conditional expressions, right-associative on the
// else branch
// Example: "a > b ? a : b"
type TernaryExpr struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Then      Expr
	Else      Expr
}

// CallExpr represents function calls
// Example: "transfer(to, amount)", "token.balanceOf(user)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// MemberAccessExpr represents member access
// Example: "items.length", "msg.sender"
type MemberAccessExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Member string
}

// IndexExpr represents array or mapping indexing
// Example: "balances[owner]", "items[i]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

// StructLiteralField is one field of a struct literal.
type StructLiteralField struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// StructLiteralExpr represents brace-literal construction / named call args
// Example: "Position({size: s, margin: m})" inner literal "{size: s, margin: m}"
type StructLiteralExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Fields []*StructLiteralField
}

// TupleExpr represents parenthesized tuples
// Example: "(a, b)", "()"
type TupleExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// ArrayLiteralExpr represents inline array literals
// Example: "[1, 2, 3]"
type ArrayLiteralExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// IdentExpr represents simple identifiers
// Example: "amount", "owner"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// LiteralExpr represents literal values
// Example: "100", "10 ether", "\"hello\"", "true", "0x42"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// NewExpr represents contract or array creation
// Example: "new Token()", "new uint256[](n)" target of the call
type NewExpr struct {
	Pos    Position
	EndPos Position
	Type   string
}

// BadExpr stands in for an expression that failed to parse.
type BadExpr struct {
	Pos     Position
	EndPos  Position
	Message string
}

func (*BinaryExpr) exprNode()        {}
func (*BadExpr) exprNode()           {}
func (*UnaryExpr) exprNode()         {}
func (*AssignExpr) exprNode()        {}
func (*TernaryExpr) exprNode()       {}
func (*CallExpr) exprNode()          {}
func (*MemberAccessExpr) exprNode()  {}
func (*IndexExpr) exprNode()         {}
func (*StructLiteralExpr) exprNode() {}
func (*TupleExpr) exprNode()         {}
func (*ArrayLiteralExpr) exprNode()  {}
func (*IdentExpr) exprNode()         {}
func (*LiteralExpr) exprNode()       {}
func (*NewExpr) exprNode()           {}

func (*Block) stmtNode()          {}
func (*IfStmt) stmtNode()         {}
func (*ForStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()      {}
func (*DoWhileStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()     {}
func (*EmitStmt) stmtNode()       {}
func (*RevertStmt) stmtNode()     {}
func (*RequireStmt) stmtNode()    {}
func (*UncheckedBlock) stmtNode() {}
func (*AssemblyBlock) stmtNode()  {}
func (*TryStmt) stmtNode()        {}
func (*VarDeclStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
