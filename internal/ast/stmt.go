package ast

// Block represents a braced statement list
// Example: "{ balance += amount; emit Deposit(msg.sender, amount); }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// IfStmt represents conditionals, with an optional else branch
// Example: "if (amount > 0) { ... } else { ... }"
type IfStmt struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

// ForStmt represents for loops. Init, Condition, and Update may each be nil.
// Example: "for (uint i = 0; i < items.length; i++) { ... }"
type ForStmt struct {
	Pos       Position
	EndPos    Position
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      Stmt
}

// WhileStmt represents while loops
// Example: "while (pending > 0) { ... }"
type WhileStmt struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      Stmt
}

// DoWhileStmt represents do-while loops
// Example: "do { ... } while (pending > 0);"
type DoWhileStmt struct {
	Pos       Position
	EndPos    Position
	Body      Stmt
	Condition Expr
}

// ReturnStmt represents return statements, Value is nil for bare "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// EmitStmt represents event emission
// Example: "emit Transfer(from, to, amount);"
type EmitStmt struct {
	Pos    Position
	EndPos Position
	Call   Expr
}

// RevertStmt represents revert statements with either a custom error or
// plain arguments
// Example: `revert InsufficientBalance(available, required);`, `revert("nope");`
type RevertStmt struct {
	Pos       Position
	EndPos    Position
	ErrorName string // empty for plain revert(...)
	Args      []Expr
}

// RequireStmt represents require and assert calls in statement position
// Example: `require(balance >= amount, "Insufficient balance");`
type RequireStmt struct {
	Pos      Position
	EndPos   Position
	IsAssert bool
	Args     []Expr
}

// UncheckedBlock represents unchecked arithmetic blocks
// Example: "unchecked { i++; }"
type UncheckedBlock struct {
	Pos    Position
	EndPos Position
	Body   *Block
}

// AssemblyBlock holds an inline assembly body captured opaquely by brace
// balance; the tokens inside are never parsed.
type AssemblyBlock struct {
	Pos     Position
	EndPos  Position
	Dialect string // optional string flag, e.g. "evmasm"
	Body    string // raw body text, whitespace-joined lexemes
}

// TryStmt represents try/catch statements
// Example: "try token.transfer(to, amount) returns (bool ok) { ... } catch { ... }"
type TryStmt struct {
	Pos     Position
	EndPos  Position
	Call    Expr
	Returns []*Param
	Body    *Block
	Catches []*CatchClause
}

// CatchClause represents one catch arm of a try statement
// Example: "catch Error(string memory reason) { ... }", "catch { ... }"
type CatchClause struct {
	Pos    Position
	EndPos Position
	Kind   string // "Error", "Panic", or "" for a bare catch
	Params []*Param
	Body   *Block
}

// VarDeclStmt represents local variable declarations
// Example: "uint256 cached = items.length;"
type VarDeclStmt struct {
	Pos          Position
	EndPos       Position
	Name         string
	DeclaredType string
	DataLocation string
	Initializer  Expr // nil when absent
}

// ExprStmt wraps an expression used in statement position
type ExprStmt struct {
	Pos        Position
	EndPos     Position
	Expression Expr
}

// BreakStmt represents "break;"
type BreakStmt struct {
	Pos    Position
	EndPos Position
}

// ContinueStmt represents "continue;"
type ContinueStmt struct {
	Pos    Position
	EndPos Position
}
