package ast

// SourceUnit is the root of every parse: the ordered top-level items of one
// Solidity file.
type SourceUnit struct {
	Pos    Position
	EndPos Position
	Items  []Node
}

// Pragma represents compiler directives
// Example: "pragma solidity ^0.8.0;"
type Pragma struct {
	Pos    Position
	EndPos Position
	Name   string // "solidity", "abicoder", ...
	Value  string // "^0.8.0"
}

// Import represents import directives
// Example: `import "./IERC20.sol";`, `import {IERC20} from "./IERC20.sol";`
type Import struct {
	Pos    Position
	EndPos Position
	Path   string
}

// ContractDef represents contract, interface, and library definitions
// Example: "contract Token is IERC20, Ownable { ... }"
type ContractDef struct {
	Pos      Position
	EndPos   Position
	Doc      string
	Kind     string // "contract", "interface", "library"
	Abstract bool
	Name     string
	Inherits []string
	Items    []Node
}

// StructDef represents struct declarations
// Example: "struct Position { uint128 size; uint128 margin; }"
type StructDef struct {
	Pos    Position
	EndPos Position
	Name   string
	Fields []*Param
}

// EnumDef represents enum declarations
// Example: "enum Status { Open, Closed }"
type EnumDef struct {
	Pos     Position
	EndPos  Position
	Name    string
	Members []string
}

// EventDef represents event declarations
// Example: "event Transfer(address indexed from, address indexed to, uint256 value);"
type EventDef struct {
	Pos       Position
	EndPos    Position
	Name      string
	Params    []*Param
	Anonymous bool
}

// ErrorDef represents custom error declarations
// Example: "error InsufficientBalance(uint256 available, uint256 required);"
type ErrorDef struct {
	Pos    Position
	EndPos Position
	Name   string
	Params []*Param
}

// ModifierInvocation is a custom modifier applied to a function.
// Example: "onlyOwner", "whenNotPaused(account)"
type ModifierInvocation struct {
	Name string
	Args []Expr
}

// Function represents function declarations. A nil Body means an interface
// or abstract declaration terminated by ';'.
type Function struct {
	Pos        Position
	EndPos     Position
	Doc        string
	Name       string
	Params     []*Param
	Visibility string // "public" (default), "private", "internal", "external"
	Mutability string // "", "pure", "view", "payable"
	Virtual    bool
	Override   bool
	Modifiers  []ModifierInvocation
	Returns    []*Param
	Body       *Block
}

// Constructor represents constructor declarations
// Example: "constructor(address owner_) { owner = owner_; }"
type Constructor struct {
	Pos       Position
	EndPos    Position
	Params    []*Param
	Modifiers []ModifierInvocation
	Body      *Block
}

// ModifierDef represents modifier declarations
// Example: "modifier onlyOwner() { require(msg.sender == owner); _; }"
type ModifierDef struct {
	Pos    Position
	EndPos Position
	Name   string
	Params []*Param
	Body   *Block
}

// StateVarDecl represents contract-scope variable declarations
// Example: "uint256 public constant MAX_SUPPLY = 10000;"
type StateVarDecl struct {
	Pos          Position
	EndPos       Position
	Doc          string
	Name         string
	DeclaredType string // composite type name, e.g. "uint256[][10]"
	Visibility   string
	IsConstant   bool
	IsImmutable  bool
	Initializer  Expr
}

// Param represents one parameter, return value, struct field, or event field.
// Example: "uint256[] memory data", "address indexed from"
type Param struct {
	Pos          Position
	EndPos       Position
	Name         string // may be empty for unnamed returns
	DeclaredType string
	DataLocation string // "", "memory", "storage", "calldata"
	Indexed      bool
}
