// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascan/internal/ast"
)

func parseSource(t *testing.T, source string) (*ast.SourceUnit, *Parser) {
	t.Helper()
	tokens := NewScanner(source).ScanTokens()
	p := NewParser("test.sol", tokens, source)
	unit, err := p.ParseSourceUnit()
	require.NoError(t, err)
	require.NotNil(t, unit)
	return unit, p
}

func firstContract(t *testing.T, unit *ast.SourceUnit) *ast.ContractDef {
	t.Helper()
	for _, item := range unit.Items {
		if c, ok := item.(*ast.ContractDef); ok {
			return c
		}
	}
	t.Fatal("no contract in source unit")
	return nil
}

func firstFunction(t *testing.T, c *ast.ContractDef) *ast.Function {
	t.Helper()
	for _, item := range c.Items {
		if fn, ok := item.(*ast.Function); ok {
			return fn
		}
	}
	t.Fatal("no function in contract")
	return nil
}

func TestParsePragmaAndImport(t *testing.T) {
	unit, p := parseSource(t, `
pragma solidity ^0.8.0;
import "./Token.sol";
contract C {}
`)
	assert.Empty(t, p.Errors())
	require.Len(t, unit.Items, 3)

	pragma, ok := unit.Items[0].(*ast.Pragma)
	require.True(t, ok)
	assert.Equal(t, "solidity", pragma.Name)
	assert.Equal(t, "^0.8.0", pragma.Value)

	imp, ok := unit.Items[1].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "./Token.sol", imp.Path)
}

func TestParseContractHeader(t *testing.T) {
	unit, p := parseSource(t, `
abstract contract Vault is Ownable, ReentrancyGuard(true) {}
interface IVault {}
library Math {}
`)
	assert.Empty(t, p.Errors())
	require.Len(t, unit.Items, 3)

	vault := unit.Items[0].(*ast.ContractDef)
	assert.True(t, vault.Abstract)
	assert.Equal(t, "contract", vault.Kind)
	assert.Equal(t, "Vault", vault.Name)
	assert.Equal(t, []string{"Ownable", "ReentrancyGuard"}, vault.Inherits)

	assert.Equal(t, "interface", unit.Items[1].(*ast.ContractDef).Kind)
	assert.Equal(t, "library", unit.Items[2].(*ast.ContractDef).Kind)
}

func TestParseStateVariables(t *testing.T) {
	unit, p := parseSource(t, `
contract C {
    uint256 public totalSupply;
    address private owner;
    uint256 internal constant FEE = 100;
    address immutable treasury;
    mapping(address => uint256) public balances;
    uint256[] items;
}
`)
	assert.Empty(t, p.Errors())
	c := firstContract(t, unit)
	require.Len(t, c.Items, 6)

	total := c.Items[0].(*ast.StateVarDecl)
	assert.Equal(t, "totalSupply", total.Name)
	assert.Equal(t, "uint256", total.DeclaredType)
	assert.Equal(t, "public", total.Visibility)

	fee := c.Items[2].(*ast.StateVarDecl)
	assert.True(t, fee.IsConstant)
	require.NotNil(t, fee.Initializer)

	treasury := c.Items[3].(*ast.StateVarDecl)
	assert.True(t, treasury.IsImmutable)

	balances := c.Items[4].(*ast.StateVarDecl)
	assert.Equal(t, "mapping(address => uint256)", balances.DeclaredType)

	items := c.Items[5].(*ast.StateVarDecl)
	assert.Equal(t, "uint256[]", items.DeclaredType)
}

func TestParseFunctionAttributes(t *testing.T) {
	unit, p := parseSource(t, `
contract C {
    function transfer(address to, uint256 amount) public virtual onlyOwner returns (bool ok) {
        return true;
    }
    function decimals() external pure returns (uint8);
    function helper() internal {}
}
`)
	assert.Empty(t, p.Errors())
	c := firstContract(t, unit)

	transfer := c.Items[0].(*ast.Function)
	assert.Equal(t, "transfer", transfer.Name)
	assert.Equal(t, "public", transfer.Visibility)
	assert.True(t, transfer.Virtual)
	require.Len(t, transfer.Modifiers, 1)
	assert.Equal(t, "onlyOwner", transfer.Modifiers[0].Name)
	require.Len(t, transfer.Params, 2)
	assert.Equal(t, "to", transfer.Params[0].Name)
	assert.Equal(t, "address", transfer.Params[0].DeclaredType)
	require.Len(t, transfer.Returns, 1)
	assert.Equal(t, "bool", transfer.Returns[0].DeclaredType)
	require.NotNil(t, transfer.Body)

	decimals := c.Items[1].(*ast.Function)
	assert.Equal(t, "external", decimals.Visibility)
	assert.Equal(t, "pure", decimals.Mutability)
	assert.Nil(t, decimals.Body)
}

func TestParseFunctionDefaultVisibility(t *testing.T) {
	unit, _ := parseSource(t, `contract C { function f() { } }`)
	fn := firstFunction(t, firstContract(t, unit))
	assert.Equal(t, "public", fn.Visibility)
}

func TestParseConstructorEventErrorStructEnum(t *testing.T) {
	unit, p := parseSource(t, `
contract C {
    struct Position { uint256 size; address owner; }
    enum State { Idle, Active, Closed }
    event Transfer(address indexed from, address indexed to, uint256 value);
    error Unauthorized(address caller);
    constructor(address _owner) payable { owner = _owner; }
    modifier onlyOwner() { require(msg.sender == owner); _; }
    address owner;
}
`)
	// The bare `_;` placeholder inside the modifier body parses as an
	// expression statement over the identifier `_`.
	assert.Empty(t, p.Errors())
	c := firstContract(t, unit)

	pos := c.Items[0].(*ast.StructDef)
	require.Len(t, pos.Fields, 2)
	assert.Equal(t, "size", pos.Fields[0].Name)

	state := c.Items[1].(*ast.EnumDef)
	assert.Equal(t, []string{"Idle", "Active", "Closed"}, state.Members)

	ev := c.Items[2].(*ast.EventDef)
	assert.Equal(t, "Transfer", ev.Name)
	require.Len(t, ev.Params, 3)
	assert.True(t, ev.Params[0].Indexed)
	assert.False(t, ev.Params[2].Indexed)

	errDef := c.Items[3].(*ast.ErrorDef)
	assert.Equal(t, "Unauthorized", errDef.Name)

	ctor := c.Items[4].(*ast.Constructor)
	require.Len(t, ctor.Params, 1)
	require.NotNil(t, ctor.Body)

	mod := c.Items[5].(*ast.ModifierDef)
	assert.Equal(t, "onlyOwner", mod.Name)
	require.NotNil(t, mod.Body)
}

func TestParseDocComments(t *testing.T) {
	unit, _ := parseSource(t, `
contract C {
    /// @notice Moves tokens.
    /// @param to recipient
    function transfer(address to) public {}

    uint256 x;
}
`)
	fn := firstFunction(t, firstContract(t, unit))
	assert.Contains(t, fn.Doc, "@notice Moves tokens.")
	assert.Contains(t, fn.Doc, "@param to recipient")
}

func bodyStatements(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	unit, p := parseSource(t, "contract C { function f() public {\n"+source+"\n} }")
	require.Empty(t, p.Errors(), "unexpected parse errors")
	fn := firstFunction(t, firstContract(t, unit))
	require.NotNil(t, fn.Body)
	return fn.Body.Statements
}

func firstExpr(t *testing.T, source string) ast.Expr {
	t.Helper()
	stmts := bodyStatements(t, source)
	require.NotEmpty(t, stmts)
	es, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok, "expected expression statement, got %T", stmts[0])
	return es.Expression
}

func TestParseBinaryPrecedence(t *testing.T) {
	expr := firstExpr(t, "x = a + b * c;")
	assign := expr.(*ast.AssignExpr)
	sum := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", sum.Op)
	product := sum.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", product.Op)
}

func TestParseLeftAssociativity(t *testing.T) {
	expr := firstExpr(t, "x = a - b - c;")
	outer := expr.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Op)
	assert.Equal(t, "c", outer.Right.(*ast.IdentExpr).Name)
}

func TestParseExponentRightAssociative(t *testing.T) {
	expr := firstExpr(t, "x = a ** b ** c;")
	outer := expr.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
	assert.Equal(t, "**", outer.Op)
	assert.Equal(t, "a", outer.Left.(*ast.IdentExpr).Name)
	inner, ok := outer.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "**", inner.Op)
}

func TestParseBinaryPosFromLeftOperand(t *testing.T) {
	expr := firstExpr(t, "x = a + b;")
	sum := expr.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
	assert.Equal(t, sum.Left.NodePos(), sum.Pos)
}

func TestParseTernary(t *testing.T) {
	expr := firstExpr(t, "x = a > b ? a : b > c ? b : c;")
	tern := expr.(*ast.AssignExpr).Value.(*ast.TernaryExpr)
	_, ok := tern.Else.(*ast.TernaryExpr)
	assert.True(t, ok, "ternary should be right-associative")
}

func TestParseCompoundAssignment(t *testing.T) {
	for _, op := range []string{"=", "+=", "-=", "*=", "/="} {
		expr := firstExpr(t, "total "+op+" amount;")
		assign, ok := expr.(*ast.AssignExpr)
		require.True(t, ok, op)
		assert.Equal(t, op, assign.Op)
	}
}

func TestParseUnaryAndPostfix(t *testing.T) {
	prefix := firstExpr(t, "++i;").(*ast.UnaryExpr)
	assert.True(t, prefix.Prefix)
	assert.Equal(t, "++", prefix.Op)

	postfix := firstExpr(t, "i++;").(*ast.UnaryExpr)
	assert.False(t, postfix.Prefix)
	assert.Equal(t, "++", postfix.Op)

	not := firstExpr(t, "x = !paused;").(*ast.AssignExpr).Value.(*ast.UnaryExpr)
	assert.Equal(t, "!", not.Op)

	del := firstExpr(t, "delete balances;").(*ast.UnaryExpr)
	assert.Equal(t, "delete", del.Op)
}

func TestParsePostfixChains(t *testing.T) {
	expr := firstExpr(t, "x = token.balances[msg.sender].length;")
	member := expr.(*ast.AssignExpr).Value.(*ast.MemberAccessExpr)
	assert.Equal(t, "length", member.Member)
	index, ok := member.Target.(*ast.IndexExpr)
	require.True(t, ok)
	inner := index.Target.(*ast.MemberAccessExpr)
	assert.Equal(t, "balances", inner.Member)
}

func TestParseCalls(t *testing.T) {
	expr := firstExpr(t, "transfer(to, amount + fee);")
	call := expr.(*ast.CallExpr)
	assert.Equal(t, "transfer", call.Callee.(*ast.IdentExpr).Name)
	require.Len(t, call.Args, 2)

	cast := firstExpr(t, "x = address(0);").(*ast.AssignExpr).Value.(*ast.CallExpr)
	assert.Equal(t, "address", cast.Callee.(*ast.IdentExpr).Name)

	pay := firstExpr(t, "x = payable(msg.sender);").(*ast.AssignExpr).Value.(*ast.CallExpr)
	assert.Equal(t, "payable", pay.Callee.(*ast.IdentExpr).Name)
}

func TestParseParensReturnInnerExpression(t *testing.T) {
	expr := firstExpr(t, "x = (a + b);")
	_, ok := expr.(*ast.AssignExpr).Value.(*ast.BinaryExpr)
	assert.True(t, ok, "grouping parens should not produce a wrapper node")
}

func TestParseTupleAndArrayLiterals(t *testing.T) {
	stmts := bodyStatements(t, "(a, b) = (b, a);\nuint256[] memory xs = [1, 2, 3];")

	assign := stmts[0].(*ast.ExprStmt).Expression.(*ast.AssignExpr)
	tup := assign.Target.(*ast.TupleExpr)
	require.Len(t, tup.Elements, 2)

	decl := stmts[1].(*ast.VarDeclStmt)
	arr := decl.Initializer.(*ast.ArrayLiteralExpr)
	require.Len(t, arr.Elements, 3)
}

func TestParseNewExpression(t *testing.T) {
	expr := firstExpr(t, "x = new Token();")
	call := expr.(*ast.AssignExpr).Value.(*ast.CallExpr)
	nw := call.Callee.(*ast.NewExpr)
	assert.Equal(t, "Token", nw.Type)

	arr := firstExpr(t, "x = new uint256[](n);").(*ast.AssignExpr).Value.(*ast.CallExpr)
	assert.Equal(t, "uint256[]", arr.Callee.(*ast.NewExpr).Type)
}

func TestParseStructLiteralCall(t *testing.T) {
	expr := firstExpr(t, "open(Position({size: s, margin: m}));")
	outer := expr.(*ast.CallExpr)
	require.Len(t, outer.Args, 1)
	inner := outer.Args[0].(*ast.CallExpr)
	require.Len(t, inner.Args, 1)
	lit := inner.Args[0].(*ast.StructLiteralExpr)
	assert.Nil(t, lit.Target)
	require.Len(t, lit.Fields, 2)
	assert.Equal(t, "size", lit.Fields[0].Name)
}

func TestParseStructLiteralPostfix(t *testing.T) {
	expr := firstExpr(t, "p = Position{size: s};")
	lit := expr.(*ast.AssignExpr).Value.(*ast.StructLiteralExpr)
	assert.Equal(t, "Position", lit.Target.(*ast.IdentExpr).Name)
	require.Len(t, lit.Fields, 1)
}

func TestParseNamedArgumentsLiteral(t *testing.T) {
	expr := firstExpr(t, "f({a: 1, b: 2});")
	call := expr.(*ast.CallExpr)
	require.Len(t, call.Args, 1)
	lit := call.Args[0].(*ast.StructLiteralExpr)
	assert.Nil(t, lit.Target)
	require.Len(t, lit.Fields, 2)
}

func TestParseIfBodyNotMistakenForStructLiteral(t *testing.T) {
	stmts := bodyStatements(t, "if (paused) { x = 1; } else { x = 2; }")
	require.Len(t, stmts, 1)
	ifStmt := stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifStmt.Else)
}

func TestParseControlFlow(t *testing.T) {
	stmts := bodyStatements(t, `
for (uint256 i = 0; i < items.length; i++) { total += items[i]; }
while (x > 0) { x--; }
do { x++; } while (x < 10);
`)
	require.Len(t, stmts, 3)

	forStmt := stmts[0].(*ast.ForStmt)
	init := forStmt.Init.(*ast.VarDeclStmt)
	assert.Equal(t, "i", init.Name)
	assert.Equal(t, "uint256", init.DeclaredType)
	require.NotNil(t, forStmt.Condition)
	require.NotNil(t, forStmt.Update)

	_, ok := stmts[1].(*ast.WhileStmt)
	assert.True(t, ok)
	_, ok = stmts[2].(*ast.DoWhileStmt)
	assert.True(t, ok)
}

func TestParseForWithEmptyClauses(t *testing.T) {
	stmts := bodyStatements(t, "for (;;) { break; }")
	forStmt := stmts[0].(*ast.ForStmt)
	assert.Nil(t, forStmt.Init)
	assert.Nil(t, forStmt.Condition)
	assert.Nil(t, forStmt.Update)
}

func TestParseRequireRevertEmit(t *testing.T) {
	stmts := bodyStatements(t, `
require(amount > 0, "zero amount");
assert(total >= amount);
revert Unauthorized(msg.sender);
revert("plain");
emit Transfer(from, to, amount);
`)
	require.Len(t, stmts, 5)

	req := stmts[0].(*ast.RequireStmt)
	assert.False(t, req.IsAssert)
	require.Len(t, req.Args, 2)

	asrt := stmts[1].(*ast.RequireStmt)
	assert.True(t, asrt.IsAssert)

	rev := stmts[2].(*ast.RevertStmt)
	assert.Equal(t, "Unauthorized", rev.ErrorName)
	require.Len(t, rev.Args, 1)

	plain := stmts[3].(*ast.RevertStmt)
	assert.Empty(t, plain.ErrorName)
	require.Len(t, plain.Args, 1)

	emit := stmts[4].(*ast.EmitStmt)
	_, ok := emit.Call.(*ast.CallExpr)
	assert.True(t, ok)
}

func TestParseUncheckedBlock(t *testing.T) {
	stmts := bodyStatements(t, "unchecked { i++; }")
	ub := stmts[0].(*ast.UncheckedBlock)
	require.NotNil(t, ub.Body)
	require.Len(t, ub.Body.Statements, 1)
}

func TestParseAssemblyBlockOpaque(t *testing.T) {
	stmts := bodyStatements(t, `assembly { let x := mload(0x40) { y := 1 } }`)
	asm := stmts[0].(*ast.AssemblyBlock)
	assert.Contains(t, asm.Body, "mload")
	assert.Contains(t, asm.Body, "y")
}

func TestParseTryCatch(t *testing.T) {
	stmts := bodyStatements(t, `
try token.transfer(to, amount) returns (bool ok) {
    total += amount;
} catch Error(string memory reason) {
    emit Failed(reason);
} catch {
    x = 0;
}
`)
	ts := stmts[0].(*ast.TryStmt)
	_, ok := ts.Call.(*ast.CallExpr)
	assert.True(t, ok)
	require.Len(t, ts.Returns, 1)
	require.Len(t, ts.Catches, 2)
	assert.Equal(t, "Error", ts.Catches[0].Kind)
	assert.Empty(t, ts.Catches[1].Kind)
}

func TestParseVarDeclVersusExpression(t *testing.T) {
	stmts := bodyStatements(t, `
uint256 cached = items.length;
address payable dest = payable(to);
bytes memory data;
a * b;
`)
	require.Len(t, stmts, 4)

	cached := stmts[0].(*ast.VarDeclStmt)
	assert.Equal(t, "cached", cached.Name)

	dest := stmts[1].(*ast.VarDeclStmt)
	assert.Equal(t, "address payable", dest.DeclaredType)

	data := stmts[2].(*ast.VarDeclStmt)
	assert.Equal(t, "memory", data.DataLocation)
	assert.Nil(t, data.Initializer)

	_, ok := stmts[3].(*ast.ExprStmt)
	assert.True(t, ok, "a * b is an expression, not a declaration")
}

func TestParseErrorRecovery(t *testing.T) {
	source := `
contract C {
    uint256 x = ;
    function ok() public { x = 1; }
}
`
	tokens := NewScanner(source).ScanTokens()
	p := NewParser("test.sol", tokens, source)
	unit, err := p.ParseSourceUnit()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Errors())

	// The bad declaration is skipped but the function after it survives.
	c := firstContract(t, unit)
	found := false
	for _, item := range c.Items {
		if fn, ok := item.(*ast.Function); ok && fn.Name == "ok" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and keep the valid function")
}

func TestParseErrorBudgetExceeded(t *testing.T) {
	// More than ten junk statements at the top level exhaust the error budget.
	source := strings.Repeat("]]];\n", 15)
	tokens := NewScanner(source).ScanTokens()
	p := NewParser("test.sol", tokens, source)
	_, err := p.ParseSourceUnit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax errors")
}

func TestParseWithinErrorBudget(t *testing.T) {
	source := "]]];\n" + `contract C { function f() public {} }`
	tokens := NewScanner(source).ScanTokens()
	p := NewParser("test.sol", tokens, source)
	unit, err := p.ParseSourceUnit()
	require.NoError(t, err)
	assert.NotEmpty(t, p.Errors())
	assert.NotNil(t, firstContract(t, unit))
}

func TestParseEmptyTokenStream(t *testing.T) {
	p := NewParser("test.sol", nil, "")
	_, err := p.ParseSourceUnit()
	require.Error(t, err)
}

func TestParseIdempotent(t *testing.T) {
	source := `
contract C {
    uint256 total;
    function add(uint256 x) public { total += x; }
}
`
	first, _ := parseSource(t, source)
	second, _ := parseSource(t, source)
	assert.Equal(t, first, second)
}

func TestParseFreeFunctionAndUsingDirective(t *testing.T) {
	unit, p := parseSource(t, `
using SafeMath for uint256;
function helper(uint256 x) pure returns (uint256) { return x + 1; }
`)
	assert.Empty(t, p.Errors())
	require.Len(t, unit.Items, 1)
	fn := unit.Items[0].(*ast.Function)
	assert.Equal(t, "helper", fn.Name)
}
