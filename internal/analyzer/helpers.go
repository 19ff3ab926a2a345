package analyzer

import (
	"strconv"

	"gascan/internal/ast"
)

// exprText renders a compact source-like form of simple expressions for use
// in finding snippets. Anything structurally rich collapses to "...".
func exprText(e ast.Expr) string {
	switch node := e.(type) {
	case *ast.IdentExpr:
		return node.Name
	case *ast.LiteralExpr:
		if node.Kind == ast.StringLiteral {
			return `"` + node.Value + `"`
		}
		return node.Value
	case *ast.MemberAccessExpr:
		return exprText(node.Target) + "." + node.Member
	case *ast.IndexExpr:
		return exprText(node.Target) + "[" + exprText(node.Index) + "]"
	case *ast.CallExpr:
		return exprText(node.Callee) + "(...)"
	case *ast.UnaryExpr:
		if node.Prefix {
			return node.Op + exprText(node.Value)
		}
		return exprText(node.Value) + node.Op
	case *ast.BinaryExpr:
		return exprText(node.Left) + " " + node.Op + " " + exprText(node.Right)
	default:
		return "..."
	}
}

func isNumberLiteral(e ast.Expr, value string) bool {
	lit, ok := e.(*ast.LiteralExpr)
	return ok && lit.Kind == ast.NumberLiteral && lit.Value == value
}

// numericValue parses a number literal's value. Literals carrying unit
// suffixes or fractional parts do not parse and report ok=false.
func numericValue(e ast.Expr) (uint64, bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Kind != ast.NumberLiteral {
		return 0, false
	}
	n, err := strconv.ParseUint(lit.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isPowerOfTwo(n uint64) bool {
	return n > 1 && n&(n-1) == 0
}
