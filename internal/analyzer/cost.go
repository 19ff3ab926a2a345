package analyzer

import "gascan/internal/ast"

// estimateCost assigns a rough relative execution cost to an expression. The
// absolute numbers are meaningless; only left-versus-right comparisons inside
// a single condition use them.
func estimateCost(e ast.Expr) int {
	switch node := e.(type) {
	case *ast.CallExpr:
		return 100
	case *ast.MemberAccessExpr:
		return 10
	case *ast.IdentExpr:
		return 3
	case *ast.LiteralExpr:
		return 1
	case *ast.BinaryExpr:
		return estimateCost(node.Left) + estimateCost(node.Right) + 3
	case nil:
		return 0
	default:
		return 5
	}
}
