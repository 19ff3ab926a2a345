package analyzer

import (
	"strconv"

	"gascan/internal/ast"
)

// checkCustomErrors flags require/assert calls carrying a string-literal
// message. Revert strings are stored in the deployed bytecode and ABI-encoded
// on every revert; custom errors encode as a 4-byte selector.
func (a *Analyzer) checkCustomErrors(stmt *ast.RequireStmt) {
	for _, arg := range stmt.Args {
		lit, ok := arg.(*ast.LiteralExpr)
		if !ok || lit.Kind != ast.StringLiteral {
			continue
		}

		keyword := "require"
		if stmt.IsAssert {
			keyword = "assert"
		}
		a.report(Finding{
			Rule:             RuleCustomErrors,
			Severity:         SeverityMedium,
			Line:             stmt.Pos.Line,
			Column:           stmt.Pos.Column,
			Message:          "Replace " + keyword + " string with a custom error",
			Description:      "The revert string \"" + lit.Value + "\" is embedded in the bytecode and encoded on every revert. A custom error costs a 4-byte selector instead.",
			EstimatedSavings: "~50 gas per revert, plus deployment cost",
			Before:           keyword + `(..., "` + lit.Value + `")`,
			After:            "if (...) revert SomeError();",
		})
		return
	}
}

// checkUseNeqZero flags `x > 0` comparisons; for unsigned values `x != 0` is
// the same predicate and compiles to a cheaper opcode sequence.
func (a *Analyzer) checkUseNeqZero(expr *ast.BinaryExpr) {
	if expr.Op != ">" || !isNumberLiteral(expr.Right, "0") {
		return
	}

	a.report(Finding{
		Rule:             RuleUseNeqZero,
		Severity:         SeverityLow,
		Line:             expr.Pos.Line,
		Column:           expr.Pos.Column,
		Message:          "Use != 0 instead of > 0",
		Description:      "For unsigned integers the two comparisons are equivalent, and != 0 avoids the extra GT evaluation.",
		EstimatedSavings: "~3 gas per comparison",
		Before:           exprText(expr.Left) + " > 0",
		After:            exprText(expr.Left) + " != 0",
	})
}

// checkUseShift flags multiplication or division by a power-of-two literal.
func (a *Analyzer) checkUseShift(expr *ast.BinaryExpr) {
	if expr.Op != "*" && expr.Op != "/" {
		return
	}
	n, ok := numericValue(expr.Right)
	if !ok || !isPowerOfTwo(n) {
		return
	}

	shiftOp := "<<"
	if expr.Op == "/" {
		shiftOp = ">>"
	}
	exp := 0
	for v := n; v > 1; v >>= 1 {
		exp++
	}

	a.report(Finding{
		Rule:             RuleUseShift,
		Severity:         SeverityLow,
		Line:             expr.Pos.Line,
		Column:           expr.Pos.Column,
		Message:          "Replace " + expr.Op + " by power of two with a shift",
		Description:      "MUL and DIV cost 5 gas while SHL and SHR cost 3, and the result is identical for powers of two.",
		EstimatedSavings: "~20 gas per operation",
		Before:           exprText(expr.Left) + " " + expr.Op + " " + exprText(expr.Right),
		After:            exprText(expr.Left) + " " + shiftOp + " " + strconv.Itoa(exp),
	})
}

// checkShortCircuit flags if-conditions joined by &&/|| whose left operand
// looks strictly more expensive than the right; swapping the operands lets
// the cheap side short-circuit the expensive one.
func (a *Analyzer) checkShortCircuit(stmt *ast.IfStmt) {
	cond, ok := stmt.Condition.(*ast.BinaryExpr)
	if !ok || (cond.Op != "&&" && cond.Op != "||") {
		return
	}

	leftCost := estimateCost(cond.Left)
	rightCost := estimateCost(cond.Right)
	if leftCost <= rightCost || rightCost == 0 {
		return
	}

	a.report(Finding{
		Rule:             RuleShortCircuit,
		Severity:         SeverityLow,
		Line:             stmt.Pos.Line,
		Column:           stmt.Pos.Column,
		Message:          "Reorder condition to put the cheaper operand first",
		Description:      "The left side of '" + cond.Op + "' evaluates unconditionally. Placing the cheaper operand first lets it short-circuit the expensive one.",
		EstimatedSavings: "varies with operand cost",
		Before:           exprText(cond.Left) + " " + cond.Op + " " + exprText(cond.Right),
		After:            exprText(cond.Right) + " " + cond.Op + " " + exprText(cond.Left),
	})
}

// checkDefaultValue flags locals explicitly initialized to zero; declaration
// alone already yields the zero value.
func (a *Analyzer) checkDefaultValue(decl *ast.VarDeclStmt) {
	if !isNumberLiteral(decl.Initializer, "0") {
		return
	}

	a.report(Finding{
		Rule:             RuleDefaultValue,
		Severity:         SeverityLow,
		Line:             decl.Pos.Line,
		Column:           decl.Pos.Column,
		Message:          "Remove explicit zero initialization of '" + decl.Name + "'",
		Description:      "Variables default to zero; assigning 0 explicitly costs an extra store for no effect.",
		EstimatedSavings: "~3-8 gas per declaration",
		Before:           decl.DeclaredType + " " + decl.Name + " = 0;",
		After:            decl.DeclaredType + " " + decl.Name + ";",
	})
}

// checkUseIncrementOperator flags `x = x + 1` and `x = x - 1`.
func (a *Analyzer) checkUseIncrementOperator(assign *ast.AssignExpr) {
	if assign.Op != "=" {
		return
	}
	target, ok := assign.Target.(*ast.IdentExpr)
	if !ok {
		return
	}
	value, ok := assign.Value.(*ast.BinaryExpr)
	if !ok || (value.Op != "+" && value.Op != "-") {
		return
	}
	left, ok := value.Left.(*ast.IdentExpr)
	if !ok || left.Name != target.Name || !isNumberLiteral(value.Right, "1") {
		return
	}

	op := "++"
	if value.Op == "-" {
		op = "--"
	}
	a.report(Finding{
		Rule:             RuleUseIncrementOperator,
		Severity:         SeverityLow,
		Line:             assign.Pos.Line,
		Column:           assign.Pos.Column,
		Message:          "Use " + op + target.Name + " instead of " + target.Name + " = " + target.Name + " " + value.Op + " 1",
		Description:      "The increment operator compiles to a shorter opcode sequence than the rebuilt assignment.",
		EstimatedSavings: "~5 gas per operation",
		Before:           target.Name + " = " + target.Name + " " + value.Op + " 1;",
		After:            op + target.Name + ";",
	})
}

// checkStandalonePostfixIncrement flags every postfix ++/--. Loop updates are
// not excluded, so a postfix update clause yields this finding on top of the
// loop-specific one.
func (a *Analyzer) checkStandalonePostfixIncrement(expr *ast.UnaryExpr) {
	if expr.Prefix || (expr.Op != "++" && expr.Op != "--") {
		return
	}

	a.report(Finding{
		Rule:             RulePrefixIncrement,
		Severity:         SeverityLow,
		Line:             expr.Pos.Line,
		Column:           expr.Pos.Column,
		Message:          "Use prefix " + expr.Op + " when the old value is unused",
		Description:      "The postfix form keeps a copy of the old value. When the expression result is discarded the prefix form is cheaper.",
		EstimatedSavings: "~5 gas per operation",
		Before:           exprText(expr),
		After:            expr.Op + exprText(expr.Value),
	})
}
