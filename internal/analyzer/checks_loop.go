package analyzer

import "gascan/internal/ast"

// checkCacheArrayLength flags loop conditions of the shape `i < arr.length`
// where arr is a state variable. Reading .length from storage on every
// iteration costs a warm SLOAD each time.
func (a *Analyzer) checkCacheArrayLength(loop *ast.ForStmt) {
	cond, ok := loop.Condition.(*ast.BinaryExpr)
	if !ok || cond.Op != "<" {
		return
	}
	member, ok := cond.Right.(*ast.MemberAccessExpr)
	if !ok || member.Member != "length" {
		return
	}
	ident, ok := member.Target.(*ast.IdentExpr)
	if !ok || !a.isStateVar(ident.Name) {
		return
	}

	a.report(Finding{
		Rule:             RuleCacheArrayLength,
		Severity:         SeverityHigh,
		Line:             loop.Pos.Line,
		Column:           loop.Pos.Column,
		Message:          "Cache '" + ident.Name + ".length' outside the loop",
		Description:      "The storage array's length is re-read on every iteration. Copy it into a local variable before the loop and compare against that.",
		EstimatedSavings: "~100 gas per iteration",
		Before:           "for (...; " + exprText(cond.Left) + " < " + ident.Name + ".length; ...)",
		After:            "uint256 len = " + ident.Name + ".length; for (...; " + exprText(cond.Left) + " < len; ...)",
	})
}

// checkUncheckedIncrement flags counter loops whose update is a bare ++/--
// and whose body has no unchecked block anywhere in it. On 0.8+ compilers
// the counter bump carries an overflow check the loop bound already rules out.
func (a *Analyzer) checkUncheckedIncrement(loop *ast.ForStmt) {
	update, ok := loop.Update.(*ast.UnaryExpr)
	if !ok || (update.Op != "++" && update.Op != "--") {
		return
	}
	if loop.Body != nil && ast.Contains(loop.Body, ast.UNCHECKED_BLOCK) {
		return
	}

	a.report(Finding{
		Rule:             RuleUncheckedIncrement,
		Severity:         SeverityMedium,
		Line:             loop.Pos.Line,
		Column:           loop.Pos.Column,
		Message:          "Loop counter increment can be unchecked",
		Description:      "The loop condition already bounds the counter, so the compiler's overflow check on the increment is redundant. Move the increment into an unchecked block.",
		EstimatedSavings: "~30-40 gas per iteration",
		Before:           exprText(update),
		After:            "unchecked { " + exprText(update) + "; }",
	})
}

// checkLoopPostfixIncrement flags postfix ++/-- in a loop's update clause.
func (a *Analyzer) checkLoopPostfixIncrement(loop *ast.ForStmt) {
	update, ok := loop.Update.(*ast.UnaryExpr)
	if !ok || update.Prefix || (update.Op != "++" && update.Op != "--") {
		return
	}

	a.report(Finding{
		Rule:             RulePrefixIncrement,
		Severity:         SeverityLow,
		Line:             loop.Pos.Line,
		Column:           loop.Pos.Column,
		Message:          "Use prefix " + update.Op + " in loop update",
		Description:      "The postfix form keeps a copy of the old value that the loop update discards. The prefix form skips that copy.",
		EstimatedSavings: "~5 gas per iteration",
		Before:           exprText(update),
		After:            update.Op + exprText(update.Value),
	})
}

// checkCacheStorageInLoop flags while/do-while conditions that read state
// variables directly; each loop test then pays a storage read.
func (a *Analyzer) checkCacheStorageInLoop(cond ast.Expr, pos ast.Position) {
	if cond == nil {
		return
	}

	var name string
	ast.Inspect(cond, func(node ast.Node) bool {
		if name != "" {
			return false
		}
		if ident, ok := node.(*ast.IdentExpr); ok && a.isStateVar(ident.Name) {
			name = ident.Name
			return false
		}
		return true
	})
	if name == "" {
		return
	}

	a.report(Finding{
		Rule:             RuleCacheStorageInLoop,
		Severity:         SeverityHigh,
		Line:             pos.Line,
		Column:           pos.Column,
		Message:          "State variable '" + name + "' read in loop condition",
		Description:      "Every evaluation of the loop condition loads '" + name + "' from storage. Cache it in a local variable and write it back after the loop.",
		EstimatedSavings: "~100 gas per iteration",
	})
}
