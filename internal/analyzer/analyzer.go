// Package analyzer walks a parsed syntax tree looking for gas-inefficient
// patterns. It runs two passes: the first inventories state variables per
// contract, the second evaluates pattern rules with that inventory available,
// so a state variable declared after a loop that reads it is still recognized.
package analyzer

import "gascan/internal/ast"

// StateVar is one state-variable record collected in pass 1.
type StateVar struct {
	Name         string
	DeclaredType string
	IsConstant   bool
	IsImmutable  bool
	Line         int
}

// Analyzer accumulates findings over one syntax tree. Not safe for reuse;
// create a fresh Analyzer per Analyze call.
type Analyzer struct {
	stateVars map[string][]StateVar
	findings  []Finding

	currentContract string
	currentFunction *ast.Function
}

func New() *Analyzer {
	return &Analyzer{
		stateVars: make(map[string][]StateVar),
	}
}

// Analyze runs both passes and returns findings in discovery order. It never
// fails: nodes a rule cannot interpret simply do not match.
func (a *Analyzer) Analyze(unit *ast.SourceUnit) []Finding {
	if unit == nil {
		return nil
	}

	a.collectStateVars(unit)
	a.walk(unit)
	a.checkStoragePacking(unit)
	return a.findings
}

// StateVars exposes the pass-1 inventory, keyed by contract name.
func (a *Analyzer) StateVars() map[string][]StateVar {
	return a.stateVars
}

func (a *Analyzer) collectStateVars(unit *ast.SourceUnit) {
	for _, item := range unit.Items {
		contract, ok := item.(*ast.ContractDef)
		if !ok {
			continue
		}
		vars := []StateVar{}
		for _, member := range contract.Items {
			decl, ok := member.(*ast.StateVarDecl)
			if !ok {
				continue
			}
			vars = append(vars, StateVar{
				Name:         decl.Name,
				DeclaredType: decl.DeclaredType,
				IsConstant:   decl.IsConstant,
				IsImmutable:  decl.IsImmutable,
				Line:         decl.Pos.Line,
			})
		}
		a.stateVars[contract.Name] = vars
	}
}

// walk is the pass-2 traversal. Contract and function context is saved and
// restored around the recursion so it is visible to descendants but never to
// siblings.
func (a *Analyzer) walk(n ast.Node) {
	if n == nil {
		return
	}

	switch node := n.(type) {
	case *ast.ContractDef:
		prev := a.currentContract
		a.currentContract = node.Name
		a.checkNode(n)
		for _, child := range ast.Children(n) {
			a.walk(child)
		}
		a.currentContract = prev
		return

	case *ast.Function:
		prev := a.currentFunction
		a.currentFunction = node
		a.checkNode(n)
		for _, child := range ast.Children(n) {
			a.walk(child)
		}
		a.currentFunction = prev
		return
	}

	a.checkNode(n)
	for _, child := range ast.Children(n) {
		a.walk(child)
	}
}

// checkNode dispatches rule checks by node kind. Rules append findings and
// never fail; an AST shape a rule does not expect means the rule does not
// apply.
func (a *Analyzer) checkNode(n ast.Node) {
	switch node := n.(type) {
	case *ast.Function:
		a.checkUseCalldata(node)
		a.checkExternalVisibility(node)
	case *ast.StateVarDecl:
		a.checkUseConstant(node)
		a.checkUseImmutable(node)
	case *ast.ForStmt:
		a.checkCacheArrayLength(node)
		a.checkUncheckedIncrement(node)
		a.checkLoopPostfixIncrement(node)
	case *ast.WhileStmt:
		a.checkCacheStorageInLoop(node.Condition, node.Pos)
	case *ast.DoWhileStmt:
		a.checkCacheStorageInLoop(node.Condition, node.Pos)
	case *ast.IfStmt:
		a.checkShortCircuit(node)
	case *ast.RequireStmt:
		a.checkCustomErrors(node)
	case *ast.VarDeclStmt:
		a.checkDefaultValue(node)
	case *ast.BinaryExpr:
		a.checkUseNeqZero(node)
		a.checkUseShift(node)
	case *ast.AssignExpr:
		a.checkUseIncrementOperator(node)
	case *ast.UnaryExpr:
		a.checkStandalonePostfixIncrement(node)
	}
}

func (a *Analyzer) report(f Finding) {
	f.Contract = a.currentContract
	if a.currentFunction != nil {
		f.Function = a.currentFunction.Name
	}
	a.findings = append(a.findings, f)
}

// isStateVar reports whether name is a state variable of the current contract.
func (a *Analyzer) isStateVar(name string) bool {
	for _, sv := range a.stateVars[a.currentContract] {
		if sv.Name == name {
			return true
		}
	}
	return false
}
