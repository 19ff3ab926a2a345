package ast

// Children enumerates the direct child nodes of n in source order. New node
// kinds only need a case here; traversal code elsewhere stays generic.
func Children(n Node) []Node {
	var out []Node

	addExpr := func(e Expr) {
		if e != nil {
			out = append(out, e)
		}
	}
	addStmt := func(s Stmt) {
		if s != nil {
			out = append(out, s)
		}
	}

	switch node := n.(type) {
	case *SourceUnit:
		out = append(out, node.Items...)
	case *ContractDef:
		out = append(out, node.Items...)
	case *StructDef:
		for _, f := range node.Fields {
			out = append(out, f)
		}
	case *EventDef:
		for _, p := range node.Params {
			out = append(out, p)
		}
	case *ErrorDef:
		for _, p := range node.Params {
			out = append(out, p)
		}
	case *Function:
		for _, p := range node.Params {
			out = append(out, p)
		}
		for _, m := range node.Modifiers {
			for _, a := range m.Args {
				addExpr(a)
			}
		}
		for _, r := range node.Returns {
			out = append(out, r)
		}
		if node.Body != nil {
			out = append(out, node.Body)
		}
	case *Constructor:
		for _, p := range node.Params {
			out = append(out, p)
		}
		for _, m := range node.Modifiers {
			for _, a := range m.Args {
				addExpr(a)
			}
		}
		if node.Body != nil {
			out = append(out, node.Body)
		}
	case *ModifierDef:
		for _, p := range node.Params {
			out = append(out, p)
		}
		if node.Body != nil {
			out = append(out, node.Body)
		}
	case *StateVarDecl:
		addExpr(node.Initializer)
	case *Block:
		for _, s := range node.Statements {
			out = append(out, s)
		}
	case *IfStmt:
		addExpr(node.Condition)
		addStmt(node.Then)
		addStmt(node.Else)
	case *ForStmt:
		addStmt(node.Init)
		addExpr(node.Condition)
		addExpr(node.Update)
		addStmt(node.Body)
	case *WhileStmt:
		addExpr(node.Condition)
		addStmt(node.Body)
	case *DoWhileStmt:
		addStmt(node.Body)
		addExpr(node.Condition)
	case *ReturnStmt:
		addExpr(node.Value)
	case *EmitStmt:
		addExpr(node.Call)
	case *RevertStmt:
		for _, a := range node.Args {
			addExpr(a)
		}
	case *RequireStmt:
		for _, a := range node.Args {
			addExpr(a)
		}
	case *UncheckedBlock:
		if node.Body != nil {
			out = append(out, node.Body)
		}
	case *TryStmt:
		addExpr(node.Call)
		for _, r := range node.Returns {
			out = append(out, r)
		}
		if node.Body != nil {
			out = append(out, node.Body)
		}
		for _, c := range node.Catches {
			out = append(out, c)
		}
	case *CatchClause:
		for _, p := range node.Params {
			out = append(out, p)
		}
		if node.Body != nil {
			out = append(out, node.Body)
		}
	case *VarDeclStmt:
		addExpr(node.Initializer)
	case *ExprStmt:
		addExpr(node.Expression)
	case *BinaryExpr:
		addExpr(node.Left)
		addExpr(node.Right)
	case *UnaryExpr:
		addExpr(node.Value)
	case *AssignExpr:
		addExpr(node.Target)
		addExpr(node.Value)
	case *TernaryExpr:
		addExpr(node.Condition)
		addExpr(node.Then)
		addExpr(node.Else)
	case *CallExpr:
		addExpr(node.Callee)
		for _, a := range node.Args {
			addExpr(a)
		}
	case *MemberAccessExpr:
		addExpr(node.Target)
	case *IndexExpr:
		addExpr(node.Target)
		addExpr(node.Index)
	case *StructLiteralExpr:
		addExpr(node.Target)
		for _, f := range node.Fields {
			addExpr(f.Value)
		}
	case *TupleExpr:
		for _, e := range node.Elements {
			addExpr(e)
		}
	case *ArrayLiteralExpr:
		for _, e := range node.Elements {
			addExpr(e)
		}
	}

	return out
}

// Inspect walks the tree rooted at n in pre-order. If f returns false for a
// node, its children are not visited.
func Inspect(n Node, f func(Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Contains reports whether any node in the subtree rooted at n has the given
// node type.
func Contains(n Node, nt NodeType) bool {
	found := false
	Inspect(n, func(node Node) bool {
		if found {
			return false
		}
		if node.NodeType() == nt {
			found = true
			return false
		}
		return true
	})
	return found
}
