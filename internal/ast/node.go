package ast

func (s *SourceUnit) NodePos() Position    { return s.Pos }
func (s *SourceUnit) NodeEndPos() Position { return s.EndPos }
func (*SourceUnit) NodeType() NodeType     { return SOURCE_UNIT }

func (p *Pragma) NodePos() Position    { return p.Pos }
func (p *Pragma) NodeEndPos() Position { return p.EndPos }
func (*Pragma) NodeType() NodeType     { return PRAGMA }

func (i *Import) NodePos() Position    { return i.Pos }
func (i *Import) NodeEndPos() Position { return i.EndPos }
func (*Import) NodeType() NodeType     { return IMPORT }

func (c *ContractDef) NodePos() Position    { return c.Pos }
func (c *ContractDef) NodeEndPos() Position { return c.EndPos }
func (*ContractDef) NodeType() NodeType     { return CONTRACT_DEF }

func (s *StructDef) NodePos() Position    { return s.Pos }
func (s *StructDef) NodeEndPos() Position { return s.EndPos }
func (*StructDef) NodeType() NodeType     { return STRUCT_DEF }

func (e *EnumDef) NodePos() Position    { return e.Pos }
func (e *EnumDef) NodeEndPos() Position { return e.EndPos }
func (*EnumDef) NodeType() NodeType     { return ENUM_DEF }

func (e *EventDef) NodePos() Position    { return e.Pos }
func (e *EventDef) NodeEndPos() Position { return e.EndPos }
func (*EventDef) NodeType() NodeType     { return EVENT_DEF }

func (e *ErrorDef) NodePos() Position    { return e.Pos }
func (e *ErrorDef) NodeEndPos() Position { return e.EndPos }
func (*ErrorDef) NodeType() NodeType     { return ERROR_DEF }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (c *Constructor) NodePos() Position    { return c.Pos }
func (c *Constructor) NodeEndPos() Position { return c.EndPos }
func (*Constructor) NodeType() NodeType     { return CONSTRUCTOR }

func (m *ModifierDef) NodePos() Position    { return m.Pos }
func (m *ModifierDef) NodeEndPos() Position { return m.EndPos }
func (*ModifierDef) NodeType() NodeType     { return MODIFIER_DEF }

func (v *StateVarDecl) NodePos() Position    { return v.Pos }
func (v *StateVarDecl) NodeEndPos() Position { return v.EndPos }
func (*StateVarDecl) NodeType() NodeType     { return STATE_VAR_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (d *DoWhileStmt) NodePos() Position    { return d.Pos }
func (d *DoWhileStmt) NodeEndPos() Position { return d.EndPos }
func (*DoWhileStmt) NodeType() NodeType     { return DO_WHILE_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *EmitStmt) NodePos() Position    { return e.Pos }
func (e *EmitStmt) NodeEndPos() Position { return e.EndPos }
func (*EmitStmt) NodeType() NodeType     { return EMIT_STMT }

func (r *RevertStmt) NodePos() Position    { return r.Pos }
func (r *RevertStmt) NodeEndPos() Position { return r.EndPos }
func (*RevertStmt) NodeType() NodeType     { return REVERT_STMT }

func (r *RequireStmt) NodePos() Position    { return r.Pos }
func (r *RequireStmt) NodeEndPos() Position { return r.EndPos }
func (*RequireStmt) NodeType() NodeType     { return REQUIRE_STMT }

func (u *UncheckedBlock) NodePos() Position    { return u.Pos }
func (u *UncheckedBlock) NodeEndPos() Position { return u.EndPos }
func (*UncheckedBlock) NodeType() NodeType     { return UNCHECKED_BLOCK }

func (a *AssemblyBlock) NodePos() Position    { return a.Pos }
func (a *AssemblyBlock) NodeEndPos() Position { return a.EndPos }
func (*AssemblyBlock) NodeType() NodeType     { return ASSEMBLY_BLOCK }

func (t *TryStmt) NodePos() Position    { return t.Pos }
func (t *TryStmt) NodeEndPos() Position { return t.EndPos }
func (*TryStmt) NodeType() NodeType     { return TRY_STMT }

func (c *CatchClause) NodePos() Position    { return c.Pos }
func (c *CatchClause) NodeEndPos() Position { return c.EndPos }
func (*CatchClause) NodeType() NodeType     { return CATCH_CLAUSE }

func (v *VarDeclStmt) NodePos() Position    { return v.Pos }
func (v *VarDeclStmt) NodeEndPos() Position { return v.EndPos }
func (*VarDeclStmt) NodeType() NodeType     { return VAR_DECL_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (b *BreakStmt) NodePos() Position    { return b.Pos }
func (b *BreakStmt) NodeEndPos() Position { return b.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (c *ContinueStmt) NodePos() Position    { return c.Pos }
func (c *ContinueStmt) NodeEndPos() Position { return c.EndPos }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (t *TernaryExpr) NodePos() Position    { return t.Pos }
func (t *TernaryExpr) NodeEndPos() Position { return t.EndPos }
func (*TernaryExpr) NodeType() NodeType     { return TERNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (m *MemberAccessExpr) NodePos() Position    { return m.Pos }
func (m *MemberAccessExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberAccessExpr) NodeType() NodeType     { return MEMBER_ACCESS_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (s *StructLiteralExpr) NodePos() Position    { return s.Pos }
func (s *StructLiteralExpr) NodeEndPos() Position { return s.EndPos }
func (*StructLiteralExpr) NodeType() NodeType     { return STRUCT_LITERAL_EXPR }

func (t *TupleExpr) NodePos() Position    { return t.Pos }
func (t *TupleExpr) NodeEndPos() Position { return t.EndPos }
func (*TupleExpr) NodeType() NodeType     { return TUPLE_EXPR }

func (a *ArrayLiteralExpr) NodePos() Position    { return a.Pos }
func (a *ArrayLiteralExpr) NodeEndPos() Position { return a.EndPos }
func (*ArrayLiteralExpr) NodeType() NodeType     { return ARRAY_LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (n *NewExpr) NodePos() Position    { return n.Pos }
func (n *NewExpr) NodeEndPos() Position { return n.EndPos }
func (*NewExpr) NodeType() NodeType     { return NEW_EXPR }

func (b *BadExpr) NodePos() Position    { return b.Pos }
func (b *BadExpr) NodeEndPos() Position { return b.EndPos }
func (*BadExpr) NodeType() NodeType     { return BAD_EXPR }
