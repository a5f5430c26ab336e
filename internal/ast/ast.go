// Package ast defines the parse tree node shapes produced by the parser
// and consumed by the semantic analyzer and code generator.
package ast

import "github.com/lacc-lang/lacc/internal/token"

// Node is the base interface implemented by every tree node.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that appears in a command sequence.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that yields a value.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Declaration is a Statement that introduces a name into a scope.
type Declaration interface {
	Statement
	declarationNode()
}

// Visitor is implemented once per tree walk (the semantic analyzer, the
// code generator) with one method per node kind. Each Visit method is
// responsible for recursing into its own children by calling Accept on
// them explicitly — there is no separate automatic all-children walk, so
// a node is visited exactly once per pass.
type Visitor interface {
	VisitProgram(n *Program)

	VisitVarDecl(n *VarDecl)
	VisitTypeDecl(n *TypeDecl)
	VisitConstDecl(n *ConstDecl)
	VisitFunctionDecl(n *FunctionDecl)
	VisitProcedureDecl(n *ProcedureDecl)

	VisitAssignStmt(n *AssignStmt)
	VisitReadStmt(n *ReadStmt)
	VisitWriteStmt(n *WriteStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitDoUntilStmt(n *DoUntilStmt)
	VisitForStmt(n *ForStmt)
	VisitSwitchStmt(n *SwitchStmt)
	VisitCallStmt(n *CallStmt)
	VisitReturnStmt(n *ReturnStmt)

	VisitIdentifier(n *Identifier)
	VisitIntLiteral(n *IntLiteral)
	VisitRealLiteral(n *RealLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBoolLiteral(n *BoolLiteral)
	VisitUnaryExpr(n *UnaryExpr)
	VisitBinaryExpr(n *BinaryExpr)
	VisitParenExpr(n *ParenExpr)
	VisitFieldAccess(n *FieldAccess)
	VisitArrayAccess(n *ArrayAccess)
	VisitPointerDeref(n *PointerDeref)
	VisitFuncCallExpr(n *FuncCallExpr)
}

// ---- Type references ----

// TypeRef denotes a type as written in source: a primitive tag, a named
// user type, an anonymous inline record, or a pointer decoration.
type TypeRef interface {
	Node
	typeRefNode()
	String() string
}

// PrimitiveType is one of inteiro, real, literal, logico.
type PrimitiveType struct {
	Token token.Token
	Name  string
}

func (t *PrimitiveType) TokenLiteral() string { return t.Token.Lexeme }
func (t *PrimitiveType) Accept(v Visitor)     {}
func (t *PrimitiveType) typeRefNode()         {}
func (t *PrimitiveType) String() string       { return t.Name }

// NamedType is a reference to a previously declared record or alias.
type NamedType struct {
	Token token.Token
	Name  string
}

func (t *NamedType) TokenLiteral() string { return t.Token.Lexeme }
func (t *NamedType) Accept(v Visitor)     {}
func (t *NamedType) typeRefNode()         {}
func (t *NamedType) String() string       { return t.Name }

// PointerType is `^T`.
type PointerType struct {
	Token token.Token
	Elem  TypeRef
}

func (t *PointerType) TokenLiteral() string { return t.Token.Lexeme }
func (t *PointerType) Accept(v Visitor)     {}
func (t *PointerType) typeRefNode()         {}
func (t *PointerType) String() string       { return "^" + t.Elem.String() }

// Field is one member of a record body.
type Field struct {
	Names []*Identifier
	Type  TypeRef
}

// RecordType is a `registro ... fim_registro` body, named or anonymous.
type RecordType struct {
	Token  token.Token
	Fields []*Field
}

func (t *RecordType) TokenLiteral() string { return t.Token.Lexeme }
func (t *RecordType) Accept(v Visitor)     {}
func (t *RecordType) typeRefNode()         {}
func (t *RecordType) String() string       { return "registro" }

// ---- Program ----

// Program is the root of every parse tree.
type Program struct {
	Token       token.Token
	Name        string
	GlobalVars  []*VarDecl
	Types       []*TypeDecl
	Constants   []*ConstDecl
	Functions   []*FunctionDecl
	Procedures  []*ProcedureDecl
	Body        []Statement
}

func (p *Program) TokenLiteral() string { return p.Token.Lexeme }
func (p *Program) Accept(v Visitor)     { v.VisitProgram(p) }

// ---- Declarations ----

// VarDecl declares one or more names of the same type.
type VarDecl struct {
	Token     token.Token // first name's token
	Names     []*Identifier
	Type      TypeRef
	ArraySize Expression // nil unless this is an array declarator
}

func (d *VarDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *VarDecl) Accept(v Visitor)     { v.VisitVarDecl(d) }
func (d *VarDecl) statementNode()       {}
func (d *VarDecl) declarationNode()     {}

// TypeDecl declares a named record type or a type alias.
type TypeDecl struct {
	Token token.Token
	Name  *Identifier
	Body  TypeRef // *RecordType for a record, any TypeRef for an alias
}

func (d *TypeDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *TypeDecl) Accept(v Visitor)     { v.VisitTypeDecl(d) }
func (d *TypeDecl) statementNode()       {}
func (d *TypeDecl) declarationNode()     {}

// ConstDecl binds a name to a compile-time literal.
type ConstDecl struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (d *ConstDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ConstDecl) Accept(v Visitor)     { v.VisitConstDecl(d) }
func (d *ConstDecl) statementNode()       {}
func (d *ConstDecl) declarationNode()     {}

// Param is one formal parameter of a function or procedure.
type Param struct {
	Name *Identifier
	Type TypeRef
}

// FunctionDecl declares a function with a primitive return type.
type FunctionDecl struct {
	Token      token.Token
	Name       *Identifier
	Params     []*Param
	ReturnType TypeRef
	Locals     []*VarDecl
	Body       []Statement
}

func (d *FunctionDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *FunctionDecl) Accept(v Visitor)     { v.VisitFunctionDecl(d) }
func (d *FunctionDecl) statementNode()       {}
func (d *FunctionDecl) declarationNode()     {}

// ProcedureDecl declares a procedure (a function with no return value).
type ProcedureDecl struct {
	Token  token.Token
	Name   *Identifier
	Params []*Param
	Locals []*VarDecl
	Body   []Statement
}

func (d *ProcedureDecl) TokenLiteral() string { return d.Token.Lexeme }
func (d *ProcedureDecl) Accept(v Visitor)     { v.VisitProcedureDecl(d) }
func (d *ProcedureDecl) statementNode()       {}
func (d *ProcedureDecl) declarationNode()     {}

// ---- Commands ----

// AssignStmt is `target <- value`.
type AssignStmt struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (s *AssignStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *AssignStmt) Accept(v Visitor)     { v.VisitAssignStmt(s) }
func (s *AssignStmt) statementNode()       {}

// ReadStmt is `leia(id, id, ...)`.
type ReadStmt struct {
	Token   token.Token
	Targets []Expression
}

func (s *ReadStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ReadStmt) Accept(v Visitor)     { v.VisitReadStmt(s) }
func (s *ReadStmt) statementNode()       {}

// WriteStmt is `escreva(e, e, ...)`.
type WriteStmt struct {
	Token  token.Token
	Values []Expression
}

func (s *WriteStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *WriteStmt) Accept(v Visitor)     { v.VisitWriteStmt(s) }
func (s *WriteStmt) statementNode()       {}

// IfStmt is `se cond entao ... [senao ...] fim_se`.
type IfStmt struct {
	Token token.Token
	Cond  Expression
	Then  []Statement
	Else  []Statement
}

func (s *IfStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *IfStmt) Accept(v Visitor)     { v.VisitIfStmt(s) }
func (s *IfStmt) statementNode()       {}

// WhileStmt is `enquanto cond faca ... fim_enquanto`.
type WhileStmt struct {
	Token token.Token
	Cond  Expression
	Body  []Statement
}

func (s *WhileStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *WhileStmt) Accept(v Visitor)     { v.VisitWhileStmt(s) }
func (s *WhileStmt) statementNode()       {}

// DoUntilStmt is `faca ... ate cond`. Cond is the guard exactly as written;
// the code generator negates it when emitting the C `while`.
type DoUntilStmt struct {
	Token token.Token
	Body  []Statement
	Cond  Expression
}

func (s *DoUntilStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *DoUntilStmt) Accept(v Visitor)     { v.VisitDoUntilStmt(s) }
func (s *DoUntilStmt) statementNode()       {}

// ForStmt is `para v de a ate b faca ... fim_para`.
type ForStmt struct {
	Token token.Token
	Var   *Identifier
	From  Expression
	To    Expression
	Body  []Statement
}

func (s *ForStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ForStmt) Accept(v Visitor)     { v.VisitForStmt(s) }
func (s *ForStmt) statementNode()       {}

// CaseLabel is one label of a `caso` clause: either a single integer or an
// inclusive range `N..M`.
type CaseLabel struct {
	Low  int
	High int
}

// CaseClause is one `<labels>: ...` arm of a switch.
type CaseClause struct {
	Labels []CaseLabel
	Body   []Statement
}

// SwitchStmt is `caso expr seja ... [senao ...] fim_caso`.
type SwitchStmt struct {
	Token   token.Token
	Expr    Expression
	Cases   []*CaseClause
	Default []Statement
}

func (s *SwitchStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *SwitchStmt) Accept(v Visitor)     { v.VisitSwitchStmt(s) }
func (s *SwitchStmt) statementNode()       {}

// CallStmt is a procedure call used as a statement.
type CallStmt struct {
	Token token.Token
	Name  *Identifier
	Args  []Expression
}

func (s *CallStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *CallStmt) Accept(v Visitor)     { v.VisitCallStmt(s) }
func (s *CallStmt) statementNode()       {}

// ReturnStmt is `retorne expr`.
type ReturnStmt struct {
	Token token.Token
	Value Expression
}

func (s *ReturnStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ReturnStmt) Accept(v Visitor)     { v.VisitReturnStmt(s) }
func (s *ReturnStmt) statementNode()       {}

// ---- Expressions ----

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) TokenLiteral() string    { return e.Token.Lexeme }
func (e *Identifier) Accept(v Visitor)        { v.VisitIdentifier(e) }
func (e *Identifier) expressionNode()         {}
func (e *Identifier) GetToken() token.Token   { return e.Token }

// IntLiteral is an integer literal.
type IntLiteral struct {
	Token token.Token
	Value string
}

func (e *IntLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *IntLiteral) Accept(v Visitor)      { v.VisitIntLiteral(e) }
func (e *IntLiteral) expressionNode()       {}
func (e *IntLiteral) GetToken() token.Token { return e.Token }

// RealLiteral is a floating literal.
type RealLiteral struct {
	Token token.Token
	Value string
}

func (e *RealLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *RealLiteral) Accept(v Visitor)      { v.VisitRealLiteral(e) }
func (e *RealLiteral) expressionNode()       {}
func (e *RealLiteral) GetToken() token.Token { return e.Token }

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(e) }
func (e *StringLiteral) expressionNode()       {}
func (e *StringLiteral) GetToken() token.Token { return e.Token }

// BoolLiteral is `verdadeiro` or `falso`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (e *BoolLiteral) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BoolLiteral) Accept(v Visitor)      { v.VisitBoolLiteral(e) }
func (e *BoolLiteral) expressionNode()       {}
func (e *BoolLiteral) GetToken() token.Token { return e.Token }

// UnaryExpr is a prefix operator: `-e` or `nao e`.
type UnaryExpr struct {
	Token token.Token
	Op    string
	Right Expression
}

func (e *UnaryExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *UnaryExpr) Accept(v Visitor)      { v.VisitUnaryExpr(e) }
func (e *UnaryExpr) expressionNode()       {}
func (e *UnaryExpr) GetToken() token.Token { return e.Token }

// BinaryExpr is any infix operator: logical (e, ou), relational
// (< <= > >= = <>), or arithmetic (+ - * /).
type BinaryExpr struct {
	Token token.Token
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BinaryExpr) Accept(v Visitor)      { v.VisitBinaryExpr(e) }
func (e *BinaryExpr) expressionNode()       {}
func (e *BinaryExpr) GetToken() token.Token { return e.Token }

// ParenExpr is `(e)`.
type ParenExpr struct {
	Token token.Token
	Inner Expression
}

func (e *ParenExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ParenExpr) Accept(v Visitor)      { v.VisitParenExpr(e) }
func (e *ParenExpr) expressionNode()       {}
func (e *ParenExpr) GetToken() token.Token { return e.Token }

// FieldAccess is `r.f` (acesso_campo).
type FieldAccess struct {
	Token  token.Token
	Record Expression
	Field  *Identifier
}

func (e *FieldAccess) TokenLiteral() string  { return e.Token.Lexeme }
func (e *FieldAccess) Accept(v Visitor)      { v.VisitFieldAccess(e) }
func (e *FieldAccess) expressionNode()       {}
func (e *FieldAccess) GetToken() token.Token { return e.Token }

// ArrayAccess is `a[e]` (acesso_array).
type ArrayAccess struct {
	Token token.Token
	Array Expression
	Index Expression
}

func (e *ArrayAccess) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ArrayAccess) Accept(v Visitor)      { v.VisitArrayAccess(e) }
func (e *ArrayAccess) expressionNode()       {}
func (e *ArrayAccess) GetToken() token.Token { return e.Token }

// PointerDeref is `^x`.
type PointerDeref struct {
	Token   token.Token
	Operand Expression
}

func (e *PointerDeref) TokenLiteral() string  { return e.Token.Lexeme }
func (e *PointerDeref) Accept(v Visitor)      { v.VisitPointerDeref(e) }
func (e *PointerDeref) expressionNode()       {}
func (e *PointerDeref) GetToken() token.Token { return e.Token }

// FuncCallExpr is a function call used inside an expression.
type FuncCallExpr struct {
	Token token.Token
	Name  *Identifier
	Args  []Expression
}

func (e *FuncCallExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *FuncCallExpr) Accept(v Visitor)      { v.VisitFuncCallExpr(e) }
func (e *FuncCallExpr) expressionNode()       {}
func (e *FuncCallExpr) GetToken() token.Token { return e.Token }
