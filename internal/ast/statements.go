package ast

import (
	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

// LetStatement declares a new mutable binding in the current scope.
// Slot is populated by the resolver (the binding's dense index within its
// compile-time scope); Depth is always the scope being declared into, so
// only Slot needs to be recorded here (spec §4.2).
type LetStatement struct {
	Token          token.Token // the 'let' token
	Name           string
	TypeAnnotation *types.Type // nil unless the source wrote `: T`
	Value          Expression
	Slot           *int
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() token.Position  { return ls.Token.Pos }
func (ls *LetStatement) String() string {
	s := "let " + ls.Name
	if ls.Value != nil {
		s += " = " + ls.Value.String()
	}
	return s + ";"
}

// ConstStatement declares a new immutable binding in the current scope.
type ConstStatement struct {
	Token          token.Token // the 'const' token
	Name           string
	TypeAnnotation *types.Type
	Value          Expression
	Slot           *int
}

func (cs *ConstStatement) statementNode()       {}
func (cs *ConstStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ConstStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ConstStatement) String() string {
	return "const " + cs.Name + " = " + cs.Value.String() + ";"
}

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ";"
}

// BlockStatement is a `{ ... }` sequence of statements; it brackets its own
// resolver scope (spec §4.2) and opens a child environment at eval time.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string       { return blockString(bs.Statements) }

// IfStatement represents `if (cond) then [else elseBranch]`.
type IfStatement struct {
	Token     token.Token // the 'if' token
	Condition Expression
	Then      Statement
	Else      Statement // nil if there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	s := "if (" + is.Condition.String() + ") " + is.Then.String()
	if is.Else != nil {
		s += " else " + is.Else.String()
	}
	return s
}

// WhileStatement represents `while (cond) body`.
type WhileStatement struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// ForStatement represents a C-style `for (init; cond; incr) body`. Init,
// Cond, and Incr are each optional.
type ForStatement struct {
	Token     token.Token // the 'for' token
	Init      Statement
	Condition Expression
	Incr      Statement
	Body      Statement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	s := "for ("
	if fs.Init != nil {
		s += fs.Init.String()
	}
	s += "; "
	if fs.Condition != nil {
		s += fs.Condition.String()
	}
	s += "; "
	if fs.Incr != nil {
		s += fs.Incr.String()
	}
	return s + ") " + fs.Body.String()
}

// ReturnStatement represents `return [value];`.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // nil for a bare `return;`
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String() + ";"
	}
	return "return;"
}

// BreakStatement represents `break;`.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement represents `continue;`.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue;" }

// FunctionDeclStatement represents a named top-level/nested function
// declaration, e.g. `fn fact(n) { ... }`. It desugars at resolve/eval time
// to declaring Name as a LET binding holding a FunctionLiteral value,
// mirroring how the teacher's FunctionDecl is registered as a named symbol.
type FunctionDeclStatement struct {
	Token    token.Token // the 'fn' token
	Function *FunctionLiteral
	Slot     *int
}

func (fd *FunctionDeclStatement) statementNode()       {}
func (fd *FunctionDeclStatement) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclStatement) Pos() token.Position  { return fd.Token.Pos }
func (fd *FunctionDeclStatement) String() string       { return fd.Function.String() }
