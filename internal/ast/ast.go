// Package ast defines the Abstract Syntax Tree node types for Hemlock.
//
// The AST is a tree: no sharing, no cycles. Each node exclusively owns its
// children. The resolver, type inferer, and evaluator all walk this same
// tree; the resolver and type inferer decorate nodes in place (resolution
// info on Identifier/AssignExpr, *types.Type on every expression) rather
// than building a parallel structure, so each pass must tolerate running
// on an already-annotated tree (idempotent re-runs) per spec §2.
package ast

import (
	"bytes"
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
	"github.com/Schneewolf-Labs/hemlock/internal/types"
)

// Node is the base interface satisfied by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	// GetType returns the static type decorated onto this node by the type
	// inferer, or nil if the node has not been (or cannot be) inferred.
	GetType() *types.Type
	SetType(*types.Type)
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed Hemlock source file.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// typed is embedded by every expression node to provide the GetType/SetType
// pair the type inferer needs without repeating the two methods per node.
type typed struct {
	Type *types.Type
}

func (t *typed) GetType() *types.Type    { return t.Type }
func (t *typed) SetType(ty *types.Type)  { t.Type = ty }

// resolved is embedded by Identifier and AssignExpr: it records the
// resolver's (scope_depth, slot_index) annotation for O(1) lookup. A nil
// Depth means the reference was not resolved lexically and must be looked
// up dynamically (builtin table or an unresolved top-level binding) per
// spec §4.2.
type resolved struct {
	Depth *int
	Slot  *int
}

// Resolve annotates the node with a depth/slot pair found by the resolver.
func (r *resolved) Resolve(depth, slot int) {
	d, s := depth, slot
	r.Depth, r.Slot = &d, &s
}

// IsResolved reports whether the resolver found a lexical binding.
func (r *resolved) IsResolved() bool { return r.Depth != nil }

// ResolvedDepthSlot returns the resolved (depth, slot) pair. Callers must
// check IsResolved first.
func (r *resolved) ResolvedDepthSlot() (int, int) { return *r.Depth, *r.Slot }

func blockString(stmts []Statement) string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range stmts {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
