// Package evaluator implements Hemlock's tree-walking interpreter (spec
// §4.4): a switch over AST node kind that returns a Value for every
// expression and a control-flow Signal for every statement. Unlike the
// teacher's stateful ctx.ControlFlow() object threaded through an
// interpreter context, control flow here is an explicit return value —
// the idiomatic Go shape for the same job.
package evaluator

import "github.com/Schneewolf-Labs/hemlock/internal/value"

// Kind identifies which of the four control-flow states (spec's
// {NORMAL, RETURN(v), BREAK, CONTINUE}) a statement produced. FATAL is not
// a Kind: it is reported as a Go error alongside the Signal, so callers
// use the normal `if err != nil` idiom to unwind instead of inspecting a
// fifth Kind value.
type Kind int

const (
	KNormal Kind = iota
	KReturn
	KBreak
	KContinue
)

// Signal is the result of evaluating a statement. A FATAL fault is
// reported as a Go error returned alongside Signal{} (the zero Signal),
// not as a Kind; every evalStmt call site checks the error first.
type Signal struct {
	Kind  Kind
	Value value.Value // meaningful only when Kind == KReturn
}

// Normal is the signal produced by a statement with no special control
// flow (the common case: LET/CONST/expression statements, a BLOCK/IF/
// WHILE/FOR that ran to completion without hitting RETURN/BREAK/CONTINUE).
var Normal = Signal{Kind: KNormal}

// Return builds a RETURN(v) signal.
func Return(v value.Value) Signal { return Signal{Kind: KReturn, Value: v} }

// Break is the BREAK signal.
var Break = Signal{Kind: KBreak}

// Continue is the CONTINUE signal.
var Continue = Signal{Kind: KContinue}

// IsNormal reports whether execution should simply fall through to the
// next statement in sequence.
func (s Signal) IsNormal() bool { return s.Kind == KNormal }
