package ast

import (
	"strconv"
	"strings"

	"github.com/Schneewolf-Labs/hemlock/internal/token"
)

// NumberLiteral represents an integer or floating-point constant.
// Exactly one of IntValue/FloatValue is meaningful, selected by IsFloat,
// matching spec's NUMBER{int|float, is_float}.
type NumberLiteral struct {
	typed
	Token     token.Token
	IntValue  int64
	FloatValue float64
	IsFloat   bool
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.FloatValue, 'g', -1, 64)
	}
	return strconv.FormatInt(n.IntValue, 10)
}

// BoolLiteral represents the `true`/`false` constants.
type BoolLiteral struct {
	typed
	Token token.Token
	Value bool
}

func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) Pos() token.Position  { return b.Token.Pos }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringLiteral represents a plain (non-interpolated) string constant.
type StringLiteral struct {
	typed
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return "\"" + s.Value + "\"" }

// StringInterpolation represents a template string with embedded
// expressions, e.g. "total: ${a + b} items". Literals has len(Parts)+1
// entries: Literals[i] is the literal text before Parts[i], and
// Literals[len(Parts)] is the trailing literal text.
type StringInterpolation struct {
	typed
	Token    token.Token
	Literals []string
	Parts    []Expression
}

func (si *StringInterpolation) expressionNode()      {}
func (si *StringInterpolation) TokenLiteral() string { return si.Token.Literal }
func (si *StringInterpolation) Pos() token.Position  { return si.Token.Pos }
func (si *StringInterpolation) String() string {
	var sb strings.Builder
	sb.WriteString("\"")
	for i, lit := range si.Literals {
		sb.WriteString(lit)
		if i < len(si.Parts) {
			sb.WriteString("${")
			sb.WriteString(si.Parts[i].String())
			sb.WriteString("}")
		}
	}
	sb.WriteString("\"")
	return sb.String()
}

// NullLiteral represents the `null` constant.
type NullLiteral struct {
	typed
	Token token.Token
}

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "null" }

// RuneLiteral represents a single-quoted character constant.
type RuneLiteral struct {
	typed
	Token token.Token
	Value rune
}

func (r *RuneLiteral) expressionNode()      {}
func (r *RuneLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RuneLiteral) Pos() token.Position  { return r.Token.Pos }
func (r *RuneLiteral) String() string       { return "'" + string(r.Value) + "'" }

// Identifier represents a variable or function name reference. Depth/Slot
// are populated by the resolver (spec §4.2); until then, both are nil and
// the evaluator falls back to a dynamic name walk or the builtin table.
type Identifier struct {
	typed
	resolved
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }
