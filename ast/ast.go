// Package ast converts a tokenized expression into a tree ready for
// evaluation, using the shunting-yard algorithm: an explicit operator
// stack and operand stack, resolved by precedence and associativity
// rather than recursive descent.
package ast

import (
	"fmt"
	"strings"

	"github.com/loncus/expressions/config"
	"github.com/loncus/expressions/function"
	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/token"
)

// Kind is the closed set of node shapes a built tree can contain.
type Kind int8

const (
	NumberLiteral Kind = iota
	StringLiteral
	VariableOrConstant
	ArrayLiteral
	FunctionCall
	PrefixOp
	InfixOp
	PostfixOp
)

// Node is one point of the parsed tree. Leaves (NumberLiteral,
// StringLiteral, VariableOrConstant) have no Children; PrefixOp and
// PostfixOp have exactly one; InfixOp has exactly two, left then right;
// FunctionCall and ArrayLiteral have however many arguments or elements
// were written, in source order.
type Node struct {
	Kind     Kind
	Token    token.Token
	Children []*Node
}

// String renders the tree as a fully parenthesized expression, alternating
// round and square brackets at each level of nesting so that matching a
// closing bracket to its opener never requires counting.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	l, r := byte('('), byte(')')
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NumberLiteral, StringLiteral, VariableOrConstant:
		b.WriteString(n.Token.Value)
	case PrefixOp:
		b.WriteString(n.Token.Value)
		n.Children[0].fmt(b, !square)
	case PostfixOp:
		n.Children[0].fmt(b, !square)
		b.WriteString(n.Token.Value)
	case InfixOp:
		n.Children[0].fmt(b, !square)
		b.WriteString(" " + n.Token.Value + " ")
		n.Children[1].fmt(b, !square)
	case FunctionCall:
		b.WriteString(n.Token.Value)
		n.fmtChildren(b, !square)
	case ArrayLiteral:
		n.fmtChildren(b, !square)
	default:
		b.WriteByte('?')
	}
}

func (n *Node) fmtChildren(b *strings.Builder, square bool) {
	l, r := byte('('), byte(')')
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.fmt(b, !square)
	}
}

// SyntaxError is raised when a token sequence that the tokenizer accepted
// cannot be assembled into a tree, e.g. an operator or function applied to
// the wrong arity, or brackets that individually balance but pair up
// incorrectly across a function call boundary.
type SyntaxError struct {
	Column  int
	Lexeme  string
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("syntax error at column %d: %s", e.Column, e.Message)
	}
	return fmt.Sprintf("syntax error at column %d: %s: %q", e.Column, e.Message, e.Lexeme)
}

type markerKind int8

const (
	markerGroup markerKind = iota
	markerCall
	markerArray
)

type opEntry struct {
	marker    bool
	mkind     markerKind
	openTok   token.Token
	fnTok     token.Token // valid when mkind == markerCall
	openDepth int
	tok       token.Token
}

// Build assembles tokens (as produced by tokenizer.Parse) into a tree,
// consulting cfg for implicit-multiplication policy.
func Build(tokens []token.Token, cfg *config.Configuration) (*Node, error) {
	b := &builder{cfg: cfg}
	for i, tok := range tokens {
		if err := b.feed(tok, i); err != nil {
			return nil, err
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}
	if len(b.output) != 1 {
		return nil, &SyntaxError{Message: "incomplete expression"}
	}
	return b.output[0], nil
}

type builder struct {
	cfg    *config.Configuration
	output []*Node
	ops    []opEntry
	// expectOperand is true when the next token should start a new
	// operand rather than continue the one already on top of output.
	expectOperand bool
	prevWasFunc   bool
}

func (b *builder) feed(tok token.Token, idx int) error {
	startsOperand := tok.Type == token.NumberLiteral || tok.Type == token.StringLiteral ||
		tok.Type == token.VariableOrConstant || tok.Type == token.Function ||
		tok.Type == token.PrefixOperator ||
		(tok.Type == token.BraceOpen && !b.prevWasFunc) ||
		tok.Type == token.ArrayOpen

	if idx > 0 && !b.expectOperand && startsOperand && b.cfg.ImplicitMultiplicationAllowed() {
		mulDef := b.cfg.OperatorDictionary().GetInfixOperator("*")
		if mulDef != nil {
			if err := b.pushInfix(token.Token{StartColumn: tok.StartColumn, Value: "*", Type: token.InfixOperator, Definition: mulDef}); err != nil {
				return err
			}
		}
	}

	wasFunc := tok.Type == token.Function
	defer func() { b.prevWasFunc = wasFunc }()

	switch tok.Type {
	case token.NumberLiteral:
		b.output = append(b.output, &Node{Kind: NumberLiteral, Token: tok})
		b.expectOperand = false
	case token.StringLiteral:
		b.output = append(b.output, &Node{Kind: StringLiteral, Token: tok})
		b.expectOperand = false
	case token.VariableOrConstant:
		b.output = append(b.output, &Node{Kind: VariableOrConstant, Token: tok})
		b.expectOperand = false
	case token.Function:
		b.ops = append(b.ops, opEntry{marker: false, tok: tok})
		// the Function token itself just sits on the op stack until its
		// matching call-open BraceOpen is seen; record nothing here.
		b.expectOperand = true
	case token.BraceOpen:
		if b.prevWasFunc {
			fnEntry := b.ops[len(b.ops)-1]
			b.ops = b.ops[:len(b.ops)-1]
			b.ops = append(b.ops, opEntry{marker: true, mkind: markerCall, openTok: tok, fnTok: fnEntry.tok, openDepth: len(b.output)})
		} else {
			b.ops = append(b.ops, opEntry{marker: true, mkind: markerGroup, openTok: tok})
		}
		b.expectOperand = true
	case token.BraceClose:
		if err := b.closeBracket(tok, markerGroup); err != nil {
			return err
		}
		b.expectOperand = false
	case token.ArrayOpen:
		b.ops = append(b.ops, opEntry{marker: true, mkind: markerArray, openTok: tok, openDepth: len(b.output)})
		b.expectOperand = true
	case token.ArrayClose:
		if err := b.closeBracket(tok, markerArray); err != nil {
			return err
		}
		b.expectOperand = false
	case token.Comma:
		for len(b.ops) > 0 && !b.ops[len(b.ops)-1].marker {
			if err := b.popOperator(); err != nil {
				return err
			}
		}
		if len(b.ops) == 0 {
			return &SyntaxError{Column: tok.StartColumn, Lexeme: tok.Value, Message: "comma outside a function call or array literal"}
		}
		b.expectOperand = true
	case token.PrefixOperator:
		b.ops = append(b.ops, opEntry{tok: tok})
		b.expectOperand = true
	case token.PostfixOperator:
		if len(b.output) == 0 {
			return &SyntaxError{Column: tok.StartColumn, Lexeme: tok.Value, Message: "postfix operator has no operand"}
		}
		operand := b.output[len(b.output)-1]
		b.output = b.output[:len(b.output)-1]
		b.output = append(b.output, &Node{Kind: PostfixOp, Token: tok, Children: []*Node{operand}})
		b.expectOperand = false
	case token.InfixOperator:
		if err := b.pushInfix(tok); err != nil {
			return err
		}
		b.expectOperand = true
	default:
		return &SyntaxError{Column: tok.StartColumn, Lexeme: tok.Value, Message: "unexpected token"}
	}
	return nil
}

func (b *builder) pushInfix(tok token.Token) error {
	def, ok := tok.Definition.(operator.Definition)
	if !ok {
		return &SyntaxError{Column: tok.StartColumn, Lexeme: tok.Value, Message: "operator missing its definition"}
	}
	for len(b.ops) > 0 {
		top := b.ops[len(b.ops)-1]
		if top.marker {
			break
		}
		topDef, ok := top.tok.Definition.(operator.Definition)
		if !ok {
			break
		}
		if topDef.Precedence() > def.Precedence() ||
			(topDef.Precedence() == def.Precedence() && def.Associativity() == operator.LeftAssociative) {
			if err := b.popOperator(); err != nil {
				return err
			}
			continue
		}
		break
	}
	b.ops = append(b.ops, opEntry{tok: tok})
	return nil
}

func (b *builder) popOperator() error {
	e := b.ops[len(b.ops)-1]
	b.ops = b.ops[:len(b.ops)-1]
	switch e.tok.Type {
	case token.PrefixOperator:
		if len(b.output) < 1 {
			return &SyntaxError{Column: e.tok.StartColumn, Lexeme: e.tok.Value, Message: "prefix operator has no operand"}
		}
		child := b.output[len(b.output)-1]
		b.output = b.output[:len(b.output)-1]
		b.output = append(b.output, &Node{Kind: PrefixOp, Token: e.tok, Children: []*Node{child}})
	case token.InfixOperator:
		if len(b.output) < 2 {
			return &SyntaxError{Column: e.tok.StartColumn, Lexeme: e.tok.Value, Message: "infix operator is missing an operand"}
		}
		right := b.output[len(b.output)-1]
		left := b.output[len(b.output)-2]
		b.output = b.output[:len(b.output)-2]
		b.output = append(b.output, &Node{Kind: InfixOp, Token: e.tok, Children: []*Node{left, right}})
	default:
		return &SyntaxError{Column: e.tok.StartColumn, Lexeme: e.tok.Value, Message: "unexpected operator on stack"}
	}
	return nil
}

// closeBracket matches closeTok against the innermost marker on the op
// stack. want is markerGroup for a ")" (which closes both a plain
// grouping and a function call, since both use round brackets) or
// markerArray for a "]".
func (b *builder) closeBracket(closeTok token.Token, want markerKind) error {
	for len(b.ops) > 0 && !b.ops[len(b.ops)-1].marker {
		if err := b.popOperator(); err != nil {
			return err
		}
	}
	if len(b.ops) == 0 {
		return &SyntaxError{Column: closeTok.StartColumn, Lexeme: closeTok.Value, Message: "unmatched closing bracket"}
	}
	top := b.ops[len(b.ops)-1]
	b.ops = b.ops[:len(b.ops)-1]

	switch top.mkind {
	case markerGroup:
		if want != markerGroup {
			return &SyntaxError{Column: closeTok.StartColumn, Lexeme: closeTok.Value, Message: "mismatched bracket"}
		}
	case markerCall:
		if want != markerGroup {
			return &SyntaxError{Column: closeTok.StartColumn, Lexeme: closeTok.Value, Message: "mismatched bracket"}
		}
		argc := len(b.output) - top.openDepth
		fnDef, ok := top.fnTok.Definition.(function.Definition)
		if !ok {
			return &SyntaxError{Column: top.fnTok.StartColumn, Lexeme: top.fnTok.Value, Message: "function missing its definition"}
		}
		if argc < fnDef.MinParameters() || (fnDef.MaxParameters() >= 0 && argc > fnDef.MaxParameters()) {
			return &SyntaxError{Column: top.fnTok.StartColumn, Lexeme: top.fnTok.Value, Message: fmt.Sprintf("wrong number of arguments: got %d", argc)}
		}
		args := append([]*Node(nil), b.output[top.openDepth:]...)
		b.output = b.output[:top.openDepth]
		b.output = append(b.output, &Node{Kind: FunctionCall, Token: top.fnTok, Children: args})
		return nil
	case markerArray:
		if want != markerArray {
			return &SyntaxError{Column: closeTok.StartColumn, Lexeme: closeTok.Value, Message: "mismatched bracket"}
		}
		elems := append([]*Node(nil), b.output[top.openDepth:]...)
		b.output = b.output[:top.openDepth]
		b.output = append(b.output, &Node{Kind: ArrayLiteral, Token: top.openTok, Children: elems})
		return nil
	}
	return nil
}

func (b *builder) finish() error {
	for len(b.ops) > 0 {
		top := b.ops[len(b.ops)-1]
		if top.marker {
			return &SyntaxError{Column: top.openTok.StartColumn, Lexeme: top.openTok.Value, Message: "unclosed bracket"}
		}
		if err := b.popOperator(); err != nil {
			return err
		}
	}
	return nil
}
