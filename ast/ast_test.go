package ast

import (
	"testing"

	"github.com/loncus/expressions/config"
	"github.com/loncus/expressions/tokenizer"
)

func build(t *testing.T, cfg *config.Configuration, expr string) *Node {
	t.Helper()
	toks, err := tokenizer.New(expr, cfg).Parse()
	if err != nil {
		t.Fatalf("tokenize %q: %v", expr, err)
	}
	n, err := Build(toks, cfg)
	if err != nil {
		t.Fatalf("build %q: %v", expr, err)
	}
	return n
}

func TestBuildPrecedence(t *testing.T) {
	cfg := config.DefaultConfiguration()
	n := build(t, cfg, "1 + 2 * 3")
	if n.Kind != InfixOp || n.Token.Value != "+" {
		t.Fatalf("expected root '+', got %+v", n)
	}
	right := n.Children[1]
	if right.Kind != InfixOp || right.Token.Value != "*" {
		t.Fatalf("expected right child '*', got %+v", right)
	}
}

func TestBuildRightAssociativePower(t *testing.T) {
	cfg := config.DefaultConfiguration()
	n := build(t, cfg, "2^3^2")
	if n.Kind != InfixOp || n.Token.Value != "^" {
		t.Fatalf("expected root '^', got %+v", n)
	}
	right := n.Children[1]
	if right.Kind != InfixOp || right.Token.Value != "^" {
		t.Fatalf("2^3^2 should nest on the right for right associativity, got %+v", n)
	}
}

func TestBuildFunctionCall(t *testing.T) {
	cfg := config.DefaultConfiguration()
	n := build(t, cfg, "SUM(1, 2, 3)")
	if n.Kind != FunctionCall || len(n.Children) != 3 {
		t.Fatalf("unexpected tree: %+v", n)
	}
}

func TestBuildImplicitMultiplication(t *testing.T) {
	cfg := config.DefaultConfiguration()
	n := build(t, cfg, "2(3+4)")
	if n.Kind != InfixOp || n.Token.Value != "*" {
		t.Fatalf("expected implicit '*' root, got %+v", n)
	}
}

func TestBuildArrayLiteral(t *testing.T) {
	cfg := config.DefaultConfiguration()
	n := build(t, cfg, "[1, 2, 3]")
	if n.Kind != ArrayLiteral || len(n.Children) != 3 {
		t.Fatalf("unexpected tree: %+v", n)
	}
}

func TestBuildFunctionArityError(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := tokenizer.New("ABS(1, 2)", cfg).Parse()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if _, err := Build(toks, cfg); err == nil {
		t.Fatal("expected arity error for ABS with two arguments")
	}
}
