package tokenizer

import (
	"testing"

	"github.com/loncus/expressions/config"
	"github.com/loncus/expressions/token"
)

func tokenTypes(t *testing.T, toks []token.Token) []token.Type {
	t.Helper()
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestParseBasicArithmetic(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("1 + 2", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{token.NumberLiteral, token.InfixOperator, token.NumberLiteral}
	got := tokenTypes(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParsePrefixMinus(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("-3", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Type != token.PrefixOperator || toks[1].Type != token.NumberLiteral {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestParseFunctionCall(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("SUM(1, 2, 3)", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{
		token.Function, token.BraceOpen, token.NumberLiteral, token.Comma,
		token.NumberLiteral, token.Comma, token.NumberLiteral, token.BraceClose,
	}
	got := tokenTypes(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseImplicitVariable(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("a+b*c", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{
		token.VariableOrConstant, token.InfixOperator, token.VariableOrConstant,
		token.InfixOperator, token.VariableOrConstant,
	}
	got := tokenTypes(t, toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseHexLiteral(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("0xFF", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Value != "0xFF" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestParseScientificLiteral(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("1.5e+3", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Value != "1.5e+3" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestParseIllegalScientificLiteral(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("1.5e", cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Message != "Illegal scientific format" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseStringLiteralEscapes(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New(`"a\nb\tc\"d"`, cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	want := "a\nb\tc\"d"
	if toks[0].Value != want {
		t.Fatalf("got %q, want %q", toks[0].Value, want)
	}
}

func TestParseUnterminatedStringLiteral(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New(`"abc`, cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Closing quote not found" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseUnknownEscapeCharacter(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New(`"a\qb"`, cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Unknown escape character" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseDoubleInfixOperator(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("1 + + 2", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "+ +" resolves as infix followed by prefix, which is legal; a truly
	// double infix case uses an operator with no prefix form.
	_, err = New("1 * * 2", cfg).Parse()
	if err == nil {
		t.Fatal("expected error for unexpected token after infix operator")
	}
	if perr := err.(*ParseError); perr.Message != "Unexpected token after infix operator" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseUnclosedBrace(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("(1+2", cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Closing brace not found" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseUnexpectedClosingBrace(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("1+2)", cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Unexpected closing brace" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseUndefinedFunction(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("NOPE(1)", cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Undefined function 'NOPE'" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseUndefinedOperator(t *testing.T) {
	cfg := config.DefaultConfiguration()
	_, err := New("1 ~ 2", cfg).Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if perr := err.(*ParseError); perr.Message != "Undefined operator '~'" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestParseColumnsAreMonotonic(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("12 + 345 * 6", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].StartColumn <= toks[i-1].StartColumn {
			t.Fatalf("columns not increasing at %d: %+v", i, toks)
		}
	}
}

func TestParseArrayLiterals(t *testing.T) {
	cfg := config.DefaultConfiguration()
	toks, err := New("[1, 2, 3]", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.ArrayOpen || toks[len(toks)-1].Type != token.ArrayClose {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestParseArraysDisallowed(t *testing.T) {
	cfg := config.NewBuilder().ArraysAllowed(false).Build()
	_, err := New("[1]", cfg).Parse()
	if err == nil {
		t.Fatal("expected error when arrays are disallowed")
	}
}

func TestParseCaseSensitiveOperatorsCaseInsensitiveFunctions(t *testing.T) {
	cfg := config.DefaultConfiguration()
	if _, err := New("sum(1,2)", cfg).Parse(); err != nil {
		t.Fatalf("function lookup should be case-insensitive: %v", err)
	}
	toks, err := New("TRUE && FALSE", cfg).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Value != "&&" {
		t.Fatalf("unexpected operator lexeme: %+v", toks[1])
	}
}

func TestParseReusingTokenizerPanics(t *testing.T) {
	cfg := config.DefaultConfiguration()
	tok := New("1+1", cfg)
	if _, err := tok.Parse(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Parse call")
		}
	}()
	_, _ = tok.Parse()
}
