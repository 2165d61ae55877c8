package token

import "testing"

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		BraceOpen:          "BRACE_OPEN",
		NumberLiteral:      "NUMBER_LITERAL",
		Function:           "FUNCTION",
		InfixOperator:      "INFIX_OPERATOR",
		Type(99):           "INVALID",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}

func TestIsOperatorOrFunction(t *testing.T) {
	yes := []Type{PrefixOperator, InfixOperator, PostfixOperator, Function}
	for _, ty := range yes {
		if !ty.IsOperatorOrFunction() {
			t.Errorf("%s should report true", ty)
		}
	}
	no := []Type{NumberLiteral, StringLiteral, Comma, BraceOpen}
	for _, ty := range no {
		if ty.IsOperatorOrFunction() {
			t.Errorf("%s should report false", ty)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{StartColumn: 3, Value: "+", Type: InfixOperator}
	want := `INFIX_OPERATOR("+")@3`
	if got := tok.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
