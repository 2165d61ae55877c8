package boolean

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/value"
)

func TestCompareDecimals(t *testing.T) {
	got, err := InfixLess{}.Eval(value.Decimal(decimal.NewFromInt(1)), value.Decimal(decimal.NewFromInt(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsBool() {
		t.Error("expected 1 < 2")
	}
}

func TestCompareMismatchedKinds(t *testing.T) {
	_, err := InfixLess{}.Eval(value.Decimal(decimal.NewFromInt(1)), value.Str("a"))
	if err == nil {
		t.Fatal("expected an error comparing a decimal to a string")
	}
}

func TestCompareStrings(t *testing.T) {
	got, err := InfixGreater{}.Eval(value.Str("b"), value.Str("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsBool() {
		t.Error(`expected "b" > "a"`)
	}
}

func TestEqualsUsesValueEqual(t *testing.T) {
	got, err := InfixEquals{}.Eval(value.Decimal(decimal.RequireFromString("1.50")), value.Decimal(decimal.RequireFromString("1.5")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsBool() {
		t.Error("expected differently-scaled equal decimals to compare equal")
	}
}

func TestAndOrNot(t *testing.T) {
	and, err := InfixAnd{}.Eval(value.Bool(true), value.Bool(false))
	if err != nil || and.AsBool() {
		t.Errorf("expected true && false == false, got %v, err %v", and, err)
	}
	or, err := InfixOr{}.Eval(value.Bool(true), value.Bool(false))
	if err != nil || !or.AsBool() {
		t.Errorf("expected true || false == true, got %v, err %v", or, err)
	}
	not, err := PrefixNot{}.Eval(value.Bool(false))
	if err != nil || !not.AsBool() {
		t.Errorf("expected !false == true, got %v, err %v", not, err)
	}
}

func TestRequireBoolsTypeError(t *testing.T) {
	_, err := InfixAnd{}.Eval(value.Decimal(decimal.NewFromInt(1)), value.Bool(true))
	if err == nil {
		t.Fatal("expected a type error for a non-boolean operand")
	}
}
