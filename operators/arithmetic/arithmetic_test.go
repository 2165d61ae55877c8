package arithmetic

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/value"
)

func dec(i int64) value.Value { return value.Decimal(decimal.NewFromInt(i)) }

func TestInfixPlus(t *testing.T) {
	got, err := InfixPlus{}.Eval(dec(2), dec(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Equal(decimal.NewFromInt(5)) {
		t.Fatalf("got %s, want 5", got)
	}
}

func TestInfixDivisionByZero(t *testing.T) {
	_, err := InfixDivision{}.Eval(dec(1), dec(0))
	if err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestInfixModuloByZero(t *testing.T) {
	_, err := InfixModulo{}.Eval(dec(1), dec(0))
	if err == nil {
		t.Fatal("expected modulo by zero error")
	}
}

func TestPrefixMinus(t *testing.T) {
	got, err := PrefixMinus{}.Eval(dec(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Equal(decimal.NewFromInt(-5)) {
		t.Fatalf("got %s, want -5", got)
	}
}

func TestInfixPowerOfPrecedenceAndEval(t *testing.T) {
	op := InfixPowerOf{OpPrecedence: 40}
	if op.Precedence() != 40 {
		t.Fatalf("expected configured precedence to round-trip")
	}
	got, err := op.Eval(dec(2), dec(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Equal(decimal.NewFromInt(1024)) {
		t.Fatalf("got %s, want 1024", got)
	}
}

func TestRequireDecimalsTypeError(t *testing.T) {
	_, err := InfixPlus{}.Eval(value.Str("a"), dec(1))
	if err == nil {
		t.Fatal("expected a type error for a string operand")
	}
}
