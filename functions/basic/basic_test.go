package basic

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/value"
)

func dec(s string) value.Value { return value.Decimal(decimal.RequireFromString(s)) }

func TestAbsCeilingFloor(t *testing.T) {
	if got, err := (Abs{}).Eval(dec("-3.5")); err != nil || !got.AsDecimal().Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("ABS(-3.5) = %v, err %v", got, err)
	}
	if got, err := (Ceiling{}).Eval(dec("1.2")); err != nil || !got.AsDecimal().Equal(decimal.NewFromInt(2)) {
		t.Errorf("CEILING(1.2) = %v, err %v", got, err)
	}
	if got, err := (Floor{}).Eval(dec("1.8")); err != nil || !got.AsDecimal().Equal(decimal.NewFromInt(1)) {
		t.Errorf("FLOOR(1.8) = %v, err %v", got, err)
	}
}

func TestFact(t *testing.T) {
	got, err := (Fact{}).Eval(dec("5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Equal(decimal.NewFromInt(120)) {
		t.Errorf("FACT(5) = %s, want 120", got)
	}
}

func TestFactRejectsNonIntegerAndNegative(t *testing.T) {
	if _, err := (Fact{}).Eval(dec("2.5")); err == nil {
		t.Error("expected error for non-integer argument")
	}
	if _, err := (Fact{}).Eval(dec("-1")); err == nil {
		t.Error("expected error for negative argument")
	}
}

func TestSqrt(t *testing.T) {
	got, err := (Sqrt{}).Eval(dec("9"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Round(8).Equal(decimal.RequireFromString("3")) {
		t.Errorf("SQRT(9) = %s, want 3", got)
	}
}

func TestSqrtRejectsNegative(t *testing.T) {
	if _, err := (Sqrt{}).Eval(dec("-1")); err == nil {
		t.Error("expected error for a negative argument")
	}
}

func TestLogAndLog10(t *testing.T) {
	got, err := (Log10{}).Eval(dec("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AsDecimal().Round(6).Equal(decimal.NewFromInt(2)) {
		t.Errorf("LOG10(100) = %s, want 2", got)
	}
	if _, err := (Log{}).Eval(dec("0")); err == nil {
		t.Error("expected error for LOG of a non-positive argument")
	}
}

func TestMaxMinSum(t *testing.T) {
	max, err := (Max{}).Eval(dec("1"), dec("5"), dec("3"))
	if err != nil || !max.AsDecimal().Equal(decimal.NewFromInt(5)) {
		t.Errorf("MAX = %v, err %v", max, err)
	}
	min, err := (Min{}).Eval(dec("1"), dec("5"), dec("3"))
	if err != nil || !min.AsDecimal().Equal(decimal.NewFromInt(1)) {
		t.Errorf("MIN = %v, err %v", min, err)
	}
	sum, err := (Sum{}).Eval(dec("1"), dec("5"), dec("3"))
	if err != nil || !sum.AsDecimal().Equal(decimal.NewFromInt(9)) {
		t.Errorf("SUM = %v, err %v", sum, err)
	}
}

func TestNotAndIf(t *testing.T) {
	not, err := (Not{}).Eval(value.Bool(true))
	if err != nil || not.AsBool() {
		t.Errorf("NOT(true) = %v, err %v", not, err)
	}
	got, err := (If{}).Eval(value.Bool(true), dec("1"), dec("2"))
	if err != nil || !got.AsDecimal().Equal(decimal.NewFromInt(1)) {
		t.Errorf("IF(true, 1, 2) = %v, err %v", got, err)
	}
	got, err = (If{}).Eval(value.Bool(false), dec("1"), dec("2"))
	if err != nil || !got.AsDecimal().Equal(decimal.NewFromInt(2)) {
		t.Errorf("IF(false, 1, 2) = %v, err %v", got, err)
	}
}

func TestIfRejectsNonBooleanCondition(t *testing.T) {
	if _, err := (If{}).Eval(dec("1"), dec("1"), dec("2")); err == nil {
		t.Error("expected error for a non-boolean condition")
	}
}
