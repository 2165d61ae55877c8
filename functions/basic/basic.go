// Package basic implements the standard scalar function bodies: ABS,
// CEILING, FACT, FLOOR, IF, LOG, LOG10, MAX, MIN, NOT, SUM, SQRT.
package basic

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"

	"github.com/loncus/expressions/value"
)

func requireDecimal(name string, v value.Value) (decimal.Decimal, error) {
	if v.Kind() != value.KindDecimal {
		return decimal.Decimal{}, fmt.Errorf("%s: expected a number, got %s", name, v.Kind())
	}
	return v.AsDecimal(), nil
}

// decimalToBigFloat converts d to a big.Float at the given precision (in
// bits), for use with bigfloat's transcendental functions, which
// decimal.Decimal does not implement natively.
func decimalToBigFloat(d decimal.Decimal, prec uint) *big.Float {
	f, _, _ := big.ParseFloat(d.String(), 10, prec, big.ToNearestEven)
	return f
}

func bigFloatToDecimal(f *big.Float, places int32) decimal.Decimal {
	d, err := decimal.NewFromString(f.Text('f', int(places)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Abs implements ABS(n).
type Abs struct{}

func (Abs) MinParameters() int { return 1 }
func (Abs) MaxParameters() int { return 1 }
func (Abs) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("ABS", params[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(d.Abs()), nil
}

// Ceiling implements CEILING(n).
type Ceiling struct{}

func (Ceiling) MinParameters() int { return 1 }
func (Ceiling) MaxParameters() int { return 1 }
func (Ceiling) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("CEILING", params[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(d.Ceil()), nil
}

// Floor implements FLOOR(n).
type Floor struct{}

func (Floor) MinParameters() int { return 1 }
func (Floor) MaxParameters() int { return 1 }
func (Floor) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("FLOOR", params[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(d.Floor()), nil
}

// Fact implements FACT(n), the factorial of a non-negative integer.
type Fact struct{}

func (Fact) MinParameters() int { return 1 }
func (Fact) MaxParameters() int { return 1 }
func (Fact) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("FACT", params[0])
	if err != nil {
		return value.Value{}, err
	}
	if !d.IsInteger() || d.IsNegative() {
		return value.Value{}, fmt.Errorf("FACT: argument must be a non-negative integer, got %s", d)
	}
	n := d.IntPart()
	result := decimal.NewFromInt(1)
	for i := int64(2); i <= n; i++ {
		result = result.Mul(decimal.NewFromInt(i))
	}
	return value.Decimal(result), nil
}

// Sqrt implements SQRT(n).
type Sqrt struct {
	// Precision is the number of bits used for the big.Float computation.
	// Zero selects a reasonable default.
	Precision uint
}

func (Sqrt) MinParameters() int { return 1 }
func (Sqrt) MaxParameters() int { return 1 }
func (s Sqrt) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("SQRT", params[0])
	if err != nil {
		return value.Value{}, err
	}
	if d.IsNegative() {
		return value.Value{}, fmt.Errorf("SQRT: argument must be non-negative, got %s", d)
	}
	prec := s.Precision
	if prec == 0 {
		prec = 256
	}
	f := decimalToBigFloat(d, prec)
	f.Sqrt(f)
	return value.Decimal(bigFloatToDecimal(f, 34)), nil
}

// Log implements LOG(n), the natural logarithm.
type Log struct {
	Precision uint
}

func (Log) MinParameters() int { return 1 }
func (Log) MaxParameters() int { return 1 }
func (l Log) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("LOG", params[0])
	if err != nil {
		return value.Value{}, err
	}
	if !d.IsPositive() {
		return value.Value{}, fmt.Errorf("LOG: argument must be positive, got %s", d)
	}
	prec := l.Precision
	if prec == 0 {
		prec = 256
	}
	f := decimalToBigFloat(d, prec)
	out := new(big.Float).SetPrec(prec)
	bigfloat.Log(out, f)
	return value.Decimal(bigFloatToDecimal(out, 34)), nil
}

// Log10 implements LOG10(n), the base-10 logarithm.
type Log10 struct {
	Precision uint
}

func (Log10) MinParameters() int { return 1 }
func (Log10) MaxParameters() int { return 1 }
func (l Log10) Eval(params ...value.Value) (value.Value, error) {
	d, err := requireDecimal("LOG10", params[0])
	if err != nil {
		return value.Value{}, err
	}
	if !d.IsPositive() {
		return value.Value{}, fmt.Errorf("LOG10: argument must be positive, got %s", d)
	}
	prec := l.Precision
	if prec == 0 {
		prec = 256
	}
	f := decimalToBigFloat(d, prec)
	num := new(big.Float).SetPrec(prec)
	bigfloat.Log(num, f)
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	den := new(big.Float).SetPrec(prec)
	bigfloat.Log(den, ten)
	num.Quo(num, den)
	return value.Decimal(bigFloatToDecimal(num, 34)), nil
}

// Max implements MAX(n1, n2, ...).
type Max struct{}

func (Max) MinParameters() int { return 1 }
func (Max) MaxParameters() int { return -1 }
func (Max) Eval(params ...value.Value) (value.Value, error) {
	best, err := requireDecimal("MAX", params[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, p := range params[1:] {
		d, err := requireDecimal("MAX", p)
		if err != nil {
			return value.Value{}, err
		}
		if d.GreaterThan(best) {
			best = d
		}
	}
	return value.Decimal(best), nil
}

// Min implements MIN(n1, n2, ...).
type Min struct{}

func (Min) MinParameters() int { return 1 }
func (Min) MaxParameters() int { return -1 }
func (Min) Eval(params ...value.Value) (value.Value, error) {
	best, err := requireDecimal("MIN", params[0])
	if err != nil {
		return value.Value{}, err
	}
	for _, p := range params[1:] {
		d, err := requireDecimal("MIN", p)
		if err != nil {
			return value.Value{}, err
		}
		if d.LessThan(best) {
			best = d
		}
	}
	return value.Decimal(best), nil
}

// Sum implements SUM(n1, n2, ...).
type Sum struct{}

func (Sum) MinParameters() int { return 1 }
func (Sum) MaxParameters() int { return -1 }
func (Sum) Eval(params ...value.Value) (value.Value, error) {
	total := decimal.Zero
	for _, p := range params {
		d, err := requireDecimal("SUM", p)
		if err != nil {
			return value.Value{}, err
		}
		total = total.Add(d)
	}
	return value.Decimal(total), nil
}

// Not implements NOT(b), the function form of the "!" operator.
type Not struct{}

func (Not) MinParameters() int { return 1 }
func (Not) MaxParameters() int { return 1 }
func (Not) Eval(params ...value.Value) (value.Value, error) {
	if params[0].Kind() != value.KindBoolean {
		return value.Value{}, fmt.Errorf("NOT: expected a boolean, got %s", params[0].Kind())
	}
	return value.Bool(!params[0].AsBool()), nil
}

// If implements IF(condition, whenTrue, whenFalse).
type If struct{}

func (If) MinParameters() int { return 3 }
func (If) MaxParameters() int { return 3 }
func (If) Eval(params ...value.Value) (value.Value, error) {
	if params[0].Kind() != value.KindBoolean {
		return value.Value{}, fmt.Errorf("IF: condition must be a boolean, got %s", params[0].Kind())
	}
	if params[0].AsBool() {
		return params[1], nil
	}
	return params[2], nil
}
