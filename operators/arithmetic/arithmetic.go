// Package arithmetic implements the standard arithmetic operator bodies:
// unary plus and minus, and infix +, -, *, /, ^, and %.
package arithmetic

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/value"
)

func requireDecimals(name string, operands ...value.Value) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(operands))
	for i, v := range operands {
		if v.Kind() != value.KindDecimal {
			return nil, fmt.Errorf("%s: expected a number, got %s", name, v.Kind())
		}
		out[i] = v.AsDecimal()
	}
	return out, nil
}

// PrefixPlus is the unary "+" operator: it returns its operand unchanged.
type PrefixPlus struct{}

func (PrefixPlus) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Prefix} }
func (PrefixPlus) Precedence() int                 { return 60 }
func (PrefixPlus) Associativity() operator.Associativity { return operator.RightAssociative }
func (PrefixPlus) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("+", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0]), nil
}

// PrefixMinus is the unary "-" operator: numeric negation.
type PrefixMinus struct{}

func (PrefixMinus) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Prefix} }
func (PrefixMinus) Precedence() int                 { return 60 }
func (PrefixMinus) Associativity() operator.Associativity { return operator.RightAssociative }
func (PrefixMinus) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("-", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0].Neg()), nil
}

// InfixPlus is the binary "+" operator: numeric addition.
type InfixPlus struct{}

func (InfixPlus) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixPlus) Precedence() int                 { return 20 }
func (InfixPlus) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixPlus) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("+", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0].Add(ds[1])), nil
}

// InfixMinus is the binary "-" operator: numeric subtraction.
type InfixMinus struct{}

func (InfixMinus) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixMinus) Precedence() int                 { return 20 }
func (InfixMinus) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixMinus) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("-", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0].Sub(ds[1])), nil
}

// InfixMultiplication is the binary "*" operator.
type InfixMultiplication struct{}

func (InfixMultiplication) Fixities() []operator.Fixity { return []operator.Fixity{operator.Infix} }
func (InfixMultiplication) Precedence() int                 { return 30 }
func (InfixMultiplication) Associativity() operator.Associativity {
	return operator.LeftAssociative
}
func (InfixMultiplication) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("*", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0].Mul(ds[1])), nil
}

// InfixDivision is the binary "/" operator.
type InfixDivision struct {
	// DivisionPrecision is the number of decimal places the division
	// quotient is computed to before any configuration-level rounding is
	// applied. Zero selects 64 places.
	DivisionPrecision int32
}

func (InfixDivision) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixDivision) Precedence() int                 { return 30 }
func (InfixDivision) Associativity() operator.Associativity { return operator.LeftAssociative }
func (o InfixDivision) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("/", operands...)
	if err != nil {
		return value.Value{}, err
	}
	if ds[1].IsZero() {
		return value.Value{}, fmt.Errorf("/: division by zero")
	}
	prec := o.DivisionPrecision
	if prec == 0 {
		prec = 64
	}
	return value.Decimal(ds[0].DivRound(ds[1], prec)), nil
}

// InfixPowerOf is the binary "^" operator: exponentiation. Precedence is
// configurable because Configuration.PowerOfPrecedence may select the
// standard or the higher alternative.
type InfixPowerOf struct {
	OpPrecedence int
}

func (InfixPowerOf) Fixities() []operator.Fixity { return []operator.Fixity{operator.Infix} }
func (o InfixPowerOf) Precedence() int           { return o.OpPrecedence }
func (InfixPowerOf) Associativity() operator.Associativity {
	return operator.RightAssociative
}
func (InfixPowerOf) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("^", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Decimal(ds[0].Pow(ds[1])), nil
}

// InfixModulo is the binary "%" operator.
type InfixModulo struct{}

func (InfixModulo) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixModulo) Precedence() int                 { return 30 }
func (InfixModulo) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixModulo) Eval(operands ...value.Value) (value.Value, error) {
	ds, err := requireDecimals("%", operands...)
	if err != nil {
		return value.Value{}, err
	}
	if ds[1].IsZero() {
		return value.Value{}, fmt.Errorf("%%: modulo by zero")
	}
	return value.Decimal(ds[0].Mod(ds[1])), nil
}
