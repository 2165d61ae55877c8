// Package boolean implements the standard comparison and logical operator
// bodies: = == != <> < <= > >= && || !.
package boolean

import (
	"fmt"

	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/value"
)

func requireBools(name string, operands ...value.Value) ([]bool, error) {
	out := make([]bool, len(operands))
	for i, v := range operands {
		if v.Kind() != value.KindBoolean {
			return nil, fmt.Errorf("%s: expected a boolean, got %s", name, v.Kind())
		}
		out[i] = v.AsBool()
	}
	return out, nil
}

// compare orders two values: decimals numerically, strings lexically,
// booleans with false < true. Mismatched kinds are a type error.
func compare(a, b value.Value) (int, error) {
	if a.Kind() != b.Kind() {
		return 0, fmt.Errorf("cannot compare %s to %s", a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case value.KindDecimal:
		return a.AsDecimal().Cmp(b.AsDecimal()), nil
	case value.KindString:
		switch {
		case a.AsString() < b.AsString():
			return -1, nil
		case a.AsString() > b.AsString():
			return 1, nil
		default:
			return 0, nil
		}
	case value.KindBoolean:
		av, bv := 0, 0
		if a.AsBool() {
			av = 1
		}
		if b.AsBool() {
			bv = 1
		}
		return av - bv, nil
	default:
		return 0, fmt.Errorf("%s is not an orderable type", a.Kind())
	}
}

// InfixEquals implements "=" and "==".
type InfixEquals struct{}

func (InfixEquals) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixEquals) Precedence() int                 { return 7 }
func (InfixEquals) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixEquals) Eval(operands ...value.Value) (value.Value, error) {
	return value.Bool(value.Equal(operands[0], operands[1])), nil
}

// InfixNotEquals implements "!=" and "<>".
type InfixNotEquals struct{}

func (InfixNotEquals) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixNotEquals) Precedence() int                 { return 7 }
func (InfixNotEquals) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixNotEquals) Eval(operands ...value.Value) (value.Value, error) {
	return value.Bool(!value.Equal(operands[0], operands[1])), nil
}

// InfixGreater implements ">".
type InfixGreater struct{}

func (InfixGreater) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixGreater) Precedence() int                 { return 7 }
func (InfixGreater) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixGreater) Eval(operands ...value.Value) (value.Value, error) {
	c, err := compare(operands[0], operands[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(c > 0), nil
}

// InfixGreaterEquals implements ">=".
type InfixGreaterEquals struct{}

func (InfixGreaterEquals) Fixities() []operator.Fixity { return []operator.Fixity{operator.Infix} }
func (InfixGreaterEquals) Precedence() int             { return 7 }
func (InfixGreaterEquals) Associativity() operator.Associativity {
	return operator.LeftAssociative
}
func (InfixGreaterEquals) Eval(operands ...value.Value) (value.Value, error) {
	c, err := compare(operands[0], operands[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(c >= 0), nil
}

// InfixLess implements "<".
type InfixLess struct{}

func (InfixLess) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixLess) Precedence() int                 { return 7 }
func (InfixLess) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixLess) Eval(operands ...value.Value) (value.Value, error) {
	c, err := compare(operands[0], operands[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(c < 0), nil
}

// InfixLessEquals implements "<=".
type InfixLessEquals struct{}

func (InfixLessEquals) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixLessEquals) Precedence() int                 { return 7 }
func (InfixLessEquals) Associativity() operator.Associativity {
	return operator.LeftAssociative
}
func (InfixLessEquals) Eval(operands ...value.Value) (value.Value, error) {
	c, err := compare(operands[0], operands[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(c <= 0), nil
}

// InfixAnd implements "&&".
type InfixAnd struct{}

func (InfixAnd) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixAnd) Precedence() int                 { return 4 }
func (InfixAnd) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixAnd) Eval(operands ...value.Value) (value.Value, error) {
	bs, err := requireBools("&&", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(bs[0] && bs[1]), nil
}

// InfixOr implements "||".
type InfixOr struct{}

func (InfixOr) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Infix} }
func (InfixOr) Precedence() int                 { return 2 }
func (InfixOr) Associativity() operator.Associativity { return operator.LeftAssociative }
func (InfixOr) Eval(operands ...value.Value) (value.Value, error) {
	bs, err := requireBools("||", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(bs[0] || bs[1]), nil
}

// PrefixNot implements "!".
type PrefixNot struct{}

func (PrefixNot) Fixities() []operator.Fixity     { return []operator.Fixity{operator.Prefix} }
func (PrefixNot) Precedence() int                 { return 60 }
func (PrefixNot) Associativity() operator.Associativity { return operator.RightAssociative }
func (PrefixNot) Eval(operands ...value.Value) (value.Value, error) {
	bs, err := requireBools("!", operands...)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!bs[0]), nil
}
