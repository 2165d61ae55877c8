// Package operator defines the operator dictionary consulted by the
// tokenizer and the capability set an operator definition must expose.
package operator

import "github.com/loncus/expressions/value"

// Associativity describes which side an infix operator of equal precedence
// groups towards.
type Associativity int8

const (
	LeftAssociative Associativity = iota
	RightAssociative
)

// Fixity is whether an operator appears before its operand (prefix), after
// it (postfix), or between two operands (infix).
type Fixity int8

const (
	Prefix Fixity = iota
	Infix
	Postfix
)

// PrecedencePower is the standard precedence for the power operator, per
// the contract Definition exposes. PrecedencePowerHigher is the documented
// alternative a Configuration may opt into.
const (
	PrecedencePower       = 40
	PrecedencePowerHigher = 80
)

// Definition is the capability set the tokenizer and downstream consumers
// need from an operator implementation. The core only ever queries a
// dictionary with a name and a fixity; it never interprets Precedence,
// Associativity, or Eval itself — those are consumed by the shunting-yard
// converter and evaluator.
type Definition interface {
	// Fixities reports every fixity under which this definition should be
	// registered when added to a Dictionary with AddOperator. Most
	// concrete operators report exactly one; a definition may report more
	// than one if the same implementation is valid in more than one
	// position.
	Fixities() []Fixity
	// Precedence returns the operator's binding strength. Higher values
	// bind tighter.
	Precedence() int
	// Associativity returns which side the operator groups towards when
	// chained with operators of equal precedence. Only meaningful for
	// infix operators.
	Associativity() Associativity
	// Eval applies the operator to its operands: one for prefix/postfix,
	// two (left, right) for infix.
	Eval(operands ...value.Value) (value.Value, error)
}

// Dictionary holds operator definitions partitioned by fixity. A single
// name may be registered under more than one fixity (e.g. "+" is both a
// prefix and an infix operator in the standard set); each partition is an
// independent name->definition map.
//
// Name matching is exact and case-sensitive. Registering a second
// definition under the same (name, fixity) pair silently overwrites the
// first — this mirrors a plain map put and is not reported as an error;
// callers are expected to seed distinct names.
//
// A Dictionary is safe to read concurrently from any number of goroutines.
// It is not safe to mutate (AddOperator) concurrently with any read, nor
// with any other mutation.
type Dictionary struct {
	prefix  map[string]Definition
	infix   map[string]Definition
	postfix map[string]Definition
}

// NewDictionary creates an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		prefix:  make(map[string]Definition),
		infix:   make(map[string]Definition),
		postfix: make(map[string]Definition),
	}
}

// Entry pairs an operator name with its definition, for use with
// NewDictionaryFromEntries and configuration's WithAdditionalOperators.
type Entry struct {
	Name string
	Def  Definition
}

// NewDictionaryFromEntries builds a Dictionary from a list of entries,
// registering each under every fixity its definition reports.
func NewDictionaryFromEntries(entries ...Entry) *Dictionary {
	d := NewDictionary()
	for _, e := range entries {
		d.AddOperator(e.Name, e.Def)
	}
	return d
}

// AddOperator registers def under name in each fixity partition def
// declares via Fixities.
func (d *Dictionary) AddOperator(name string, def Definition) {
	for _, fixity := range def.Fixities() {
		switch fixity {
		case Prefix:
			d.prefix[name] = def
		case Infix:
			d.infix[name] = def
		case Postfix:
			d.postfix[name] = def
		}
	}
}

// HasPrefixOperator reports whether name is registered as a prefix operator.
func (d *Dictionary) HasPrefixOperator(name string) bool {
	_, ok := d.prefix[name]
	return ok
}

// HasInfixOperator reports whether name is registered as an infix operator.
func (d *Dictionary) HasInfixOperator(name string) bool {
	_, ok := d.infix[name]
	return ok
}

// HasPostfixOperator reports whether name is registered as a postfix
// operator.
func (d *Dictionary) HasPostfixOperator(name string) bool {
	_, ok := d.postfix[name]
	return ok
}

// GetPrefixOperator returns the prefix definition registered for name, or
// nil if there is none.
func (d *Dictionary) GetPrefixOperator(name string) Definition {
	return d.prefix[name]
}

// GetInfixOperator returns the infix definition registered for name, or nil
// if there is none.
func (d *Dictionary) GetInfixOperator(name string) Definition {
	return d.infix[name]
}

// GetPostfixOperator returns the postfix definition registered for name, or
// nil if there is none.
func (d *Dictionary) GetPostfixOperator(name string) Definition {
	return d.postfix[name]
}

// Clone returns a Dictionary with independent copies of each fixity
// partition, sharing the Definition values themselves.
func (d *Dictionary) Clone() *Dictionary {
	c := NewDictionary()
	for k, v := range d.prefix {
		c.prefix[k] = v
	}
	for k, v := range d.infix {
		c.infix[k] = v
	}
	for k, v := range d.postfix {
		c.postfix[k] = v
	}
	return c
}
