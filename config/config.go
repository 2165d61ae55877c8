// Package config defines the immutable configuration bundle that binds
// operator and function dictionaries, numeric policy, and per-expression
// collaborators, and feeds that context into the tokenizer.
package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/dataaccessor"
	"github.com/loncus/expressions/function"
	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/value"
)

// DecimalPlacesUnlimited disables intermediate decimal-place rounding: the
// -1 sentinel for DecimalPlacesRounding.
const DecimalPlacesUnlimited = -1

// RoundingMode mirrors java.math.RoundingMode's subset this engine needs.
type RoundingMode int8

const (
	// RoundHalfEven is banker's rounding: ties round to the nearest even
	// digit. This is the default.
	RoundHalfEven RoundingMode = iota
	RoundHalfUp
	RoundDown
	RoundUp
)

// MathContext pairs a decimal precision (total significant digits) with a
// rounding mode, mirroring java.math.MathContext.
type MathContext struct {
	Precision int32
	Rounding  RoundingMode
}

// DefaultMathContext has a precision of 68 significant digits and
// RoundHalfEven, generous enough that chained arithmetic on everyday
// values doesn't visibly lose precision.
var DefaultMathContext = MathContext{Precision: 68, Rounding: RoundHalfEven}

// Round applies c to d, rounding to c.Precision significant digits honoring
// c.Rounding. Places is derived from the position of d's leading digit
// (negative for values below 0.1) so that the total significant digit count
// after rounding is Precision. Digits left of the decimal point are never
// rounded away: a value with more than Precision integer digits is only
// rounded to an integer.
func (c MathContext) Round(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	intDigits := int32(d.NumDigits()) + d.Exponent()
	places := c.Precision - intDigits
	if places < 0 {
		places = 0
	}
	switch c.Rounding {
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundHalfUp:
		return d.Round(places)
	case RoundDown:
		return d.Truncate(places)
	case RoundUp:
		if d.IsNegative() {
			return d.Neg().RoundCeil(places).Neg()
		}
		return d.RoundCeil(places)
	default:
		return d
	}
}

// ConstantsMap is a case-insensitive name->Value map, used for
// Configuration's DefaultConstants and built via NewConstantsMap.
type ConstantsMap struct {
	m map[string]value.Value
}

// NewConstantsMap creates an empty case-insensitive constants map.
func NewConstantsMap() *ConstantsMap {
	return &ConstantsMap{m: make(map[string]value.Value)}
}

func constKey(name string) string { return strings.ToUpper(name) }

// Set stores v under name, overwriting any prior value for a
// case-insensitively equal name.
func (c *ConstantsMap) Set(name string, v value.Value) {
	c.m[constKey(name)] = v
}

// Get returns the value stored under name (case-insensitively) and whether
// it was present.
func (c *ConstantsMap) Get(name string) (value.Value, bool) {
	v, ok := c.m[constKey(name)]
	return v, ok
}

// Clone returns a ConstantsMap with an independent copy of the underlying
// entries.
func (c *ConstantsMap) Clone() *ConstantsMap {
	n := NewConstantsMap()
	for k, v := range c.m {
		n.m[k] = v
	}
	return n
}

// StandardConstants returns a fresh map holding the standard constant set:
// TRUE, FALSE, PI (100-digit decimal), E (65-digit decimal), and NULL.
func StandardConstants() *ConstantsMap {
	c := NewConstantsMap()
	c.Set("TRUE", value.Bool(true))
	c.Set("FALSE", value.Bool(false))
	c.Set("PI", value.Decimal(decimal.RequireFromString(
		"3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679")))
	c.Set("E", value.Decimal(decimal.RequireFromString(
		"2.71828182845904523536028747135266249775724709369995957496696762772")))
	c.Set("NULL", value.Nil)
	return c
}

// Configuration is the immutable bundle of settings the tokenizer, the
// shunting-yard converter, and the evaluator all consult. The
// Configuration value itself is a handle: OperatorDictionary,
// FunctionDictionary, and DefaultConstants are mutable through
// WithAdditionalOperators, WithAdditionalFunctions, and direct mutation,
// so that callers can register custom operators and functions against a
// shared dictionary. Mutating them concurrently with any Tokenizer reading
// them is not safe; dictionaries are safe to share read-only across
// goroutines.
type Configuration struct {
	operatorDictionary *operator.Dictionary
	functionDictionary *function.Dictionary
	defaultConstants   *ConstantsMap

	mathContext                   MathContext
	dataAccessorSupplier          func() dataaccessor.DataAccessor
	arraysAllowed                 bool
	varsAllowed                   bool
	implicitMultiplicationAllowed bool
	powerOfPrecedence             int
	decimalPlacesRounding         int
	stripTrailingZeros            bool
	allowOverwriteConstants       bool
	zoneID                        *time.Location
	evaluationValueConverter      value.Converter
}

func (c *Configuration) OperatorDictionary() *operator.Dictionary { return c.operatorDictionary }
func (c *Configuration) FunctionDictionary() *function.Dictionary { return c.functionDictionary }
func (c *Configuration) DefaultConstants() *ConstantsMap          { return c.defaultConstants }
func (c *Configuration) MathContext() MathContext                 { return c.mathContext }
func (c *Configuration) ArraysAllowed() bool                      { return c.arraysAllowed }
func (c *Configuration) VarsAllowed() bool                        { return c.varsAllowed }
func (c *Configuration) ImplicitMultiplicationAllowed() bool {
	return c.implicitMultiplicationAllowed
}
func (c *Configuration) PowerOfPrecedence() int        { return c.powerOfPrecedence }
func (c *Configuration) DecimalPlacesRounding() int    { return c.decimalPlacesRounding }
func (c *Configuration) StripTrailingZeros() bool      { return c.stripTrailingZeros }
func (c *Configuration) AllowOverwriteConstants() bool { return c.allowOverwriteConstants }
func (c *Configuration) ZoneID() *time.Location        { return c.zoneID }
func (c *Configuration) EvaluationValueConverter() value.Converter {
	return c.evaluationValueConverter
}

// NewDataAccessor builds a fresh DataAccessor using the configured
// supplier. Callers create one per expression evaluation.
func (c *Configuration) NewDataAccessor() dataaccessor.DataAccessor {
	return c.dataAccessorSupplier()
}

// WithAdditionalOperators inserts entries into the existing operator
// dictionary in place, in order, and returns the same Configuration for
// chaining. No deep copy is made.
func (c *Configuration) WithAdditionalOperators(entries ...operator.Entry) *Configuration {
	for _, e := range entries {
		c.operatorDictionary.AddOperator(e.Name, e.Def)
	}
	return c
}

// WithAdditionalFunctions inserts entries into the existing function
// dictionary in place, in order, and returns the same Configuration for
// chaining. No deep copy is made.
func (c *Configuration) WithAdditionalFunctions(entries ...function.Entry) *Configuration {
	for _, e := range entries {
		c.functionDictionary.AddFunction(e.Name, e.Def)
	}
	return c
}
