package config

import (
	"time"

	"github.com/loncus/expressions/dataaccessor"
	"github.com/loncus/expressions/function"
	"github.com/loncus/expressions/functions/basic"
	"github.com/loncus/expressions/functions/timeseries"
	"github.com/loncus/expressions/operator"
	"github.com/loncus/expressions/operators/arithmetic"
	"github.com/loncus/expressions/operators/boolean"
	"github.com/loncus/expressions/value"
)

// Builder constructs a Configuration. Every field left unset when Build is
// called takes its default: DefaultMathContext, arrays, variables and
// implicit multiplication allowed, operator.PrecedencePower,
// DecimalPlacesUnlimited, trailing-zero stripping and constant overwriting
// on, time.Local, value.DefaultConverter, the standard operator and
// function dictionaries, StandardConstants, and dataaccessor.NewMapAccessor.
//
//	cfg := config.NewBuilder().
//		MathContext(config.MathContext{Precision: 32, Rounding: config.RoundHalfUp}).
//		ArraysAllowed(false).
//		Build()
type Builder struct {
	operatorDictionary *operator.Dictionary
	functionDictionary *function.Dictionary
	defaultConstants   *ConstantsMap

	mathContext                   *MathContext
	dataAccessorSupplier          func() dataaccessor.DataAccessor
	arraysAllowed                 *bool
	varsAllowed                   *bool
	implicitMultiplicationAllowed *bool
	powerOfPrecedence             *int
	decimalPlacesRounding         *int
	stripTrailingZeros            *bool
	allowOverwriteConstants       *bool
	zoneID                        *time.Location
	evaluationValueConverter      value.Converter
}

// NewBuilder creates a Builder with no overrides; Build() on it alone
// produces the same result as DefaultConfiguration().
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) OperatorDictionary(d *operator.Dictionary) *Builder {
	b.operatorDictionary = d
	return b
}

func (b *Builder) FunctionDictionary(d *function.Dictionary) *Builder {
	b.functionDictionary = d
	return b
}

func (b *Builder) DefaultConstants(c *ConstantsMap) *Builder {
	b.defaultConstants = c
	return b
}

func (b *Builder) MathContext(mc MathContext) *Builder {
	b.mathContext = &mc
	return b
}

func (b *Builder) DataAccessorSupplier(f func() dataaccessor.DataAccessor) *Builder {
	b.dataAccessorSupplier = f
	return b
}

func (b *Builder) ArraysAllowed(v bool) *Builder {
	b.arraysAllowed = &v
	return b
}

func (b *Builder) VarsAllowed(v bool) *Builder {
	b.varsAllowed = &v
	return b
}

func (b *Builder) ImplicitMultiplicationAllowed(v bool) *Builder {
	b.implicitMultiplicationAllowed = &v
	return b
}

func (b *Builder) PowerOfPrecedence(v int) *Builder {
	b.powerOfPrecedence = &v
	return b
}

func (b *Builder) DecimalPlacesRounding(v int) *Builder {
	b.decimalPlacesRounding = &v
	return b
}

func (b *Builder) StripTrailingZeros(v bool) *Builder {
	b.stripTrailingZeros = &v
	return b
}

func (b *Builder) AllowOverwriteConstants(v bool) *Builder {
	b.allowOverwriteConstants = &v
	return b
}

func (b *Builder) ZoneID(loc *time.Location) *Builder {
	b.zoneID = loc
	return b
}

func (b *Builder) EvaluationValueConverter(c value.Converter) *Builder {
	b.evaluationValueConverter = c
	return b
}

// Build produces the Configuration, filling in the documented defaults for
// every field the Builder wasn't given an explicit value for.
func (b *Builder) Build() *Configuration {
	c := &Configuration{
		operatorDictionary:            b.operatorDictionary,
		functionDictionary:            b.functionDictionary,
		defaultConstants:              b.defaultConstants,
		mathContext:                   DefaultMathContext,
		dataAccessorSupplier:          b.dataAccessorSupplier,
		arraysAllowed:                 true,
		varsAllowed:                   true,
		implicitMultiplicationAllowed: true,
		powerOfPrecedence:             operator.PrecedencePower,
		decimalPlacesRounding:         DecimalPlacesUnlimited,
		stripTrailingZeros:            true,
		allowOverwriteConstants:       true,
		zoneID:                        time.Local,
		evaluationValueConverter:      value.DefaultConverter{},
	}
	if b.mathContext != nil {
		c.mathContext = *b.mathContext
	}
	if b.arraysAllowed != nil {
		c.arraysAllowed = *b.arraysAllowed
	}
	if b.varsAllowed != nil {
		c.varsAllowed = *b.varsAllowed
	}
	if b.implicitMultiplicationAllowed != nil {
		c.implicitMultiplicationAllowed = *b.implicitMultiplicationAllowed
	}
	if b.powerOfPrecedence != nil {
		c.powerOfPrecedence = *b.powerOfPrecedence
	}
	if b.decimalPlacesRounding != nil {
		c.decimalPlacesRounding = *b.decimalPlacesRounding
	}
	if b.stripTrailingZeros != nil {
		c.stripTrailingZeros = *b.stripTrailingZeros
	}
	if b.allowOverwriteConstants != nil {
		c.allowOverwriteConstants = *b.allowOverwriteConstants
	}
	if b.zoneID != nil {
		c.zoneID = b.zoneID
	}
	if b.evaluationValueConverter != nil {
		c.evaluationValueConverter = b.evaluationValueConverter
	}
	if c.operatorDictionary == nil {
		c.operatorDictionary = standardOperators(c.powerOfPrecedence)
	}
	if c.functionDictionary == nil {
		c.functionDictionary = standardFunctions()
	}
	if c.defaultConstants == nil {
		c.defaultConstants = StandardConstants()
	}
	if c.dataAccessorSupplier == nil {
		c.dataAccessorSupplier = dataaccessor.NewMapAccessor
	}
	return c
}

// DefaultConfiguration produces a Configuration with the standard operator
// set (arithmetic: unary +/-, + - * / ^ %; comparison: = == != <> < <= > >=;
// logical: && || !), the standard function set (ABS, CEILING, FACT, FLOOR,
// IF, LOG, LOG10, MAX, MIN, NOT, SUM, SQRT, MOVE, MA), and the standard
// constants map.
func DefaultConfiguration() *Configuration {
	return NewBuilder().Build()
}

func standardOperators(powerPrecedence int) *operator.Dictionary {
	return operator.NewDictionaryFromEntries(
		operator.Entry{Name: "+", Def: arithmetic.PrefixPlus{}},
		operator.Entry{Name: "-", Def: arithmetic.PrefixMinus{}},
		operator.Entry{Name: "+", Def: arithmetic.InfixPlus{}},
		operator.Entry{Name: "-", Def: arithmetic.InfixMinus{}},
		operator.Entry{Name: "*", Def: arithmetic.InfixMultiplication{}},
		operator.Entry{Name: "/", Def: arithmetic.InfixDivision{}},
		operator.Entry{Name: "^", Def: arithmetic.InfixPowerOf{OpPrecedence: powerPrecedence}},
		operator.Entry{Name: "%", Def: arithmetic.InfixModulo{}},
		operator.Entry{Name: "=", Def: boolean.InfixEquals{}},
		operator.Entry{Name: "==", Def: boolean.InfixEquals{}},
		operator.Entry{Name: "!=", Def: boolean.InfixNotEquals{}},
		operator.Entry{Name: "<>", Def: boolean.InfixNotEquals{}},
		operator.Entry{Name: ">", Def: boolean.InfixGreater{}},
		operator.Entry{Name: ">=", Def: boolean.InfixGreaterEquals{}},
		operator.Entry{Name: "<", Def: boolean.InfixLess{}},
		operator.Entry{Name: "<=", Def: boolean.InfixLessEquals{}},
		operator.Entry{Name: "&&", Def: boolean.InfixAnd{}},
		operator.Entry{Name: "||", Def: boolean.InfixOr{}},
		operator.Entry{Name: "!", Def: boolean.PrefixNot{}},
	)
}

func standardFunctions() *function.Dictionary {
	return function.NewDictionaryFromEntries(
		function.Entry{Name: "ABS", Def: basic.Abs{}},
		function.Entry{Name: "CEILING", Def: basic.Ceiling{}},
		function.Entry{Name: "FACT", Def: basic.Fact{}},
		function.Entry{Name: "FLOOR", Def: basic.Floor{}},
		function.Entry{Name: "IF", Def: basic.If{}},
		function.Entry{Name: "LOG", Def: basic.Log{}},
		function.Entry{Name: "LOG10", Def: basic.Log10{}},
		function.Entry{Name: "MAX", Def: basic.Max{}},
		function.Entry{Name: "MIN", Def: basic.Min{}},
		function.Entry{Name: "NOT", Def: basic.Not{}},
		function.Entry{Name: "SUM", Def: basic.Sum{}},
		function.Entry{Name: "SQRT", Def: basic.Sqrt{}},
		function.Entry{Name: "MOVE", Def: timeseries.Move{}},
		function.Entry{Name: "MA", Def: timeseries.MovingAvg{}},
	)
}
