// Package value defines the typed result that expression evaluation
// produces: arbitrary-precision decimal numbers, booleans, strings, arrays,
// ordered structures, time-series points, and null.
package value

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the closed set of value tags.
type Kind int8

const (
	Null Kind = iota
	KindDecimal
	KindBoolean
	KindString
	KindArray
	KindStruct
	KindTimeSeries
)

func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "DECIMAL"
	case KindBoolean:
		return "BOOLEAN"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindStruct:
		return "STRUCTURE"
	case KindTimeSeries:
		return "TIME_SERIES"
	default:
		return "NULL"
	}
}

// Point is a single timestamped sample of the numeric time-series domain
// used by the MOVE and MA functions.
type Point struct {
	Time  time.Time
	Value decimal.Decimal
}

// Value is the tagged union every expression evaluates to.
type Value struct {
	kind  Kind
	num   decimal.Decimal
	str   string
	boo   bool
	arr   []Value
	strct []StructField
	ts    []Point
}

// StructField is a single named entry of a STRUCTURE value, kept ordered
// (unlike a plain Go map) so structures print and iterate in the order
// their fields were written.
type StructField struct {
	Name  string
	Value Value
}

// Decimal creates a DECIMAL value.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, num: d} }

// Bool creates a BOOLEAN value.
func Bool(b bool) Value { return Value{kind: KindBoolean, boo: b} }

// Str creates a STRING value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Array creates an ARRAY value.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Struct creates a STRUCTURE value from ordered fields.
func Struct(fields []StructField) Value { return Value{kind: KindStruct, strct: fields} }

// TimeSeries creates a TIME_SERIES value from ordered points.
func TimeSeries(points []Point) Value { return Value{kind: KindTimeSeries, ts: points} }

// Nil is the NULL value.
var Nil = Value{kind: Null}

// Kind reports the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the NULL value.
func (v Value) IsNull() bool { return v.kind == Null }

// AsDecimal returns v's decimal payload. Panics if v is not a DECIMAL.
func (v Value) AsDecimal() decimal.Decimal {
	if v.kind != KindDecimal {
		panic(fmt.Sprintf("value: AsDecimal on %s value", v.kind))
	}
	return v.num
}

// AsBool returns v's boolean payload. Panics if v is not a BOOLEAN.
func (v Value) AsBool() bool {
	if v.kind != KindBoolean {
		panic(fmt.Sprintf("value: AsBool on %s value", v.kind))
	}
	return v.boo
}

// AsString returns v's string payload. Panics if v is not a STRING.
func (v Value) AsString() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("value: AsString on %s value", v.kind))
	}
	return v.str
}

// AsArray returns v's array payload. Panics if v is not an ARRAY.
func (v Value) AsArray() []Value {
	if v.kind != KindArray {
		panic(fmt.Sprintf("value: AsArray on %s value", v.kind))
	}
	return v.arr
}

// AsStruct returns v's structure fields. Panics if v is not a STRUCTURE.
func (v Value) AsStruct() []StructField {
	if v.kind != KindStruct {
		panic(fmt.Sprintf("value: AsStruct on %s value", v.kind))
	}
	return v.strct
}

// AsTimeSeries returns v's points. Panics if v is not a TIME_SERIES.
func (v Value) AsTimeSeries() []Point {
	if v.kind != KindTimeSeries {
		panic(fmt.Sprintf("value: AsTimeSeries on %s value", v.kind))
	}
	return v.ts
}

func (v Value) String() string {
	switch v.kind {
	case KindDecimal:
		return v.num.String()
	case KindBoolean:
		if v.boo {
			return "true"
		}
		return "false"
	case KindString:
		return v.str
	case KindArray:
		return fmt.Sprintf("%v", v.arr)
	case KindStruct:
		return fmt.Sprintf("%v", v.strct)
	case KindTimeSeries:
		return fmt.Sprintf("%v", v.ts)
	default:
		return "null"
	}
}

// Equal reports structural equality between v and w, matching the standard
// infix "=" / "==" operator's semantics: values of different kinds are
// never equal (including NULL, which only equals NULL).
func Equal(v, w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case KindDecimal:
		return v.num.Equal(w.num)
	case KindBoolean:
		return v.boo == w.boo
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !Equal(v.arr[i], w.arr[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.strct) != len(w.strct) {
			return false
		}
		for i := range v.strct {
			if v.strct[i].Name != w.strct[i].Name || !Equal(v.strct[i].Value, w.strct[i].Value) {
				return false
			}
		}
		return true
	case KindTimeSeries:
		if len(v.ts) != len(w.ts) {
			return false
		}
		for i := range v.ts {
			if !v.ts[i].Time.Equal(w.ts[i].Time) || !v.ts[i].Value.Equal(w.ts[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
