package value

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Converter turns host-language data into Values. Configuration's
// EvaluationValueConverter field holds one for callers to use, e.g. when
// seeding a data accessor from a variable map; the tokenizer, ast and eval
// packages do not call it themselves.
type Converter interface {
	Convert(v any) (Value, error)
}

// DefaultConverter implements Converter using straightforward type
// switches over the usual Go primitives plus decimal.Decimal and
// time-series points, mirroring DefaultEvaluationValueConverter.
type DefaultConverter struct{}

// Convert implements Converter.
func (DefaultConverter) Convert(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Nil, nil
	case Value:
		return t, nil
	case decimal.Decimal:
		return Decimal(t), nil
	case int:
		return Decimal(decimal.NewFromInt(int64(t))), nil
	case int32:
		return Decimal(decimal.NewFromInt(int64(t))), nil
	case int64:
		return Decimal(decimal.NewFromInt(t)), nil
	case float32:
		return Decimal(decimal.NewFromFloat(float64(t))), nil
	case float64:
		return Decimal(decimal.NewFromFloat(t)), nil
	case string:
		return Str(t), nil
	case bool:
		return Bool(t), nil
	case []any:
		vs := make([]Value, len(t))
		for i, e := range t {
			cv, err := (DefaultConverter{}).Convert(e)
			if err != nil {
				return Value{}, err
			}
			vs[i] = cv
		}
		return Array(vs), nil
	case []Point:
		return TimeSeries(t), nil
	default:
		return Value{}, fmt.Errorf("value: cannot convert %T to a Value", v)
	}
}

// NewPoint is a convenience constructor for a time-series sample.
func NewPoint(t time.Time, d decimal.Decimal) Point {
	return Point{Time: t, Value: d}
}
