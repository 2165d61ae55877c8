// Package timeseries implements the numeric time-series domain functions:
// MOVE (lag/lead a series by a fixed offset) and MA (moving average over a
// fixed window).
package timeseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loncus/expressions/value"
)

func requireTimeSeries(name string, v value.Value) ([]value.Point, error) {
	if v.Kind() != value.KindTimeSeries {
		return nil, fmt.Errorf("%s: expected a time series, got %s", name, v.Kind())
	}
	return v.AsTimeSeries(), nil
}

func requireInt(name string, v value.Value) (int, error) {
	if v.Kind() != value.KindDecimal {
		return 0, fmt.Errorf("%s: expected a number, got %s", name, v.Kind())
	}
	d := v.AsDecimal()
	if !d.IsInteger() {
		return 0, fmt.Errorf("%s: expected an integer, got %s", name, d)
	}
	return int(d.IntPart()), nil
}

// Move implements MOVE(series, offset): shifts each point's value by
// `offset` positions within the series, leaving NULL-valued gaps (modeled
// here by omitting points that would move out of range) at the exposed
// end. A positive offset looks backward (lag); a negative offset looks
// forward (lead).
type Move struct{}

func (Move) MinParameters() int { return 2 }
func (Move) MaxParameters() int { return 2 }
func (Move) Eval(params ...value.Value) (value.Value, error) {
	points, err := requireTimeSeries("MOVE", params[0])
	if err != nil {
		return value.Value{}, err
	}
	offset, err := requireInt("MOVE", params[1])
	if err != nil {
		return value.Value{}, err
	}
	out := make([]value.Point, 0, len(points))
	for i, p := range points {
		j := i - offset
		if j < 0 || j >= len(points) {
			continue
		}
		out = append(out, value.Point{Time: p.Time, Value: points[j].Value})
	}
	return value.TimeSeries(out), nil
}

// MovingAvg implements MA(series, window): the trailing simple moving
// average with the given window size. The first window-1 points of the
// input are dropped, since they have no full window behind them.
type MovingAvg struct{}

func (MovingAvg) MinParameters() int { return 2 }
func (MovingAvg) MaxParameters() int { return 2 }
func (MovingAvg) Eval(params ...value.Value) (value.Value, error) {
	points, err := requireTimeSeries("MA", params[0])
	if err != nil {
		return value.Value{}, err
	}
	window, err := requireInt("MA", params[1])
	if err != nil {
		return value.Value{}, err
	}
	if window <= 0 {
		return value.Value{}, fmt.Errorf("MA: window must be positive, got %d", window)
	}
	if window > len(points) {
		return value.TimeSeries(nil), nil
	}
	out := make([]value.Point, 0, len(points)-window+1)
	for i := window - 1; i < len(points); i++ {
		sum := decimal.Zero
		for j := i - window + 1; j <= i; j++ {
			sum = sum.Add(points[j].Value)
		}
		avg := sum.DivRound(decimal.NewFromInt(int64(window)), 34)
		out = append(out, value.Point{Time: points[i].Time, Value: avg})
	}
	return value.TimeSeries(out), nil
}
