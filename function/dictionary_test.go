package function

import (
	"testing"

	"github.com/loncus/expressions/value"
)

type stubFn struct{}

func (stubFn) MinParameters() int { return 1 }
func (stubFn) MaxParameters() int { return 1 }
func (stubFn) Eval(params ...value.Value) (value.Value, error) { return params[0], nil }

func TestDictionaryCaseInsensitive(t *testing.T) {
	d := NewDictionary()
	d.AddFunction("Sum", stubFn{})
	if !d.HasFunction("SUM") {
		t.Error("expected case-insensitive lookup to find SUM")
	}
	if !d.HasFunction("sum") {
		t.Error("expected case-insensitive lookup to find sum")
	}
	if d.GetFunction("sUm") == nil {
		t.Error("expected non-nil definition regardless of case")
	}
}

func TestDictionaryClone(t *testing.T) {
	d := NewDictionaryFromEntries(Entry{Name: "ABS", Def: stubFn{}})
	c := d.Clone()
	c.AddFunction("CEIL", stubFn{})
	if d.HasFunction("CEIL") {
		t.Error("mutating the clone should not affect the original")
	}
}
