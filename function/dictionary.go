// Package function defines the function dictionary consulted by the
// tokenizer and the capability set a function definition must expose.
package function

import (
	"strings"

	"github.com/loncus/expressions/value"
)

// Definition is the capability set the tokenizer and evaluator need from a
// function implementation.
type Definition interface {
	// MinParameters and MaxParameters bound the accepted argument count.
	// MaxParameters may be -1 to mean unbounded (e.g. SUM).
	MinParameters() int
	MaxParameters() int
	// Eval applies the function to its already-evaluated arguments.
	Eval(params ...value.Value) (value.Value, error)
}

// Dictionary is a name->Definition lookup with case-insensitive matching:
// both insertion and lookup keys are normalized, rather than relying on a
// language-provided case-insensitive ordered container.
//
// A Dictionary is safe to read concurrently from any number of goroutines.
// It is not safe to mutate (AddFunction) concurrently with any read, nor
// with any other mutation.
type Dictionary struct {
	funcs map[string]Definition
}

// NewDictionary creates an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{funcs: make(map[string]Definition)}
}

// Entry pairs a function name with its definition, for use with
// NewDictionaryFromEntries and configuration's WithAdditionalFunctions.
type Entry struct {
	Name string
	Def  Definition
}

// NewDictionaryFromEntries builds a Dictionary from a list of entries.
func NewDictionaryFromEntries(entries ...Entry) *Dictionary {
	d := NewDictionary()
	for _, e := range entries {
		d.AddFunction(e.Name, e.Def)
	}
	return d
}

func normalize(name string) string {
	return strings.ToUpper(name)
}

// AddFunction registers def under name. Lookups for name are
// case-insensitive.
func (d *Dictionary) AddFunction(name string, def Definition) {
	d.funcs[normalize(name)] = def
}

// HasFunction reports whether name (compared case-insensitively) is
// registered.
func (d *Dictionary) HasFunction(name string) bool {
	_, ok := d.funcs[normalize(name)]
	return ok
}

// GetFunction returns the definition registered for name (compared
// case-insensitively), or nil if there is none.
func (d *Dictionary) GetFunction(name string) Definition {
	return d.funcs[normalize(name)]
}

// Clone returns a Dictionary with an independent copy of the underlying
// map, sharing the Definition values themselves.
func (d *Dictionary) Clone() *Dictionary {
	c := NewDictionary()
	for k, v := range d.funcs {
		c.funcs[k] = v
	}
	return c
}
