// Package dataaccessor defines the per-expression variable and constant
// store the evaluator consults first when resolving a VARIABLE_OR_CONSTANT
// token, before falling back to the Configuration's default constants.
package dataaccessor

import "github.com/loncus/expressions/value"

// DataAccessor reads and writes variable values for a single expression
// evaluation. Implementations are confined to one expression's lifetime,
// mirroring the tokenizer's single-use confinement, and are not safe for
// concurrent Set calls.
type DataAccessor interface {
	// Get returns the value bound to name and whether it was found.
	Get(name string) (value.Value, bool)
	// Set binds name to v, overwriting any previous binding.
	Set(name string, v value.Value)
}

// MapAccessor is the default DataAccessor: a fresh map-backed store created
// once per expression, matching MapBasedDataAccessor in the original
// implementation this supplements.
type MapAccessor struct {
	values map[string]value.Value
}

// NewMapAccessor creates an empty MapAccessor. Configuration's
// DataAccessorSupplier is set to this by default, called once per
// expression.
func NewMapAccessor() DataAccessor {
	return &MapAccessor{values: make(map[string]value.Value)}
}

// Get implements DataAccessor.
func (a *MapAccessor) Get(name string) (value.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Set implements DataAccessor.
func (a *MapAccessor) Set(name string, v value.Value) {
	a.values[name] = v
}
