package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Quantity is an immutable labelled measurement.
// The value is always finite. The unit is either catalogued or an unrecognised raw tag.
type Quantity struct {
	name  string
	value float64
	unit  Unit
}

// NewQuantity creates a quantity from a unit tag such as "cm", "ft3/min" or "metric/m".
func NewQuantity(name string, value float64, tag string) (Quantity, error) {
	if err := checkFinite(name, value); err != nil {
		return Quantity{}, err
	}

	u, err := ParseUnit(tag)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{name: name, value: value, unit: u}, nil
}

// NewQuantityOf creates a quantity from an already resolved unit.
func NewQuantityOf(name string, value float64, unit Unit) (Quantity, error) {
	if err := checkFinite(name, value); err != nil {
		return Quantity{}, err
	}

	if !unit.Recognized() {
		return Quantity{}, NewUnknownUnitError(unit.Symbol)
	}

	return Quantity{name: name, value: value, unit: unit}, nil
}

// NewQuantityInSystem creates a quantity in the canonical unit a system uses for a
// category. This is how a form field with a system dropdown is read.
func NewQuantityInSystem(name string, value float64, category Category, system System) (Quantity, error) {
	if err := checkFinite(name, value); err != nil {
		return Quantity{}, err
	}

	if !category.Valid() {
		return Quantity{}, NewUnknownUnitError(string(category))
	}

	if !system.Valid() {
		return Quantity{}, NewUnknownUnitError(string(system))
	}

	u, ok := DefaultTable().Canonical(category, system)
	if !ok {
		return Quantity{}, NewUnrecognizedConversionPairError(category, string(system), string(SystemMetric))
	}

	return Quantity{name: name, value: value, unit: u}, nil
}

// NewRawQuantity creates a quantity without requiring a catalogued unit.
// An unknown tag is kept verbatim and reported by Convert as StatusUnrecognizedUnit.
func NewRawQuantity(name string, value float64, tag string) (Quantity, error) {
	if err := checkFinite(name, value); err != nil {
		return Quantity{}, err
	}

	u, err := ParseUnit(tag)
	if err != nil {
		u = unrecognizedUnit(tag)
	}

	return Quantity{name: name, value: value, unit: u}, nil
}

func checkFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvalidValueError(name, value)
	}

	return nil
}

// Name returns the label.
func (q Quantity) Name() string { return q.name }

// Value returns the numeric value.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit.
func (q Quantity) Unit() Unit { return q.unit }

// Category returns the unit category, empty when the unit is unrecognised.
func (q Quantity) Category() Category { return q.unit.Category }

// System returns the unit system, empty when the unit is unrecognised.
func (q Quantity) System() System { return q.unit.System }

// WithValue returns a copy holding value.
func (q Quantity) WithValue(value float64) (Quantity, error) {
	if err := checkFinite(q.name, value); err != nil {
		return Quantity{}, err
	}

	q.value = value

	return q, nil
}

// WithName returns a copy labelled name.
func (q Quantity) WithName(name string) Quantity {
	q.name = name

	return q
}

// Describe renders "{name}: {value} {unit}".
func (q Quantity) Describe() string {
	return fmt.Sprintf("%s: %s %s", q.name, strconv.FormatFloat(q.value, 'g', -1, 64), q.unit.Symbol)
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return q.Describe()
}
