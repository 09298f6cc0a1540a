package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// Status reports what Convert did with a quantity.
type Status int

// Conversion statuses.
const (
	// StatusConverted means the value was multiplied into the target unit.
	StatusConverted Status = iota + 1

	// StatusIdentity means the quantity was already in the target unit.
	StatusIdentity

	// StatusUnrecognizedUnit means the source unit is not catalogued. The quantity is
	// returned unchanged.
	StatusUnrecognizedUnit

	// StatusNoConversionPath means the target has no unit for the quantity's category.
	// The quantity is returned unchanged.
	StatusNoConversionPath

	// StatusOverflow means the converted value would not be finite. The quantity is
	// returned unchanged.
	StatusOverflow

	// StatusUnderflow means a nonzero value would convert to zero. The quantity is
	// returned unchanged.
	StatusUnderflow
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusIdentity:
		return "identity"
	case StatusUnrecognizedUnit:
		return "unrecognized_unit"
	case StatusNoConversionPath:
		return "no_conversion_path"
	case StatusOverflow:
		return "overflow"
	case StatusUnderflow:
		return "underflow"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Applied reports whether the returned quantity is expressed in the target.
func (s Status) Applied() bool {
	return s == StatusConverted || s == StatusIdentity
}

// Err converts an unapplied status into the matching domain error.
// It returns nil for applied statuses.
func (s Status) Err(q Quantity, target System) error {
	switch s {
	case StatusConverted, StatusIdentity:
		return nil
	case StatusUnrecognizedUnit:
		return NewUnknownUnitError(q.Unit().Symbol)
	case StatusNoConversionPath:
		return NewUnrecognizedConversionPairError(q.Category(), q.Unit().Qualified(), string(target))
	case StatusOverflow:
		return NewInvalidValueError(q.Name(), math.Inf(1))
	case StatusUnderflow:
		return NewValidationErrorWithValue(q.Name(), "converts to zero in "+string(target), q.Value())
	default:
		return fmt.Errorf("unexpected conversion status %d", int(s))
	}
}

type pairKey struct {
	category Category
	from     string
	to       string
}

// Table is a read-only conversion table. Pairwise multipliers are derived from each
// unit's factor to the metric canonical unit of its category.
type Table struct {
	bySymbol   map[string]Unit
	byAlias    map[string]string
	byCategory map[Category][]Unit
	canonical  map[Category]map[System]Unit
	factors    map[pairKey]float64
}

// NewTable builds a table from definitions. Every category must have exactly one
// metric canonical unit with factor 1, and at most one canonical unit per system.
func NewTable(defs []UnitDefinition) (*Table, error) {
	t := &Table{
		bySymbol:   make(map[string]Unit, len(defs)),
		byAlias:    make(map[string]string),
		byCategory: make(map[Category][]Unit),
		canonical:  make(map[Category]map[System]Unit),
		factors:    make(map[pairKey]float64),
	}

	for _, d := range defs {
		if err := t.add(d); err != nil {
			return nil, err
		}
	}

	for category, units := range t.byCategory {
		hub, ok := t.canonical[category][SystemMetric]
		if !ok || hub.factor != 1 {
			return nil, NewValidationError(string(category), "metric canonical unit with factor 1 is required")
		}

		for _, from := range units {
			for _, to := range units {
				if from.Symbol == to.Symbol {
					continue
				}

				t.factors[pairKey{category, from.Symbol, to.Symbol}] = from.factor / to.factor
			}
		}
	}

	return t, nil
}

func (t *Table) add(d UnitDefinition) error {
	switch {
	case d.Symbol == "":
		return NewValidationError("symbol", "is required")
	case !d.System.Valid():
		return NewValidationErrorWithValue("system", "unsupported system", d.System)
	case !d.Category.Valid():
		return NewValidationErrorWithValue("category", "unsupported category", d.Category)
	case d.ToMetric <= 0 || math.IsInf(d.ToMetric, 0) || math.IsNaN(d.ToMetric):
		return NewValidationErrorWithValue(d.Symbol, "factor must be a positive finite number", d.ToMetric)
	}

	if _, dup := t.bySymbol[d.Symbol]; dup {
		return NewValidationError(d.Symbol, "duplicate symbol")
	}

	// Spellings are matched case-insensitively, so the symbol itself competes too.
	for _, spelling := range append([]string{d.Symbol}, d.Aliases...) {
		if owner, taken := t.byAlias[strings.ToLower(spelling)]; taken {
			return NewValidationError(d.Symbol, fmt.Sprintf("spelling %q already names %q", spelling, owner))
		}
	}

	u := Unit{
		Symbol:    d.Symbol,
		System:    d.System,
		Category:  d.Category,
		factor:    d.ToMetric,
		canonical: d.Canonical,
	}

	if u.canonical {
		bySystem := t.canonical[u.Category]
		if bySystem == nil {
			bySystem = make(map[System]Unit)
			t.canonical[u.Category] = bySystem
		}

		if prev, dup := bySystem[u.System]; dup {
			return NewValidationError(d.Symbol, fmt.Sprintf("%s already has canonical %s unit %q", u.System, u.Category, prev.Symbol))
		}

		bySystem[u.System] = u
	}

	t.bySymbol[u.Symbol] = u
	t.byCategory[u.Category] = append(t.byCategory[u.Category], u)
	t.byAlias[strings.ToLower(u.Symbol)] = u.Symbol

	for _, alias := range d.Aliases {
		t.byAlias[strings.ToLower(alias)] = u.Symbol
	}

	return nil
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the table built from DefaultDefinitions.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := NewTable(DefaultDefinitions())
		if err != nil {
			panic("domain: invalid default unit catalogue: " + err.Error())
		}

		defaultTable = t
	})

	return defaultTable
}

// ParseUnit resolves a symbol, an alias, or a "system/symbol" tag.
func (t *Table) ParseUnit(tag string) (Unit, error) {
	trimmed := strings.TrimSpace(tag)

	if u, ok := t.bySymbol[trimmed]; ok {
		return u, nil
	}

	if symbol, ok := t.byAlias[strings.ToLower(trimmed)]; ok {
		return t.bySymbol[symbol], nil
	}

	if prefix, rest, ok := strings.Cut(trimmed, "/"); ok {
		if system, err := ParseSystem(prefix); err == nil {
			if u, err := t.ParseUnit(rest); err == nil && u.System == system {
				return u, nil
			}
		}
	}

	return Unit{}, NewUnknownUnitError(tag)
}

// Lookup returns the catalogued unit for an exact symbol.
func (t *Table) Lookup(symbol string) (Unit, bool) {
	u, ok := t.bySymbol[symbol]

	return u, ok
}

// Units returns the units of a category in catalogue order.
func (t *Table) Units(category Category) []Unit {
	units := t.byCategory[category]
	out := make([]Unit, len(units))
	copy(out, units)

	return out
}

// Canonical returns the canonical unit of system for category.
func (t *Table) Canonical(category Category, system System) (Unit, bool) {
	u, ok := t.canonical[category][system]

	return u, ok
}

// CatalogueEntry groups the units of one category.
type CatalogueEntry struct {
	Category Category
	Units    []Unit
}

// Catalogue returns every category with its units, in display order.
func (t *Table) Catalogue() []CatalogueEntry {
	out := make([]CatalogueEntry, 0, len(categories))

	for _, c := range categories {
		units := t.Units(c)
		if len(units) == 0 {
			continue
		}

		out = append(out, CatalogueEntry{Category: c, Units: units})
	}

	return out
}

func (t *Table) known(u Unit) bool {
	if !u.Recognized() {
		return false
	}

	catalogued, ok := t.bySymbol[u.Symbol]

	return ok && catalogued.Category == u.Category
}

// Convert expresses q in the canonical unit of target for q's category.
// It never fails: unconvertible quantities come back unchanged with a status saying why.
func (t *Table) Convert(q Quantity, target System) (Quantity, Status) {
	if !t.known(q.unit) {
		return q, StatusUnrecognizedUnit
	}

	dst, ok := t.Canonical(q.unit.Category, target)
	if !ok {
		return q, StatusNoConversionPath
	}

	return t.ConvertTo(q, dst)
}

// ConvertTo expresses q in a specific unit of the same category.
func (t *Table) ConvertTo(q Quantity, target Unit) (Quantity, Status) {
	if !t.known(q.unit) {
		return q, StatusUnrecognizedUnit
	}

	if !t.known(target) || target.Category != q.unit.Category {
		return q, StatusNoConversionPath
	}

	if target.Symbol == q.unit.Symbol {
		return q, StatusIdentity
	}

	v := q.value * t.factors[pairKey{q.unit.Category, q.unit.Symbol, target.Symbol}]
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return q, StatusOverflow
	}

	if v == 0 && q.value != 0 {
		return q, StatusUnderflow
	}

	return Quantity{name: q.name, value: v, unit: t.bySymbol[target.Symbol]}, StatusConverted
}

// Multiplier returns the factor taking a value in from to a value in to.
func (t *Table) Multiplier(from, to Unit) (float64, bool) {
	if !t.known(from) || !t.known(to) || from.Category != to.Category {
		return 0, false
	}

	if from.Symbol == to.Symbol {
		return 1, true
	}

	m, ok := t.factors[pairKey{from.Category, from.Symbol, to.Symbol}]

	return m, ok
}

// Verify checks round-trip and transitivity over every catalogued pair and triple,
// using a relative tolerance.
func (t *Table) Verify(tolerance float64) error {
	var errs []error

	for _, category := range categories {
		units := t.byCategory[category]

		for _, a := range units {
			for _, b := range units {
				ab, _ := t.Multiplier(a, b)
				ba, _ := t.Multiplier(b, a)

				if !withinRelative(ab*ba, 1, tolerance) {
					errs = append(errs, fmt.Errorf("%w: %s round trip %s -> %s -> %s gives %g",
						ErrInconsistentTable, category, a.Symbol, b.Symbol, a.Symbol, ab*ba))
				}

				for _, c := range units {
					bc, _ := t.Multiplier(b, c)
					ac, _ := t.Multiplier(a, c)

					if !withinRelative(ab*bc, ac, tolerance) {
						errs = append(errs, fmt.Errorf("%w: %s path %s -> %s -> %s gives %g, direct %g",
							ErrInconsistentTable, category, a.Symbol, b.Symbol, c.Symbol, ab*bc, ac))
					}
				}
			}
		}
	}

	return errors.Join(errs...)
}

func withinRelative(got, want, tolerance float64) bool {
	if got == want {
		return true
	}

	scale := math.Max(math.Abs(got), math.Abs(want))

	return math.Abs(got-want) <= tolerance*scale
}

// Convert converts q to target using the default table.
func Convert(q Quantity, target System) (Quantity, Status) {
	return DefaultTable().Convert(q, target)
}
