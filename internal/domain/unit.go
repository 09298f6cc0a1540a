package domain

import (
	"strings"
)

// System is a family of units a user can pick for a field.
type System string

// Supported unit systems.
const (
	SystemMetric   System = "metric"
	SystemImperial System = "imperial"
	SystemLiters   System = "liters"
	SystemStandard System = "standard"
)

var systems = []System{SystemMetric, SystemImperial, SystemLiters, SystemStandard}

// Systems returns every supported system in display order.
func Systems() []System {
	out := make([]System, len(systems))
	copy(out, systems)

	return out
}

// Valid reports whether s is a supported system.
func (s System) Valid() bool {
	for _, known := range systems {
		if s == known {
			return true
		}
	}

	return false
}

// ParseSystem resolves a system name case-insensitively.
func ParseSystem(name string) (System, error) {
	s := System(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", NewUnknownUnitError(name)
	}

	return s, nil
}

// Category is a physical dimension. Units only convert within their category.
type Category string

// Supported categories.
const (
	CategoryLength   Category = "length"
	CategoryVolume   Category = "volume"
	CategoryFlow     Category = "flow"
	CategoryVelocity Category = "velocity"
)

var categories = []Category{CategoryLength, CategoryVolume, CategoryFlow, CategoryVelocity}

// Categories returns every supported category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)

	return out
}

// Valid reports whether c is a supported category.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", NewNotFoundError("category", name)
	}

	return c, nil
}

// Unit is a catalogued unit of measure. The zero factor marks a unit that was
// never resolved against a table; its Symbol then holds the raw tag.
type Unit struct {
	Symbol   string
	System   System
	Category Category

	factor    float64
	canonical bool
}

// Recognized reports whether the unit came from a conversion table.
func (u Unit) Recognized() bool {
	return u.factor > 0
}

// Canonical reports whether u is the canonical unit of its system for its category.
func (u Unit) Canonical() bool {
	return u.canonical
}

// Qualified returns the "system/symbol" spelling, or the raw tag when unrecognised.
func (u Unit) Qualified() string {
	if !u.Recognized() {
		return u.Symbol
	}

	return string(u.System) + "/" + u.Symbol
}

// String returns the unit symbol.
func (u Unit) String() string {
	return u.Symbol
}

func unrecognizedUnit(tag string) Unit {
	return Unit{Symbol: tag}
}

// UnitDefinition describes one catalogue entry.
type UnitDefinition struct {
	Symbol    string
	System    System
	Category  Category
	ToMetric  float64 // multiplier to the metric canonical unit of the category
	Canonical bool
	Aliases   []string
}

// Exact conversion constants.
const (
	metersPerInch       = 0.0254
	metersPerFoot       = 0.3048
	cubicMetersPerLiter = 0.001
	cubicMetersPerFoot3 = 0.028316846592
	cubicMetersPerCm3   = 1e-6
	cubicMetersPerInch3 = metersPerInch * metersPerInch * metersPerInch
	secondsPerMinute    = 60
)

// DefaultDefinitions returns the built-in catalogue.
func DefaultDefinitions() []UnitDefinition {
	return []UnitDefinition{
		{Symbol: "m", System: SystemMetric, Category: CategoryLength, ToMetric: 1, Canonical: true},
		{Symbol: "cm", System: SystemMetric, Category: CategoryLength, ToMetric: 0.01},
		{Symbol: "mm", System: SystemMetric, Category: CategoryLength, ToMetric: 0.001},
		{Symbol: "in", System: SystemImperial, Category: CategoryLength, ToMetric: metersPerInch, Canonical: true},
		{Symbol: "ft", System: SystemImperial, Category: CategoryLength, ToMetric: metersPerFoot},

		{Symbol: "m³", System: SystemMetric, Category: CategoryVolume, ToMetric: 1, Canonical: true, Aliases: []string{"m3"}},
		{Symbol: "cm³", System: SystemMetric, Category: CategoryVolume, ToMetric: cubicMetersPerCm3, Aliases: []string{"cm3", "cc"}},
		{Symbol: "ft³", System: SystemImperial, Category: CategoryVolume, ToMetric: cubicMetersPerFoot3, Canonical: true, Aliases: []string{"ft3", "cu ft"}},
		{Symbol: "in³", System: SystemImperial, Category: CategoryVolume, ToMetric: cubicMetersPerInch3, Aliases: []string{"in3"}},
		{Symbol: "L", System: SystemLiters, Category: CategoryVolume, ToMetric: cubicMetersPerLiter, Canonical: true, Aliases: []string{"liter", "litre"}},

		{Symbol: "m³/s", System: SystemMetric, Category: CategoryFlow, ToMetric: 1, Canonical: true, Aliases: []string{"m3/s"}},
		{Symbol: "ft³/min", System: SystemImperial, Category: CategoryFlow, ToMetric: cubicMetersPerFoot3 / secondsPerMinute, Canonical: true, Aliases: []string{"ft3/min", "cfm"}},
		{Symbol: "ft³/s", System: SystemImperial, Category: CategoryFlow, ToMetric: cubicMetersPerFoot3, Aliases: []string{"ft3/s", "cfs"}},
		{Symbol: "L/min", System: SystemLiters, Category: CategoryFlow, ToMetric: cubicMetersPerLiter / secondsPerMinute, Canonical: true, Aliases: []string{"lpm"}},
		{Symbol: "SCCM", System: SystemStandard, Category: CategoryFlow, ToMetric: cubicMetersPerCm3 / secondsPerMinute, Canonical: true},

		{Symbol: "m/s", System: SystemMetric, Category: CategoryVelocity, ToMetric: 1, Canonical: true},
		{Symbol: "ft/s", System: SystemImperial, Category: CategoryVelocity, ToMetric: metersPerFoot, Canonical: true, Aliases: []string{"fps"}},
	}
}

// ParseUnit resolves a tag against the default table.
func ParseUnit(tag string) (Unit, error) {
	return DefaultTable().ParseUnit(tag)
}
