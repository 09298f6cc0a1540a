package domain

import (
	"math"
)

// FlowRegime classifies flow by Reynolds number.
type FlowRegime string

// Flow regimes.
const (
	RegimeLaminar      FlowRegime = "laminar"
	RegimeTransitional FlowRegime = "transitional"
	RegimeTurbulent    FlowRegime = "turbulent"
)

// RegimeLimits holds the Reynolds numbers separating the flow regimes.
type RegimeLimits struct {
	Laminar   float64
	Turbulent float64
}

// DefaultRegimeLimits are the usual pipe flow thresholds.
var DefaultRegimeLimits = RegimeLimits{Laminar: 2300, Turbulent: 4000}

// SizingInput carries metric canonical quantities plus SI fluid properties.
type SizingInput struct {
	FlowRate  Quantity // m³/s
	Velocity  Quantity // m/s
	Roughness Quantity // m
	Length    Quantity // m
	Viscosity float64  // dynamic, Pa·s
	Density   float64  // kg/m³
	Limits    RegimeLimits
}

// SizingResult is the outcome of sizing a pipe.
type SizingResult struct {
	Diameter       Quantity // m
	Area           float64  // m²
	Reynolds       float64
	Regime         FlowRegime
	FrictionFactor float64
	PressureDrop   float64 // Pa
}

// Diameter returns the internal diameter carrying flow at velocity (continuity).
func Diameter(flow, velocity float64) float64 {
	return math.Sqrt(4 * flow / (math.Pi * velocity))
}

// Reynolds returns the Reynolds number for a pipe of the given diameter.
func Reynolds(density, velocity, diameter, viscosity float64) float64 {
	return density * velocity * diameter / viscosity
}

// Classify returns the regime for re.
func (l RegimeLimits) Classify(re float64) FlowRegime {
	switch {
	case re < l.Laminar:
		return RegimeLaminar
	case re < l.Turbulent:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// FrictionFactor returns the Darcy friction factor. Laminar flow uses 64/Re, other
// regimes use the Swamee-Jain approximation of Colebrook.
func FrictionFactor(re, roughness, diameter float64, limits RegimeLimits) float64 {
	if limits.Classify(re) == RegimeLaminar {
		return 64 / re
	}

	l := math.Log10(roughness/(3.7*diameter) + 5.74/math.Pow(re, 0.9))

	return 0.25 / (l * l)
}

// PressureDrop returns the Darcy-Weisbach pressure loss in Pa.
func PressureDrop(friction, length, diameter, density, velocity float64) float64 {
	return friction * (length / diameter) * density * velocity * velocity / 2
}

// Size computes the diameter needed for the input flow and the resulting losses.
func Size(in SizingInput) (SizingResult, error) {
	if err := validateSizing(in); err != nil {
		return SizingResult{}, err
	}

	limits := in.Limits
	if limits == (RegimeLimits{}) {
		limits = DefaultRegimeLimits
	}

	q, v := in.FlowRate.Value(), in.Velocity.Value()

	d := Diameter(q, v)
	re := Reynolds(in.Density, v, d, in.Viscosity)
	f := FrictionFactor(re, in.Roughness.Value(), d, limits)

	metre, _ := DefaultTable().Canonical(CategoryLength, SystemMetric)

	diameter, err := NewQuantityOf("Diameter", d, metre)
	if err != nil {
		return SizingResult{}, err
	}

	return SizingResult{
		Diameter:       diameter,
		Area:           math.Pi * d * d / 4,
		Reynolds:       re,
		Regime:         limits.Classify(re),
		FrictionFactor: f,
		PressureDrop:   PressureDrop(f, in.Length.Value(), d, in.Density, v),
	}, nil
}

func validateSizing(in SizingInput) error {
	checks := []struct {
		field    string
		q        Quantity
		category Category
		positive bool
	}{
		{"flow_rate", in.FlowRate, CategoryFlow, true},
		{"velocity", in.Velocity, CategoryVelocity, true},
		{"roughness", in.Roughness, CategoryLength, false},
		{"length", in.Length, CategoryLength, false},
	}

	for _, c := range checks {
		want, _ := DefaultTable().Canonical(c.category, SystemMetric)
		if c.q.Unit() != want {
			return NewValidationErrorWithValue(c.field, "must be expressed in "+want.Symbol, c.q.Unit().Symbol)
		}

		if c.positive && c.q.Value() <= 0 {
			return NewValidationErrorWithValue(c.field, "must be greater than zero", c.q.Value())
		}

		if !c.positive && c.q.Value() < 0 {
			return NewValidationErrorWithValue(c.field, "must not be negative", c.q.Value())
		}
	}

	if !(in.Viscosity > 0) || math.IsInf(in.Viscosity, 0) {
		return NewValidationErrorWithValue("viscosity", "must be a positive finite number", in.Viscosity)
	}

	if !(in.Density > 0) || math.IsInf(in.Density, 0) {
		return NewValidationErrorWithValue("density", "must be a positive finite number", in.Density)
	}

	if in.Limits != (RegimeLimits{}) && !(in.Limits.Laminar > 0 && in.Limits.Turbulent >= in.Limits.Laminar) {
		return NewValidationErrorWithValue("limits", "laminar limit must be positive and not above turbulent", in.Limits)
	}

	return nil
}
