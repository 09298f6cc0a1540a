package dto

import (
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// FieldRequest is one form field: a value and the system picked for it, or an
// explicit unit tag. With neither, the value is read as metric.
type FieldRequest struct {
	Value  *float64 `json:"value"  validate:"required,finite"`
	System string   `json:"system" validate:"unit_system"`
	Unit   string   `json:"unit"   validate:"max=32"`
}

func (f FieldRequest) toPort() ports.FieldInput {
	var value float64
	if f.Value != nil {
		value = *f.Value
	}

	return ports.FieldInput{Value: value, System: domain.System(f.System), Unit: f.Unit}
}

// SizingRequest is the body of POST /sizing.
type SizingRequest struct {
	FlowRate      FieldRequest `json:"flow_rate"`
	Velocity      FieldRequest `json:"velocity"`
	Roughness     FieldRequest `json:"roughness"`
	Length        FieldRequest `json:"length"`
	Viscosity     float64      `json:"viscosity"      validate:"gt=0,finite"` // Pa·s
	Density       float64      `json:"density"        validate:"gt=0,finite"` // kg/m³
	DisplaySystem string       `json:"display_system" validate:"unit_system"`
}

// Validate rejects fields whose explicit unit contradicts their system.
func (r *SizingRequest) Validate() error {
	var errs FieldErrors

	fields := []struct {
		path  string
		field FieldRequest
	}{
		{"flow_rate", r.FlowRate},
		{"velocity", r.Velocity},
		{"roughness", r.Roughness},
		{"length", r.Length},
	}

	for _, f := range fields {
		if msg := unitSystemConflict(f.field.Unit, f.field.System); msg != "" {
			errs = errs.Add(f.path+".system", msg)
		}
	}

	return errs.OrNil()
}

// ToPort converts the request. An empty display system falls back to defaultDisplay.
func (r *SizingRequest) ToPort(defaultDisplay domain.System) ports.SizingRequest {
	display := domain.System(r.DisplaySystem)
	if display == "" {
		display = defaultDisplay
	}

	return ports.SizingRequest{
		FlowRate:      r.FlowRate.toPort(),
		Velocity:      r.Velocity.toPort(),
		Roughness:     r.Roughness.toPort(),
		Length:        r.Length.toPort(),
		Viscosity:     r.Viscosity,
		Density:       r.Density,
		DisplaySystem: display,
	}
}

// SizingResponse is the response of POST /sizing.
type SizingResponse struct {
	Diameter       QuantityResponse   `json:"diameter"`
	DiameterStatus string             `json:"diameter_status"`
	DiameterMetric QuantityResponse   `json:"diameter_metric"`
	Area           float64            `json:"area_m2"`
	Reynolds       float64            `json:"reynolds"`
	Regime         string             `json:"regime"`
	FrictionFactor float64            `json:"friction_factor"`
	PressureDrop   float64            `json:"pressure_drop_pa"`
	Inputs         []QuantityResponse `json:"inputs"`
}

// FromSizing converts a sizing response.
func FromSizing(r ports.SizingResponse) SizingResponse {
	inputs := make([]QuantityResponse, len(r.Inputs))
	for i, q := range r.Inputs {
		inputs[i] = FromQuantity(q)
	}

	return SizingResponse{
		Diameter:       FromQuantity(r.Diameter),
		DiameterStatus: r.DiameterState.String(),
		DiameterMetric: FromQuantity(r.Result.Diameter),
		Area:           r.Result.Area,
		Reynolds:       r.Result.Reynolds,
		Regime:         string(r.Result.Regime),
		FrictionFactor: r.Result.FrictionFactor,
		PressureDrop:   r.Result.PressureDrop,
		Inputs:         inputs,
	}
}
