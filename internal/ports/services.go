// Package ports defines the interfaces between the application core and its adapters.
// Ports let the HTTP layer and bootstrap depend on abstractions rather than on
// concrete services, metrics backends or health probes.
//
// Port Design Principles:
//   - Context as first parameter for anything that may block or be traced
//   - Return domain types, never transport DTOs
//   - Errors are domain errors (ErrValidation, ErrUnknownUnit, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
)

// ConversionRequest describes one quantity to convert. Exactly one of Unit or
// (Category, System) identifies the source unit.
type ConversionRequest struct {
	Name     string
	Value    float64
	Unit     string
	Category domain.Category
	System   domain.System
	Target   domain.System
}

// ConversionResult is the engine's answer for one request.
// Err is set only for requests that could not be turned into a quantity.
type ConversionResult struct {
	Quantity domain.Quantity
	Status   domain.Status
	Err      error
}

// UnitConverter converts quantities between unit systems.
type UnitConverter interface {
	// Convert converts a single quantity. Unconvertible quantities are not errors:
	// they come back unchanged with the status explaining why.
	Convert(ctx context.Context, req ConversionRequest) (ConversionResult, error)

	// ConvertBatch converts requests concurrently, preserving order.
	ConvertBatch(ctx context.Context, reqs []ConversionRequest) ([]ConversionResult, error)

	// Catalogue lists the supported units grouped by category.
	Catalogue(ctx context.Context) []domain.CatalogueEntry

	// Units lists the units of one category.
	Units(ctx context.Context, category string) (domain.CatalogueEntry, error)
}

// FieldInput is a raw form field: a value and the system the user picked for it.
// Unit, when set, overrides System with an explicit unit tag.
type FieldInput struct {
	Value  float64
	System domain.System
	Unit   string
}

// SizingRequest is the raw input of the pipe sizing form.
type SizingRequest struct {
	FlowRate      FieldInput
	Velocity      FieldInput
	Roughness     FieldInput
	Length        FieldInput
	Viscosity     float64 // Pa·s
	Density       float64 // kg/m³
	DisplaySystem domain.System
}

// SizingResponse carries the sizing result with the diameter in the display system.
type SizingResponse struct {
	Result        domain.SizingResult
	Diameter      domain.Quantity
	DiameterState domain.Status
	Inputs        []domain.Quantity // normalised metric inputs
}

// PipeSizer computes pipe diameters from raw form input.
type PipeSizer interface {
	Size(ctx context.Context, req SizingRequest) (SizingResponse, error)
}
