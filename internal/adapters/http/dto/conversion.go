package dto

import (
	"fmt"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// QuantityResponse is a quantity on the wire.
type QuantityResponse struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	System   string  `json:"system,omitempty"`
	Category string  `json:"category,omitempty"`
}

// FromQuantity converts a domain quantity. System and category are empty for
// unrecognised units.
func FromQuantity(q domain.Quantity) QuantityResponse {
	return QuantityResponse{
		Name:     q.Name(),
		Value:    q.Value(),
		Unit:     q.Unit().Symbol,
		System:   string(q.System()),
		Category: string(q.Category()),
	}
}

// ConversionRequest is the body of POST /conversions and one item of a batch.
// The source unit is either an explicit unit tag or a category and system pair.
type ConversionRequest struct {
	Name         string   `json:"name"          validate:"max=64"`
	Value        *float64 `json:"value"         validate:"required,finite"`
	Unit         string   `json:"unit"          validate:"required_without=Category,excluded_with=Category,max=32"`
	Category     string   `json:"category"      validate:"required_without=Unit,unit_category"`
	System       string   `json:"system"        validate:"required_with=Category,unit_system"`
	TargetSystem string   `json:"target_system" validate:"unit_system"`
}

// Validate rejects a system that contradicts the explicit unit.
func (r *ConversionRequest) Validate() error {
	var errs FieldErrors

	if msg := unitSystemConflict(r.Unit, r.System); msg != "" {
		errs = errs.Add("system", msg)
	}

	return errs.OrNil()
}

// ToPort converts the request. An empty target falls back to defaultTarget.
func (r *ConversionRequest) ToPort(defaultTarget domain.System) ports.ConversionRequest {
	target := domain.System(r.TargetSystem)
	if target == "" {
		target = defaultTarget
	}

	var value float64
	if r.Value != nil {
		value = *r.Value
	}

	return ports.ConversionRequest{
		Name:     r.Name,
		Value:    value,
		Unit:     r.Unit,
		Category: domain.Category(r.Category),
		System:   domain.System(r.System),
		Target:   target,
	}
}

// ConversionResponse is the result of one conversion. An unconvertible quantity
// is returned unchanged with Applied false and Status naming the reason.
type ConversionResponse struct {
	Quantity    QuantityResponse `json:"quantity"`
	Status      string           `json:"status"`
	Applied     bool             `json:"applied"`
	Description string           `json:"description"`
}

// FromConversion converts a conversion result.
func FromConversion(r ports.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Quantity:    FromQuantity(r.Quantity),
		Status:      r.Status.String(),
		Applied:     r.Status.Applied(),
		Description: r.Quantity.Describe(),
	}
}

// BatchConversionRequest is the body of POST /conversions/batch.
type BatchConversionRequest struct {
	Items []ConversionRequest `json:"items" validate:"required,min=1,dive"`
}

// Validate applies the item rules, reporting paths as "items[i].field".
func (r *BatchConversionRequest) Validate() error {
	var errs FieldErrors

	for i := range r.Items {
		if msg := unitSystemConflict(r.Items[i].Unit, r.Items[i].System); msg != "" {
			errs = errs.Add(fmt.Sprintf("items[%d].system", i), msg)
		}
	}

	return errs.OrNil()
}

// BatchItemResponse is one batch result: either a conversion or an error.
type BatchItemResponse struct {
	*ConversionResponse

	Error *ErrorDetail `json:"error,omitempty"`
}

// BatchConversionResponse is the response of POST /conversions/batch.
// Results are in request order.
type BatchConversionResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Converted int                 `json:"converted"`
	Failed    int                 `json:"failed"`
}

// FromBatch converts batch results. Item errors are mapped like request errors.
func FromBatch(results []ports.ConversionResult) BatchConversionResponse {
	resp := BatchConversionResponse{Results: make([]BatchItemResponse, len(results))}

	for i, r := range results {
		if r.Err != nil {
			_, errResp := MapDomainError(r.Err)
			resp.Results[i] = BatchItemResponse{Error: &errResp.Error}
			resp.Failed++

			continue
		}

		conv := FromConversion(r)
		resp.Results[i] = BatchItemResponse{ConversionResponse: &conv}

		if conv.Applied {
			resp.Converted++
		}
	}

	return resp
}
