// Package domain contains the quantity model, unit catalogue, conversion engine and
// pipe sizing formulas.
// Domain errors represent calculation failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates an input rule failed.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidValue indicates a quantity value that is not a finite number.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownUnit indicates a unit tag that is not in the catalogue.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnrecognizedConversionPair indicates that no conversion exists between a unit
	// and the requested target.
	ErrUnrecognizedConversionPair = errors.New("unrecognized conversion pair")

	// ErrInconsistentTable indicates a conversion table that breaks round-trip or
	// transitivity.
	ErrInconsistentTable = errors.New("inconsistent conversion table")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// InvalidValueError reports a non-finite quantity value.
type InvalidValueError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	v := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Field != "" {
		return fmt.Sprintf("invalid value for %s: %s is not a finite number", e.Field, v)
	}

	return fmt.Sprintf("invalid value: %s is not a finite number", v)
}

// Unwrap matches both ErrInvalidValue and ErrValidation.
func (e *InvalidValueError) Unwrap() []error {
	return []error{ErrInvalidValue, ErrValidation}
}

// NewInvalidValueError creates an invalid value error for the named field.
func NewInvalidValueError(field string, value float64) error {
	return &InvalidValueError{Field: field, Value: value}
}

// UnknownUnitError reports a unit tag missing from the catalogue.
type UnknownUnitError struct {
	Tag string
}

// Error implements the error interface.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Tag)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}

// NewUnknownUnitError creates an unknown unit error for tag.
func NewUnknownUnitError(tag string) error {
	return &UnknownUnitError{Tag: tag}
}

// UnrecognizedConversionPairError reports a source unit with no path to the target.
type UnrecognizedConversionPairError struct {
	Category Category
	From     string
	To       string
}

// Error implements the error interface.
func (e *UnrecognizedConversionPairError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("no %s conversion from %q to %q", e.Category, e.From, e.To)
	}

	return fmt.Sprintf("no conversion from %q to %q", e.From, e.To)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnrecognizedConversionPairError) Unwrap() error {
	return ErrUnrecognizedConversionPair
}

// NewUnrecognizedConversionPairError creates an unrecognized pair error.
func NewUnrecognizedConversionPairError(category Category, from, to string) error {
	return &UnrecognizedConversionPairError{Category: category, From: from, To: to}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
// Invalid values count as validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidValue checks if an error is an invalid value error.
func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsUnknownUnit checks if an error is an unknown unit error.
func IsUnknownUnit(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsUnrecognizedConversionPair checks if an error is an unrecognized pair error.
func IsUnrecognizedConversionPair(err error) bool {
	return errors.Is(err, ErrUnrecognizedConversionPair)
}
