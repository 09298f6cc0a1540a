package dto

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

// Validation errors.
var (
	// ErrValidation indicates a validation failure occurred.
	ErrValidation = errors.New("validation failed")

	// ErrBinding indicates JSON or query binding failed.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance with the unit rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("finite", validateFinite)
		_ = validate.RegisterValidation("unit_system", validateUnitSystem)
		_ = validate.RegisterValidation("unit_category", validateUnitCategory)
		_ = validate.RegisterValidation("notempty", validateNotEmpty)
	})

	return validate
}

// Validate validates a struct using the validator instance.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate binds the JSON body to v and validates it, including any
// cross-field rules v implements through Validatable.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return ValidateAll(v)
}

// ValidationErrors extracts field-level error messages from a validator error,
// keyed by the field's JSON path (e.g. "items[2].value").
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldPath(fieldErr)] = validationMessage(fieldErr)
		}
	}

	var crossField FieldErrors
	if errors.As(err, &crossField) {
		maps.Copy(fieldErrors, crossField)
	}

	return fieldErrors
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return fe.Field()
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

// validationMessages maps validation tags to message templates.
// Use {param} as placeholder for the validation parameter.
var validationMessages = map[string]string{
	"required":         "this field is required",
	"required_without": "required unless {param} is given",
	"required_with":    "required when {param} is given",
	"excluded_with":    "must not be combined with {param}",
	"notempty":         "must not be empty",
	"finite":           "must be a finite number",
	"unit_system":      "must be one of: metric imperial liters standard",
	"unit_category":    "must be one of: length volume flow velocity",
	"gte":              "must be greater than or equal to {param}",
	"lte":              "must be less than or equal to {param}",
	"gt":               "must be greater than {param}",
	"lt":               "must be less than {param}",
	"oneof":            "must be one of: {param}",
}

func validationMessage(fe validator.FieldError) string {
	tag := fe.Tag()
	param := toJSONName(fe.Param())

	if tag == "min" || tag == "max" {
		return minMaxMessage(tag, param, fe.Kind())
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", param)
	}

	return "failed validation: " + tag
}

// toJSONName turns a Go field name parameter such as "Category" into "category".
func toJSONName(param string) string {
	if param == "" || strings.ContainsAny(param, " .") {
		return param
	}

	return strings.ToLower(param[:1]) + param[1:]
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	suffix := ""

	switch kind { //nolint:exhaustive // only collections need a unit
	case reflect.String:
		suffix = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		suffix = " items"
	}

	if tag == "min" {
		return "must be at least " + param + suffix
	}

	return "must be at most " + param + suffix
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()

	switch f.Kind() { //nolint:exhaustive // only floats can be non-finite
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// validateUnitSystem accepts an empty string; use required to demand one.
func validateUnitSystem(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	_, err := domain.ParseSystem(value)

	return err == nil
}

func validateUnitCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	_, err := domain.ParseCategory(value)

	return err == nil
}

func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FieldErrors reports cross-field failures keyed by JSON path, the same way
// ValidationErrors reports tag failures.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, path := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, path+": "+e[path])
	}

	return strings.Join(parts, "; ")
}

// Add records msg for path and returns e, allocating it on first use.
func (e FieldErrors) Add(path, msg string) FieldErrors {
	if e == nil {
		e = make(FieldErrors)
	}

	e[path] = msg

	return e
}

// OrNil returns e as an error, or nil when nothing was recorded.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// unitSystemConflict describes an explicit unit that belongs to a different
// system than the one sent with it. Unknown units and systems are left to the
// tag rules and the conversion engine.
func unitSystemConflict(unit, system string) string {
	if unit == "" || system == "" {
		return ""
	}

	s, err := domain.ParseSystem(system)
	if err != nil {
		return ""
	}

	u, err := domain.ParseUnit(unit)
	if err != nil || u.System == s {
		return ""
	}

	return fmt.Sprintf("conflicts with unit %s, which is %s", u.Symbol, u.System)
}

// Validatable is implemented by requests with rules beyond struct tags.
type Validatable interface {
	Validate() error
}

// ValidateAll validates struct tags and then calls Validate when v implements Validatable.
func ValidateAll(v any) error {
	if err := Validate(v); err != nil {
		return err
	}

	if validatable, ok := v.(Validatable); ok {
		if err := validatable.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}
