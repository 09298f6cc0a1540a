package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// ConversionHandler handles the conversion endpoints.
type ConversionHandler struct {
	converter     ports.UnitConverter
	defaultTarget domain.System
	maxBatchSize  int
}

// ConversionHandlerConfig contains configuration for the conversion handler.
type ConversionHandlerConfig struct {
	Converter ports.UnitConverter

	// DefaultTarget is used when a request names no target system.
	DefaultTarget domain.System

	// MaxBatchSize caps the number of items in one batch. Zero means no cap.
	MaxBatchSize int
}

// NewConversionHandler creates a new conversion handler.
func NewConversionHandler(cfg ConversionHandlerConfig) *ConversionHandler {
	target := cfg.DefaultTarget
	if target == "" {
		target = domain.SystemMetric
	}

	return &ConversionHandler{
		converter:     cfg.Converter,
		defaultTarget: target,
		maxBatchSize:  cfg.MaxBatchSize,
	}
}

// Convert handles POST /api/v1/conversions.
// A quantity that cannot be converted is not an error: it is returned unchanged
// and the status says why.
//
// @Summary Convert one quantity
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body dto.ConversionRequest true "Quantity to convert"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/conversions [post]
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req dto.ConversionRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.converter.Convert(c.Request.Context(), req.ToPort(h.defaultTarget))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromConversion(result))
}

// ConvertBatch handles POST /api/v1/conversions/batch.
// Items are converted concurrently; results keep request order and a failing
// item does not fail the batch.
//
// @Summary Convert several quantities
// @Tags conversions
// @Accept json
// @Produce json
// @Param request body dto.BatchConversionRequest true "Quantities to convert"
// @Success 200 {object} dto.BatchConversionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Router /api/v1/conversions/batch [post]
func (h *ConversionHandler) ConvertBatch(c *gin.Context) {
	var req dto.BatchConversionRequest
	if !bind(c, &req) {
		return
	}

	// Reject oversized batches before any work is scheduled
	if h.maxBatchSize > 0 && len(req.Items) > h.maxBatchSize {
		dto.RespondWithErrorCode(c, dto.ErrorCodeTooLarge,
			"batch exceeds "+strconv.Itoa(h.maxBatchSize)+" items")

		return
	}

	reqs := make([]ports.ConversionRequest, len(req.Items))
	for i := range req.Items {
		reqs[i] = req.Items[i].ToPort(h.defaultTarget)
	}

	// Per-item failures come back in results; err is cancellation only
	results, err := h.converter.ConvertBatch(c.Request.Context(), reqs)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBatch(results))
}

// RegisterConversionRoutes registers the conversion routes on the given router group.
func (h *ConversionHandler) RegisterConversionRoutes(rg *gin.RouterGroup) {
	conversions := rg.Group("/conversions")
	conversions.POST("", h.Convert)
	conversions.POST("/batch", h.ConvertBatch)
}

// bind decodes and validates the body into v, writing a 400 on failure.
func bind(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	if err == nil {
		return true
	}

	if errors.Is(err, dto.ErrValidation) {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return false
	}

	// Body cut off by the BodyLimit middleware
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeTooLarge, "request body too large")
		return false
	}

	dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed request body")

	return false
}
