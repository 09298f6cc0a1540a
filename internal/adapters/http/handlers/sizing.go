package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// SizingHandler handles the pipe sizing endpoint.
type SizingHandler struct {
	sizer          ports.PipeSizer
	defaultDisplay domain.System
}

// NewSizingHandler creates a new sizing handler. An empty defaultDisplay means metric.
func NewSizingHandler(sizer ports.PipeSizer, defaultDisplay domain.System) *SizingHandler {
	if defaultDisplay == "" {
		defaultDisplay = domain.SystemMetric
	}

	return &SizingHandler{sizer: sizer, defaultDisplay: defaultDisplay}
}

// Size handles POST /api/v1/sizing.
//
// @Summary Size a pipe
// @Description Computes the diameter, Reynolds number, friction factor and pressure drop
// @Tags sizing
// @Accept json
// @Produce json
// @Param request body dto.SizingRequest true "Sizing form"
// @Success 200 {object} dto.SizingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/sizing [post]
func (h *SizingHandler) Size(c *gin.Context) {
	var req dto.SizingRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.sizer.Size(c.Request.Context(), req.ToPort(h.defaultDisplay))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSizing(resp))
}

// RegisterSizingRoutes registers the sizing route on the given router group.
func (h *SizingHandler) RegisterSizingRoutes(rg *gin.RouterGroup) {
	rg.POST("/sizing", h.Size)
}
