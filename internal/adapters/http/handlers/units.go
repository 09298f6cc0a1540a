package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// UnitsHandler serves the unit catalogue.
type UnitsHandler struct {
	converter ports.UnitConverter
}

// NewUnitsHandler creates a new units handler.
func NewUnitsHandler(converter ports.UnitConverter) *UnitsHandler {
	return &UnitsHandler{converter: converter}
}

// ListUnits handles GET /api/v1/units.
// Returns every unit system and the units of every category.
//
// @Summary List units
// @Tags units
// @Produce json
// @Success 200 {object} dto.CatalogueResponse
// @Router /api/v1/units [get]
func (h *UnitsHandler) ListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromCatalogue(h.converter.Catalogue(c.Request.Context())))
}

// GetCategory handles GET /api/v1/units/:category.
//
// @Summary List the units of one category
// @Tags units
// @Produce json
// @Param category path string true "Category (length, volume, flow, velocity)"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/units/{category} [get]
func (h *UnitsHandler) GetCategory(c *gin.Context) {
	entry, err := h.converter.Units(c.Request.Context(), c.Param("category"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCatalogueEntry(entry))
}

// RegisterUnitRoutes registers the catalogue routes on the given router group.
func (h *UnitsHandler) RegisterUnitRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	units.GET("", h.ListUnits)
	units.GET("/:category", h.GetCategory)
}
