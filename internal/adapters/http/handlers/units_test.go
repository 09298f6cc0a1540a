package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/mocks"
)

func unitsRouter(converter *mocks.MockUnitConverter) *gin.Engine {
	router := gin.New()
	NewUnitsHandler(converter).RegisterUnitRoutes(router.Group("/api/v1"))

	return router
}

func TestUnitsHandler_ListUnits(t *testing.T) {
	converter := mocks.NewMockUnitConverter(t)
	converter.EXPECT().Catalogue(mock.Anything).Return(domain.DefaultTable().Catalogue())

	w := perform(t, unitsRouter(converter), http.MethodGet, "/api/v1/units", nil)

	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CatalogueResponse](t, w)
	assert.Equal(t, []string{"metric", "imperial", "liters", "standard"}, resp.Systems)
	require.Len(t, resp.Categories, len(domain.Categories()))
	assert.Equal(t, "length", resp.Categories[0].Category)
	assert.Contains(t, resp.Categories[0].Units, dto.UnitResponse{
		Symbol:    "in",
		System:    "imperial",
		Qualified: "imperial/in",
		Canonical: true,
	})
}

func TestUnitsHandler_GetCategory(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		entry      domain.CatalogueEntry
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:     "flow",
			category: "flow",
			entry: domain.CatalogueEntry{
				Category: domain.CategoryFlow,
				Units:    domain.DefaultTable().Units(domain.CategoryFlow),
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown category",
			category:   "mass",
			err:        domain.NewNotFoundError("category", "mass"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := mocks.NewMockUnitConverter(t)
			converter.EXPECT().Units(mock.Anything, tt.category).Return(tt.entry, tt.err)

			w := perform(t, unitsRouter(converter), http.MethodGet, "/api/v1/units/"+tt.category, nil)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}

			resp := decode[dto.CategoryResponse](t, w)
			assert.Equal(t, tt.category, resp.Category)
			assert.Len(t, resp.Units, len(tt.entry.Units))
		})
	}
}
