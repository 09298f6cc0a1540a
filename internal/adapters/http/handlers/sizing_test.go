package handlers

import (
	"math"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/mocks"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

func sizingRouter(sizer *mocks.MockPipeSizer, display domain.System) *gin.Engine {
	router := gin.New()
	NewSizingHandler(sizer, display).RegisterSizingRoutes(router.Group("/api/v1"))

	return router
}

func waterForm() map[string]any {
	return map[string]any{
		"flow_rate": map[string]any{"value": 0.01, "system": "metric"},
		"velocity":  map[string]any{"value": 2},
		"roughness": map[string]any{"value": 0.045, "unit": "mm"},
		"length":    map[string]any{"value": 100, "system": "metric"},
		"viscosity": 1e-3,
		"density":   1000,
	}
}

func TestSizingHandler_Size(t *testing.T) {
	sizer := mocks.NewMockPipeSizer(t)

	want := ports.SizingRequest{
		FlowRate:      ports.FieldInput{Value: 0.01, System: domain.SystemMetric},
		Velocity:      ports.FieldInput{Value: 2},
		Roughness:     ports.FieldInput{Value: 0.045, Unit: "mm"},
		Length:        ports.FieldInput{Value: 100, System: domain.SystemMetric},
		Viscosity:     1e-3,
		Density:       1000,
		DisplaySystem: domain.SystemImperial,
	}

	metricDiameter := quantity(t, "diameter", 0.0797884560802865, "m")

	sizer.EXPECT().Size(mock.Anything, want).Return(ports.SizingResponse{
		Result: domain.SizingResult{
			Diameter:       metricDiameter,
			Area:           0.005,
			Reynolds:       159576.9,
			Regime:         domain.RegimeTurbulent,
			FrictionFactor: 0.0187,
			PressureDrop:   46870,
		},
		Diameter:      quantity(t, "diameter", 3.141277798, "in"),
		DiameterState: domain.StatusConverted,
		Inputs:        []domain.Quantity{quantity(t, "flow_rate", 0.01, "m³/s")},
	}, nil)

	w := perform(t, sizingRouter(sizer, domain.SystemImperial), http.MethodPost, "/api/v1/sizing", waterForm())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[dto.SizingResponse](t, w)
	assert.Equal(t, "in", resp.Diameter.Unit)
	assert.Equal(t, "imperial", resp.Diameter.System)
	assert.Equal(t, "converted", resp.DiameterStatus)
	assert.Equal(t, "m", resp.DiameterMetric.Unit)
	assert.InDelta(t, 0.0797884560802865, resp.DiameterMetric.Value, 1e-12)
	assert.Equal(t, "turbulent", resp.Regime)
	assert.InDelta(t, 46870, resp.PressureDrop, 0)
	require.Len(t, resp.Inputs, 1)
	assert.Equal(t, "flow_rate", resp.Inputs[0].Name)
}

func TestSizingHandler_Size_DisplayFromRequest(t *testing.T) {
	sizer := mocks.NewMockPipeSizer(t)
	sizer.EXPECT().
		Size(mock.Anything, mock.MatchedBy(func(r ports.SizingRequest) bool {
			return r.DisplaySystem == domain.SystemLiters
		})).
		Return(ports.SizingResponse{
			Result:        domain.SizingResult{Diameter: quantity(t, "diameter", 0.08, "m")},
			Diameter:      quantity(t, "diameter", 0.08, "m"),
			DiameterState: domain.StatusNoConversionPath,
		}, nil)

	form := waterForm()
	form["display_system"] = "liters"

	w := perform(t, sizingRouter(sizer, ""), http.MethodPost, "/api/v1/sizing", form)

	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.SizingResponse](t, w)
	assert.Equal(t, "no_conversion_path", resp.DiameterStatus)
	assert.Equal(t, "m", resp.Diameter.Unit)
}

func TestSizingHandler_Size_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(form map[string]any)
		wantDetail string
	}{
		{
			name:       "missing flow rate",
			mutate:     func(form map[string]any) { delete(form, "flow_rate") },
			wantDetail: "flow_rate.value",
		},
		{
			name:       "zero viscosity",
			mutate:     func(form map[string]any) { form["viscosity"] = 0 },
			wantDetail: "viscosity",
		},
		{
			name:       "negative density",
			mutate:     func(form map[string]any) { form["density"] = -1 },
			wantDetail: "density",
		},
		{
			name:       "unknown field system",
			mutate:     func(form map[string]any) { form["length"] = map[string]any{"value": 1, "system": "cubits"} },
			wantDetail: "length.system",
		},
		{
			name: "roughness unit contradicts system",
			mutate: func(form map[string]any) {
				form["roughness"] = map[string]any{"value": 0.0018, "unit": "in", "system": "metric"}
			},
			wantDetail: "roughness.system",
		},
		{
			name:       "unknown display system",
			mutate:     func(form map[string]any) { form["display_system"] = "nautical" },
			wantDetail: "display_system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := waterForm()
			tt.mutate(form)

			w := perform(t, sizingRouter(mocks.NewMockPipeSizer(t), ""), http.MethodPost, "/api/v1/sizing", form)

			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, tt.wantDetail)
		})
	}
}

func TestSizingHandler_Size_ServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "velocity must be positive",
			err:        domain.NewValidationError("velocity", "must be greater than zero"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
			wantDetail: "velocity",
		},
		{
			name:       "pressure drop not finite",
			err:        domain.NewInvalidValueError("pressure_drop", math.Inf(1)),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
			wantDetail: "pressure_drop",
		},
		{
			name:       "unit tag not catalogued",
			err:        domain.NewUnknownUnitError("furlong"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   dto.ErrorCodeUnknownUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizer := mocks.NewMockPipeSizer(t)
			sizer.EXPECT().Size(mock.Anything, mock.Anything).Return(ports.SizingResponse{}, tt.err)

			w := perform(t, sizingRouter(sizer, ""), http.MethodPost, "/api/v1/sizing", waterForm())

			require.Equal(t, tt.wantStatus, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.wantDetail != "" {
				assert.Contains(t, resp.Error.Details, tt.wantDetail)
			}
		})
	}
}
