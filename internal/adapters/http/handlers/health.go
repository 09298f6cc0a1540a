// Package handlers provides the HTTP request handlers of the pipe sizing service.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/pipe-sizing/internal/domain"
	"github.com/jsamuelsen/pipe-sizing/internal/ports"
)

// BuildInfo contains build-time information, injected with ldflags.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`

	// Units is the number of catalogued units the binary was built with.
	Units int `json:"units"`
}

// NewBuildInfo creates a BuildInfo with the Go version and catalogue size filled in.
func NewBuildInfo(service, version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Units:     len(domain.DefaultDefinitions()),
	}
}

// HealthHandler serves the operational endpoints under /-/.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithGatherer serves /-/metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) HealthOption {
	return func(h *HealthHandler) { h.gatherer = g }
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /-/live. It reports 200 while the process runs and
// checks nothing else.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles GET /-/ready: 200 when every registered check passes,
// including the conversion table self-check, 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// BuildInfoHandler handles GET /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler returns the Prometheus exposition handler for the handler's gatherer.
func (h *HealthHandler) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}

// RegisterHealthRoutes registers the operational routes on rg:
//   - GET live
//   - GET ready
//   - GET build
//   - GET metrics
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(h.MetricsHandler()))
}

// RegisterHealthRoutesOnEngine registers the operational routes under /-/.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
