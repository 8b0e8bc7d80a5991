package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/officegate/officegate/internal/api/middleware"
	"github.com/officegate/officegate/internal/logging"
	"github.com/officegate/officegate/internal/monitoring"
	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/service"
	"github.com/officegate/officegate/internal/types"
)

// Version is the reported service version.
const Version = "0.1.0"

// Handlers contains all HTTP handlers.
type Handlers struct {
	registry *service.Registry
	resolver *office.Resolver
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandlers creates a new handler set.
func NewHandlers(registry *service.Registry, resolver *office.Resolver, metrics *monitoring.Metrics, log *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		resolver: resolver,
		metrics:  metrics,
		log:      log,
	}
}

// Root reports basic service identity.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "officegate",
		"version": Version,
	})
}

// Health reports registry stats and document library health.
func (h *Handlers) Health(c *gin.Context) {
	status := "healthy"
	library := gin.H{"dir": h.resolver.Base(), "writable": true}
	if err := probeWritable(h.resolver.Base()); err != nil {
		status = "degraded"
		library["writable"] = false
		library["error"] = err.Error()
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   status,
		"registry": h.registry.Stats(),
		"library":  library,
	})
}

// ListServices lists registered services, optionally filtered by category.
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if s := c.Query("category"); s != "" {
		cat := types.Category(s)
		category = &cat
	}

	services := h.registry.List(category)

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free-form intent.
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Intent, limit)

	c.JSON(http.StatusOK, gin.H{
		"intent":   req.Intent,
		"services": services,
	})
}

// ExecuteService executes one tool and returns its result envelope.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceID, _, found := strings.Cut(req.ToolID, ".")
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id must be of the form <service>.<tool>"})
		return
	}

	requestID := middleware.GetRequestID(c)
	appCtx := &types.Context{UserID: req.UserID}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	log := h.log.WithTool(req.ToolID)
	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		log.Warn("tool dispatch failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		if kind, ok := result.Data["kind"].(string); ok {
			h.metrics.RecordToolError(serviceID, req.ToolID, kind)
		}
	}
	log.Info("tool executed",
		zap.String("request_id", requestID),
		zap.Bool("success", result.Success))

	c.JSON(http.StatusOK, result)
}

// probeWritable checks that the library directory accepts writes.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}
