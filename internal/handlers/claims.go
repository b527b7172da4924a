package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pcsready/claim-engine/internal/audit"
	"github.com/pcsready/claim-engine/internal/claims"
	"github.com/pcsready/claim-engine/internal/metrics"
)

// ClaimHandler handles claim-validation HTTP requests.
type ClaimHandler struct {
	engine    *claims.Engine
	trail     *audit.Trail
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewClaimHandler creates a new claim handler.
func NewClaimHandler(engine *claims.Engine, trail *audit.Trail, collector *metrics.Collector, logger *zap.Logger) *ClaimHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClaimHandler{
		engine:    engine,
		trail:     trail,
		collector: collector,
		logger:    logger,
	}
}

// ValidationResult is the response envelope for a full validation.
type ValidationResult struct {
	ID          string                      `json:"id"`
	ClaimName   string                      `json:"claim_name"`
	Flags       []claims.ValidationFlag     `json:"flags"`
	Assessment  claims.ConfidenceAssessment `json:"assessment"`
	EvaluatedAt time.Time                   `json:"evaluated_at"`
	Duration    time.Duration               `json:"duration"`
}

// RegisterRoutes registers all validation routes.
func (h *ClaimHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	api.POST("/claims/validate", h.ValidateClaim)
	api.POST("/claims/validate/field", h.ValidateFieldLevel)
	api.POST("/claims/validate/cross-field", h.ValidateCrossField)
	api.POST("/claims/validate/jtr", h.ValidateJTRCompliance)
	api.POST("/claims/score", h.ScoreFlags)

	api.GET("/audit/events", h.GetAuditEvents)
	api.GET("/audit/statistics", h.GetAuditStatistics)

	api.GET("/health", h.HealthCheck)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		h.collector.Registry(),
		promhttp.HandlerOpts{},
	)))
}

// ValidateClaim runs the full pipeline and returns flags plus the
// confidence assessment.
func (h *ClaimHandler) ValidateClaim(c *gin.Context) {
	var record claims.ClaimRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("Rejected malformed claim payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started := time.Now()
	flags := h.engine.ValidateClaim(record)
	assessment := h.engine.CalculateConfidenceScore(flags)
	elapsed := time.Since(started)

	h.collector.ObserveValidation("full", flags, elapsed)
	h.collector.ObserveAssessment(assessment)
	h.trail.Record("full", record.ClaimName, flags, &assessment)

	c.JSON(http.StatusOK, ValidationResult{
		ID:          uuid.New().String(),
		ClaimName:   record.ClaimName,
		Flags:       flags,
		Assessment:  assessment,
		EvaluatedAt: started,
		Duration:    elapsed,
	})
}

func (h *ClaimHandler) ValidateFieldLevel(c *gin.Context) {
	h.validateLayer(c, "field", h.engine.ValidateFieldLevel)
}

func (h *ClaimHandler) ValidateCrossField(c *gin.Context) {
	h.validateLayer(c, "cross_field", h.engine.ValidateCrossField)
}

func (h *ClaimHandler) ValidateJTRCompliance(c *gin.Context) {
	h.validateLayer(c, "jtr", h.engine.ValidateJTRCompliance)
}

func (h *ClaimHandler) validateLayer(c *gin.Context, layer string, validate func(claims.ClaimRecord) []claims.ValidationFlag) {
	var record claims.ClaimRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("Rejected malformed claim payload",
			zap.String("layer", layer), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started := time.Now()
	flags := validate(record)
	elapsed := time.Since(started)

	h.collector.ObserveValidation(layer, flags, elapsed)
	h.trail.Record(layer, record.ClaimName, flags, nil)

	c.JSON(http.StatusOK, gin.H{
		"flags": flags,
		"total": len(flags),
	})
}

// ScoreFlags converts a caller-supplied flag list into an assessment.
func (h *ClaimHandler) ScoreFlags(c *gin.Context) {
	var request struct {
		Flags []claims.ValidationFlag `json:"flags"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.engine.CalculateConfidenceScore(request.Flags))
}

func (h *ClaimHandler) GetAuditEvents(c *gin.Context) {
	filters := audit.Filters{
		Layer: c.Query("layer"),
	}
	if limit := c.Query("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filters.Limit = l
	}

	events := h.trail.Events(filters)
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

func (h *ClaimHandler) GetAuditStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.trail.Statistics())
}

// HealthCheck reports service liveness.
func (h *ClaimHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
