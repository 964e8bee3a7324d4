package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/calculation"
	"github.com/fipath/fi-calculator/internal/domain"
	"github.com/fipath/fi-calculator/internal/output"
)

// ProjectionHandler serves projection and sensitivity requests.
type ProjectionHandler struct {
	projector calculation.Projector
	metrics   *Metrics
	logger    *zap.Logger
}

// NewProjectionHandler creates a handler backed by projector.
func NewProjectionHandler(projector calculation.Projector, metrics *Metrics, logger *zap.Logger) *ProjectionHandler {
	return &ProjectionHandler{projector: projector, metrics: metrics, logger: logger}
}

// Project handles POST /api/v1/projections
func (h *ProjectionHandler) Project(c *gin.Context) {
	var in domain.ProjectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.metrics.ProjectionsTotal.WithLabelValues("invalid").Inc()
		writeError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}

	res, err := h.projector.Project(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.metrics.ProjectionsTotal.WithLabelValues("invalid").Inc()
			writeError(c, http.StatusBadRequest, CodeInvalidInput, err)
			return
		}
		h.metrics.ProjectionsTotal.WithLabelValues("error").Inc()
		h.logger.Error("projection failed", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
		writeError(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}

	h.metrics.ProjectionsTotal.WithLabelValues("ok").Inc()
	writeJSON(c, http.StatusOK, output.RoundedResult(res))
}

// Sensitivity handles POST /api/v1/sensitivity
func (h *ProjectionHandler) Sensitivity(c *gin.Context) {
	var req SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}

	analysis, err := calculation.RunSensitivity(c.Request.Context(), h.projector, req.Base, req.Parameter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(c, http.StatusBadRequest, CodeInvalidInput, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeError(c, http.StatusServiceUnavailable, CodeCancelled, err)
		default:
			h.logger.Error("sensitivity failed", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
			writeError(c, http.StatusInternalServerError, CodeInternal, err)
		}
		return
	}

	h.metrics.SensitivityPoints.Add(float64(len(analysis.Points)))
	writeJSON(c, http.StatusOK, output.RoundedSensitivity(analysis))
}

// Health handles GET /health
func Health(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}
}

func writeJSON(c *gin.Context, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func writeError(c *gin.Context, status int, code string, err error) {
	detail := ErrorDetail{Code: code, Message: err.Error()}
	var inputErr *domain.InputError
	if errors.As(err, &inputErr) {
		detail.Details = map[string]interface{}{"field": inputErr.Field}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: detail})
}
