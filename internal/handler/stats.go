package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakenews-api/internal/service"
)

type StatsHandler interface {
	GetStats(c *gin.Context)
}

type statsHandler struct {
	service service.StatsService
	logger  *zap.Logger
}

func NewStatsHandler(service service.StatsService, logger *zap.Logger) StatsHandler {
	return &statsHandler{service: service, logger: logger}
}

// GetStats handles GET /api/stats.
func (h *statsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Compute()
	if err != nil {
		h.logger.Error("Failed to compute API stats", zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeInternalError,
			"Error al obtener estadísticas")
		return
	}

	c.JSON(http.StatusOK, stats)
}
