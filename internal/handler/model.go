package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakenews-api/internal/config"
	"fakenews-api/internal/ml"
	"fakenews-api/internal/models"
	"fakenews-api/internal/repository"
)

const apiVersion = "1.0.0"

type ModelHandler interface {
	Info(c *gin.Context)
	Health(c *gin.Context)
}

// DBPinger is the slice of *sqlx.DB the health check needs.
type DBPinger interface {
	Ping() error
}

type modelHandler struct {
	model  *ml.Model
	repo   repository.ModelInfoRepository
	db     DBPinger
	cfg    *config.Config
	logger *zap.Logger
}

func NewModelHandler(model *ml.Model, repo repository.ModelInfoRepository, db DBPinger, cfg *config.Config, logger *zap.Logger) ModelHandler {
	return &modelHandler{model: model, repo: repo, db: db, cfg: cfg, logger: logger}
}

// Info handles GET /api/model/info. The loaded model's metadata seeds
// the registry record on first read; later reads return the stored row.
func (h *modelHandler) Info(c *gin.Context) {
	meta := h.model.Metadata()

	info, err := h.repo.GetOrCreate(&models.ModelInfo{
		ModelName:    meta.Name,
		Version:      apiVersion,
		Accuracy:     meta.Metrics.Accuracy,
		F1Score:      meta.Metrics.F1,
		TrainingDate: parseTrainingDate(meta.TrainingDate),
		IsActive:     h.model.Ready(),
	})
	if err != nil {
		h.logger.Error("Failed to get model info", zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeInternalError,
			"Error al obtener información del modelo")
		return
	}

	c.JSON(http.StatusOK, info)
}

type healthResponse struct {
	ml.HealthStatus
	DatabaseConnected bool   `json:"database_connected"`
	APIVersion        string `json:"api_version"`
	Environment       string `json:"environment"`
}

// Health handles GET /api/health.
func (h *modelHandler) Health(c *gin.Context) {
	health := h.model.Health()

	status := http.StatusOK
	if health.ServiceStatus != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, healthResponse{
		HealthStatus:      health,
		DatabaseConnected: h.db.Ping() == nil,
		APIVersion:        apiVersion,
		Environment:       h.cfg.Server.Environment,
	})
}

// The metadata file stores the training date as text; unparseable
// values fall back to the registration time.
func parseTrainingDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Now()
}
