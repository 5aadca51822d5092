package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakenews-api/internal/service"
)

type AnalysisHandler interface {
	Analyze(c *gin.Context)
	GetByID(c *gin.Context)
}

type analysisHandler struct {
	service service.AnalysisService
	logger  *zap.Logger
}

func NewAnalysisHandler(service service.AnalysisService, logger *zap.Logger) AnalysisHandler {
	return &analysisHandler{service: service, logger: logger}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type probabilities struct {
	Real float64 `json:"real"`
	Fake float64 `json:"fake"`
}

type textInfo struct {
	Length          int `json:"length"`
	ProcessedLength int `json:"processed_length"`
}

type analyzeResponse struct {
	AnalysisID    string        `json:"analysis_id"`
	Prediction    string        `json:"prediction"`
	Confidence    float64       `json:"confidence"`
	Probabilities probabilities `json:"probabilities"`
	TextInfo      textInfo      `json:"text_info"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        string        `json:"status"`
}

type analysisResponse struct {
	AnalysisID    string        `json:"analysis_id"`
	Prediction    string        `json:"prediction"`
	Confidence    float64       `json:"confidence"`
	Probabilities probabilities `json:"probabilities"`
	CreatedAt     time.Time     `json:"created_at"`
	Status        string        `json:"status"`
}

// Analyze handles POST /api/analyze.
func (h *analysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidText, "Datos de entrada inválidos")
		return
	}

	result, err := h.service.Analyze(req.Text, c.ClientIP())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		AnalysisID: result.AnalysisID,
		Prediction: result.Prediction,
		Confidence: result.Confidence,
		Probabilities: probabilities{
			Real: result.ProbabilityReal,
			Fake: result.ProbabilityFake,
		},
		TextInfo: textInfo{
			Length:          result.TextLength,
			ProcessedLength: result.ProcessedTextLength,
		},
		Timestamp: result.Timestamp,
		Status:    "success",
	})
}

// GetByID handles GET /api/analysis/:id.
func (h *analysisHandler) GetByID(c *gin.Context) {
	analysis, err := h.service.GetAnalysis(c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, analysisResponse{
		AnalysisID: analysis.ID.String(),
		Prediction: analysis.Prediction,
		Confidence: analysis.Confidence,
		Probabilities: probabilities{
			Real: analysis.ProbabilityReal,
			Fake: analysis.ProbabilityFake,
		},
		CreatedAt: analysis.CreatedAt,
		Status:    "success",
	})
}
