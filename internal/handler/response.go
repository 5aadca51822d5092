package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakenews-api/internal/ml"
	"fakenews-api/internal/service"
)

// Machine-readable error codes of the API contract.
const (
	CodeInvalidText        = "INVALID_TEXT"
	CodeInvalidID          = "INVALID_ID"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodePredictionError    = "PREDICTION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Status: "error", Message: message, Code: code})
}

// respondServiceError is the single boundary where service-layer errors
// become HTTP responses. Validation messages pass through verbatim;
// everything unexpected collapses into a generic internal error.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *ml.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, CodeInvalidText, verr.Message)
	case errors.Is(err, service.ErrServiceUnavailable):
		respondError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"El servicio de análisis no está disponible temporalmente")
	case errors.Is(err, service.ErrPrediction):
		respondError(c, http.StatusInternalServerError, CodePredictionError,
			"Error interno en el análisis")
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Análisis no encontrado")
	case errors.Is(err, service.ErrInvalidID):
		respondError(c, http.StatusBadRequest, CodeInvalidID, "Identificador de análisis inválido")
	default:
		logger.Error("Unhandled service error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeInternalError, "Error interno del servidor")
	}
}
