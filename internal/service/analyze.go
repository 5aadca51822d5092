package service

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fakenews-api/internal/ml"
	"fakenews-api/internal/models"
	"fakenews-api/internal/repository"
)

var ( // Define custom errors
	ErrServiceUnavailable = errors.New("analysis service is unavailable")
	ErrNotFound           = errors.New("analysis not found")
	ErrInvalidID          = errors.New("invalid analysis identifier")
	ErrPrediction         = errors.New("analysis failed")
)

// Predictor is the part of the model handle the orchestrator needs.
type Predictor interface {
	Ready() bool
	Predict(text string) (*ml.Prediction, error)
}

// AnalyzeResult is the shaped outcome of one successful analysis.
// Floats are already rounded for the response contract.
type AnalyzeResult struct {
	AnalysisID          string    `json:"analysis_id"`
	Prediction          string    `json:"prediction"`
	Confidence          float64   `json:"confidence"`
	ProbabilityReal     float64   `json:"probability_real"`
	ProbabilityFake     float64   `json:"probability_fake"`
	TextLength          int       `json:"text_length"`
	ProcessedTextLength int       `json:"processed_text_length"`
	Timestamp           time.Time `json:"timestamp"`
}

type AnalysisService interface {
	Analyze(text, ipAddress string) (*AnalyzeResult, error)
	GetAnalysis(id string) (*models.NewsAnalysis, error)
}

type analysisService struct {
	repo          repository.AnalysisRepository
	model         Predictor
	maxTextLength int
	logger        *zap.Logger
}

func NewAnalysisService(repo repository.AnalysisRepository, model Predictor, maxTextLength int, logger *zap.Logger) AnalysisService {
	return &analysisService{
		repo:          repo,
		model:         model,
		maxTextLength: maxTextLength,
		logger:        logger,
	}
}

// Analyze runs the full prediction pipeline for one request: validate,
// predict, persist, shape. Errors keep their taxonomy so the handler
// can map each one to the right status code.
func (s *analysisService) Analyze(text, ipAddress string) (*AnalyzeResult, error) {
	if verr := ml.ValidateText(text, s.maxTextLength); verr != nil {
		return nil, verr
	}

	prediction, err := s.model.Predict(text)
	if err != nil {
		var verr *ml.ValidationError
		switch {
		case errors.As(err, &verr):
			return nil, verr
		case errors.Is(err, ml.ErrModelUnavailable):
			return nil, ErrServiceUnavailable
		default:
			// Internal detail stays in the logs; callers only see a
			// generic prediction failure.
			s.logger.Error("Prediction failed", zap.Error(err))
			return nil, ErrPrediction
		}
	}

	analysis := &models.NewsAnalysis{
		Text:            text,
		Prediction:      prediction.Label,
		Confidence:      prediction.Confidence,
		ProbabilityReal: prediction.ProbabilityReal,
		ProbabilityFake: prediction.ProbabilityFake,
	}
	if ipAddress != "" {
		analysis.IPAddress = &ipAddress
	}

	if err := s.repo.Save(analysis); err != nil {
		s.logger.Error("Failed to save analysis", zap.Error(err))
		return nil, ErrPrediction
	}

	s.logger.Info("Analysis recorded",
		zap.String("analysis_id", analysis.ID.String()),
		zap.String("prediction", prediction.Label))

	return &AnalyzeResult{
		AnalysisID:          analysis.ID.String(),
		Prediction:          prediction.Label,
		Confidence:          round3(prediction.Confidence),
		ProbabilityReal:     round3(prediction.ProbabilityReal),
		ProbabilityFake:     round3(prediction.ProbabilityFake),
		TextLength:          prediction.TextLength,
		ProcessedTextLength: prediction.ProcessedTextLength,
		Timestamp:           prediction.Timestamp,
	}, nil
}

// GetAnalysis looks up a stored analysis by identifier. A malformed
// identifier and a never-issued identifier are distinct failures.
func (s *analysisService) GetAnalysis(id string) (*models.NewsAnalysis, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	analysis, err := s.repo.GetByID(parsed)
	if err != nil {
		s.logger.Error("Failed to load analysis", zap.String("analysis_id", id), zap.Error(err))
		return nil, err
	}
	if analysis == nil {
		return nil, ErrNotFound
	}
	return analysis, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
