package service

import (
	"time"

	"go.uber.org/zap"

	"fakenews-api/internal/models"
	"fakenews-api/internal/repository"
)

// PredictionCounts breaks analyses down by predicted label.
type PredictionCounts struct {
	Fake int `json:"fake"`
	Real int `json:"real"`
}

// StatusCounts breaks API calls down by response status class.
type StatusCounts struct {
	Success     int `json:"success"`
	ClientError int `json:"client_error"`
	ServerError int `json:"server_error"`
}

// APIStats is the aggregate usage report, computed from the persisted
// state at call time.
type APIStats struct {
	TotalAnalyses       int              `json:"total_analyses"`
	TotalAPICalls       int              `json:"total_api_calls"`
	AnalysesToday       int              `json:"analyses_today"`
	AnalysesLastWeek    int              `json:"analyses_last_week"`
	PredictionsByResult PredictionCounts `json:"predictions_by_result"`
	FakeNewsPercentage  float64          `json:"fake_news_percentage"`
	AverageConfidence   float64          `json:"average_confidence"`
	APICallsByStatus    StatusCounts     `json:"api_calls_by_status"`
	ModelStatus         bool             `json:"model_status"`
	Timestamp           time.Time        `json:"timestamp"`
}

// Readiness is the part of the model handle the aggregator needs.
type Readiness interface {
	Ready() bool
}

type StatsService interface {
	Compute() (*APIStats, error)
}

type statsService struct {
	analysisRepo repository.AnalysisRepository
	usageRepo    repository.APIUsageRepository
	model        Readiness
	logger       *zap.Logger
}

func NewStatsService(analysisRepo repository.AnalysisRepository, usageRepo repository.APIUsageRepository, model Readiness, logger *zap.Logger) StatsService {
	return &statsService{
		analysisRepo: analysisRepo,
		usageRepo:    usageRepo,
		model:        model,
		logger:       logger,
	}
}

// Compute assembles the aggregate report. Nothing is cached; every call
// reads the store.
func (s *statsService) Compute() (*APIStats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	totalAnalyses, err := s.analysisRepo.Count()
	if err != nil {
		return nil, err
	}
	analysesToday, err := s.analysisRepo.CountSince(midnight)
	if err != nil {
		return nil, err
	}
	analysesLastWeek, err := s.analysisRepo.CountSince(weekAgo)
	if err != nil {
		return nil, err
	}
	fakeCount, err := s.analysisRepo.CountByPrediction(models.PredictionFake)
	if err != nil {
		return nil, err
	}
	realCount, err := s.analysisRepo.CountByPrediction(models.PredictionReal)
	if err != nil {
		return nil, err
	}
	averageConfidence, err := s.analysisRepo.AverageConfidence()
	if err != nil {
		return nil, err
	}

	totalCalls, err := s.usageRepo.Count()
	if err != nil {
		return nil, err
	}
	success, err := s.usageRepo.CountByStatusRange(200, 300)
	if err != nil {
		return nil, err
	}
	clientErrors, err := s.usageRepo.CountByStatusRange(400, 500)
	if err != nil {
		return nil, err
	}
	serverErrors, err := s.usageRepo.CountByStatusRange(500, 600)
	if err != nil {
		return nil, err
	}

	fakePercentage := 0.0
	if totalAnalyses > 0 {
		fakePercentage = float64(fakeCount) / float64(totalAnalyses) * 100
	}

	return &APIStats{
		TotalAnalyses:       totalAnalyses,
		TotalAPICalls:       totalCalls,
		AnalysesToday:       analysesToday,
		AnalysesLastWeek:    analysesLastWeek,
		PredictionsByResult: PredictionCounts{Fake: fakeCount, Real: realCount},
		FakeNewsPercentage:  fakePercentage,
		AverageConfidence:   averageConfidence,
		APICallsByStatus:    StatusCounts{Success: success, ClientError: clientErrors, ServerError: serverErrors},
		ModelStatus:         s.model.Ready(),
		Timestamp:           now,
	}, nil
}
