package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fakenews-api/internal/models"
	"fakenews-api/internal/service"
)

type mockStatsAnalysisRepo struct {
	total             int
	today             int
	lastWeek          int
	byPrediction      map[string]int
	averageConfidence float64
	err               error

	sinceCalls []time.Time
}

func (m *mockStatsAnalysisRepo) Save(*models.NewsAnalysis) error { return nil }
func (m *mockStatsAnalysisRepo) GetByID(uuid.UUID) (*models.NewsAnalysis, error) {
	return nil, nil
}

func (m *mockStatsAnalysisRepo) Count() (int, error) {
	return m.total, m.err
}

func (m *mockStatsAnalysisRepo) CountSince(t time.Time) (int, error) {
	m.sinceCalls = append(m.sinceCalls, t)
	// The first call is the midnight cutoff, the second the week one.
	if len(m.sinceCalls) == 1 {
		return m.today, m.err
	}
	return m.lastWeek, m.err
}

func (m *mockStatsAnalysisRepo) CountByPrediction(prediction string) (int, error) {
	return m.byPrediction[prediction], m.err
}

func (m *mockStatsAnalysisRepo) AverageConfidence() (float64, error) {
	return m.averageConfidence, m.err
}

type mockUsageStatsRepo struct {
	total    int
	byRange  map[int]int
	beginErr error
}

func (m *mockUsageStatsRepo) Begin(usage *models.APIUsage) error {
	return m.beginErr
}
func (m *mockUsageStatsRepo) Finish(int64, int, float64) error { return nil }
func (m *mockUsageStatsRepo) Count() (int, error)              { return m.total, nil }
func (m *mockUsageStatsRepo) CountByStatusRange(low, high int) (int, error) {
	return m.byRange[low], nil
}

type staticReadiness bool

func (r staticReadiness) Ready() bool { return bool(r) }

func TestComputeStats(t *testing.T) {
	analysisRepo := &mockStatsAnalysisRepo{
		total:    10,
		today:    2,
		lastWeek: 6,
		byPrediction: map[string]int{
			models.PredictionFake: 4,
			models.PredictionReal: 6,
		},
		averageConfidence: 0.82,
	}
	usageRepo := &mockUsageStatsRepo{
		total:   25,
		byRange: map[int]int{200: 18, 400: 5, 500: 2},
	}

	stats, err := service.NewStatsService(analysisRepo, usageRepo, staticReadiness(true), zap.NewNop()).Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if stats.TotalAnalyses != 10 || stats.TotalAPICalls != 25 {
		t.Errorf("totals = %d/%d, want 10/25", stats.TotalAnalyses, stats.TotalAPICalls)
	}
	if stats.AnalysesToday != 2 || stats.AnalysesLastWeek != 6 {
		t.Errorf("window counts = %d/%d, want 2/6", stats.AnalysesToday, stats.AnalysesLastWeek)
	}
	if stats.PredictionsByResult.Fake != 4 || stats.PredictionsByResult.Real != 6 {
		t.Errorf("predictions = %+v, want fake 4 real 6", stats.PredictionsByResult)
	}
	if stats.FakeNewsPercentage != 40.0 {
		t.Errorf("FakeNewsPercentage = %v, want 40.0", stats.FakeNewsPercentage)
	}
	if stats.AverageConfidence != 0.82 {
		t.Errorf("AverageConfidence = %v, want 0.82", stats.AverageConfidence)
	}
	if stats.APICallsByStatus.Success != 18 || stats.APICallsByStatus.ClientError != 5 || stats.APICallsByStatus.ServerError != 2 {
		t.Errorf("APICallsByStatus = %+v, want 18/5/2", stats.APICallsByStatus)
	}
	if !stats.ModelStatus {
		t.Error("ModelStatus = false, want true")
	}
	if stats.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}

	// Window cutoffs: local midnight today and seven days back.
	if len(analysisRepo.sinceCalls) != 2 {
		t.Fatalf("CountSince called %d times, want 2", len(analysisRepo.sinceCalls))
	}
	midnight := analysisRepo.sinceCalls[0]
	if midnight.Hour() != 0 || midnight.Minute() != 0 || midnight.Second() != 0 {
		t.Errorf("today cutoff = %v, want local midnight", midnight)
	}
}

func TestComputeStatsEmptyStore(t *testing.T) {
	analysisRepo := &mockStatsAnalysisRepo{byPrediction: map[string]int{}}
	usageRepo := &mockUsageStatsRepo{byRange: map[int]int{}}

	stats, err := service.NewStatsService(analysisRepo, usageRepo, staticReadiness(false), zap.NewNop()).Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// No analyses must not divide by zero.
	if stats.FakeNewsPercentage != 0.0 {
		t.Errorf("FakeNewsPercentage = %v, want 0.0", stats.FakeNewsPercentage)
	}
	if stats.AverageConfidence != 0.0 {
		t.Errorf("AverageConfidence = %v, want 0.0", stats.AverageConfidence)
	}
	if stats.ModelStatus {
		t.Error("ModelStatus = true for unready model")
	}
}

func TestComputeStatsPropagatesStoreErrors(t *testing.T) {
	analysisRepo := &mockStatsAnalysisRepo{err: errors.New("connection refused")}
	usageRepo := &mockUsageStatsRepo{}

	_, err := service.NewStatsService(analysisRepo, usageRepo, staticReadiness(true), zap.NewNop()).Compute()
	if err == nil {
		t.Fatal("Compute() error = nil, want store error")
	}
}
