package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"fakenews-api/internal/models"
)

type AnalysisRepository interface {
	Save(analysis *models.NewsAnalysis) error
	GetByID(id uuid.UUID) (*models.NewsAnalysis, error)
	Count() (int, error)
	CountSince(t time.Time) (int, error)
	CountByPrediction(prediction string) (int, error)
	AverageConfidence() (float64, error)
}

type analysisRepository struct {
	db              *sqlx.DB
	storedTextLimit int
	logger          *zap.Logger
}

func NewAnalysisRepository(db *sqlx.DB, storedTextLimit int, logger *zap.Logger) AnalysisRepository {
	return &analysisRepository{db: db, storedTextLimit: storedTextLimit, logger: logger}
}

// Save stores one completed prediction. A fresh identifier is assigned
// when none is supplied and the stored text is truncated to the
// configured cap, which is independent of the validation cap.
func (r *analysisRepository) Save(analysis *models.NewsAnalysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	if runes := []rune(analysis.Text); len(runes) > r.storedTextLimit {
		analysis.Text = string(runes[:r.storedTextLimit])
	}

	query := `INSERT INTO news_analyses (id, text, prediction, confidence, probability_real, probability_fake, ip_address)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	return r.db.QueryRowx(query, analysis.ID, analysis.Text, analysis.Prediction, analysis.Confidence,
		analysis.ProbabilityReal, analysis.ProbabilityFake, analysis.IPAddress).
		Scan(&analysis.CreatedAt, &analysis.UpdatedAt)
}

// GetByID returns the stored analysis, or (nil, nil) when the
// identifier was never issued.
func (r *analysisRepository) GetByID(id uuid.UUID) (*models.NewsAnalysis, error) {
	var analysis models.NewsAnalysis
	query := `SELECT id, text, prediction, confidence, probability_real, probability_fake, ip_address, created_at, updated_at
	          FROM news_analyses WHERE id = $1`
	err := r.db.Get(&analysis, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM news_analyses`)
	return count, err
}

func (r *analysisRepository) CountSince(t time.Time) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM news_analyses WHERE created_at >= $1`, t)
	return count, err
}

func (r *analysisRepository) CountByPrediction(prediction string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM news_analyses WHERE prediction = $1`, prediction)
	return count, err
}

func (r *analysisRepository) AverageConfidence() (float64, error) {
	var avg float64
	err := r.db.Get(&avg, `SELECT COALESCE(AVG(confidence), 0) FROM news_analyses`)
	return avg, err
}
