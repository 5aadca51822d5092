package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction labels produced by the classifier.
const (
	PredictionFake = "FALSA"
	PredictionReal = "VERDADERA"
)

// NewsAnalysis represents one completed prediction stored in the
// 'news_analyses' table. The stored text is a truncated copy of the
// submitted text; the analysis itself is never mutated after creation.
type NewsAnalysis struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Text            string    `db:"text" json:"text"`
	Prediction      string    `db:"prediction" json:"prediction"`
	Confidence      float64   `db:"confidence" json:"confidence"`
	ProbabilityReal float64   `db:"probability_real" json:"probability_real"`
	ProbabilityFake float64   `db:"probability_fake" json:"probability_fake"`
	IPAddress       *string   `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// IsFake reports whether the analysis concluded the news is fabricated.
func (a *NewsAnalysis) IsFake() bool {
	return a.Prediction == PredictionFake
}
