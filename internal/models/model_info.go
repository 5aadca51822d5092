package models

import "time"

// ModelInfo represents a known model version stored in the 'model_info'
// table. At most one row per model name may be active at a time.
type ModelInfo struct {
	ID           int64     `db:"id" json:"-"`
	ModelName    string    `db:"model_name" json:"model_name"`
	Version      string    `db:"version" json:"version"`
	Accuracy     float64   `db:"accuracy" json:"accuracy"`
	F1Score      float64   `db:"f1_score" json:"f1_score"`
	TrainingDate time.Time `db:"training_date" json:"training_date"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
