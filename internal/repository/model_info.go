package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"fakenews-api/internal/models"
)

type ModelInfoRepository interface {
	GetOrCreate(defaults *models.ModelInfo) (*models.ModelInfo, error)
}

type modelInfoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewModelInfoRepository(db *sqlx.DB, logger *zap.Logger) ModelInfoRepository {
	return &modelInfoRepository{db: db, logger: logger}
}

// The lookup is keyed on name alone. Filtering on is_active here would
// miss rows registered while the model was unloaded and re-insert one
// per read.
const selectModelInfoByName = `SELECT id, model_name, version, accuracy, f1_score, training_date, is_active, created_at
	FROM model_info WHERE model_name = $1 ORDER BY created_at DESC, id DESC LIMIT 1`

// GetOrCreate returns the newest record for the model name, inserting
// the defaults only when no record exists yet. Repeated reads with
// differing defaults never create duplicates; the partial unique index
// on active names backstops concurrent creators.
func (r *modelInfoRepository) GetOrCreate(defaults *models.ModelInfo) (*models.ModelInfo, error) {
	var info models.ModelInfo
	err := r.db.Get(&info, selectModelInfoByName, defaults.ModelName)
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	insert := `INSERT INTO model_info (model_name, version, accuracy, f1_score, training_date, is_active)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           RETURNING id, model_name, version, accuracy, f1_score, training_date, is_active, created_at`
	err = r.db.Get(&info, insert, defaults.ModelName, defaults.Version, defaults.Accuracy,
		defaults.F1Score, defaults.TrainingDate, defaults.IsActive)
	if err == nil {
		r.logger.Info("Registered model version", zap.String("model_name", info.ModelName))
		return &info, nil
	}

	// A concurrent request won the insert race; read its row.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		if getErr := r.db.Get(&info, selectModelInfoByName, defaults.ModelName); getErr == nil {
			return &info, nil
		}
	}
	return nil, err
}
