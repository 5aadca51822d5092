package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"fakenews-api/internal/models"
)

type APIUsageRepository interface {
	Begin(usage *models.APIUsage) error
	Finish(id int64, status int, responseTimeMS float64) error
	Count() (int, error)
	CountByStatusRange(low, high int) (int, error)
}

type apiUsageRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAPIUsageRepository(db *sqlx.DB, logger *zap.Logger) APIUsageRepository {
	return &apiUsageRepository{db: db, logger: logger}
}

// Begin inserts the usage row for an inbound request before any request
// work happens. The status recorded here is a placeholder; Finish
// overwrites it with the real outcome.
func (r *apiUsageRepository) Begin(usage *models.APIUsage) error {
	query := `INSERT INTO api_usage (endpoint, method, ip_address, user_agent, response_status, response_time_ms)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, timestamp`
	return r.db.QueryRowx(query, usage.Endpoint, usage.Method, usage.IPAddress, usage.UserAgent,
		usage.ResponseStatus, usage.ResponseTimeMS).
		Scan(&usage.ID, &usage.Timestamp)
}

// Finish records the final status and latency of a request. It is
// called exactly once per row.
func (r *apiUsageRepository) Finish(id int64, status int, responseTimeMS float64) error {
	_, err := r.db.Exec(`UPDATE api_usage SET response_status = $1, response_time_ms = $2 WHERE id = $3`,
		status, responseTimeMS, id)
	return err
}

func (r *apiUsageRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM api_usage`)
	return count, err
}

// CountByStatusRange counts usage rows with low <= response_status < high.
func (r *apiUsageRepository) CountByStatusRange(low, high int) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM api_usage WHERE response_status >= $1 AND response_status < $2`,
		low, high)
	return count, err
}
