package models

import "time"

// APIUsage represents one API invocation stored in the 'api_usage' table.
// A row is inserted with a placeholder status before any request work
// starts and updated exactly once when the response is finalized.
type APIUsage struct {
	ID             int64     `db:"id" json:"id"`
	Endpoint       string    `db:"endpoint" json:"endpoint"`
	Method         string    `db:"method" json:"method"`
	IPAddress      string    `db:"ip_address" json:"ip_address"`
	UserAgent      *string   `db:"user_agent" json:"user_agent,omitempty"`
	ResponseStatus int       `db:"response_status" json:"response_status"`
	ResponseTimeMS float64   `db:"response_time_ms" json:"response_time_ms"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
}
