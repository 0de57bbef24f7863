package dto

import (
	"time"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

// SessionData is the payload returned by the upstream data processor for one
// session. Only the transaction feed participates in scoring.
type SessionData struct {
	SessionID    string               `json:"session_id"`
	Transactions []models.Transaction `json:"relevant_transactions"`
}

// AnalyzeResponse is the full analysis payload returned to the caller. The
// timestamp and chart are attached at the boundary; the embedded report is
// the deterministic engine output.
type AnalyzeResponse struct {
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"timestamp"`
	models.ScoreReport
	ChartBase64 string `json:"chart_base64"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// SampleFeedResponse wraps a generated development transaction feed.
type SampleFeedResponse struct {
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}
