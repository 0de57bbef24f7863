package services

import (
	"context"
	"time"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/dto"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

// NormalizerServiceInterface turns raw transaction records into categorized,
// date-normalized records ready for scoring
type NormalizerServiceInterface interface {
	// Normalize parses and categorizes a raw feed, dropping records whose
	// date matches none of the recognized formats
	Normalize(transactions []models.Transaction) ([]models.NormalizedTransaction, error)

	// ParseDate attempts the ordered date format list against raw text
	ParseDate(raw string) (time.Time, bool)

	// Categorize maps a transaction description onto the category enum
	Categorize(description string) models.Category
}

// AnalysisServiceInterface runs the full scoring pipeline on a transaction feed
type AnalysisServiceInterface interface {
	// Analyze computes the credit score report for a feed. Stateless; safe
	// for concurrent use
	Analyze(transactions []models.Transaction) (*models.ScoreReport, error)
}

// SessionClientInterface fetches a session's transaction feed from the
// upstream data processor
type SessionClientInterface interface {
	FetchSessionData(ctx context.Context, sessionID string) (*dto.SessionData, error)
}

// ChartServiceInterface renders a visual breakdown of a score report.
// Rendering is best-effort; failures must never fail the analysis
type ChartServiceInterface interface {
	// RenderScoreChart returns a base64-encoded SVG document
	RenderScoreChart(report *models.ScoreReport) (string, error)
}

// TransactionGeneratorInterface generates realistic transaction feeds for
// development and testing
type TransactionGeneratorInterface interface {
	GenerateFeed(months int, categories []models.Category) []models.Transaction
	GenerateMonthlyPayments(category models.Category, start time.Time, months int) []models.Transaction
	GenerateAmount(category models.Category) float64
	GenerateDescription(category models.Category) string
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls against a failing upstream
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
