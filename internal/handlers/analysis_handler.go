package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/dto"
	apierrors "github.com/ybhavesh-0915/taxwise-CIDIB/internal/errors"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/validation"
)

// AnalysisHandler serves the credit score analysis endpoint.
type AnalysisHandler struct {
	sessionClient   services.SessionClientInterface
	analysisService services.AnalysisServiceInterface
	chartService    services.ChartServiceInterface
	metrics         services.MetricsRecorderInterface
}

func NewAnalysisHandler(
	sessionClient services.SessionClientInterface,
	analysisService services.AnalysisServiceInterface,
	chartService services.ChartServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AnalysisHandler {
	return &AnalysisHandler{
		sessionClient:   sessionClient,
		analysisService: analysisService,
		chartService:    chartService,
		metrics:         metrics,
	}
}

type analyzeRequest struct {
	SessionID string `json:"session_id" validate:"required,session_id"`
}

// AnalyzeSession computes the credit score report for a session's feed
//
// Method: GET /api/v1/analyze/:sessionId
//
// Path parameters:
//   - sessionId: opaque session identifier known to the data processor
//
// Success Response: 200 OK with session id, timestamp, score report and a
// base64 SVG chart (empty string when rendering fails)
//
// Error Responses:
//   - 400: Invalid session identifier
//   - 404: Session unknown to the data processor
//   - 422: Feed empty or no transaction has a parseable date
//   - 503: Data processor unreachable
//   - 504: Data processor timed out
func (h *AnalysisHandler) AnalyzeSession(c echo.Context) error {
	req := analyzeRequest{SessionID: c.Param("sessionId")}
	if err := validation.GetValidator().GetValidate().Struct(&req); err != nil {
		return SendError(c, apierrors.SessionInvalidID, apierrors.WithDetails("sessionId must be 1-128 URL-safe characters"))
	}

	data, err := h.sessionClient.FetchSessionData(c.Request().Context(), req.SessionID)
	if err != nil {
		return h.handleFetchError(c, err)
	}

	report, err := h.analysisService.Analyze(data.Transactions)
	if err != nil {
		return h.handleAnalysisError(c, err)
	}

	// Chart rendering is best-effort; a failed render degrades to an empty
	// chart field, never a failed request
	chart := ""
	if h.chartService != nil {
		rendered, renderErr := h.chartService.RenderScoreChart(report)
		if renderErr != nil {
			slog.Warn("score chart rendering failed",
				"trace_id", getTraceID(c),
				"session_id", req.SessionID,
				"error", renderErr)
			h.count("chart.failed")
		} else {
			chart = rendered
			h.count("chart.rendered")
		}
	}

	return c.JSON(http.StatusOK, dto.AnalyzeResponse{
		SessionID:   req.SessionID,
		GeneratedAt: time.Now().UTC(),
		ScoreReport: *report,
		ChartBase64: chart,
	})
}

func (h *AnalysisHandler) handleFetchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return SendError(c, apierrors.SessionNotFound)
	case errors.Is(err, services.ErrUpstreamTimeout):
		return SendError(c, apierrors.SessionServiceTimeout)
	case errors.Is(err, services.ErrUpstreamUnreachable):
		return SendError(c, apierrors.SessionServiceUnreachable)
	case errors.Is(err, services.ErrUpstreamBadResponse):
		return SendError(c, apierrors.SessionUpstreamError)
	default:
		return SendSystemError(c, err)
	}
}

func (h *AnalysisHandler) handleAnalysisError(c echo.Context, err error) error {
	h.count("analysis.failed")

	switch {
	case errors.Is(err, services.ErrEmptyTransactionList):
		return SendError(c, apierrors.AnalysisEmptyTransactions)
	case errors.Is(err, services.ErrNoValidDates):
		return SendError(c, apierrors.AnalysisNoValidDates)
	default:
		return SendSystemError(c, err)
	}
}

func (h *AnalysisHandler) count(name string) {
	if h.metrics != nil {
		h.metrics.IncrementCounter(name, nil)
	}
}
