package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScoreComponent is one weighted factor of the overall score.
type ScoreComponent struct {
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted_contribution"`
	Status   string  `json:"status"`
}

// PaymentHistoryDetail carries the evidence behind the payment history factor.
type PaymentHistoryDetail struct {
	ScoreComponent
	PaymentCount     int     `json:"payment_count"`
	PaymentsPerMonth float64 `json:"payments_per_month"`
	LongGapCount     int     `json:"long_gap_count"`
	GapPenalty       float64 `json:"gap_penalty"`
}

// CreditUtilizationDetail carries the evidence behind the utilization factor.
type CreditUtilizationDetail struct {
	ScoreComponent
	UtilizationPct       float64         `json:"utilization_percentage"`
	AveragePayment       decimal.Decimal `json:"average_payment"`
	EstimatedMonthlyBill decimal.Decimal `json:"estimated_monthly_bill"`
	EstimatedCreditLimit decimal.Decimal `json:"estimated_credit_limit"`
}

// CreditHistoryDetail carries the evidence behind the history length factor.
type CreditHistoryDetail struct {
	ScoreComponent
	AgeYears   float64 `json:"age_years"`
	SpanMonths float64 `json:"span_months"`
}

// CreditMixDetail carries the evidence behind the credit mix factor.
type CreditMixDetail struct {
	ScoreComponent
	CreditTypeCount int        `json:"credit_type_count"`
	CreditTypes     []Category `json:"credit_types"`
}

// CreditInquiryDetail carries the evidence behind the new inquiries factor.
// An inquiry is approximated by the first appearance of a product category.
type CreditInquiryDetail struct {
	ScoreComponent
	RecentInquiries int `json:"recent_inquiries"`
	WindowDays      int `json:"window_days"`
}

// ScoreBreakdown groups the five factor results keyed by factor name.
type ScoreBreakdown struct {
	PaymentHistory      PaymentHistoryDetail    `json:"payment_history"`
	CreditUtilization   CreditUtilizationDetail `json:"credit_utilization"`
	CreditHistoryLength CreditHistoryDetail     `json:"credit_history_length"`
	CreditMix           CreditMixDetail         `json:"credit_mix"`
	NewCreditInquiries  CreditInquiryDetail     `json:"new_credit_inquiries"`
}

// AnalysisPeriod describes the observed date range of the transaction feed.
type AnalysisPeriod struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	SpanMonths float64   `json:"span_months"`
	SpanYears  float64   `json:"span_years"`
}

// ScoreReport is the full output of one analysis run. It carries no wall-clock
// fields; a timestamp is attached at the transport boundary so repeated runs on
// identical input are bit-identical.
type ScoreReport struct {
	CIBILScore             int              `json:"cibil_score"`
	Status                 string           `json:"status"`
	LoanApprovalLikelihood string           `json:"loan_approval_likelihood"`
	AnalysisPeriod         AnalysisPeriod   `json:"analysis_period"`
	ScoreBreakdown         ScoreBreakdown   `json:"score_breakdown"`
	TransactionSummary     map[Category]int `json:"transaction_summary"`
	Recommendations        []string         `json:"recommendations"`
}

// Components returns the five factors in canonical order.
func (r *ScoreReport) Components() []ScoreComponent {
	return []ScoreComponent{
		r.ScoreBreakdown.PaymentHistory.ScoreComponent,
		r.ScoreBreakdown.CreditUtilization.ScoreComponent,
		r.ScoreBreakdown.CreditHistoryLength.ScoreComponent,
		r.ScoreBreakdown.CreditMix.ScoreComponent,
		r.ScoreBreakdown.NewCreditInquiries.ScoreComponent,
	}
}
