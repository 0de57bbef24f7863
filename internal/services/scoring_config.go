package services

// FactorWeights holds the contribution weight of each scoring factor.
// The five weights must sum to exactly 1.00.
type FactorWeights struct {
	PaymentHistory      float64
	CreditUtilization   float64
	CreditHistoryLength float64
	CreditMix           float64
	NewCreditInquiries  float64
}

// Sum returns the total of all five weights.
func (w FactorWeights) Sum() float64 {
	return w.PaymentHistory + w.CreditUtilization + w.CreditHistoryLength +
		w.CreditMix + w.NewCreditInquiries
}

// ScoreBand maps a minimum final score onto a qualitative status and a loan
// approval likelihood label. Bands are evaluated highest-first.
type ScoreBand struct {
	Min        int
	Status     string
	Likelihood string
}

// RecommendationThresholds holds the per-factor score below which the factor's
// remediation message is appended to the report.
type RecommendationThresholds struct {
	PaymentHistory      float64
	CreditUtilization   float64
	CreditHistoryLength float64
	CreditMix           float64
	NewCreditInquiries  float64
}

// ScoringConfig is the immutable parameter set of the scoring engine. It is
// constructed once at process start and passed explicitly into the engine so
// tests can inject alternate weight tables.
type ScoringConfig struct {
	Weights FactorWeights

	// Payment history
	LongGapDays    int
	GapPenaltyStep float64
	MaxGapPenalty  float64

	// New credit inquiries
	InquiryWindowDays int

	// Aggregation
	ScoreFloor  int
	ScoreRange  int
	Bands       []ScoreBand
	Thresholds  RecommendationThresholds
	TargetScore int
	GeneralHint string
	FactorHints FactorHints
}

// FactorHints holds the canned remediation message for each factor.
type FactorHints struct {
	PaymentHistory      string
	CreditUtilization   string
	CreditHistoryLength string
	CreditMix           string
	NewCreditInquiries  string
}

// DefaultScoringConfig returns the canonical CIBIL-style parameter set.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: FactorWeights{
			PaymentHistory:      0.35,
			CreditUtilization:   0.30,
			CreditHistoryLength: 0.15,
			CreditMix:           0.10,
			NewCreditInquiries:  0.10,
		},
		LongGapDays:       45,
		GapPenaltyStep:    5,
		MaxGapPenalty:     20,
		InquiryWindowDays: 180,
		ScoreFloor:        300,
		ScoreRange:        600,
		Bands: []ScoreBand{
			{Min: 850, Status: "Exceptional", Likelihood: "Very High - Best interest rates available"},
			{Min: 800, Status: "Excellent Plus", Likelihood: "Very High - Premium loan offers"},
			{Min: 750, Status: "Excellent", Likelihood: "High - Favorable terms expected"},
			{Min: 700, Status: "Good", Likelihood: "Good - Standard terms expected"},
			{Min: 650, Status: "Fair", Likelihood: "Moderate - Higher interest rates likely"},
			{Min: 600, Status: "Average", Likelihood: "Low - Limited loan options"},
			{Min: 0, Status: "Poor", Likelihood: "Very Low - Secured credit recommended"},
		},
		Thresholds: RecommendationThresholds{
			PaymentHistory:      80,
			CreditUtilization:   70,
			CreditHistoryLength: 70,
			CreditMix:           70,
			NewCreditInquiries:  75,
		},
		TargetScore: 750,
		GeneralHint: "Work towards a score of 750+ to reach the excellent range and unlock the best loan terms",
		FactorHints: FactorHints{
			PaymentHistory:      "Pay all EMIs and credit card bills on time every month to strengthen your payment history",
			CreditUtilization:   "Keep credit card utilization below 30% of your credit limit",
			CreditHistoryLength: "Keep your oldest credit accounts open to lengthen your credit history",
			CreditMix:           "Maintain a healthy mix of secured loans, unsecured loans and insurance products",
			NewCreditInquiries:  "Avoid applying for multiple new credit products in a short period",
		},
	}
}
