package services

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

const hoursPerDay = 24

type analysisService struct {
	normalizer NormalizerServiceInterface
	config     ScoringConfig
	metrics    MetricsRecorderInterface
}

// NewAnalysisService creates an AnalysisServiceInterface with an explicit
// scoring configuration. The service is stateless; one instance serves
// concurrent requests.
func NewAnalysisService(normalizer NormalizerServiceInterface, config ScoringConfig, metrics MetricsRecorderInterface) AnalysisServiceInterface {
	return &analysisService{
		normalizer: normalizer,
		config:     config,
		metrics:    metrics,
	}
}

// Analyze runs the full pipeline: normalize, partition, score the five
// factors, aggregate. Input ordering never affects the output.
func (s *analysisService) Analyze(transactions []models.Transaction) (*models.ScoreReport, error) {
	started := time.Now()

	normalized, err := s.normalizer.Normalize(transactions)
	if err != nil {
		return nil, err
	}

	buckets := partitionByCategory(normalized)
	startDate, endDate := observedDateRange(normalized)
	spanMonths := spanInMonths(startDate, endDate)

	breakdown := models.ScoreBreakdown{
		PaymentHistory:      s.scorePaymentHistory(buckets, spanMonths),
		CreditUtilization:   s.scoreCreditUtilization(buckets),
		CreditHistoryLength: s.scoreCreditHistoryLength(spanMonths),
		CreditMix:           s.scoreCreditMix(buckets),
		NewCreditInquiries:  s.scoreNewCreditInquiries(normalized, endDate),
	}

	report := s.aggregate(breakdown, startDate, endDate, spanMonths, buckets)

	if s.metrics != nil {
		s.metrics.IncrementCounter("analysis.completed", map[string]string{"status": report.Status})
		s.metrics.RecordProcessingTime("analysis.duration", time.Since(started))
		s.metrics.RecordGauge("analysis.score", float64(report.CIBILScore), nil)
	}

	slog.Info("credit analysis completed",
		"score", report.CIBILScore,
		"status", report.Status,
		"transactions", len(normalized),
		"span_months", spanMonths)

	return report, nil
}

// partitionByCategory groups normalized transactions into category buckets.
// A bucket may legitimately be empty.
func partitionByCategory(transactions []models.NormalizedTransaction) map[models.Category][]models.NormalizedTransaction {
	buckets := make(map[models.Category][]models.NormalizedTransaction)
	for _, txn := range transactions {
		buckets[txn.Category] = append(buckets[txn.Category], txn)
	}
	return buckets
}

// observedDateRange returns the earliest and latest parsed dates in the feed.
func observedDateRange(transactions []models.NormalizedTransaction) (time.Time, time.Time) {
	start, end := transactions[0].ParsedDate, transactions[0].ParsedDate
	for _, txn := range transactions[1:] {
		if txn.ParsedDate.Before(start) {
			start = txn.ParsedDate
		}
		if txn.ParsedDate.After(end) {
			end = txn.ParsedDate
		}
	}
	return start, end
}

// spanInMonths converts the observed range into months, floored at one so a
// single-day feed still has a defined monthly rate.
func spanInMonths(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / hoursPerDay
	months := days / 30
	if months < 1 {
		return 1
	}
	return months
}

func (s *analysisService) scorePaymentHistory(buckets map[models.Category][]models.NormalizedTransaction, spanMonths float64) models.PaymentHistoryDetail {
	var pool []models.NormalizedTransaction
	for _, category := range models.PaymentHistoryCategories() {
		pool = append(pool, buckets[category]...)
	}

	if len(pool) == 0 {
		return models.PaymentHistoryDetail{
			ScoreComponent: models.ScoreComponent{Score: 50, Status: "No payment history"},
		}
	}

	paymentsPerMonth := float64(len(pool)) / spanMonths

	var base float64
	switch {
	case paymentsPerMonth >= 1.5:
		base = 95
	case paymentsPerMonth >= 1.0:
		base = 90
	case paymentsPerMonth >= 0.5:
		base = 75
	default:
		base = 60
	}

	dates := make([]time.Time, len(pool))
	for i, txn := range pool {
		dates[i] = txn.ParsedDate
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longGaps := 0
	for i := 1; i < len(dates); i++ {
		gapDays := dates[i].Sub(dates[i-1]).Hours() / hoursPerDay
		if gapDays > float64(s.config.LongGapDays) {
			longGaps++
		}
	}

	penalty := math.Min(s.config.MaxGapPenalty, float64(longGaps)*s.config.GapPenaltyStep)
	score := math.Max(50, base-penalty)

	return models.PaymentHistoryDetail{
		ScoreComponent:   models.ScoreComponent{Score: score, Status: factorStatus(score)},
		PaymentCount:     len(pool),
		PaymentsPerMonth: paymentsPerMonth,
		LongGapCount:     longGaps,
		GapPenalty:       penalty,
	}
}

func (s *analysisService) scoreCreditUtilization(buckets map[models.Category][]models.NormalizedTransaction) models.CreditUtilizationDetail {
	cardTxns := buckets[models.CategoryCreditCard]
	if len(cardTxns) == 0 {
		return models.CreditUtilizationDetail{
			ScoreComponent:       models.ScoreComponent{Score: 70, Status: "No credit card usage"},
			AveragePayment:       decimal.Zero,
			EstimatedMonthlyBill: decimal.Zero,
			EstimatedCreditLimit: decimal.Zero,
		}
	}

	total := decimal.Zero
	for _, txn := range cardTxns {
		total = total.Add(txn.AbsAmount())
	}

	avgPayment := total.Div(decimal.NewFromInt(int64(len(cardTxns))))
	monthlyBill := avgPayment.Mul(decimal.NewFromInt(30))
	creditLimit := monthlyBill.Mul(decimal.NewFromFloat(2.5))

	ratio := math.Min(1.0, monthlyBill.Div(creditLimit).InexactFloat64())

	var score float64
	switch {
	case ratio <= 0.30:
		score = 95
	case ratio <= 0.50:
		score = 85 - (ratio-0.30)/0.20*20
	case ratio <= 0.70:
		score = 65 - (ratio-0.50)/0.20*20
	default:
		score = math.Max(30, 45-(ratio-0.70)/0.30*15)
	}

	return models.CreditUtilizationDetail{
		ScoreComponent:       models.ScoreComponent{Score: score, Status: factorStatus(score)},
		UtilizationPct:       ratio * 100,
		AveragePayment:       avgPayment,
		EstimatedMonthlyBill: monthlyBill,
		EstimatedCreditLimit: creditLimit,
	}
}

func (s *analysisService) scoreCreditHistoryLength(spanMonths float64) models.CreditHistoryDetail {
	ageYears := spanMonths / 12

	var score float64
	switch {
	case ageYears >= 7:
		score = 95
	case ageYears >= 5:
		score = 85
	case ageYears >= 3:
		score = 70
	case ageYears >= 1:
		score = 55 + ageYears*5
	default:
		score = 50
	}

	return models.CreditHistoryDetail{
		ScoreComponent: models.ScoreComponent{Score: score, Status: factorStatus(score)},
		AgeYears:       ageYears,
		SpanMonths:     spanMonths,
	}
}

func (s *analysisService) scoreCreditMix(buckets map[models.Category][]models.NormalizedTransaction) models.CreditMixDetail {
	// Iterate the fixed category order, not the map, so the reported type
	// list is stable across runs
	var held []models.Category
	for _, category := range models.CreditMixCategories() {
		if len(buckets[category]) > 0 {
			held = append(held, category)
		}
	}

	var score float64
	switch {
	case len(held) >= 5:
		score = 95
	case len(held) == 4:
		score = 85
	case len(held) == 3:
		score = 70
	case len(held) == 2:
		score = 55
	default:
		score = 40
	}

	return models.CreditMixDetail{
		ScoreComponent:  models.ScoreComponent{Score: score, Status: factorStatus(score)},
		CreditTypeCount: len(held),
		CreditTypes:     held,
	}
}

// scoreNewCreditInquiries approximates a bureau inquiry by the first
// appearance of each product category in the feed. This is a deliberate
// heuristic; there is no ground-truth inquiry record in a transaction feed.
func (s *analysisService) scoreNewCreditInquiries(transactions []models.NormalizedTransaction, endDate time.Time) models.CreditInquiryDetail {
	firstSeen := make(map[models.Category]time.Time)
	for _, txn := range transactions {
		if txn.Category == models.CategoryOther {
			continue
		}
		if first, ok := firstSeen[txn.Category]; !ok || txn.ParsedDate.Before(first) {
			firstSeen[txn.Category] = txn.ParsedDate
		}
	}

	recent := 0
	for _, first := range firstSeen {
		daysBefore := endDate.Sub(first).Hours() / hoursPerDay
		if daysBefore <= float64(s.config.InquiryWindowDays) {
			recent++
		}
	}

	var score float64
	switch {
	case recent == 0:
		score = 90
	case recent <= 2:
		score = 80
	case recent <= 4:
		score = 65
	default:
		score = 50
	}

	return models.CreditInquiryDetail{
		ScoreComponent:  models.ScoreComponent{Score: score, Status: factorStatus(score)},
		RecentInquiries: recent,
		WindowDays:      s.config.InquiryWindowDays,
	}
}

func (s *analysisService) aggregate(breakdown models.ScoreBreakdown, startDate, endDate time.Time, spanMonths float64, buckets map[models.Category][]models.NormalizedTransaction) *models.ScoreReport {
	weights := s.config.Weights

	breakdown.PaymentHistory.Weight = weights.PaymentHistory
	breakdown.CreditUtilization.Weight = weights.CreditUtilization
	breakdown.CreditHistoryLength.Weight = weights.CreditHistoryLength
	breakdown.CreditMix.Weight = weights.CreditMix
	breakdown.NewCreditInquiries.Weight = weights.NewCreditInquiries

	breakdown.PaymentHistory.Weighted = breakdown.PaymentHistory.Score * weights.PaymentHistory
	breakdown.CreditUtilization.Weighted = breakdown.CreditUtilization.Score * weights.CreditUtilization
	breakdown.CreditHistoryLength.Weighted = breakdown.CreditHistoryLength.Score * weights.CreditHistoryLength
	breakdown.CreditMix.Weighted = breakdown.CreditMix.Score * weights.CreditMix
	breakdown.NewCreditInquiries.Weighted = breakdown.NewCreditInquiries.Score * weights.NewCreditInquiries

	weightedSum := breakdown.PaymentHistory.Weighted +
		breakdown.CreditUtilization.Weighted +
		breakdown.CreditHistoryLength.Weighted +
		breakdown.CreditMix.Weighted +
		breakdown.NewCreditInquiries.Weighted

	finalScore := int(math.Floor(float64(s.config.ScoreFloor) + weightedSum/100*float64(s.config.ScoreRange)))

	status, likelihood := s.bandFor(finalScore)

	summary := make(map[models.Category]int, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		summary[category] = len(buckets[category])
	}

	return &models.ScoreReport{
		CIBILScore:             finalScore,
		Status:                 status,
		LoanApprovalLikelihood: likelihood,
		AnalysisPeriod: models.AnalysisPeriod{
			StartDate:  startDate,
			EndDate:    endDate,
			SpanMonths: spanMonths,
			SpanYears:  spanMonths / 12,
		},
		ScoreBreakdown:     breakdown,
		TransactionSummary: summary,
		Recommendations:    s.recommendations(breakdown, finalScore),
	}
}

func (s *analysisService) bandFor(finalScore int) (string, string) {
	for _, band := range s.config.Bands {
		if finalScore >= band.Min {
			return band.Status, band.Likelihood
		}
	}
	return "Unknown", "Unknown"
}

// recommendations appends each factor's remediation message when that factor
// scores below its threshold, in fixed factor order, plus the general target
// message when the final score is below the excellent range.
func (s *analysisService) recommendations(breakdown models.ScoreBreakdown, finalScore int) []string {
	recommendations := make([]string, 0)

	if breakdown.PaymentHistory.Score < s.config.Thresholds.PaymentHistory {
		recommendations = append(recommendations, s.config.FactorHints.PaymentHistory)
	}
	if breakdown.CreditUtilization.Score < s.config.Thresholds.CreditUtilization {
		recommendations = append(recommendations, s.config.FactorHints.CreditUtilization)
	}
	if breakdown.CreditHistoryLength.Score < s.config.Thresholds.CreditHistoryLength {
		recommendations = append(recommendations, s.config.FactorHints.CreditHistoryLength)
	}
	if breakdown.CreditMix.Score < s.config.Thresholds.CreditMix {
		recommendations = append(recommendations, s.config.FactorHints.CreditMix)
	}
	if breakdown.NewCreditInquiries.Score < s.config.Thresholds.NewCreditInquiries {
		recommendations = append(recommendations, s.config.FactorHints.NewCreditInquiries)
	}
	if finalScore < s.config.TargetScore {
		recommendations = append(recommendations, s.config.GeneralHint)
	}

	return recommendations
}

// factorStatus maps a 0-100 factor score onto a qualitative label.
func factorStatus(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}
