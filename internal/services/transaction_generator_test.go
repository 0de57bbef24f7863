package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator  services.TransactionGeneratorInterface
	normalizer services.NormalizerServiceInterface
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = services.NewTransactionGenerator(1234)
	s.normalizer = services.NewNormalizerService()
}

func (s *TransactionGeneratorTestSuite) TestGenerateFeed_OnePaymentPerCategoryPerMonth() {
	categories := []models.Category{models.CategoryCreditCard, models.CategoryHomeLoan}

	feed := s.generator.GenerateFeed(24, categories)

	s.Len(feed, 48)
}

// Generated feeds must survive the same normalization pipeline real feeds go
// through: every date parses and every description lands in its own category.
func (s *TransactionGeneratorTestSuite) TestGenerateFeed_RoundTripsThroughNormalizer() {
	categories := models.CreditMixCategories()

	feed := s.generator.GenerateFeed(12, categories)
	s.Len(feed, 12*len(categories))

	normalized, err := s.normalizer.Normalize(feed)
	s.Require().NoError(err)
	s.Len(normalized, len(feed))

	counts := make(map[models.Category]int)
	for _, txn := range normalized {
		counts[txn.Category]++
	}
	for _, category := range categories {
		s.Equal(12, counts[category], "category %s", category)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateMonthlyPayments_DatesAdvanceMonthly() {
	start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	payments := s.generator.GenerateMonthlyPayments(models.CategoryHomeLoan, start, 6)

	s.Len(payments, 6)
	for i, payment := range payments {
		s.Equal(start.AddDate(0, i, 0).Format("2006-01-02"), payment.Date)
		s.True(payment.Amount.IsNegative(), "payments are debits")
	}
}

// EMIs keep a fixed installment; card bills drift month to month.
func (s *TransactionGeneratorTestSuite) TestGenerateMonthlyPayments_EMIAmountsAreStable() {
	start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	emis := s.generator.GenerateMonthlyPayments(models.CategoryCarLoan, start, 6)
	for _, emi := range emis[1:] {
		s.True(emi.Amount.Equal(emis[0].Amount))
	}

	cardBills := s.generator.GenerateMonthlyPayments(models.CategoryCreditCard, start, 6)
	varied := false
	for _, bill := range cardBills[1:] {
		if !bill.Amount.Equal(cardBills[0].Amount) {
			varied = true
		}
	}
	s.True(varied, "card bills should vary month to month")
}

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_StaysWithinCategoryRange() {
	for i := 0; i < 50; i++ {
		amount := s.generator.GenerateAmount(models.CategoryHomeLoan)
		s.GreaterOrEqual(amount, 15000.0)
		s.LessOrEqual(amount, 60000.0)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateDescription_CategorizesBackToSameCategory() {
	for _, category := range models.AllCategories() {
		if category == models.CategoryOther {
			continue
		}
		for i := 0; i < 10; i++ {
			description := s.generator.GenerateDescription(category)
			s.Equal(category, s.normalizer.Categorize(description), "description %q", description)
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestSameSeedProducesSameFeed() {
	first := services.NewTransactionGenerator(99).GenerateMonthlyPayments(
		models.CategoryPersonalLoan, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 12)
	second := services.NewTransactionGenerator(99).GenerateMonthlyPayments(
		models.CategoryPersonalLoan, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 12)

	s.Equal(first, second)
}

// A generated feed must always be scoreable end to end.
func (s *TransactionGeneratorTestSuite) TestGeneratedFeedAnalyzesCleanly() {
	analysisService := services.NewAnalysisService(s.normalizer, services.DefaultScoringConfig(), nil)

	feed := s.generator.GenerateFeed(36, models.CreditMixCategories())
	report, err := analysisService.Analyze(feed)

	s.Require().NoError(err)
	s.GreaterOrEqual(report.CIBILScore, 300)
	s.LessOrEqual(report.CIBILScore, 900)
	s.Equal(7, report.ScoreBreakdown.CreditMix.CreditTypeCount)
}
