package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
)

type NormalizerServiceTestSuite struct {
	suite.Suite
	normalizer services.NormalizerServiceInterface
}

func TestNormalizerServiceSuite(t *testing.T) {
	suite.Run(t, new(NormalizerServiceTestSuite))
}

func (s *NormalizerServiceTestSuite) SetupTest() {
	s.normalizer = services.NewNormalizerService()
}

// ========================================
// ParseDate Tests
// ========================================

func (s *NormalizerServiceTestSuite) TestParseDate_AcceptsAllSupportedFormats() {
	expected := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		raw  string
	}{
		{"ISO dashes", "2024-03-15"},
		{"day first dashes", "15-03-2024"},
		{"day first slashes", "15/03/2024"},
		{"year first slashes", "2024/03/15"},
		{"day first dots", "15.03.2024"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			parsed, ok := s.normalizer.ParseDate(tc.raw)
			s.True(ok)
			s.True(parsed.Equal(expected), "parsed %s, expected %s", parsed, expected)
		})
	}
}

func (s *NormalizerServiceTestSuite) TestParseDate_TrimsSurroundingWhitespace() {
	parsed, ok := s.normalizer.ParseDate("  2024-03-15  ")

	s.True(ok)
	s.Equal(2024, parsed.Year())
	s.Equal(time.March, parsed.Month())
	s.Equal(15, parsed.Day())
}

func (s *NormalizerServiceTestSuite) TestParseDate_RejectsUnparseableText() {
	testCases := []struct {
		name string
		raw  string
	}{
		{"free text", "not-a-date"},
		{"out of range day and month", "32/13/2024"},
		{"empty string", ""},
		{"whitespace only", "   "},
		{"month name", "March 15, 2024"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, ok := s.normalizer.ParseDate(tc.raw)
			s.False(ok)
		})
	}
}

// ========================================
// Categorize Tests
// ========================================

func (s *NormalizerServiceTestSuite) TestCategorize_MatchesKeywordsCaseInsensitively() {
	testCases := []struct {
		description string
		expected    models.Category
	}{
		{"CREDIT CARD PAYMENT HDFC BANK", models.CategoryCreditCard},
		{"cc payment axis", models.CategoryCreditCard},
		{"Home Loan EMI SBI Housing", models.CategoryHomeLoan},
		{"MORTGAGE INSTALLMENT", models.CategoryHomeLoan},
		{"AUTO LOAN EMI", models.CategoryCarLoan},
		{"GOLD LOAN REPAYMENT", models.CategorySecuredLoan},
		{"Loan Against Property EMI", models.CategorySecuredLoan},
		{"PERSONAL LOAN EMI BAJAJ", models.CategoryPersonalLoan},
		{"student loan installment", models.CategoryEducationLoan},
		{"LIC PREMIUM PAYMENT", models.CategoryLifeInsurance},
		{"MEDICLAIM RENEWAL", models.CategoryHealthInsurance},
		{"GROCERY STORE PURCHASE", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			s.Equal(tc.expected, s.normalizer.Categorize(tc.description))
		})
	}
}

// A description can contain keywords of several categories; the first rule in
// precedence order must win.
func (s *NormalizerServiceTestSuite) TestCategorize_PrecedenceOrderBreaksTies() {
	s.Equal(models.CategoryCarLoan, s.normalizer.Categorize("CAR LOAN EMI PAYMENT"))
	s.Equal(models.CategoryCreditCard, s.normalizer.Categorize("CREDIT CARD PAYMENT FOR CAR LOAN"))
	s.Equal(models.CategoryHomeLoan, s.normalizer.Categorize("HOME LOAN VS PERSONAL LOAN TRANSFER"))
}

// ========================================
// Normalize Tests
// ========================================

func (s *NormalizerServiceTestSuite) TestNormalize_ParsesAndCategorizesFeed() {
	transactions := []models.Transaction{
		{Date: "2024-01-15", Description: "CREDIT CARD PAYMENT", Amount: decimal.NewFromInt(-5000)},
		{Date: "15/02/2024", Description: "HOME LOAN EMI", Amount: decimal.NewFromInt(-25000)},
	}

	normalized, err := s.normalizer.Normalize(transactions)

	s.NoError(err)
	s.Len(normalized, 2)
	s.Equal(models.CategoryCreditCard, normalized[0].Category)
	s.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), normalized[0].ParsedDate)
	s.Equal(models.CategoryHomeLoan, normalized[1].Category)
	s.Equal(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), normalized[1].ParsedDate)
}

func (s *NormalizerServiceTestSuite) TestNormalize_DropsRecordsWithUnparseableDates() {
	transactions := []models.Transaction{
		{Date: "2024-01-15", Description: "CREDIT CARD PAYMENT", Amount: decimal.NewFromInt(-5000)},
		{Date: "not-a-date", Description: "HOME LOAN EMI", Amount: decimal.NewFromInt(-25000)},
		{Date: "32/13/2024", Description: "PERSONAL LOAN EMI", Amount: decimal.NewFromInt(-8000)},
	}

	normalized, err := s.normalizer.Normalize(transactions)

	s.NoError(err)
	s.Len(normalized, 1)
	s.Equal(models.CategoryCreditCard, normalized[0].Category)
}

func (s *NormalizerServiceTestSuite) TestNormalize_EmptyFeed_ReturnsError() {
	normalized, err := s.normalizer.Normalize([]models.Transaction{})

	s.ErrorIs(err, services.ErrEmptyTransactionList)
	s.Nil(normalized)
}

func (s *NormalizerServiceTestSuite) TestNormalize_AllDatesUnparseable_ReturnsError() {
	transactions := []models.Transaction{
		{Date: "not-a-date", Description: "CREDIT CARD PAYMENT", Amount: decimal.NewFromInt(-5000)},
		{Date: "32/13/2024", Description: "HOME LOAN EMI", Amount: decimal.NewFromInt(-25000)},
	}

	normalized, err := s.normalizer.Normalize(transactions)

	s.ErrorIs(err, services.ErrNoValidDates)
	s.Nil(normalized)
}
