package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

var (
	ErrEmptyTransactionList = errors.New("transaction list is empty")
	ErrNoValidDates         = errors.New("no transaction has a parseable date")
)

// dateFormats is the ordered list of accepted date layouts. The first layout
// that fully matches the trimmed text wins.
var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02.01.2006",
}

// categoryRule pairs a category with the description keywords that select it.
type categoryRule struct {
	category models.Category
	keywords []string
}

type normalizerService struct {
	// rules are evaluated in declaration order; precedence matters because a
	// description like "CAR LOAN EMI PAYMENT" contains several keywords
	rules []categoryRule
}

// NewNormalizerService creates a NormalizerServiceInterface with the fixed
// category precedence.
func NewNormalizerService() NormalizerServiceInterface {
	return &normalizerService{
		rules: []categoryRule{
			{models.CategoryCreditCard, []string{"credit card", "creditcard", "cc payment", "card payment"}},
			{models.CategoryHomeLoan, []string{"home loan", "housing loan", "mortgage"}},
			{models.CategoryCarLoan, []string{"car loan", "auto loan", "vehicle loan"}},
			{models.CategorySecuredLoan, []string{"gold loan", "loan against property", "secured loan"}},
			{models.CategoryPersonalLoan, []string{"personal loan"}},
			{models.CategoryEducationLoan, []string{"education loan", "student loan", "study loan"}},
			{models.CategoryLifeInsurance, []string{"life insurance", "term insurance", "lic premium"}},
			{models.CategoryHealthInsurance, []string{"health insurance", "medical insurance", "mediclaim"}},
		},
	}
}

// Normalize parses every record's date against the ordered format list and
// tags it with a category. Records failing all formats are dropped silently;
// malformed dates are expected in real feeds and are not an error. An empty
// input list or a feed where every date fails is terminal.
func (s *normalizerService) Normalize(transactions []models.Transaction) ([]models.NormalizedTransaction, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyTransactionList
	}

	normalized := make([]models.NormalizedTransaction, 0, len(transactions))
	dropped := 0

	for _, txn := range transactions {
		parsedDate, ok := s.ParseDate(txn.Date)
		if !ok {
			dropped++
			continue
		}

		normalized = append(normalized, models.NormalizedTransaction{
			Transaction: txn,
			ParsedDate:  parsedDate,
			Category:    s.Categorize(txn.Description),
		})
	}

	if len(normalized) == 0 {
		return nil, ErrNoValidDates
	}

	if dropped > 0 {
		slog.Debug("dropped transactions with unparseable dates",
			"dropped", dropped,
			"retained", len(normalized))
	}

	return normalized, nil
}

// ParseDate attempts the ordered format list against the trimmed date text.
func (s *normalizerService) ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range dateFormats {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// Categorize matches the case-normalized description against the rule list in
// fixed priority order, returning the first match.
func (s *normalizerService) Categorize(description string) models.Category {
	normalized := strings.ToLower(description)

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.category
			}
		}
	}

	return models.CategoryOther
}
