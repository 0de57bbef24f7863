package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

type transactionGenerator struct {
	faker *gofakeit.Faker
}

// amountRanges holds the realistic monthly payment range per product type,
// in rupees.
var amountRanges = map[models.Category][2]float64{
	models.CategoryCreditCard:      {2000, 25000},
	models.CategoryHomeLoan:        {15000, 60000},
	models.CategoryCarLoan:         {8000, 20000},
	models.CategorySecuredLoan:     {5000, 30000},
	models.CategoryPersonalLoan:    {3000, 15000},
	models.CategoryEducationLoan:   {4000, 12000},
	models.CategoryLifeInsurance:   {1000, 8000},
	models.CategoryHealthInsurance: {800, 5000},
	models.CategoryOther:           {100, 3000},
}

var descriptionTemplates = map[models.Category][]string{
	models.CategoryCreditCard:      {"CREDIT CARD PAYMENT %s BANK", "CC PAYMENT AUTOPAY %s"},
	models.CategoryHomeLoan:        {"HOME LOAN EMI %s HOUSING FIN", "HOUSING LOAN EMI %s"},
	models.CategoryCarLoan:         {"CAR LOAN EMI PAYMENT %s", "AUTO LOAN EMI %s FINANCE"},
	models.CategorySecuredLoan:     {"GOLD LOAN INTEREST %s", "LOAN AGAINST PROPERTY EMI %s"},
	models.CategoryPersonalLoan:    {"PERSONAL LOAN EMI %s", "PERSONAL LOAN REPAYMENT %s"},
	models.CategoryEducationLoan:   {"EDUCATION LOAN EMI %s", "STUDENT LOAN PAYMENT %s"},
	models.CategoryLifeInsurance:   {"LIFE INSURANCE PREMIUM %s", "TERM INSURANCE RENEWAL %s"},
	models.CategoryHealthInsurance: {"HEALTH INSURANCE PREMIUM %s", "MEDICLAIM RENEWAL %s"},
	models.CategoryOther:           {"UPI TRANSFER %s", "POS PURCHASE %s"},
}

// NewTransactionGenerator creates a generator producing realistic EMI and
// premium feeds for the dev endpoint and tests.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateFeed produces a mixed feed covering the requested categories, one
// monthly payment per category over the given number of months, ending today.
func (g *transactionGenerator) GenerateFeed(months int, categories []models.Category) []models.Transaction {
	if months < 1 {
		months = 1
	}

	start := time.Now().AddDate(0, -months+1, 0)

	var feed []models.Transaction
	for _, category := range categories {
		feed = append(feed, g.GenerateMonthlyPayments(category, start, months)...)
	}

	return feed
}

// GenerateMonthlyPayments produces one payment per month for a category, with
// a stable amount jittered slightly month to month the way real EMIs drift.
func (g *transactionGenerator) GenerateMonthlyPayments(category models.Category, start time.Time, months int) []models.Transaction {
	baseAmount := g.GenerateAmount(category)
	description := g.GenerateDescription(category)

	transactions := make([]models.Transaction, 0, months)
	for i := 0; i < months; i++ {
		amount := baseAmount
		if category == models.CategoryCreditCard || category == models.CategoryOther {
			// Card bills vary; EMIs and premiums do not
			amount = baseAmount * g.faker.Float64Range(0.7, 1.3)
		}

		transactions = append(transactions, models.Transaction{
			Date:        start.AddDate(0, i, 0).Format("2006-01-02"),
			Description: description,
			Amount:      decimal.NewFromFloat(amount).Round(2).Neg(),
		})
	}

	return transactions
}

// GenerateAmount picks a plausible payment amount for a category.
func (g *transactionGenerator) GenerateAmount(category models.Category) float64 {
	bounds, ok := amountRanges[category]
	if !ok {
		bounds = amountRanges[models.CategoryOther]
	}
	return g.faker.Float64Range(bounds[0], bounds[1])
}

// GenerateDescription picks a statement-style description for a category.
func (g *transactionGenerator) GenerateDescription(category models.Category) string {
	templates, ok := descriptionTemplates[category]
	if !ok {
		templates = descriptionTemplates[models.CategoryOther]
	}
	template := templates[g.faker.IntRange(0, len(templates)-1)]
	return fmt.Sprintf(template, g.faker.LetterN(4))
}
