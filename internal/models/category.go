package models

// Category is the closed set of credit product classifications a transaction
// can be tagged with. Free-form category strings are not representable.
type Category string

const (
	CategoryCreditCard      Category = "CREDIT_CARD"
	CategoryHomeLoan        Category = "HOME_LOAN"
	CategoryCarLoan         Category = "CAR_LOAN"
	CategorySecuredLoan     Category = "SECURED_LOAN"
	CategoryPersonalLoan    Category = "PERSONAL_LOAN"
	CategoryEducationLoan   Category = "EDUCATION_LOAN"
	CategoryLifeInsurance   Category = "LIFE_INSURANCE"
	CategoryHealthInsurance Category = "HEALTH_INSURANCE"
	CategoryOther           Category = "OTHER"
)

// AllCategories returns every valid category in fixed declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryCreditCard,
		CategoryHomeLoan,
		CategoryCarLoan,
		CategorySecuredLoan,
		CategoryPersonalLoan,
		CategoryEducationLoan,
		CategoryLifeInsurance,
		CategoryHealthInsurance,
		CategoryOther,
	}
}

// CreditMixCategories returns the seven product types that count toward the
// credit mix factor. Secured loans and uncategorized transactions are excluded.
func CreditMixCategories() []Category {
	return []Category{
		CategoryCreditCard,
		CategoryHomeLoan,
		CategoryCarLoan,
		CategoryPersonalLoan,
		CategoryEducationLoan,
		CategoryLifeInsurance,
		CategoryHealthInsurance,
	}
}

// PaymentHistoryCategories returns the loan and card product types whose
// transactions form the payment history evidence pool.
func PaymentHistoryCategories() []Category {
	return []Category{
		CategoryCreditCard,
		CategoryHomeLoan,
		CategoryCarLoan,
		CategoryPersonalLoan,
		CategoryEducationLoan,
	}
}

// IsValidCategory checks if a category value is a member of the closed set.
func IsValidCategory(category Category) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
