package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a raw bank transaction record as supplied by the upstream
// data processor. Date is free-form text; normalization happens downstream.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NormalizedTransaction is a transaction whose date text parsed against one of
// the recognized formats and which has been tagged with a product category.
// Records that fail every date format never become NormalizedTransactions.
type NormalizedTransaction struct {
	Transaction
	ParsedDate time.Time `json:"parsed_date"`
	Category   Category  `json:"category"`
}

// AbsAmount returns the transaction amount with the sign stripped. Upstream
// feeds encode credit card payments as debits, so magnitude is what matters.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}
