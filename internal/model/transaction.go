package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a raw spend/income record. This subsystem only ever reads
// transactions; budget mutations never touch them.
//
// Historical records are inconsistently populated: some carry a CategoryID,
// some only a free-text Category, and some lack a Date (falling back to
// CreatedAt). Matching logic has to tolerate all of these.
type Transaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	FamilyID   string          `json:"familyId,omitempty"`
	Category   string          `json:"category"`
	CategoryID string          `json:"categoryId,omitempty"`
	Type       TransactionType `json:"type"`
	Amount     float64         `json:"amount"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// OccurredAt returns the accounting date of the transaction: the explicit
// Date when present, otherwise the record's creation time.
func (t *Transaction) OccurredAt() time.Time {
	if !t.Date.IsZero() {
		return t.Date
	}
	return t.CreatedAt
}

// IsExpense reports whether the transaction counts toward spend.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionExpense
}
