package model

import "time"

// PendingTransaction is a decoded bank-export row that has not been
// persisted yet. Amounts are exact integer minor units (cents); no
// floating-point representation of money exists anywhere in the pipeline.
type PendingTransaction struct {
	TransactionDate time.Time // calendar date, no time component
	Description     string
	AmountCents     int64
	Status          string // free-text label, e.g. "pending" or "cleared"
}

// Transaction is a persisted transaction. The ID is assigned by the store
// at insert time and never changes; AccountName is resolved by joining
// against the accounts table at read time.
type Transaction struct {
	ID              string
	AccountName     string
	TransactionDate time.Time
	Description     string
	AmountCents     int64
	Status          string
}
