package model

// Bank is a financial institution that accounts belong to.
type Bank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AccountType classifies accounts (checking, savings, credit card, ...).
type AccountType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account is a single account held at a bank.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	BankID string `json:"bank_id"`
	TypeID string `json:"type_id"`
}
