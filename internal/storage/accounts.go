package storage

import (
	"context"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// CreateAccount inserts a new account and returns the stored row.
func (s *Store) CreateAccount(ctx context.Context, name, bankID, typeID string) (*model.Account, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
insert into accounts (id, name, bank_id, type_id)
values (?, ?, ?, ?)`, id, name, bankID, typeID)
	if err != nil {
		return nil, fmt.Errorf("inserting account: %w", err)
	}

	return &model.Account{ID: id, Name: name, BankID: bankID, TypeID: typeID}, nil
}

// ListAccounts returns all accounts, optionally filtered to one bank.
func (s *Store) ListAccounts(ctx context.Context, bankID *string) ([]*model.Account, error) {
	query := "select id, name, bank_id, type_id from accounts"
	var args []any
	if bankID != nil {
		query += " where bank_id = ?"
		args = append(args, *bankID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.BankID, &a.TypeID); err != nil {
			return nil, fmt.Errorf("listing accounts: %w", err)
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

// LookupAccountName returns the display name of the account with the
// given id.
func (s *Store) LookupAccountName(ctx context.Context, accountID string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, "select name from accounts where id = ?", accountID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("looking up account %s: %w", accountID, err)
	}
	return name, nil
}

// CreateAccountType inserts a new account type and returns the stored row.
func (s *Store) CreateAccountType(ctx context.Context, name string) (*model.AccountType, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, "insert into account_types (id, name) values (?, ?)", id, name)
	if err != nil {
		return nil, fmt.Errorf("inserting account type: %w", err)
	}

	return &model.AccountType{ID: id, Name: name}, nil
}

// ListAccountTypes returns all account types.
func (s *Store) ListAccountTypes(ctx context.Context) ([]*model.AccountType, error) {
	rows, err := s.db.QueryContext(ctx, "select id, name from account_types")
	if err != nil {
		return nil, fmt.Errorf("listing account types: %w", err)
	}
	defer rows.Close()

	var types []*model.AccountType
	for rows.Next() {
		var at model.AccountType
		if err := rows.Scan(&at.ID, &at.Name); err != nil {
			return nil, fmt.Errorf("listing account types: %w", err)
		}
		types = append(types, &at)
	}
	return types, rows.Err()
}
