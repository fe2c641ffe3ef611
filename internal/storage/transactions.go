package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/model"
)

// transactionQuery selects transactions joined with their account's
// display name.
const transactionQuery = `
select t.id, a.name, t.transaction_date, t.description, t.amount_cents, t.status
from transactions t
join accounts a on t.account_id = a.id`

// InsertTransaction persists a pending transaction against accountID,
// assigning it a new time-ordered id, and returns the stored record. The
// account is not pre-checked; inserting against an unknown account fails
// on the foreign key constraint.
func (s *Store) InsertTransaction(ctx context.Context, pending model.PendingTransaction, accountID string) (*model.Transaction, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
insert into transactions (id, account_id, transaction_date, description, amount_cents, status)
values (?, ?, ?, ?, ?, ?)`,
		id,
		accountID,
		pending.TransactionDate.Format(dateFormat),
		pending.Description,
		pending.AmountCents,
		pending.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}

	return s.GetTransaction(ctx, id)
}

// GetTransaction returns a stored transaction by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, transactionQuery+" where t.id = ?", id)

	txn, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %s: %w", id, err)
	}
	return txn, nil
}

// ListTransactions returns all stored transactions.
func (s *Store) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, transactionQuery)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []*model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("listing transactions: %w", err)
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var txn model.Transaction
	var date string
	err := row.Scan(&txn.ID, &txn.AccountName, &date, &txn.Description, &txn.AmountCents, &txn.Status)
	if err != nil {
		return nil, err
	}
	txn.TransactionDate, err = time.Parse(dateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("parsing stored date %q: %w", date, err)
	}
	return &txn, nil
}
