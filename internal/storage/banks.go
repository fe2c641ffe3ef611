package storage

import (
	"context"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// CreateBank inserts a new bank and returns the stored row.
func (s *Store) CreateBank(ctx context.Context, name string) (*model.Bank, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, "insert into banks (id, name) values (?, ?)", id, name)
	if err != nil {
		return nil, fmt.Errorf("inserting bank: %w", err)
	}

	return &model.Bank{ID: id, Name: name}, nil
}

// ListBanks returns all banks.
func (s *Store) ListBanks(ctx context.Context) ([]*model.Bank, error) {
	rows, err := s.db.QueryContext(ctx, "select id, name from banks")
	if err != nil {
		return nil, fmt.Errorf("listing banks: %w", err)
	}
	defer rows.Close()

	var banks []*model.Bank
	for rows.Next() {
		var b model.Bank
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("listing banks: %w", err)
		}
		banks = append(banks, &b)
	}
	return banks, rows.Err()
}
