// Package importer reads delimited bank exports and turns their rows into
// stored transactions.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tally-dev/tally/internal/model"
)

// Store is the persistence collaborator the pipeline writes to. Insert
// assigns the stored record's identifier; the pipeline never mints ids.
type Store interface {
	InsertTransaction(ctx context.Context, pending model.PendingTransaction, accountID string) (*model.Transaction, error)
}

// Service ingests bank CSV exports into a Store.
//
// Failure handling is two-tier: amount-level noise is tolerated (see
// money.ParseCents) and only logged, while structural row errors — bad
// dates, short rows, persistence failures — abort the whole load. Rows
// stored before an abort stay committed; there is no rollback.
type Service struct {
	store Store
	dec   Decoder
	log   logrus.FieldLogger
}

// NewService creates an ingestion Service using the given column layout.
func NewService(store Store, layout Layout, log logrus.FieldLogger) *Service {
	return &Service{store: store, dec: NewDecoder(layout), log: log}
}

// LoadFromFile opens path and ingests its rows against accountID,
// returning the number of transactions stored.
func (s *Service) LoadFromFile(ctx context.Context, accountID, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	count, err := s.Load(ctx, f, accountID)
	if err != nil {
		return count, err
	}
	s.log.WithFields(logrus.Fields{
		"file":    path,
		"account": accountID,
		"count":   count,
	}).Info("loaded transactions")
	return count, nil
}

// Load ingests comma-separated rows from r against accountID. Rows are
// processed strictly in order, one at a time; every row is data (no header
// skipping). The first decode or persistence failure aborts the load and
// is returned with the failing row's position.
func (s *Service) Load(ctx context.Context, r io.Reader, accountID string) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked per row by the decoder

	count := 0
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("reading row %d: %w", row, err)
		}

		pending, exact, err := s.dec.Decode(rec)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", row, err)
		}
		if !exact {
			s.log.WithFields(logrus.Fields{
				"row":    row,
				"amount": rec[s.dec.layout.AmountColumn],
			}).Warn("malformed amount segment read as zero")
		}

		stored, err := s.store.InsertTransaction(ctx, pending, accountID)
		if err != nil {
			return count, fmt.Errorf("storing row %d: %w", row, err)
		}
		count++

		s.log.WithFields(logrus.Fields{
			"row":         row,
			"id":          stored.ID,
			"date":        pending.TransactionDate.Format(s.dec.layout.DateFormat),
			"amountCents": pending.AmountCents,
		}).Debug("stored transaction")
	}
}
