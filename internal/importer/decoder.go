package importer

import (
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

// Layout maps column indices of a delimited bank export onto transaction
// fields. Exports are decoded by position, not by header name.
type Layout struct {
	DateColumn        int
	DescriptionColumn int
	AmountColumn      int
	StatusColumn      int
	DateFormat        string
}

// DefaultLayout matches the export format this tool was built around:
// date in column 0, description in column 2, amount in column 4, status in
// column 5, dates written as YYYY-MM-DD. Columns 1 and 3 are ignored.
func DefaultLayout() Layout {
	return Layout{
		DateColumn:        0,
		DescriptionColumn: 2,
		AmountColumn:      4,
		StatusColumn:      5,
		DateFormat:        "2006-01-02",
	}
}

// minColumns returns the narrowest row the layout can decode.
func (l Layout) minColumns() int {
	last := l.DateColumn
	for _, c := range []int{l.DescriptionColumn, l.AmountColumn, l.StatusColumn} {
		if c > last {
			last = c
		}
	}
	return last + 1
}

// Decoder converts rows of a bank export into pending transactions.
type Decoder struct {
	layout Layout
}

// NewDecoder creates a Decoder for the given column layout.
func NewDecoder(layout Layout) Decoder {
	return Decoder{layout: layout}
}

// Decode maps one row onto a PendingTransaction. A short row or an
// unparseable date is an error; the amount field goes through
// money.ParseCents, whose lenient policy is surfaced through exact rather
// than an error.
func (d Decoder) Decode(row []string) (pending model.PendingTransaction, exact bool, err error) {
	if len(row) < d.layout.minColumns() {
		return model.PendingTransaction{}, false,
			fmt.Errorf("expected at least %d columns, got %d", d.layout.minColumns(), len(row))
	}

	date, err := time.Parse(d.layout.DateFormat, row[d.layout.DateColumn])
	if err != nil {
		return model.PendingTransaction{}, false,
			fmt.Errorf("parsing date %q: %w", row[d.layout.DateColumn], err)
	}

	cents, exact := money.ParseCents(row[d.layout.AmountColumn])

	return model.PendingTransaction{
		TransactionDate: date,
		Description:     row[d.layout.DescriptionColumn],
		AmountCents:     cents,
		Status:          row[d.layout.StatusColumn],
	}, exact, nil
}
