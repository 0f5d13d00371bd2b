// Package qif builds Quicken Interchange Format bank documents from bank
// export records.
package qif

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit/ing2qif/internal/model"
)

// Header is the first line of a bank account QIF document.
const Header = "!Type:Bank"

// RowSource yields export rows in order and returns io.EOF when exhausted.
type RowSource interface {
	Next() (model.Row, error)
}

// Window selects a contiguous range of rows. Start is 1-based; Number == 0
// means no limit.
type Window struct {
	Start  int
	Number int
}

// Validate rejects negative bounds. A Start of 0 is treated as 1.
func (w Window) Validate() error {
	if w.Start < 0 {
		return fmt.Errorf("start must be >= 1, got %d", w.Start)
	}
	if w.Number < 0 {
		return fmt.Errorf("number must be >= 0, got %d", w.Number)
	}
	return nil
}

func (w Window) first() int {
	if w.Start < 1 {
		return 1
	}
	return w.Start
}

// Document is an ordered list of entries under the bank header.
type Document struct {
	Entries []Entry
}

// Add appends an entry.
func (d *Document) Add(e Entry) {
	d.Entries = append(d.Entries, e)
}

// Serialize renders the document as newline-joined lines, without a trailing
// newline.
func (d *Document) Serialize() string {
	blocks := make([]string, 0, len(d.Entries)+1)
	blocks = append(blocks, Header)
	for _, e := range d.Entries {
		blocks = append(blocks, strings.Join(e.Lines(), "\n"))
	}
	return strings.Join(blocks, "\n")
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Serialize())
	return int64(n), err
}

// Assemble reads rows from src, keeps those inside win and converts each one
// into an entry. Reading stops as soon as the window is full. The first
// failing row aborts assembly.
func Assemble(src RowSource, cols model.Columns, win Window) (*Document, error) {
	if err := win.Validate(); err != nil {
		return nil, err
	}
	start := win.first()

	doc := &Document{}
	for pos := 1; win.Number == 0 || len(doc.Entries) < win.Number; pos++ {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if pos < start {
			continue
		}

		entry, err := BuildEntry(model.NewRecord(row, cols))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", pos, err)
		}
		entry.Position = pos
		doc.Add(entry)
	}
	return doc, nil
}

// Totals summarizes the amounts of a document.
type Totals struct {
	Count   int
	Credits decimal.Decimal
	Debits  decimal.Decimal
}

// Net returns credits minus debits.
func (t Totals) Net() decimal.Decimal {
	return t.Credits.Sub(t.Debits)
}

// Totals sums credit and debit amounts of all entries.
func (d *Document) Totals() (Totals, error) {
	t := Totals{Count: len(d.Entries), Credits: decimal.Zero, Debits: decimal.Zero}
	for _, e := range d.Entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return Totals{}, fmt.Errorf("record %d: parsing amount %q: %w", e.Position, e.Amount, err)
		}
		if e.Credit {
			t.Credits = t.Credits.Add(amount)
		} else {
			t.Debits = t.Debits.Add(amount)
		}
	}
	return t, nil
}
