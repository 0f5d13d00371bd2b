package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ledgerkit/ing2qif/internal/model"
)

const utf8BOM = "\ufeff"

// INGParser reads ING current account CSV exports ("Datum","Naam /
// Omschrijving",...). Rows are returned keyed by the header row.
type INGParser struct{}

// Format returns the parser name.
func (p *INGParser) Format() string { return "ing" }

// Open reads the header row and returns a reader over the data rows.
func (p *INGParser) Open(r io.Reader, opts Options) (RowReader, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, []byte(utf8BOM)) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &csvRows{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ing CSV header: %w", err)
	}
	return &csvRows{cr: cr, header: header}, nil
}

type csvRows struct {
	cr     *csv.Reader
	header []string
	line   int
}

// Next returns the next data row, or io.EOF. Cells missing from a short row
// are absent from the returned Row; cells beyond the header are dropped.
func (c *csvRows) Next() (model.Row, error) {
	if c.cr == nil {
		return nil, io.EOF
	}
	rec, err := c.cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	c.line++
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", c.line+1, err)
	}

	row := make(model.Row, len(c.header))
	for i, name := range c.header {
		if i >= len(rec) {
			break
		}
		row[name] = rec[i]
	}
	return row, nil
}
