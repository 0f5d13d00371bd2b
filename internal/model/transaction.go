package model

import (
	"fmt"
	"sort"
	"strings"
)

// Row is one data row of a bank export, keyed by header column name.
type Row map[string]string

// MissingFieldError reports a lookup of a column that is not present in a row.
type MissingFieldError struct {
	Field     string
	Available []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q not found in record, available fields: %s", e.Field, strings.Join(e.Available, ", "))
}

// Record wraps a Row and carries the amount with a decimal point separator.
type Record struct {
	row       Row
	cols      Columns
	amount    string
	hasAmount bool
}

// NewRecord normalizes the amount column of row. The row is not copied and
// must not be modified afterwards.
func NewRecord(row Row, cols Columns) *Record {
	r := &Record{row: row, cols: cols}
	if v, ok := row[cols.Amount]; ok {
		r.amount = strings.ReplaceAll(v, ",", ".")
		r.hasAmount = true
	}
	return r
}

// Field returns the raw value of the named column.
func (r *Record) Field(name string) (string, error) {
	v, ok := r.row[name]
	if !ok {
		return "", &MissingFieldError{Field: name, Available: r.Keys()}
	}
	return v, nil
}

// Keys returns the column names of the underlying row, sorted.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.row))
	for k := range r.row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Amount returns the normalized amount ("12,50" -> "12.50").
func (r *Record) Amount() (string, error) {
	if !r.hasAmount {
		return "", &MissingFieldError{Field: r.cols.Amount, Available: r.Keys()}
	}
	return r.amount, nil
}

// Date returns the raw YYYYMMDD date column.
func (r *Record) Date() (string, error) { return r.Field(r.cols.Date) }

// Payee returns the counterparty / description column.
func (r *Record) Payee() (string, error) { return r.Field(r.cols.Payee) }

// Notes returns the free-text remittance column.
func (r *Record) Notes() (string, error) { return r.Field(r.cols.Notes) }

// Direction returns the debit/credit indicator column.
func (r *Record) Direction() (string, error) { return r.Field(r.cols.Direction) }

// Category returns the mutation kind column.
func (r *Record) Category() (Category, error) {
	v, err := r.Field(r.cols.Category)
	if err != nil {
		return "", err
	}
	return Category(v), nil
}

// IsCredit reports whether the direction column holds the credit marker.
func (r *Record) IsCredit() (bool, error) {
	d, err := r.Direction()
	if err != nil {
		return false, err
	}
	return d == r.cols.CreditMarker, nil
}
