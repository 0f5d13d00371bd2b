// Package memo derives the QIF memo line of a bank transaction from its
// mutation kind, remittance notes and payee.
package memo

import (
	"fmt"
	"strings"

	"github.com/ledgerkit/ing2qif/internal/model"
)

// Markers found in ING remittance notes.
const (
	markerName        = "Naam: "
	markerReference   = "Kenmerk: "
	markerDescription = "Omschrijving: "
	markerIBAN        = "IBAN: "
	prefixSEPADebit   = "SEPA Incasso"
)

const (
	shortNotesLen = 32
	longNotesLen  = 64
)

var atmPrefixes = []string{"ING>", "ING BANK>", "OPL. CHIPKNIP"}

// MalformedRemittanceError is returned when a direct debit's notes lack the
// "Naam: ... Kenmerk: " structure the bank normally emits.
type MalformedRemittanceError struct {
	Category model.Category
	Notes    string
	Payee    string
}

func (e *MalformedRemittanceError) Error() string {
	return fmt.Sprintf("malformed %s remittance text: notes %q, payee %q", e.Category, e.Notes, e.Payee)
}

// strategy extracts a memo from notes and payee. ok == false falls back to
// the default memo.
type strategy func(notes, payee string) (memo string, ok bool, err error)

var strategies = map[model.Category]strategy{
	model.CategoryDiversen:          miscellaneous,
	model.CategoryBetaalautomaat:    atm,
	model.CategoryGeldautomaat:      atm,
	model.CategoryIncasso:           directDebit,
	model.CategoryInternetbankieren: transfer,
	model.CategoryOverschrijving:    transfer,
	model.CategoryVerzamelbetaling:  batchPayment,
}

// Resolve returns the memo for a transaction. The extracted text is trimmed
// and, when the category has a type label, prefixed with "<label> ".
func Resolve(c model.Category, notes, payee string) (string, error) {
	memo, ok := "", false
	if fn, found := strategies[c]; found {
		var err error
		memo, ok, err = fn(notes, payee)
		if err != nil {
			return "", err
		}
	}
	if !ok {
		memo = notes + " " + payee
	}
	memo = strings.TrimSpace(memo)

	if label, ok := Classify(c); ok {
		return label + " " + memo, nil
	}
	return memo, nil
}

// ForRecord resolves the memo of a record.
func ForRecord(rec *model.Record) (string, error) {
	c, err := rec.Category()
	if err != nil {
		return "", err
	}
	notes, err := rec.Notes()
	if err != nil {
		return "", err
	}
	payee, err := rec.Payee()
	if err != nil {
		return "", err
	}
	return Resolve(c, notes, payee)
}

func miscellaneous(notes, _ string) (string, bool, error) {
	return head(notes, longNotesLen), true, nil
}

func atm(notes, payee string) (string, bool, error) {
	for _, p := range atmPrefixes {
		if strings.HasPrefix(payee, p) {
			return payee, true, nil
		}
	}
	return head(notes, shortNotesLen), true, nil
}

func directDebit(notes, payee string) (string, bool, error) {
	if !strings.HasPrefix(payee, prefixSEPADebit) && !strings.HasPrefix(notes, prefixSEPADebit) {
		return "", false, nil
	}
	name, found := between(notes, markerName, markerReference)
	if !found {
		return "", false, &MalformedRemittanceError{Category: model.CategoryIncasso, Notes: notes, Payee: payee}
	}
	return name, true, nil
}

func transfer(notes, _ string) (string, bool, error) {
	name, found := between(notes, markerName, markerDescription, markerIBAN)
	return name, found, nil
}

func batchPayment(notes, payee string) (string, bool, error) {
	if !strings.Contains(notes, markerName) {
		return "", false, nil
	}
	name, found := between(notes, markerName, markerReference)
	if !found {
		return "", false, &MalformedRemittanceError{Category: model.CategoryVerzamelbetaling, Notes: notes, Payee: payee}
	}
	return name, true, nil
}

// between returns the text after the first occurrence of start up to the
// nearest following end marker. found is false when start or every end
// marker is missing.
func between(s, start string, ends ...string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	cut := -1
	for _, end := range ends {
		if j := strings.Index(rest, end); j >= 0 && (cut < 0 || j < cut) {
			cut = j
		}
	}
	if cut < 0 {
		return "", false
	}
	return rest[:cut], true
}

// head returns the first n characters of s.
func head(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
