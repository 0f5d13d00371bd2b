package qif

import (
	"github.com/ledgerkit/ing2qif/internal/memo"
	"github.com/ledgerkit/ing2qif/internal/model"
)

// Line tags and fixed lines of a bank-type QIF entry.
const (
	TagDate         = "D"
	TagTotal        = "T"
	TagClearedTotal = "U"
	TagPayee        = "P"
	TagMemo         = "M"

	ClearedLine    = "Cc"
	NumberLine     = "N"
	EndOfEntryLine = "^"
)

// Entry is one transaction of a QIF document.
type Entry struct {
	Position int    // 1-based row number in the source export
	Date     string // DD/MM/YYYY
	Credit   bool
	Amount   string // normalized, without sign
	Payee    string
	Memo     string
}

// SignedAmount returns the amount prefixed with "+" for credits and "-"
// otherwise.
func (e Entry) SignedAmount() string {
	if e.Credit {
		return "+" + e.Amount
	}
	return "-" + e.Amount
}

// Lines returns the QIF lines of the entry, terminator included.
func (e Entry) Lines() []string {
	amount := e.SignedAmount()
	return []string{
		TagDate + e.Date,
		TagTotal + amount,
		TagClearedTotal + amount,
		TagPayee + e.Payee,
		TagMemo + e.Memo,
		ClearedLine,
		NumberLine,
		EndOfEntryLine,
	}
}

// BuildEntry converts a bank record into a QIF entry.
func BuildEntry(rec *model.Record) (Entry, error) {
	date, err := rec.Date()
	if err != nil {
		return Entry{}, err
	}
	credit, err := rec.IsCredit()
	if err != nil {
		return Entry{}, err
	}
	amount, err := rec.Amount()
	if err != nil {
		return Entry{}, err
	}
	payee, err := rec.Payee()
	if err != nil {
		return Entry{}, err
	}
	m, err := memo.ForRecord(rec)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Date:   FormatDate(date),
		Credit: credit,
		Amount: amount,
		Payee:  payee,
		Memo:   m,
	}, nil
}

// FormatDate rewrites YYYYMMDD as DD/MM/YYYY by character position. The
// input is not validated; short input yields short parts.
func FormatDate(s string) string {
	r := []rune(s)
	return slice(r, 6, 8) + "/" + slice(r, 4, 6) + "/" + slice(r, 0, 4)
}

func slice(r []rune, from, to int) string {
	if from > len(r) {
		return ""
	}
	if to > len(r) {
		to = len(r)
	}
	return string(r[from:to])
}
