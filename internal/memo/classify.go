package memo

import "github.com/ledgerkit/ing2qif/internal/model"

// Transaction type labels prefixed to the memo.
const (
	LabelATM      = "ATM"
	LabelTransfer = "Transfer"
	LabelDeposit  = "Deposit"
)

var typeLabels = map[model.Category]string{
	model.CategoryGeldautomaat:      LabelATM,
	model.CategoryBetaalautomaat:    LabelATM,
	model.CategoryInternetbankieren: LabelTransfer,
	model.CategoryIncasso:           LabelTransfer,
	model.CategoryVerzamelbetaling:  LabelTransfer,
	model.CategoryStorting:          LabelDeposit,
}

// Classify returns the transaction type label for a category. Categories
// without a label report ok == false.
func Classify(c model.Category) (label string, ok bool) {
	label, ok = typeLabels[c]
	return label, ok
}
