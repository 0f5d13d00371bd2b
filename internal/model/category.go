package model

// Category is the bank's mutation kind ("Mutatiesoort") of a transaction.
type Category string

const (
	CategoryDiversen          Category = "Diversen"
	CategoryBetaalautomaat    Category = "Betaalautomaat"
	CategoryGeldautomaat      Category = "Geldautomaat"
	CategoryIncasso           Category = "Incasso"
	CategoryInternetbankieren Category = "Internetbankieren"
	CategoryOverschrijving    Category = "Overschrijving"
	CategoryVerzamelbetaling  Category = "Verzamelbetaling"
	CategoryStorting          Category = "Storting"
)

// Columns names the source columns a Record reads.
type Columns struct {
	Date         string `yaml:"date"`
	Payee        string `yaml:"payee"`
	Direction    string `yaml:"direction"`
	Amount       string `yaml:"amount"`
	Category     string `yaml:"category"`
	Notes        string `yaml:"notes"`
	CreditMarker string `yaml:"credit_marker"`
}

// DefaultColumns returns the column names of the ING current account export.
func DefaultColumns() Columns {
	return Columns{
		Date:         "Datum",
		Payee:        "Naam / Omschrijving",
		Direction:    "Af Bij",
		Amount:       "Bedrag (EUR)",
		Category:     "Mutatiesoort",
		Notes:        "Mededelingen",
		CreditMarker: "Bij",
	}
}
