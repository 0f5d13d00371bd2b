package memo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/ing2qif/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category model.Category
		want     string
		ok       bool
	}{
		{model.CategoryGeldautomaat, "ATM", true},
		{model.CategoryBetaalautomaat, "ATM", true},
		{model.CategoryInternetbankieren, "Transfer", true},
		{model.CategoryIncasso, "Transfer", true},
		{model.CategoryVerzamelbetaling, "Transfer", true},
		{model.CategoryStorting, "Deposit", true},
		{model.CategoryDiversen, "", false},
		{model.CategoryOverschrijving, "", false},
		{"UnknownFutureCode", "", false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.category)
		assert.Equal(t, tt.ok, ok, "Classify(%q) ok", tt.category)
		assert.Equal(t, tt.want, got, "Classify(%q)", tt.category)
	}
}

func TestResolve_Diversen(t *testing.T) {
	notes := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$"
	require.Len(t, notes, 66)

	got, err := Resolve(model.CategoryDiversen, notes[:65], "Payee")
	require.NoError(t, err)
	assert.Equal(t, notes[:64], got)
}

func TestResolve_DiversenCountsCharacters(t *testing.T) {
	notes := strings.Repeat("é", 70)
	got, err := Resolve(model.CategoryDiversen, notes, "")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 64), got)
}

func TestResolve_ATMOperatorPayee(t *testing.T) {
	for _, payee := range []string{"ING>Main St", "ING BANK>Station", "OPL. CHIPKNIP Utrecht"} {
		got, err := Resolve(model.CategoryGeldautomaat, "anything at all", payee)
		require.NoError(t, err)
		assert.Equal(t, "ATM "+payee, got)
	}
}

func TestResolve_ATMOtherPayee(t *testing.T) {
	notes := "some remittance info longer than 32 chars exactly"
	got, err := Resolve(model.CategoryGeldautomaat, notes, "Shop")
	require.NoError(t, err)
	assert.Equal(t, "ATM "+notes[:32], got)

	got, err = Resolve(model.CategoryBetaalautomaat, "Pasvolgnr:001 12-01-2014 14:02", "Albert Heijn 1234")
	require.NoError(t, err)
	assert.Equal(t, "ATM Pasvolgnr:001 12-01-2014 14:02", got)
}

func TestResolve_Incasso(t *testing.T) {
	got, err := Resolve(model.CategoryIncasso, "SEPA Incasso algemeen doorlopend Naam: Acme Corp Kenmerk: 123", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Acme Corp", got)

	got, err = Resolve(model.CategoryIncasso, "Naam: Water Co Kenmerk: 998 Omschrijving: maart", "SEPA Incasso Water Co")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Water Co", got)
}

func TestResolve_IncassoMissingReference(t *testing.T) {
	notes := "SEPA Incasso algemeen doorlopend Naam: Acme Corp Machtiging: 55"
	_, err := Resolve(model.CategoryIncasso, notes, "Acme")
	require.Error(t, err)

	var malformed *MalformedRemittanceError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, notes, malformed.Notes)
	assert.Equal(t, "Acme", malformed.Payee)
	assert.Equal(t, model.CategoryIncasso, malformed.Category)
}

func TestResolve_IncassoMissingName(t *testing.T) {
	_, err := Resolve(model.CategoryIncasso, "SEPA Incasso Kenmerk: 1", "Acme")
	var malformed *MalformedRemittanceError
	assert.ErrorAs(t, err, &malformed)
}

func TestResolve_IncassoWithoutSEPAPrefix(t *testing.T) {
	got, err := Resolve(model.CategoryIncasso, "Machtiging 12 ", "Old Style Debit")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Machtiging 12  Old Style Debit", got)
}

func TestResolve_Transfer(t *testing.T) {
	tests := []struct {
		name     string
		category model.Category
		notes    string
		want     string
	}{
		{
			name:     "description marker",
			category: model.CategoryInternetbankieren,
			notes:    "Naam: J. Jansen Omschrijving: huur IBAN: NL00INGB0001234567",
			want:     "Transfer J. Jansen",
		},
		{
			name:     "iban marker only",
			category: model.CategoryInternetbankieren,
			notes:    "Naam: Energie BV IBAN: NL00INGB0001234567",
			want:     "Transfer Energie BV",
		},
		{
			name:     "iban before description",
			category: model.CategoryInternetbankieren,
			notes:    "Naam: P. Pietersen IBAN: NL00INGB0001234567 Omschrijving: lunch",
			want:     "Transfer P. Pietersen",
		},
		{
			name:     "description marker without space is not an end marker",
			category: model.CategoryInternetbankieren,
			notes:    "Naam: A. de Vries Omschrijving:borrel IBAN: NL00INGB0001234567",
			want:     "Transfer A. de Vries Omschrijving:borrel",
		},
		{
			name:     "overschrijving has no label",
			category: model.CategoryOverschrijving,
			notes:    "Naam: Huisbaas Omschrijving: huur",
			want:     "Huisbaas",
		},
		{
			name:     "missing name falls back",
			category: model.CategoryInternetbankieren,
			notes:    "Omschrijving: spaarrekening",
			want:     "Transfer Omschrijving: spaarrekening Oranje Spaarrekening",
		},
		{
			name:     "missing end marker falls back",
			category: model.CategoryOverschrijving,
			notes:    "Naam: Iemand",
			want:     "Naam: Iemand Oranje Spaarrekening",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.category, tt.notes, "Oranje Spaarrekening")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Verzamelbetaling(t *testing.T) {
	got, err := Resolve(model.CategoryVerzamelbetaling, "Naam: Belastingdienst Kenmerk: 1234567890", "BELASTINGDIENST")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Belastingdienst", got)

	got, err = Resolve(model.CategoryVerzamelbetaling, "Salaris januari", "Werkgever BV")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Salaris januari Werkgever BV", got)

	_, err = Resolve(model.CategoryVerzamelbetaling, "Naam: Belastingdienst", "BELASTINGDIENST")
	var malformed *MalformedRemittanceError
	assert.ErrorAs(t, err, &malformed)
}

func TestResolve_UnknownCategory(t *testing.T) {
	got, err := Resolve("UnknownFutureCode", "some notes", "Some Payee")
	require.NoError(t, err)
	assert.Equal(t, "some notes Some Payee", got)
}

func TestResolve_TrimsWithoutLabel(t *testing.T) {
	got, err := Resolve("UnknownFutureCode", "", "Payee  ")
	require.NoError(t, err)
	assert.Equal(t, "Payee", got)
}

func TestResolve_StortingUsesDefault(t *testing.T) {
	got, err := Resolve(model.CategoryStorting, "Storting contant", "ING BANK")
	require.NoError(t, err)
	assert.Equal(t, "Deposit Storting contant ING BANK", got)
}

func TestForRecord(t *testing.T) {
	cols := model.DefaultColumns()
	rec := model.NewRecord(model.Row{
		"Mutatiesoort":        "Incasso",
		"Mededelingen":        "SEPA Incasso Naam: Acme Corp Kenmerk: 123",
		"Naam / Omschrijving": "Acme",
	}, cols)
	got, err := ForRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "Transfer Acme Corp", got)
}

func TestForRecord_MissingField(t *testing.T) {
	rec := model.NewRecord(model.Row{"Mutatiesoort": "Diversen"}, model.DefaultColumns())
	_, err := ForRecord(rec)
	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Mededelingen", missing.Field)
}

func TestBetween(t *testing.T) {
	got, ok := between("Naam: A Kenmerk: x Naam: B", "Naam: ", "Kenmerk: ")
	assert.True(t, ok)
	assert.Equal(t, "A ", got)

	_, ok = between("Kenmerk: x Naam: A", "Naam: ", "Kenmerk: ")
	assert.False(t, ok)
}

func TestHead(t *testing.T) {
	assert.Equal(t, "abc", head("abcdef", 3))
	assert.Equal(t, "ab", head("ab", 3))
	assert.Equal(t, "", head("", 3))
}
