package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

func resultsHeader(expectedName string) []string {
	return []string{
		sheetstore.ColRecordID,
		sheetstore.ColTimestamp,
		sheetstore.ColStudentName,
		sheetstore.ColUnit,
		sheetstore.ColSession,
		sheetstore.ColClassOfInterest,
		sheetstore.ColMathScore,
		sheetstore.ColLangScore,
		sheetstore.ColTotalScore,
		sheetstore.ColDiscountPct,
		sheetstore.ColTrack,
		sheetstore.ColAnnualCash,
		sheetstore.ColFirstInstallment,
		sheetstore.ColMonthlyInstallment,
		sheetstore.ColOriginSchool,
		sheetstore.ColGuardian,
		sheetstore.ColPhone,
		sheetstore.ColNegotiatedValue,
		expectedName,
		sheetstore.ColEnrolled,
		sheetstore.ColFormNotes,
	}
}

func seededStore(t *testing.T, expectedName string) *sheetstore.MockStore {
	t.Helper()

	store := sheetstore.NewMockStore()
	store.SetSheet(sheetstore.ResultsSheet, resultsHeader(expectedName), map[string][]string{
		sheetstore.ColRecordID:           {"a1", "", "c3"},
		sheetstore.ColTimestamp:          {"14/03/2026 09:30:00", "", "15/03/2026 10:00:00"},
		sheetstore.ColStudentName:        {"Ana Souza", "", "Carlos Lima"},
		sheetstore.ColUnit: {
			"COLEGIO E CURSO MATRIZ EDUCACAO TIJUCA", "",
			"COLEGIO E CURSO MATRIZ EDUCAÇÃO BANGU",
		},
		sheetstore.ColSession:            {"1º Bolsão 2026", "", "Bolsão Avulso"},
		sheetstore.ColClassOfInterest:    {"6º ano do EF2", "", "1ª série do EM"},
		sheetstore.ColMathScore:          {"5", "", "10"},
		sheetstore.ColLangScore:          {"5", "", "8"},
		sheetstore.ColDiscountPct:        {"65%", "", "75%"},
		sheetstore.ColTrack:              {"6º ao 8º Ano", "", "1ª e 2ª Série EM"},
		sheetstore.ColAnnualCash:         {"R$ 10.423,18", "", "R$ 9.000,00"},
		sheetstore.ColFirstInstallment:   {"R$ 2.411,85", "", "R$ 2.500,00"},
		sheetstore.ColMonthlyInstallment: {"R$ 844,15", "", "R$ 700,00"},
		sheetstore.ColNegotiatedValue:    {"", "", "R$ 650,00"},
		expectedName:                     {"R$ 800,00", "", ""},
		sheetstore.ColEnrolled:           {"", "", "Sim"},
	})
	return store
}

func TestLoadRebuildsRecordsAndRows(t *testing.T) {
	store := seededStore(t, sheetstore.ColExpectedInstallment)

	snap, err := Load(context.Background(), store)
	require.NoError(t, err)

	// The blank-id row is skipped.
	assert.Equal(t, 2, snap.Len())

	rec := snap.ByID("a1")
	require.NotNil(t, rec)
	assert.Equal(t, "Ana Souza", rec.Name)
	// The sheet carries institutional unit names; the snapshot keys on the
	// short form.
	assert.Equal(t, "TIJUCA", rec.Unit)
	assert.Equal(t, 10, rec.TotalScore())
	assert.Equal(t, 65, rec.DiscountPct)
	assert.Equal(t, "844.15", rec.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, "800.00", rec.ExpectedInstallment.StringFixed(2))

	row, ok := snap.RowOf("c3")
	require.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, model.EnrollYes, snap.ByID("c3").Enrolled)
}

func TestLoadParsesCoercedNumericCells(t *testing.T) {
	// Sheets in a pt-BR locale coerce "R$ 844,15" writes to numbers, which an
	// unformatted read surfaces as dot-decimal strings.
	store := seededStore(t, sheetstore.ColExpectedInstallment)
	store.Columns[sheetstore.ResultsSheet][sheetstore.ColMonthlyInstallment] = []string{"844.15", "", "700"}
	store.Columns[sheetstore.ResultsSheet][sheetstore.ColAnnualCash] = []string{"10423.18", "", "9000"}

	snap, err := Load(context.Background(), store)
	require.NoError(t, err)

	rec := snap.ByID("a1")
	require.NotNil(t, rec)
	assert.Equal(t, "844.15", rec.MonthlyInstallment.StringFixed(2))
	assert.Equal(t, "10423.18", rec.AnnualCash.StringFixed(2))
	assert.Equal(t, "700.00", snap.ByID("c3").MonthlyInstallment.StringFixed(2))
}

func TestLoadAcceptsLegacyExpectedColumn(t *testing.T) {
	store := seededStore(t, sheetstore.ColExpectedInstallmentOld)

	snap, err := Load(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, sheetstore.ColExpectedInstallmentOld, snap.ExpectedColumn())
	assert.Equal(t, "800.00", snap.ByID("a1").ExpectedInstallment.StringFixed(2))
}

func TestLoadFailsWithoutExpectedColumn(t *testing.T) {
	store := sheetstore.NewMockStore()
	header := resultsHeader(sheetstore.ColExpectedInstallment)
	header = header[:len(header)-3] // drop expected, enrolled, notes
	store.SetSheet(sheetstore.ResultsSheet, header, nil)

	_, err := Load(context.Background(), store)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMissingColumn))
}

func TestByUnitAndAppendLocal(t *testing.T) {
	store := seededStore(t, sheetstore.ColExpectedInstallment)

	snap, err := Load(context.Background(), store)
	require.NoError(t, err)

	local := &model.ResultRecord{ID: "local1", Unit: "TIJUCA", Name: "Novo Aluno"}
	snap.AppendLocal(local)

	tijuca := snap.ByUnit("TIJUCA")
	require.Len(t, tijuca, 2)
	assert.Equal(t, "Novo Aluno", tijuca[1].Name)

	_, ok := snap.RowOf("local1")
	assert.False(t, ok)
}
