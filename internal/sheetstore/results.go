package sheetstore

import (
	"fmt"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
)

// Sheet titles in the shared workbook.
const (
	// ResultsSheet holds one row per registered exam result.
	ResultsSheet = "Resultados_Bolsao"
	// SessionsSheet maps exam dates to session names.
	SessionsSheet = "Bolsão"
	// ActivationSheet is the read-only candidate source.
	ActivationSheet = "Hubspot"
)

// Column names on the results sheet.
const (
	ColRecordID            = "REGISTRO_ID"
	ColTimestamp           = "Data/Hora"
	ColStudentName         = "Nome do Aluno"
	ColUnit                = "Unidade"
	ColSession             = "Bolsão"
	ColClassOfInterest     = "Turma de Interesse"
	ColMathScore           = "Acertos Matemática"
	ColLangScore           = "Acertos Português"
	ColTotalScore          = "Total de Acertos"
	ColDiscountPct         = "% Bolsa"
	ColTrack               = "Série / Modalidade"
	ColAnnualCash          = "Valor Anuidade à Vista"
	ColFirstInstallment    = "Valor da 1ª Cota"
	ColMonthlyInstallment  = "Valor da Mensalidade com Bolsa"
	ColOriginSchool        = "Escola de Origem"
	ColGuardian            = "Responsável Financeiro"
	ColPhone               = "Telefone"
	ColNegotiatedValue     = "Valor Negociado"
	ColExpectedInstallment = "Expectativa de mensalidade"
	// ColExpectedInstallmentOld is the pre-rename header still present on
	// older copies of the results sheet. Either name satisfies a read.
	ColExpectedInstallmentOld = "Valor Limite (PIA)"
	ColEnrolled               = "Aluno Matriculou?"
	ColFormNotes              = "Observações (Form)"
)

// RecordCells translates a result record to its sheet representation: one
// value per column name, monetary values and timestamps pre-formatted. This
// is the only place a record becomes a row.
func RecordCells(rec *model.ResultRecord) map[string]any {
	return map[string]any{
		ColRecordID:           rec.ID,
		ColTimestamp:          rec.CreatedAt.Format(brl.TimestampLayout),
		ColStudentName:        rec.Name,
		ColUnit:               unitCell(rec.Unit),
		ColSession:            rec.Session,
		ColClassOfInterest:    rec.ClassOfInterest,
		ColMathScore:          rec.MathScore,
		ColLangScore:          rec.LangScore,
		ColTotalScore:         rec.TotalScore(),
		ColDiscountPct:        fmt.Sprintf("%d%%", rec.DiscountPct),
		ColTrack:              rec.Track,
		ColAnnualCash:         brl.FormatCurrency(rec.AnnualCash),
		ColFirstInstallment:   brl.FormatCurrency(rec.FirstInstallment),
		ColMonthlyInstallment: brl.FormatCurrency(rec.MonthlyInstallment),
	}
}

// unitCell renders the unit's canonical institutional name, the form every
// writer of the shared sheet uses. Unknown short names pass through.
func unitCell(short string) string {
	if u, ok := rules.UnitByName(short); ok {
		return u.FullName
	}
	return short
}

// RowForHeader orders a cell map into one append-ready row matching the
// header index. Columns without a value are left empty; the row spans the
// full header width.
func RowForHeader(cells map[string]any, header map[string]int) []any {
	width := 0
	for _, idx := range header {
		if idx > width {
			width = idx
		}
	}

	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}
	for name, idx := range header {
		if value, ok := cells[name]; ok {
			row[idx-1] = value
		}
	}
	return row
}
