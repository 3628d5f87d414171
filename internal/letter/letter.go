// Package letter assembles the data that goes on a scholarship offer letter:
// the template context and the per-unit teaching-material price tables. The
// actual rendering (HTML, PDF) is left to a Renderer implementation chosen by
// the caller.
package letter

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/pricing"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
)

// Renderer turns a letter context into a finished document. Implementations
// live outside this package; the workflow only needs the bytes.
type Renderer interface {
	Render(ctx map[string]string) ([]byte, error)
}

// offerValidity is how long the printed offer stays valid.
const offerValidity = 7 * 24 * time.Hour

// installments is the number of regular installments printed on the letter.
const installments = "12"

var titleCaser = cases.Title(language.BrazilianPortuguese)

// Input is everything a letter needs that is not reference data.
type Input struct {
	Student         string
	Unit            string
	ClassOfInterest string
	MathScore       int
	LangScore       int
	Date            time.Time
}

// BuildContext computes the offer figures and returns the flat key/value
// context consumed by letter templates. Lookup misses surface as warnings,
// same as in the registration flow, and yield zeroed figures.
func BuildContext(in Input, warnings *common.Warnings) map[string]string {
	resolver := rules.NewResolver(warnings)
	calc := pricing.NewCalculator(warnings)

	track, _ := rules.TrackForClass(in.ClassOfInterest)
	fraction := resolver.Resolve(in.Unit, in.ClassOfInterest, in.MathScore+in.LangScore)

	quote := calc.PriceQuote(track)
	discounted := pricing.ApplyDiscount(quote, fraction)

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	return map[string]string{
		"ano":            date.Format("2006"),
		"unidade":        "Colégio Matriz – " + in.Unit,
		"unidade_curta":  in.Unit,
		"aluno":          titleCaser.String(strings.ToLower(strings.TrimSpace(in.Student))),
		"bolsa_pct":      strconv.Itoa(rules.Percent(fraction)),
		"acertos_mat":    strconv.Itoa(in.MathScore),
		"acertos_port":   strconv.Itoa(in.LangScore),
		"turma":          in.ClassOfInterest,
		"n_parcelas":     installments,
		"data_limite":    brl.FormatDate(date.Add(offerValidity)),
		"anuidade_vista": brl.FormatCurrency(pricing.AnnualCash(discounted.AnnualTotal).Round(2)),
		"primeira_cota":  brl.FormatCurrency(discounted.FirstInstallment.Round(2)),
		"valor_parcela":  brl.FormatCurrency(discounted.MonthlyInstallment.Round(2)),
		"unidades":       strings.Join(rules.UnitNames(), " • "),
	}
}
