// Package pricing derives tuition figures from the base-price table and
// applies scholarship discounts to them.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
)

// Quote holds the three tuition figures for one track, before or after a
// discount is applied.
type Quote struct {
	FirstInstallment   decimal.Decimal
	MonthlyInstallment decimal.Decimal
	AnnualTotal        decimal.Decimal
}

// IsZero reports whether the quote carries no values at all.
func (q Quote) IsZero() bool {
	return q.FirstInstallment.IsZero() && q.MonthlyInstallment.IsZero() && q.AnnualTotal.IsZero()
}

type basePrice struct {
	annual  decimal.Decimal
	monthly decimal.Decimal
}

func price(annual, monthly string) basePrice {
	return basePrice{
		annual:  decimal.RequireFromString(annual),
		monthly: decimal.RequireFromString(monthly),
	}
}

// tuition is the 2026 base-price table, keyed by tuition track. The monthly
// figure is both the regular installment and the first installment.
var tuition = map[string]basePrice{
	"1ª e 2ª Série EM Militar":    price("36670.00", "2820.77"),
	"1ª e 2ª Série EM Vestibular": price("36670.00", "2820.77"),
	"1º ao 5º Ano":                price("26654.00", "2050.31"),
	"3ª Série (PV/PM)":            price("36812.00", "2831.69"),
	"3ª Série EM Medicina":        price("36812.00", "2831.69"),
	"6º ao 8º Ano":                price("31354.00", "2411.85"),
	"9º Ano EF II Militar":        price("34146.00", "2626.62"),
	"9º Ano EF II Vestibular":     price("34146.00", "2626.62"),
	"AFA/EN/EFOMM":                price("14802.00", "1138.62"),
	"CN/EPCAr":                    price("8863.00", "681.77"),
	"ESA":                         price("7145.00", "549.62"),
	"EsPCEx":                      price("14802.00", "1138.62"),
	"IME/ITA":                     price("14802.00", "1138.62"),
	"Medicina (Pré)":              price("14802.00", "1138.62"),
	"Pré-Vestibular":              price("14802.00", "1138.62"),
}

// cashDiscount is the extra discount applied to the annual figure when it is
// paid in full up front.
var cashDiscount = decimal.RequireFromString("0.05")

var thirteen = decimal.NewFromInt(13)
var twelve = decimal.NewFromInt(12)
var one = decimal.NewFromInt(1)

// Tracks returns all tuition tracks in the base-price table.
func Tracks() []string {
	tracks := make([]string, 0, len(tuition))
	for track := range tuition {
		tracks = append(tracks, track)
	}
	return tracks
}

// DeriveAnnual computes the annual total from the monthly installment when no
// annual amount is declared: one first installment plus twelve regular ones,
// all at the same monthly value.
func DeriveAnnual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(thirteen)
}

// Calculator produces quotes from the base-price table, reporting unknown
// tracks through the warnings collector instead of failing.
type Calculator struct {
	warnings *common.Warnings
}

// NewCalculator creates a calculator reporting misses to warnings.
func NewCalculator(warnings *common.Warnings) *Calculator {
	return &Calculator{warnings: warnings}
}

// PriceQuote returns the full-price quote for a tuition track. An unknown
// track yields a zero quote and a warning.
func (c *Calculator) PriceQuote(track string) Quote {
	base, ok := tuition[track]
	if !ok {
		c.warnings.Add(common.WarnUnknownTrack,
			"tuition track has no base price, using zero quote",
			"track", track)
		return Quote{}
	}

	annual := base.annual
	if annual.IsZero() {
		annual = DeriveAnnual(base.monthly)
	}

	return Quote{
		FirstInstallment:   base.monthly,
		MonthlyInstallment: base.monthly,
		AnnualTotal:        annual,
	}
}

// ApplyDiscount multiplies every figure of the quote by (1 - fraction).
func ApplyDiscount(q Quote, fraction decimal.Decimal) Quote {
	factor := one.Sub(fraction)
	return Quote{
		FirstInstallment:   q.FirstInstallment.Mul(factor),
		MonthlyInstallment: q.MonthlyInstallment.Mul(factor),
		AnnualTotal:        q.AnnualTotal.Mul(factor),
	}
}

// AnnualCash returns the discounted annual figure with the extra cash
// discount on top, the value shown on the letter as "anuidade à vista".
func AnnualCash(discountedAnnual decimal.Decimal) decimal.Decimal {
	return discountedAnnual.Mul(one.Sub(cashDiscount))
}

// MinimumInstallment returns the lowest negotiable monthly installment for a
// unit and track: the annual total at the unit's maximum discount, split over
// twelve installments. Missing reference data yields zero.
func (c *Calculator) MinimumInstallment(unitName, track string) decimal.Decimal {
	unit, ok := rules.UnitByName(unitName)
	if !ok || unit.MaxDiscount.IsZero() {
		return decimal.Zero
	}

	base, ok := tuition[track]
	if !ok {
		return decimal.Zero
	}
	annual := base.annual
	if annual.IsZero() {
		annual = DeriveAnnual(base.monthly)
	}
	if annual.IsZero() {
		return decimal.Zero
	}

	return annual.Mul(one.Sub(unit.MaxDiscount)).Div(twelve)
}

// RequiredDiscount returns the discount fraction needed to bring a track's
// monthly installment down to the desired value. A zero base price yields
// zero.
func (c *Calculator) RequiredDiscount(track string, desired decimal.Decimal) decimal.Decimal {
	base, ok := tuition[track]
	if !ok || base.monthly.IsZero() {
		return decimal.Zero
	}
	return one.Sub(desired.Div(base.monthly))
}
