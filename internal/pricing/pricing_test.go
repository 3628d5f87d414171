package pricing

import (
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

func newTestCalculator() (*Calculator, *common.Warnings) {
	warnings := common.NewWarnings(slog.Default())
	return NewCalculator(warnings), warnings
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecEqual(t *testing.T, want, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func TestPriceQuote(t *testing.T) {
	c, warnings := newTestCalculator()

	q := c.PriceQuote("1º ao 5º Ano")
	assertDecEqual(t, dec("2050.31"), q.MonthlyInstallment)
	assertDecEqual(t, dec("2050.31"), q.FirstInstallment)
	assertDecEqual(t, dec("26654.00"), q.AnnualTotal)
	assert.Empty(t, warnings.Items())
}

func TestPriceQuoteUnknownTrack(t *testing.T) {
	c, warnings := newTestCalculator()

	q := c.PriceQuote("Doutorado")
	assert.True(t, q.IsZero())
	assert.True(t, warnings.Has(common.WarnUnknownTrack))
}

func TestDeriveAnnual(t *testing.T) {
	// First installment plus twelve regular ones, all equal.
	assertDecEqual(t, dec("13000"), DeriveAnnual(dec("1000")))
	assertDecEqual(t, dec("26654.03"), DeriveAnnual(dec("2050.31")))
}

func TestApplyDiscount(t *testing.T) {
	c, _ := newTestCalculator()

	q := ApplyDiscount(c.PriceQuote("1º ao 5º Ano"), dec("0.40"))

	// base × 0.6, exact to the cent.
	assertDecEqual(t, dec("1230.186"), q.MonthlyInstallment)
	assertDecEqual(t, dec("1230.19"), q.MonthlyInstallment.Round(2))
	assertDecEqual(t, dec("15992.40"), q.AnnualTotal.Round(2))
}

func TestApplyDiscountZeroFraction(t *testing.T) {
	c, _ := newTestCalculator()

	full := c.PriceQuote("6º ao 8º Ano")
	same := ApplyDiscount(full, decimal.Zero)
	assertDecEqual(t, full.MonthlyInstallment, same.MonthlyInstallment)
	assertDecEqual(t, full.AnnualTotal, same.AnnualTotal)
}

func TestAnnualCash(t *testing.T) {
	// Extra 5% on top of the already-discounted annual.
	assertDecEqual(t, dec("950"), AnnualCash(dec("1000")))
}

func TestMinimumInstallment(t *testing.T) {
	c, _ := newTestCalculator()

	// TIJUCA max discount is 0.68: 31354 × 0.32 / 12.
	got := c.MinimumInstallment("TIJUCA", "6º ao 8º Ano")
	assertDecEqual(t, dec("836.11"), got.Round(2))

	t.Run("unknown unit", func(t *testing.T) {
		assert.True(t, c.MinimumInstallment("NITEROI", "6º ao 8º Ano").IsZero())
	})
	t.Run("unknown track", func(t *testing.T) {
		assert.True(t, c.MinimumInstallment("TIJUCA", "Doutorado").IsZero())
	})
}

func TestRequiredDiscount(t *testing.T) {
	c, _ := newTestCalculator()

	// Paying 1500 on a 2050.31 installment needs ~26.84% discount.
	got := c.RequiredDiscount("1º ao 5º Ano", dec("1500"))
	require.False(t, got.IsZero())
	assertDecEqual(t, dec("0.2684"), got.Round(4))

	assert.True(t, c.RequiredDiscount("Doutorado", dec("1500")).IsZero())
}

func TestTracks(t *testing.T) {
	tracks := Tracks()
	assert.Len(t, tracks, 15)
	assert.Contains(t, tracks, "Pré-Vestibular")
}
