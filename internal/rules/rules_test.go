package rules

import (
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

func newTestResolver() (*Resolver, *common.Warnings) {
	warnings := common.NewWarnings(slog.Default())
	return NewResolver(warnings), warnings
}

func TestShippedTablesAreWellFormed(t *testing.T) {
	for unit, tables := range AllTables() {
		for seg, table := range tables {
			t.Run(unit+"/"+string(seg), func(t *testing.T) {
				require.NoError(t, table.Validate())

				// Every score from 0 to the segment max must hit
				// exactly one band.
				for score := 0; score <= MaxScore(seg); score++ {
					_, ok := table.Lookup(score)
					assert.True(t, ok, "score %d has no band", score)
				}
			})
		}
	}

	require.NoError(t, LegacyEFAITable.Validate())
	for score := 0; score <= 10; score++ {
		_, ok := LegacyEFAITable.Lookup(score)
		assert.True(t, ok, "legacy table misses score %d", score)
	}
}

func TestDiscountMonotonicInScore(t *testing.T) {
	check := func(t *testing.T, table Table, maxScore int) {
		t.Helper()
		prev := decimal.Zero
		for score := 0; score <= maxScore; score++ {
			d, ok := table.Lookup(score)
			require.True(t, ok)
			assert.False(t, d.LessThan(prev),
				"discount decreases at score %d: %s < %s", score, d, prev)
			prev = d
		}
	}

	for unit, tables := range AllTables() {
		for seg, table := range tables {
			t.Run(unit+"/"+string(seg), func(t *testing.T) {
				check(t, table, MaxScore(seg))
			})
		}
	}
	t.Run("legacy EFAI", func(t *testing.T) {
		check(t, LegacyEFAITable, 10)
	})
}

func TestResolveTijucaEFAF(t *testing.T) {
	r, warnings := newTestResolver()

	got := r.Resolve("TIJUCA", "6º ano do EF2", 10)
	assert.True(t, decimal.RequireFromString("0.65").Equal(got), "got %s", got)
	assert.Empty(t, warnings.Items())
}

func TestResolveLegacyEFAI(t *testing.T) {
	r, warnings := newTestResolver()

	tests := []struct {
		want    string
		correct int
	}{
		{correct: 0, want: "0"},
		{correct: 2, want: "0.30"},
		{correct: 5, want: "0.50"},
		{correct: 7, want: "0.60"},
		{correct: 10, want: "0.65"},
	}
	for _, tt := range tests {
		got := r.Resolve("TIJUCA", "3º ano do EF1", tt.correct)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
			"correct=%d: got %s want %s", tt.correct, got, tt.want)
	}
	assert.Empty(t, warnings.Items())
}

func TestResolveFallbacks(t *testing.T) {
	t.Run("unmapped class", func(t *testing.T) {
		r, warnings := newTestResolver()
		got := r.Resolve("TIJUCA", "Turma Inexistente", 10)
		assert.True(t, got.IsZero())
		assert.True(t, warnings.Has(common.WarnUnmappedClass))
	})

	t.Run("unit without table for segment", func(t *testing.T) {
		r, warnings := newTestResolver()
		got := r.Resolve("RETIRO DOS ARTISTAS", "Pré-Vestibular", 20)
		assert.True(t, got.IsZero())
		assert.True(t, warnings.Has(common.WarnMissingTable))
	})

	t.Run("unknown unit", func(t *testing.T) {
		r, warnings := newTestResolver()
		got := r.Resolve("NITEROI", "6º ano do EF2", 10)
		assert.True(t, got.IsZero())
		assert.True(t, warnings.Has(common.WarnMissingTable))
	})

	t.Run("negative score", func(t *testing.T) {
		r, warnings := newTestResolver()
		got := r.Resolve("TIJUCA", "6º ano do EF2", -1)
		assert.True(t, got.IsZero())
		assert.True(t, warnings.Has(common.WarnScoreOutOfRange))
	})

	t.Run("score above declared max", func(t *testing.T) {
		r, warnings := newTestResolver()
		got := r.Resolve("TIJUCA", "6º ano do EF2", 25)
		assert.True(t, got.IsZero())
		assert.True(t, warnings.Has(common.WarnScoreOutOfRange))
	})
}

func TestSegmentMapping(t *testing.T) {
	seg, ok := SegmentForClass("4º ano do EF1")
	require.True(t, ok)
	assert.Equal(t, SegmentEFAI, seg)

	seg, ok = SegmentForClass("8º ano do EF2")
	require.True(t, ok)
	assert.Equal(t, SegmentEFAF, seg)

	seg, ok = SegmentForClass("Pré-Militar IME ITA")
	require.True(t, ok)
	assert.Equal(t, SegmentEFIM, seg)

	_, ok = SegmentForClass("Mestrado")
	assert.False(t, ok)
}

func TestMaxScores(t *testing.T) {
	assert.Equal(t, 10, MaxScore(SegmentEFAI))
	assert.Equal(t, 24, MaxScore(SegmentEFAF))
	assert.Equal(t, 5, MaxSubjectScore(SegmentEFAI))
	assert.Equal(t, 12, MaxSubjectScore(SegmentEFIM))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 65, Percent(decimal.RequireFromString("0.65")))
	assert.Equal(t, 0, Percent(decimal.Zero))
	assert.Equal(t, 100, Percent(decimal.NewFromInt(1)))
}

func TestUnitLookups(t *testing.T) {
	u, ok := UnitByName("TIJUCA")
	require.True(t, ok)
	assert.Equal(t, "COLEGIO E CURSO MATRIZ EDUCACAO TIJUCA", u.FullName)
	assert.True(t, decimal.RequireFromString("0.68").Equal(u.MaxDiscount))

	back, ok := UnitByFullName(u.FullName)
	require.True(t, ok)
	assert.Equal(t, u.Name, back.Name)

	_, ok = UnitByName("NITEROI")
	assert.False(t, ok)

	assert.Len(t, UnitNames(), 10)
}
