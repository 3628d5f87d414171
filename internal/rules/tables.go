package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band maps a closed range of correct-answer counts to a discount fraction.
type Band struct {
	Discount decimal.Decimal
	Min      int
	Max      int
}

// Table is the ordered set of bands for one (unit, segment) pair. Bands must
// be pairwise disjoint; a score outside every band resolves to the
// zero-discount default at the resolver level.
type Table []Band

// Lookup returns the discount fraction for score, if any band covers it.
func (t Table) Lookup(score int) (decimal.Decimal, bool) {
	for _, b := range t {
		if score >= b.Min && score <= b.Max {
			return b.Discount, true
		}
	}
	return decimal.Zero, false
}

// Validate checks the table's structural invariants: band bounds ordered,
// bands pairwise disjoint, and discounts monotonically non-decreasing with
// the score. Exercised by tests against every shipped table.
func (t Table) Validate() error {
	for i, b := range t {
		if b.Min > b.Max {
			return fmt.Errorf("band %d: min %d greater than max %d", i, b.Min, b.Max)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if b.Min <= prev.Max {
			return fmt.Errorf("band %d overlaps band %d", i, i-1)
		}
		if b.Discount.LessThan(prev.Discount) {
			return fmt.Errorf("band %d: discount decreases from %s to %s", i, prev.Discount, b.Discount)
		}
	}
	return nil
}

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// LegacyEFAITable is the historical fixed 5-tier ruleset for the EFAI segment
// (10-question exam). It predates the per-unit tables and is still selected
// for every unit without an EFAI-specific table; the two rule sets were never
// reconciled and are deliberately kept apart.
var LegacyEFAITable = Table{
	{Min: 0, Max: 0, Discount: decimal.Zero},
	{Min: 1, Max: 3, Discount: pct("0.30")},
	{Min: 4, Max: 5, Discount: pct("0.50")},
	{Min: 6, Max: 8, Discount: pct("0.60")},
	{Min: 9, Max: 10, Discount: pct("0.65")},
}

// standard24 is the shared 24-question table used by units without a
// negotiated table of their own. Derived from the historical flat
// score-to-fraction map.
var standard24 = Table{
	{Min: 0, Max: 2, Discount: pct("0.30")},
	{Min: 3, Max: 3, Discount: pct("0.35")},
	{Min: 4, Max: 5, Discount: pct("0.40")},
	{Min: 6, Max: 6, Discount: pct("0.44")},
	{Min: 7, Max: 7, Discount: pct("0.45")},
	{Min: 8, Max: 8, Discount: pct("0.46")},
	{Min: 9, Max: 9, Discount: pct("0.47")},
	{Min: 10, Max: 10, Discount: pct("0.48")},
	{Min: 11, Max: 11, Discount: pct("0.49")},
	{Min: 12, Max: 12, Discount: pct("0.50")},
	{Min: 13, Max: 13, Discount: pct("0.51")},
	{Min: 14, Max: 14, Discount: pct("0.52")},
	{Min: 15, Max: 15, Discount: pct("0.53")},
	{Min: 16, Max: 16, Discount: pct("0.54")},
	{Min: 17, Max: 17, Discount: pct("0.55")},
	{Min: 18, Max: 18, Discount: pct("0.56")},
	{Min: 19, Max: 19, Discount: pct("0.57")},
	{Min: 20, Max: 20, Discount: pct("0.60")},
	{Min: 21, Max: 21, Discount: pct("0.65")},
	{Min: 22, Max: 22, Discount: pct("0.70")},
	{Min: 23, Max: 23, Discount: pct("0.80")},
	{Min: 24, Max: 24, Discount: pct("1.00")},
}

// tijucaEFAF is Tijuca's negotiated EFAF table.
var tijucaEFAF = Table{
	{Min: 0, Max: 4, Discount: pct("0.30")},
	{Min: 5, Max: 9, Discount: pct("0.50")},
	{Min: 10, Max: 12, Discount: pct("0.65")},
	{Min: 13, Max: 17, Discount: pct("0.75")},
	{Min: 18, Max: 21, Discount: pct("0.85")},
	{Min: 22, Max: 24, Discount: pct("1.00")},
}

// meritiEFAF is São João de Meriti's coarser EFAF table.
var meritiEFAF = Table{
	{Min: 0, Max: 5, Discount: pct("0.35")},
	{Min: 6, Max: 11, Discount: pct("0.50")},
	{Min: 12, Max: 17, Discount: pct("0.65")},
	{Min: 18, Max: 24, Discount: pct("0.80")},
}

// madureiraEFIM caps Madureira's EFIM discounts below the shared table.
var madureiraEFIM = Table{
	{Min: 0, Max: 2, Discount: pct("0.30")},
	{Min: 3, Max: 5, Discount: pct("0.42")},
	{Min: 6, Max: 9, Discount: pct("0.47")},
	{Min: 10, Max: 12, Discount: pct("0.50")},
	{Min: 13, Max: 16, Discount: pct("0.54")},
	{Min: 17, Max: 19, Discount: pct("0.57")},
	{Min: 20, Max: 24, Discount: pct("0.70")},
}

// unitTables holds the breakpoint tables per unit and segment. A missing
// entry means the unit has no table for that segment: EFAI falls back to the
// legacy ruleset, everything else to the zero-discount default. Retiro dos
// Artistas intentionally has no EFIM table (the unit offers no prep courses).
var unitTables = map[string]map[Segment]Table{
	"BANGU":           {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"CAMPO GRANDE":    {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"DUQUE DE CAXIAS": {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"MADUREIRA":       {SegmentEFAF: standard24, SegmentEFIM: madureiraEFIM},
	"NOVA IGUACU":     {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"RETIRO DOS ARTISTAS": {
		SegmentEFAF: standard24,
	},
	"ROCHA MIRANDA":      {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"SÃO JOÃO DE MERITI": {SegmentEFAF: meritiEFAF, SegmentEFIM: standard24},
	"TAQUARA":            {SegmentEFAF: standard24, SegmentEFIM: standard24},
	"TIJUCA":             {SegmentEFAF: tijucaEFAF, SegmentEFIM: standard24},
}

// TableFor returns the breakpoint table for a (unit, segment) pair.
func TableFor(unit string, seg Segment) (Table, bool) {
	tables, ok := unitTables[unit]
	if !ok {
		return nil, false
	}
	t, ok := tables[seg]
	return t, ok
}

// AllTables returns every shipped (unit, segment) table, for validation.
func AllTables() map[string]map[Segment]Table {
	return unitTables
}
