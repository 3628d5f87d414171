package rules

import (
	"github.com/shopspring/decimal"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

// Resolver resolves a candidate's discount fraction from the unit, the class
// of interest and the total correct-answer count. Every lookup miss resolves
// to the zero-discount default and is reported through the warnings
// collector; the registration flow must stay usable with incomplete
// reference data.
type Resolver struct {
	warnings *common.Warnings
}

// NewResolver creates a resolver reporting misses to warnings.
func NewResolver(warnings *common.Warnings) *Resolver {
	return &Resolver{warnings: warnings}
}

// Resolve returns the discount fraction in [0,1] for the given inputs.
func (r *Resolver) Resolve(unit, classOfInterest string, correct int) decimal.Decimal {
	track, ok := TrackForClass(classOfInterest)
	if !ok {
		r.warnings.Add(common.WarnUnmappedClass,
			"class of interest has no segment mapping, using zero discount",
			"class", classOfInterest)
		return decimal.Zero
	}

	seg, ok := SegmentForTrack(track)
	if !ok {
		r.warnings.Add(common.WarnUnmappedClass,
			"tuition track has no segment, using zero discount",
			"track", track)
		return decimal.Zero
	}

	table, ok := TableFor(unit, seg)
	if !ok || len(table) == 0 {
		// Units without an EFAI table still grade EFAI candidates on
		// the legacy fixed tiers.
		if seg == SegmentEFAI {
			table = LegacyEFAITable
		} else {
			r.warnings.Add(common.WarnMissingTable,
				"unit has no breakpoint table for segment, using zero discount",
				"unit", unit, "segment", string(seg))
			return decimal.Zero
		}
	}

	discount, ok := table.Lookup(correct)
	if !ok {
		r.warnings.Add(common.WarnScoreOutOfRange,
			"correct-answer count outside every band, using zero discount",
			"unit", unit, "segment", string(seg), "correct", correct)
		return decimal.Zero
	}

	return discount
}

// Percent converts a discount fraction to a whole-number percentage, the form
// recorded on the results sheet and printed on the offer letter.
func Percent(fraction decimal.Decimal) int {
	return int(fraction.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
