// Package rules implements the scholarship-discount rules: the mapping from
// class of interest to exam segment, the per-unit breakpoint tables, and the
// resolution of a correct-answer count to a discount fraction.
package rules

import "github.com/shopspring/decimal"

// Unit is one school location. Static reference data, never mutated.
type Unit struct {
	Name        string // short display name, e.g. "TIJUCA"
	FullName    string // canonical registered name
	MaxDiscount decimal.Decimal
}

const fullNamePrefix = "COLEGIO E CURSO MATRIZ EDUCAÇÃO "

// Units lists every school location, ordered by short name. MaxDiscount is
// the largest aggregate discount the unit may grant in a negotiation.
var Units = []Unit{
	{Name: "BANGU", FullName: fullNamePrefix + "BANGU", MaxDiscount: decimal.RequireFromString("0.6806")},
	{Name: "CAMPO GRANDE", FullName: "COLEGIO E CURSO MATRIZ EDUCACAO CAMPO GRANDE", MaxDiscount: decimal.RequireFromString("0.6320")},
	{Name: "DUQUE DE CAXIAS", FullName: fullNamePrefix + "DUQUE DE CAXIAS", MaxDiscount: decimal.RequireFromString("0.6823")},
	{Name: "MADUREIRA", FullName: fullNamePrefix + "MADUREIRA", MaxDiscount: decimal.RequireFromString("0.7032")},
	{Name: "NOVA IGUACU", FullName: "COLEGIO E CURSO MATRIZ EDUCACAO NOVA IGUACU", MaxDiscount: decimal.RequireFromString("0.6700")},
	{Name: "RETIRO DOS ARTISTAS", FullName: fullNamePrefix + "RETIRO DOS ARTISTAS", MaxDiscount: decimal.RequireFromString("0.50")},
	{Name: "ROCHA MIRANDA", FullName: fullNamePrefix + "ROCHA MIRANDA", MaxDiscount: decimal.RequireFromString("0.6606")},
	{Name: "SÃO JOÃO DE MERITI", FullName: fullNamePrefix + "SÃO JOÃO DE MERITI", MaxDiscount: decimal.RequireFromString("0.7197")},
	{Name: "TAQUARA", FullName: fullNamePrefix + "TAQUARA", MaxDiscount: decimal.RequireFromString("0.6755")},
	{Name: "TIJUCA", FullName: "COLEGIO E CURSO MATRIZ EDUCACAO TIJUCA", MaxDiscount: decimal.RequireFromString("0.6800")},
}

// UnitByName returns the unit with the given short name.
func UnitByName(name string) (Unit, bool) {
	for _, u := range Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// UnitByFullName returns the unit with the given canonical full name.
func UnitByFullName(fullName string) (Unit, bool) {
	for _, u := range Units {
		if u.FullName == fullName {
			return u, true
		}
	}
	return Unit{}, false
}

// UnitNames returns the short names of all units, in listing order.
func UnitNames() []string {
	names := make([]string, len(Units))
	for i, u := range Units {
		names[i] = u.Name
	}
	return names
}
