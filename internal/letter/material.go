package letter

// MaterialRow is one course line of a teaching-material price table, with the
// cash price and the installment plan as printed.
type MaterialRow struct {
	Course       string
	CashPrice    string
	Installments string
}

// MaterialTable is one titled block of material prices on the letter's
// second page.
type MaterialTable struct {
	Title string
	Rows  []MaterialRow
}

var standardMaterial = []MaterialRow{
	{"1ª ao 5ª ano", "R$ 2.552,80", "11x de R$ 232,07"},
	{"6ª ao 8ª ano", "R$ 2.765,77", "11x de R$ 251,43"},
	{"9ª ano Vestibular", "R$ 2.872,69", "11x de R$ 261,15"},
	{"1ª e 2ª série Vestibular", "R$ 3.399,67", "11x de R$ 309,06"},
	{"3ª série", "R$ 4.009,95", "11x de R$ 364,54"},
}

// meritiMaterial is the discounted line-up sold only at São João de Meriti.
var meritiMaterial = []MaterialRow{
	{"1ª ao 5ª ano", "R$ 1.933,56", "11x de R$ 175,78"},
	{"6ª ao 8ª ano", "R$ 2.020,92", "11x de R$ 183,72"},
	{"9ª ano Vestibular", "R$ 2.019,84", "11x de R$ 183,62"},
	{"1ª e 2ª série Vestibular", "R$ 2.474,20", "11x de R$ 224,93"},
	{"3ª série", "R$ 2.932,21", "11x de R$ 266,56"},
}

// retiroOverrides replaces individual standard rows at Retiro dos Artistas.
var retiroOverrides = []MaterialRow{
	{"1ª ao 5ª ano", "R$ 2.552,80", "11x de R$ 232,07"},
}

var generalMaterial = []MaterialRow{
	{"Medicina", "R$ 4.009,95", "11x de R$ 364,54"},
	{"Pré-Vestibular", "R$ 4.009,95", "11x de R$ 364,54"},
}

var militaryMaterial = []MaterialRow{
	{"AFA/EN/EFOMM", "R$ 2.333,73", "11x de R$ 212,16"},
	{"EPCAR", "R$ 2.501,36", "11x de R$ 227,40"},
	{"ESA", "R$ 1.111,98", "11x de R$ 101,09"},
	{"EsPCEx", "R$ 2.668,97", "11x de R$ 242,63"},
	{"IME/ITA", "R$ 2.333,73", "11x de R$ 212,16"},
}

// MaterialTables returns the material price tables for a unit, in the order
// they appear on the letter. São João de Meriti sells an exclusive line-up;
// Retiro dos Artistas overrides individual rows of the standard table.
func MaterialTables(unit string) []MaterialTable {
	var school MaterialTable
	switch unit {
	case "SÃO JOÃO DE MERITI":
		school = MaterialTable{
			Title: "Material Didático (exclusivo São João de Meriti)",
			Rows:  meritiMaterial,
		}
	case "RETIRO DOS ARTISTAS":
		rows := make([]MaterialRow, len(standardMaterial))
		copy(rows, standardMaterial)
		for _, override := range retiroOverrides {
			for i, row := range rows {
				if row.Course == override.Course {
					rows[i] = override
				}
			}
		}
		school = MaterialTable{Title: "Material Didático", Rows: rows}
	default:
		school = MaterialTable{Title: "Material Didático", Rows: standardMaterial}
	}

	return []MaterialTable{
		school,
		{Title: "Material Didático (geral)", Rows: generalMaterial},
		{Title: "Material Militares", Rows: militaryMaterial},
	}
}
