package letter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

func TestBuildContext(t *testing.T) {
	warnings := common.NewWarnings(nil)
	ctx := BuildContext(Input{
		Student:         "ANA CLARA DE souza",
		Unit:            "TIJUCA",
		ClassOfInterest: "6º ano do EF2",
		MathScore:       5,
		LangScore:       5,
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local),
	}, warnings)

	assert.Equal(t, "2026", ctx["ano"])
	assert.Equal(t, "Colégio Matriz – TIJUCA", ctx["unidade"])
	assert.Equal(t, "Ana Clara De Souza", ctx["aluno"])
	assert.Equal(t, "65", ctx["bolsa_pct"])
	assert.Equal(t, "5", ctx["acertos_mat"])
	assert.Equal(t, "12", ctx["n_parcelas"])
	assert.Equal(t, "21/03/2026", ctx["data_limite"])
	assert.Equal(t, "R$ 844,15", ctx["valor_parcela"])
	assert.Equal(t, "R$ 10.425,21", ctx["anuidade_vista"])
	assert.Empty(t, warnings.Items())
}

func TestBuildContextUnknownClassYieldsZeroFigures(t *testing.T) {
	warnings := common.NewWarnings(nil)
	ctx := BuildContext(Input{
		Student:         "Bruno Costa",
		Unit:            "TIJUCA",
		ClassOfInterest: "Turma Inexistente",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local),
	}, warnings)

	assert.Equal(t, "0", ctx["bolsa_pct"])
	assert.Equal(t, "R$ 0,00", ctx["valor_parcela"])
	assert.True(t, warnings.Has(common.WarnUnmappedClass))
}

func TestMaterialTablesStandardUnit(t *testing.T) {
	tables := MaterialTables("TIJUCA")
	require.Len(t, tables, 3)

	assert.Equal(t, "Material Didático", tables[0].Title)
	assert.Len(t, tables[0].Rows, 5)
	assert.Equal(t, "R$ 2.765,77", tables[0].Rows[1].CashPrice)

	assert.Equal(t, "Material Didático (geral)", tables[1].Title)
	assert.Equal(t, "Material Militares", tables[2].Title)
	assert.Len(t, tables[2].Rows, 5)
}

func TestMaterialTablesMeritiExclusive(t *testing.T) {
	tables := MaterialTables("SÃO JOÃO DE MERITI")
	assert.Equal(t, "Material Didático (exclusivo São João de Meriti)", tables[0].Title)
	assert.Equal(t, "R$ 1.933,56", tables[0].Rows[0].CashPrice)
}

func TestMaterialTablesRetiroOverride(t *testing.T) {
	tables := MaterialTables("RETIRO DOS ARTISTAS")
	require.Len(t, tables[0].Rows, 5)
	assert.Equal(t, "1ª ao 5ª ano", tables[0].Rows[0].Course)
	assert.Equal(t, "R$ 2.552,80", tables[0].Rows[0].CashPrice)
}
