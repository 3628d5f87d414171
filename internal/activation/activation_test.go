package activation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

func activationStore() *sheetstore.MockStore {
	store := sheetstore.NewMockStore()
	store.SetSheet(sheetstore.ActivationSheet, columns, map[string][]string{
		ColUnit:          {"COLEGIO E CURSO MATRIZ EDUCACAO TIJUCA", "COLEGIO E CURSO MATRIZ EDUCAÇÃO BANGU", ""},
		ColCandidateName: {"Ana Souza", "Bruno Costa", ""},
		ColContactID:     {"711", "843", ""},
		ColContactStatus: {"Novo", "Em contato", ""},
		ColContacted:     {"Sim", "Não", ""},
		ColNotes:         {"", "Prefere turno da manhã", ""},
		ColPhone:         {"21999998888", "21888887777", ""},
		ColGuardianName:  {"Marta Souza", "Paulo Costa", ""},
		ColEmail:         {"ana@example.com", "bruno@example.com", ""},
		ColTrack:         {"6º ao 8º Ano", "Pré-Vestibular", ""},
		ColSource:        {"Facebook", "Indicação", ""},
	})
	return store
}

func TestLoadCandidates(t *testing.T) {
	candidates, err := LoadCandidates(context.Background(), activationStore())
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	ana := candidates[0]
	assert.Equal(t, "Ana Souza", ana.Name)
	assert.Equal(t, "TIJUCA", ana.Unit)
	assert.Equal(t, "6º ano do EF2", ana.ClassOfInterest)
	assert.Equal(t, "21999998888", ana.Phone)

	bruno := candidates[1]
	assert.Equal(t, "BANGU", bruno.Unit)
	assert.Equal(t, "Pré-Vestibular", bruno.ClassOfInterest)
}

func TestFilterByUnit(t *testing.T) {
	candidates, err := LoadCandidates(context.Background(), activationStore())
	require.NoError(t, err)

	tijuca := FilterByUnit(candidates, "TIJUCA")
	require.Len(t, tijuca, 1)
	assert.Equal(t, "Ana Souza", tijuca[0].Name)

	assert.Len(t, FilterByUnit(candidates, ""), 2)
	assert.Empty(t, FilterByUnit(candidates, "RECREIO"))
}
