// Package activation reads the candidate list exported by the marketing CRM.
// It is a read-only source used to prefill the registration form; this
// application never writes back to it.
package activation

import (
	"context"
	"strings"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

// Activation-sheet column names, as exported by the CRM.
const (
	ColUnit          = "Unidade"
	ColCandidateName = "Nome do Candidato"
	ColContactID     = "Contato ID"
	ColContactStatus = "Status do Contato"
	ColContacted     = "Contato Realizado"
	ColNotes         = "Observações"
	ColPhone         = "Celular Tratado"
	ColGuardianName  = "Nome"
	ColEmail         = "E-mail"
	ColTrack         = "Turma de Interesse - Geral"
	ColSource        = "Fonte original"
)

var columns = []string{
	ColUnit,
	ColCandidateName,
	ColContactID,
	ColContactStatus,
	ColContacted,
	ColNotes,
	ColPhone,
	ColGuardianName,
	ColEmail,
	ColTrack,
	ColSource,
}

// LoadCandidates reads every candidate from the activation sheet in one
// batched read. The sheet's unit column carries full institutional names;
// they are translated to the short unit names used everywhere else. The
// track column carries a tuition track; it is translated back to the first
// class-of-interest label that maps onto it, since that is what the
// registration form collects.
func LoadCandidates(ctx context.Context, store sheetstore.Store) ([]model.Candidate, error) {
	series, err := store.BatchReadColumns(ctx, sheetstore.ActivationSheet, columns)
	if err != nil {
		return nil, err
	}

	var candidates []model.Candidate
	for i := range series[ColCandidateName] {
		name := strings.TrimSpace(series[ColCandidateName][i])
		if name == "" {
			continue
		}

		unit := ""
		if u, ok := rules.UnitByFullName(strings.TrimSpace(series[ColUnit][i])); ok {
			unit = u.Name
		}

		candidates = append(candidates, model.Candidate{
			Name:            name,
			Unit:            unit,
			ContactID:       strings.TrimSpace(series[ColContactID][i]),
			ContactStatus:   strings.TrimSpace(series[ColContactStatus][i]),
			Contacted:       strings.TrimSpace(series[ColContacted][i]),
			Phone:           strings.TrimSpace(series[ColPhone][i]),
			Email:           strings.TrimSpace(series[ColEmail][i]),
			ClassOfInterest: rules.ClassForTrack(strings.TrimSpace(series[ColTrack][i])),
			Source:          strings.TrimSpace(series[ColSource][i]),
			Notes:           strings.TrimSpace(series[ColNotes][i]),
		})
	}
	return candidates, nil
}

// FilterByUnit returns the candidates registered for a unit, preserving
// order. An empty unit returns everything.
func FilterByUnit(candidates []model.Candidate, unit string) []model.Candidate {
	if unit == "" {
		return candidates
	}

	var filtered []model.Candidate
	for _, c := range candidates {
		if c.Unit == unit {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
