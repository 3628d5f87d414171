// Package session resolves which exam session (bolsão) a given date belongs
// to, using the sessions sheet as the calendar of record.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

// DefaultSession is used when no calendar entry matches the date, or the
// calendar cannot be read at all. Walk-in candidates exist year-round, so an
// unresolved date is a warning, never an error.
const DefaultSession = "Bolsão Avulso"

// Sessions-sheet column names.
const (
	ColDate = "Data"
	ColName = "Bolsão"
)

// Resolver resolves exam dates to session names.
type Resolver struct {
	store    sheetstore.Store
	warnings *common.Warnings
}

// NewResolver creates a session resolver backed by the given store.
func NewResolver(store sheetstore.Store, warnings *common.Warnings) *Resolver {
	return &Resolver{store: store, warnings: warnings}
}

// Resolve returns the session name scheduled for the given date. A date with
// no calendar entry, or any failure reading the calendar, resolves to
// DefaultSession with a warning.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) string {
	series, err := r.store.BatchReadColumns(ctx, sheetstore.SessionsSheet,
		[]string{ColDate, ColName})
	if err != nil {
		r.warnings.Add(common.WarnUnresolvedSession,
			"could not read the session calendar, using the default session",
			"date", date.Format(brl.DateLayout), "error", err.Error())
		return DefaultSession
	}

	target := date.Format(brl.DateLayout)
	for i, raw := range series[ColDate] {
		if strings.TrimSpace(raw) != target {
			continue
		}
		if name := strings.TrimSpace(series[ColName][i]); name != "" {
			return name
		}
	}

	r.warnings.Add(common.WarnUnresolvedSession,
		"no session scheduled for the date, using the default session",
		"date", target)
	return DefaultSession
}
