package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

func calendarStore() *sheetstore.MockStore {
	store := sheetstore.NewMockStore()
	store.SetSheet(sheetstore.SessionsSheet, []string{ColDate, ColName}, map[string][]string{
		ColDate: {"14/03/2026", "25/04/2026"},
		ColName: {"1º Bolsão 2026", "2º Bolsão 2026"},
	})
	return store
}

func TestResolveScheduledDate(t *testing.T) {
	warnings := common.NewWarnings(nil)
	resolver := NewResolver(calendarStore(), warnings)

	name := resolver.Resolve(context.Background(), time.Date(2026, 4, 25, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "2º Bolsão 2026", name)
	assert.Empty(t, warnings.Items())
}

func TestResolveUnscheduledDateFallsBack(t *testing.T) {
	warnings := common.NewWarnings(nil)
	resolver := NewResolver(calendarStore(), warnings)

	name := resolver.Resolve(context.Background(), time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, DefaultSession, name)
	assert.True(t, warnings.Has(common.WarnUnresolvedSession))
}

func TestResolveUnreadableCalendarFallsBack(t *testing.T) {
	store := calendarStore()
	store.ReadErr = common.ErrStoreUnavailable

	warnings := common.NewWarnings(nil)
	resolver := NewResolver(store, warnings)

	name := resolver.Resolve(context.Background(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local))
	require.Equal(t, DefaultSession, name)
	assert.True(t, warnings.Has(common.WarnUnresolvedSession))
}
