package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/config"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/queue"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/session"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/snapshot"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/workflow"
)

// app wires the store, queue, snapshot and registrar for one invocation.
type app struct {
	store    sheetstore.Store
	queue    *queue.Queue
	snap     *snapshot.Snapshot
	warnings *common.Warnings
	reg      *workflow.Registrar
}

// newApp connects to the remote store, loads the snapshot and flushes any
// records left in the offline queue by earlier sessions. A failed startup
// flush is reported and deferred, never fatal.
func newApp(ctx context.Context) (*app, error) {
	logger := slog.Default()
	warnings := common.NewWarnings(logger)

	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return nil, fmt.Errorf("sheets configuration: %w", err)
	}

	store, err := sheetstore.NewGoogleStore(ctx, *sheetsConfig, logger)
	if err != nil {
		return nil, err
	}

	// Best effort: a sheet too small for appends is fixed here, but being
	// offline at startup must not abort the session.
	if err := store.EnsureSize(ctx, sheetstore.ResultsSheet,
		sheetsConfig.MinRows, sheetsConfig.MinCols); err != nil {
		logger.Warn("could not verify results sheet size", "error", err)
	}

	q, err := queue.Open(ctx, config.QueuePath())
	if err != nil {
		return nil, err
	}

	snapshotLoaded := true
	snap, err := snapshot.Load(ctx, store)
	if err != nil {
		if !common.IsStoreUnavailable(err) {
			_ = q.Close()
			return nil, err
		}
		// Offline startup: keep working against an empty snapshot and
		// let registrations queue locally.
		logger.Warn("remote store unreachable, starting with empty snapshot", "error", err)
		snap = snapshot.Empty()
		snapshotLoaded = false
	}

	a := &app{
		store:    store,
		queue:    q,
		snap:     snap,
		warnings: warnings,
		reg: workflow.NewRegistrar(store, q, snap,
			session.NewResolver(store, warnings), warnings, logger),
	}

	// The automatic flush only runs when the snapshot loaded, so a session
	// that started offline does not open with a doomed append.
	if snapshotLoaded {
		if flushed, err := a.reg.SyncPending(ctx); err != nil {
			fmt.Println(cli.FormatWarning(fmt.Sprintf(
				"fila offline não sincronizada: %v", err)))
		} else if flushed > 0 {
			common.LogInfo("flushed offline queue at startup", common.Fields{"records": flushed})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"%d registro(s) pendente(s) sincronizado(s)", flushed)))
		}
	}

	return a, nil
}

// Close releases the app's local resources.
func (a *app) Close() {
	if err := a.queue.Close(); err != nil {
		common.LogError(err, "failed to close offline queue",
			common.Fields{"path": config.QueuePath()})
	}
}

// printWarnings echoes collected lookup-miss warnings to the terminal.
func (a *app) printWarnings() {
	for _, w := range a.warnings.Items() {
		fmt.Println(cli.FormatWarning(w.Message))
	}
	a.warnings.Reset()
}
