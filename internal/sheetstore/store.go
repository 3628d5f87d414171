// Package sheetstore adapts the remote spreadsheet to a named collection of
// header-driven 2-D sheets. All reads and writes are batched: one network
// round trip per logical operation. The adapter never retries; transient
// failures surface as ErrStoreUnavailable and fallback policy belongs to the
// caller.
package sheetstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

// CellUpdate is one logical single-cell write, addressed by column name and
// 1-based row number.
type CellUpdate struct {
	Value  any
	Column string
	Row    int
}

// Store is the remote tabular store handle. Implementations cache per-sheet
// header indexes; Invalidate must be called after any structural change such
// as a resize.
type Store interface {
	// HeaderIndex returns the 1-based column position of every named
	// header cell on the sheet's first row.
	HeaderIndex(ctx context.Context, sheet string) (map[string]int, error)

	// BatchReadColumns reads the named columns (rows 2 and below) in one
	// batched request. All returned sequences have equal length; missing
	// trailing cells are right-padded with the empty string. A requested
	// column absent from the header is an ErrMissingColumn.
	BatchReadColumns(ctx context.Context, sheet string, columns []string) (map[string][]string, error)

	// BatchWriteCells applies all updates in one batched request. The
	// whole batch succeeds or fails together; an empty list is a no-op.
	BatchWriteCells(ctx context.Context, sheet string, updates []CellUpdate) error

	// AppendRows appends rows below the sheet's current data. Each row's
	// values must already be ordered to match the header index.
	AppendRows(ctx context.Context, sheet string, rows [][]any) error

	// FindRowByID scans the id column for targetID and returns its
	// 1-based row number, or ErrNotFound.
	FindRowByID(ctx context.Context, sheet, idColumn, targetID string) (int, error)

	// EnsureSize grows the sheet to at least minRows × minCols.
	EnsureSize(ctx context.Context, sheet string, minRows, minCols int) error

	// Invalidate drops the cached header index for a sheet.
	Invalidate(sheet string)
}

// ResolveColumn returns the first of the candidate column names present in
// the header index. Used for the documented fallback pairs where either of
// two names satisfies a requirement.
func ResolveColumn(header map[string]int, candidates ...string) (string, bool) {
	for _, name := range candidates {
		if _, ok := header[name]; ok {
			return name, true
		}
	}
	return "", false
}

// missingColumns returns the requested columns absent from the header.
func missingColumns(header map[string]int, columns []string) []string {
	var missing []string
	for _, c := range columns {
		if _, ok := header[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func missingColumnsError(sheet string, missing []string) error {
	return fmt.Errorf("%w: sheet %q lacks columns %s",
		common.ErrMissingColumn, sheet, strings.Join(missing, ", "))
}
