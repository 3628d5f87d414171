// Package snapshot keeps an in-memory image of the results sheet. The image
// is rebuilt from one batched read per load and extended locally for records
// that were queued while the remote store was unreachable.
package snapshot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/brl"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/model"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/rules"
	"github.com/inteligencia-matriz/gestor-bolsao/internal/sheetstore"
)

// Snapshot is the session-local image of the results sheet. Records loaded
// from the remote store carry their 1-based sheet row; records appended
// locally carry row 0 until a reload observes them remotely.
type Snapshot struct {
	records []*model.ResultRecord
	idToRow map[string]int

	// expectedColumn is the resolved name of the expected-installment
	// column on this copy of the sheet.
	expectedColumn string

	mu sync.Mutex
}

// requiredColumns are the results-sheet columns a load cannot proceed
// without. The expected-installment column is resolved separately because
// either of two header names satisfies it.
var requiredColumns = []string{
	sheetstore.ColRecordID,
	sheetstore.ColTimestamp,
	sheetstore.ColStudentName,
	sheetstore.ColUnit,
	sheetstore.ColSession,
	sheetstore.ColClassOfInterest,
	sheetstore.ColMathScore,
	sheetstore.ColLangScore,
	sheetstore.ColDiscountPct,
	sheetstore.ColTrack,
	sheetstore.ColAnnualCash,
	sheetstore.ColFirstInstallment,
	sheetstore.ColMonthlyInstallment,
	sheetstore.ColOriginSchool,
	sheetstore.ColGuardian,
	sheetstore.ColPhone,
	sheetstore.ColNegotiatedValue,
	sheetstore.ColEnrolled,
	sheetstore.ColFormNotes,
}

// Empty returns a snapshot with no records and no column knowledge, used when
// the remote store cannot be read at startup. Registrations still work
// against it; they queue locally and land remotely on the next sync.
func Empty() *Snapshot {
	return &Snapshot{
		idToRow:        make(map[string]int),
		expectedColumn: sheetstore.ColExpectedInstallment,
	}
}

// Load rebuilds the snapshot from the remote store in a single batched read.
func Load(ctx context.Context, store sheetstore.Store) (*Snapshot, error) {
	snap := Empty()
	if err := snap.Reload(ctx, store); err != nil {
		return nil, err
	}
	return snap, nil
}

// Reload rebuilds the snapshot in place from the remote store. The image is
// fully replaced, never incrementally patched; on error the previous contents
// are kept.
func (s *Snapshot) Reload(ctx context.Context, store sheetstore.Store) error {
	header, err := store.HeaderIndex(ctx, sheetstore.ResultsSheet)
	if err != nil {
		return err
	}

	expected, ok := sheetstore.ResolveColumn(header,
		sheetstore.ColExpectedInstallment, sheetstore.ColExpectedInstallmentOld)
	if !ok {
		return fmt.Errorf("%w: sheet %q lacks column %q (or %q)",
			common.ErrMissingColumn, sheetstore.ResultsSheet,
			sheetstore.ColExpectedInstallment, sheetstore.ColExpectedInstallmentOld)
	}

	columns := append(append([]string{}, requiredColumns...), expected)
	series, err := store.BatchReadColumns(ctx, sheetstore.ResultsSheet, columns)
	if err != nil {
		return err
	}

	var records []*model.ResultRecord
	idToRow := make(map[string]int)

	rows := len(series[sheetstore.ColRecordID])
	for i := 0; i < rows; i++ {
		id := strings.TrimSpace(series[sheetstore.ColRecordID][i])
		if id == "" {
			continue
		}

		records = append(records, recordFromRow(series, expected, i))
		idToRow[id] = i + 2
	}

	s.mu.Lock()
	s.records = records
	s.idToRow = idToRow
	s.expectedColumn = expected
	s.mu.Unlock()
	return nil
}

// recordFromRow rebuilds one result record from the column series at index i.
func recordFromRow(series map[string][]string, expectedColumn string, i int) *model.ResultRecord {
	cell := func(column string) string {
		return strings.TrimSpace(series[column][i])
	}

	return &model.ResultRecord{
		ID:                  cell(sheetstore.ColRecordID),
		CreatedAt:           parseTimestamp(cell(sheetstore.ColTimestamp)),
		Name:                cell(sheetstore.ColStudentName),
		Unit:                shortUnitName(cell(sheetstore.ColUnit)),
		Session:             cell(sheetstore.ColSession),
		ClassOfInterest:     cell(sheetstore.ColClassOfInterest),
		Track:               cell(sheetstore.ColTrack),
		Phone:               cell(sheetstore.ColPhone),
		OriginSchool:        cell(sheetstore.ColOriginSchool),
		Guardian:            cell(sheetstore.ColGuardian),
		Notes:               cell(sheetstore.ColFormNotes),
		Enrolled:            model.EnrollStatus(cell(sheetstore.ColEnrolled)),
		MathScore:           parseScore(cell(sheetstore.ColMathScore)),
		LangScore:           parseScore(cell(sheetstore.ColLangScore)),
		DiscountPct:         parsePercent(cell(sheetstore.ColDiscountPct)),
		AnnualCash:          brl.ParseCurrency(cell(sheetstore.ColAnnualCash)),
		FirstInstallment:    brl.ParseCurrency(cell(sheetstore.ColFirstInstallment)),
		MonthlyInstallment:  brl.ParseCurrency(cell(sheetstore.ColMonthlyInstallment)),
		NegotiatedValue:     brl.ParseCurrency(cell(sheetstore.ColNegotiatedValue)),
		ExpectedInstallment: brl.ParseCurrency(cell(expectedColumn)),
	}
}

// shortUnitName maps the sheet's institutional unit name back to the short
// name the rest of the program keys on. Already-short names pass through.
func shortUnitName(name string) string {
	if u, ok := rules.UnitByFullName(name); ok {
		return u.Name
	}
	return name
}

func parseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parsePercent(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{brl.TimestampLayout, brl.DateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ExpectedColumn returns the resolved name of the expected-installment column.
func (s *Snapshot) ExpectedColumn() string {
	return s.expectedColumn
}

// Records returns all records, remote then locally appended, in load order.
func (s *Snapshot) Records() []*model.ResultRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*model.ResultRecord, len(s.records))
	copy(records, s.records)
	return records
}

// ByID returns the record with the given id, or nil.
func (s *Snapshot) ByID(id string) *model.ResultRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// RowOf returns the remote sheet row of a record id. Locally appended records
// have no remote row.
func (s *Snapshot) RowOf(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.idToRow[id]
	return row, ok
}

// ByUnit returns the records registered for a unit, preserving load order.
func (s *Snapshot) ByUnit(unit string) []*model.ResultRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []*model.ResultRecord
	for _, rec := range s.records {
		if rec.Unit == unit {
			records = append(records, rec)
		}
	}
	return records
}

// AppendLocal adds a record that exists only locally, so the session still
// sees it while the remote store is unreachable.
func (s *Snapshot) AppendLocal(rec *model.ResultRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// SetRow records the remote row of a record after a successful append.
func (s *Snapshot) SetRow(id string, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idToRow[id] = row
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
