package sheetstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

// AppendCall records a single call to AppendRows.
type AppendCall struct {
	Sheet string
	Rows  [][]any
}

// WriteCall records a single call to BatchWriteCells.
type WriteCall struct {
	Sheet   string
	Updates []CellUpdate
}

// MockStore is an in-memory Store implementation for testing. Sheets are
// seeded through Headers and Columns; successful appends and writes are
// applied to Columns so reloads observe them.
type MockStore struct {
	Headers map[string][]string            // sheet → header row
	Columns map[string]map[string][]string // sheet → column name → data rows

	HeaderErr error
	ReadErr   error
	AppendErr error
	WriteErr  error

	AppendCalls []AppendCall
	WriteCalls  []WriteCall
	Invalidated []string
	EnsureCalls int

	mu sync.Mutex
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		Headers: make(map[string][]string),
		Columns: make(map[string]map[string][]string),
	}
}

// SetSheet seeds a sheet with a header row and column data.
func (m *MockStore) SetSheet(sheet string, header []string, columns map[string][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Headers[sheet] = header
	if columns == nil {
		columns = make(map[string][]string)
	}
	m.Columns[sheet] = columns
}

// HeaderIndex implements Store.
func (m *MockStore) HeaderIndex(_ context.Context, sheet string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.HeaderErr != nil {
		return nil, m.HeaderErr
	}
	header, ok := m.Headers[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrSheetNotFound, sheet)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if name != "" {
			index[name] = i + 1
		}
	}
	return index, nil
}

// BatchReadColumns implements Store.
func (m *MockStore) BatchReadColumns(ctx context.Context, sheet string, columns []string) (map[string][]string, error) {
	header, err := m.HeaderIndex(ctx, sheet)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if missing := missingColumns(header, columns); len(missing) > 0 {
		return nil, missingColumnsError(sheet, missing)
	}

	maxLen := 0
	for _, c := range columns {
		if n := len(m.Columns[sheet][c]); n > maxLen {
			maxLen = n
		}
	}

	series := make(map[string][]string, len(columns))
	for _, c := range columns {
		values := make([]string, maxLen)
		copy(values, m.Columns[sheet][c])
		series[c] = values
	}
	return series, nil
}

// BatchWriteCells implements Store. Successful writes mutate the seeded
// column data in place.
func (m *MockStore) BatchWriteCells(ctx context.Context, sheet string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	header, err := m.HeaderIndex(ctx, sheet)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls = append(m.WriteCalls, WriteCall{Sheet: sheet, Updates: updates})
	if m.WriteErr != nil {
		return m.WriteErr
	}

	for _, u := range updates {
		if _, ok := header[u.Column]; !ok {
			return missingColumnsError(sheet, []string{u.Column})
		}
		col := m.Columns[sheet][u.Column]
		for len(col) < u.Row-1 {
			col = append(col, "")
		}
		col[u.Row-2] = fmt.Sprint(u.Value)
		m.Columns[sheet][u.Column] = col
	}
	return nil
}

// AppendRows implements Store. Successful appends extend the seeded column
// data using header order.
func (m *MockStore) AppendRows(ctx context.Context, sheet string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	header, err := m.HeaderIndex(ctx, sheet)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCalls = append(m.AppendCalls, AppendCall{Sheet: sheet, Rows: rows})
	if m.AppendErr != nil {
		return m.AppendErr
	}

	// Establish the current data length so all columns grow together.
	maxLen := 0
	for name := range header {
		if n := len(m.Columns[sheet][name]); n > maxLen {
			maxLen = n
		}
	}

	for _, row := range rows {
		for name, idx := range header {
			col := m.Columns[sheet][name]
			for len(col) < maxLen {
				col = append(col, "")
			}
			value := ""
			if idx-1 < len(row) {
				value = fmt.Sprint(row[idx-1])
			}
			m.Columns[sheet][name] = append(col, value)
		}
		maxLen++
	}
	return nil
}

// FindRowByID implements Store.
func (m *MockStore) FindRowByID(ctx context.Context, sheet, idColumn, targetID string) (int, error) {
	series, err := m.BatchReadColumns(ctx, sheet, []string{idColumn})
	if err != nil {
		return 0, err
	}
	for i, value := range series[idColumn] {
		if value == targetID {
			return i + 2, nil
		}
	}
	return 0, fmt.Errorf("%w: id %q in sheet %q", common.ErrNotFound, targetID, sheet)
}

// EnsureSize implements Store.
func (m *MockStore) EnsureSize(_ context.Context, _ string, _, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsureCalls++
	return nil
}

// Invalidate implements Store.
func (m *MockStore) Invalidate(sheet string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidated = append(m.Invalidated, sheet)
}

// AppendCallCount returns how many times AppendRows was invoked.
func (m *MockStore) AppendCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.AppendCalls)
}

// RowCount returns the number of data rows currently held for a sheet
// column.
func (m *MockStore) RowCount(sheet, column string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Columns[sheet][column])
}
