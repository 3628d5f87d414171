package sheetstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/common"
)

// GoogleStore implements Store on top of the Google Sheets API. One instance
// is constructed per process and passed by reference to all collaborators;
// there are no ambient singletons.
type GoogleStore struct {
	service       *sheets.Service
	logger        *slog.Logger
	headers       map[string]map[string]int
	sheetIDs      map[string]int64
	spreadsheetID string
	mu            sync.Mutex
}

// NewGoogleStore creates a store handle for the configured spreadsheet.
func NewGoogleStore(ctx context.Context, config Config, logger *slog.Logger) (*GoogleStore, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleStore{
		service:       service,
		logger:        logger,
		spreadsheetID: config.SpreadsheetID,
		headers:       make(map[string]map[string]int),
		sheetIDs:      make(map[string]int64),
	}, nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		client := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = client.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// unavailable wraps a transport failure in the store-unavailable sentinel so
// callers can decide between failing and queueing locally.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrStoreUnavailable, op, err)
}

// HeaderIndex implements Store. The index is fetched once per sheet per
// session and cached until Invalidate.
func (g *GoogleStore) HeaderIndex(ctx context.Context, sheet string) (map[string]int, error) {
	g.mu.Lock()
	if cached, ok := g.headers[sheet]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	g.mu.Unlock()

	resp, err := g.service.Spreadsheets.Values.
		Get(g.spreadsheetID, quoteSheet(sheet)+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return nil, unavailable(fmt.Sprintf("fetch header of %q", sheet), err)
	}

	header := make(map[string]int)
	if len(resp.Values) > 0 {
		for i, cell := range resp.Values[0] {
			name := strings.TrimSpace(cellString(cell))
			if name != "" {
				header[name] = i + 1
			}
		}
	}

	g.mu.Lock()
	g.headers[sheet] = header
	g.mu.Unlock()

	g.logger.Debug("cached header index", "sheet", sheet, "columns", len(header))
	return header, nil
}

// BatchReadColumns implements Store. One batched request covers every
// requested column range.
func (g *GoogleStore) BatchReadColumns(ctx context.Context, sheet string, columns []string) (map[string][]string, error) {
	if len(columns) == 0 {
		return map[string][]string{}, nil
	}

	header, err := g.HeaderIndex(ctx, sheet)
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(header, columns); len(missing) > 0 {
		return nil, missingColumnsError(sheet, missing)
	}

	ranges := make([]string, len(columns))
	for i, c := range columns {
		ranges[i] = columnRange(sheet, header[c])
	}

	resp, err := g.service.Spreadsheets.Values.
		BatchGet(g.spreadsheetID).
		Ranges(ranges...).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, unavailable(fmt.Sprintf("batch read %d columns of %q", len(columns), sheet), err)
	}

	series := make(map[string][]string, len(columns))
	maxLen := 0
	for i, vr := range resp.ValueRanges {
		if i >= len(columns) {
			break
		}
		values := make([]string, 0, len(vr.Values))
		for _, row := range vr.Values {
			if len(row) > 0 {
				values = append(values, cellString(row[0]))
			} else {
				values = append(values, "")
			}
		}
		series[columns[i]] = values
		if len(values) > maxLen {
			maxLen = len(values)
		}
	}

	// Right-pad shorter columns so every sequence is row-aligned.
	for _, c := range columns {
		for len(series[c]) < maxLen {
			series[c] = append(series[c], "")
		}
	}

	return series, nil
}

// BatchWriteCells implements Store. Each update becomes a single-cell range
// in one batched write request.
func (g *GoogleStore) BatchWriteCells(ctx context.Context, sheet string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	header, err := g.HeaderIndex(ctx, sheet)
	if err != nil {
		return err
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		col, ok := header[u.Column]
		if !ok {
			return missingColumnsError(sheet, []string{u.Column})
		}
		data = append(data, &sheets.ValueRange{
			Range:  cellRef(sheet, col, u.Row),
			Values: [][]any{{u.Value}},
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	_, err = g.service.Spreadsheets.Values.
		BatchUpdate(g.spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return unavailable(fmt.Sprintf("batch write %d cells of %q", len(updates), sheet), err)
	}

	g.logger.Debug("batch wrote cells", "sheet", sheet, "cells", len(updates))
	return nil
}

// AppendRows implements Store.
func (g *GoogleStore) AppendRows(ctx context.Context, sheet string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	vr := &sheets.ValueRange{Values: rows}
	_, err := g.service.Spreadsheets.Values.
		Append(g.spreadsheetID, quoteSheet(sheet)+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return unavailable(fmt.Sprintf("append %d rows to %q", len(rows), sheet), err)
	}

	g.logger.Debug("appended rows", "sheet", sheet, "rows", len(rows))
	return nil
}

// FindRowByID implements Store. Linear scan of the id column; result sets are
// small (thousands of rows), so no index is kept remotely.
func (g *GoogleStore) FindRowByID(ctx context.Context, sheet, idColumn, targetID string) (int, error) {
	series, err := g.BatchReadColumns(ctx, sheet, []string{idColumn})
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

// EnsureSize implements Store. Growing the grid is a structural change, so
// the sheet's cached header index is dropped afterwards.
func (g *GoogleStore) EnsureSize(ctx context.Context, sheet string, minRows, minCols int) error {
	props, err := g.sheetProperties(ctx, sheet)
	if err != nil {
		return err
	}

	grid := props.GridProperties
	if grid != nil && grid.RowCount >= int64(minRows) && grid.ColumnCount >= int64(minCols) {
		return nil
	}

	rows := int64(minRows)
	cols := int64(minCols)
	if grid != nil {
		if grid.RowCount > rows {
			rows = grid.RowCount
		}
		if grid.ColumnCount > cols {
			cols = grid.ColumnCount
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: props.SheetId,
					GridProperties: &sheets.GridProperties{
						RowCount:    rows,
						ColumnCount: cols,
					},
				},
				Fields: "gridProperties.rowCount,gridProperties.columnCount",
			},
		}},
	}
	_, err = g.service.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return unavailable(fmt.Sprintf("resize %q", sheet), err)
	}

	g.Invalidate(sheet)
	g.logger.Info("resized sheet", "sheet", sheet, "rows", rows, "cols", cols)
	return nil
}

// Invalidate implements Store.
func (g *GoogleStore) Invalidate(sheet string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.headers, sheet)
	delete(g.sheetIDs, sheet)
}

// sheetProperties fetches a sheet's properties by title.
func (g *GoogleStore) sheetProperties(ctx context.Context, sheet string) (*sheets.SheetProperties, error) {
	ss, err := g.service.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, unavailable("fetch spreadsheet metadata", err)
	}

	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == sheet {
			g.mu.Lock()
			g.sheetIDs[sheet] = s.Properties.SheetId
			g.mu.Unlock()
			return s.Properties, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", common.ErrSheetNotFound, sheet)
}

// cellString renders one API cell value as a string. Unformatted numeric
// cells come back as float64; integral values must not grow a ".0" suffix.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
