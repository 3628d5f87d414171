package sheetstore

import (
	"fmt"
	"strings"
)

// ColumnLetter converts a 1-based column index to its A1 letter: 1 → "A",
// 26 → "Z", 27 → "AA".
func ColumnLetter(index int) string {
	var letters []byte
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}
	return string(letters)
}

// quoteSheet wraps a sheet title in single quotes for an A1 range reference,
// escaping embedded quotes.
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// cellRef builds an A1 reference to a single cell.
func cellRef(sheet string, columnIndex, row int) string {
	return fmt.Sprintf("%s!%s%d", quoteSheet(sheet), ColumnLetter(columnIndex), row)
}

// columnRange builds an open-ended A1 reference covering a column's data rows
// (row 2 and below).
func columnRange(sheet string, columnIndex int) string {
	letter := ColumnLetter(columnIndex)
	return fmt.Sprintf("%s!%s2:%s", quoteSheet(sheet), letter, letter)
}
