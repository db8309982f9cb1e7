// file: internals/features/hr/ingest/grid.go
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is one decoded sheet as raw cell text, row-major and zero-indexed.
// Missing trailing cells read as "" — the weekly form leaves unused evaluee
// slots blank, and excelize trims ragged row tails.
type Grid [][]string

func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// DecodeWorkbook reads an uploaded .xlsx and returns the first sheet as a
// Grid. The weekly evaluation form always lives on the first sheet.
func DecodeWorkbook(r io.Reader) (Grid, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return Grid(rows), nil
}
