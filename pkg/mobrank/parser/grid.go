// Package parser reads spreadsheet grids and extracts per-group achievement records.
package parser

import (
	"errors"
	"fmt"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// Grid is a 2-D cell source addressed by 1-based row and column.
// Row 1 is the header; data starts at row 2.
type Grid interface {
	// Name identifies the grid (sheet or file name).
	Name() string
	// MaxRow is the last populated row (1-based), 0 for an empty grid.
	MaxRow() int
	// Cell returns the typed value at (row, col).
	Cell(row, col int) (models.CellValue, error)
}

// SheetGrid is a Grid backed by one excelize worksheet.
type SheetGrid struct {
	f      *excelize.File
	sheet  string
	rows   [][]string
	maxRow int
	cells  int
}

// FirstSheet opens the first worksheet of the workbook in workbook order.
func FirstSheet(f *excelize.File) (*SheetGrid, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	return OpenSheet(f, sheets[0])
}

// OpenSheet loads the raw (unformatted) cell values of a worksheet.
func OpenSheet(f *excelize.File, sheetName string) (*SheetGrid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return &SheetGrid{
		f:      f,
		sheet:  sheetName,
		rows:   rows,
		maxRow: lastPopulatedRow(rows),
		cells:  countNonEmptyCells(rows),
	}, nil
}

// Name returns the worksheet name.
func (g *SheetGrid) Name() string { return g.sheet }

// MaxRow returns the last populated row.
func (g *SheetGrid) MaxRow() int { return g.maxRow }

// Populated returns the number of non-empty cells.
func (g *SheetGrid) Populated() int { return g.cells }

// Cell returns the typed value at (row, col). The stored cell type decides
// between text and number so that "0.875" typed as text stays text.
func (g *SheetGrid) Cell(row, col int) (models.CellValue, error) {
	raw, ok, err := rawAt(g.rows, row, col)
	if err != nil || !ok {
		return models.CellValue{}, err
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellValue{}, err
	}
	cellType, err := g.f.GetCellType(g.sheet, cellName)
	if err != nil {
		return models.CellValue{}, fmt.Errorf("cell %s type: %w", cellName, err)
	}
	return classifyCell(raw, cellType), nil
}

// rawAt returns the raw string at (row, col); ok is false for empty cells.
func rawAt(rows [][]string, row, col int) (string, bool, error) {
	if row < 1 || col < 1 {
		return "", false, fmt.Errorf("cell out of range: row %d, column %d", row, col)
	}
	if row > len(rows) {
		return "", false, nil
	}
	r := rows[row-1]
	if col > len(r) || r[col-1] == "" {
		return "", false, nil
	}
	return r[col-1], true, nil
}
