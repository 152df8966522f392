// Package models defines data structures for mobilizer ranking extraction.
package models

// CellKind classifies the content of a single grid cell.
type CellKind int

const (
	// CellEmpty is an absent or blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell.
	CellNumber
	// CellText is a textual cell.
	CellText
	// CellBool is a boolean cell.
	CellBool
)

// CellValue is a typed cell read from a grid.
type CellValue struct {
	// Kind is the content kind.
	Kind CellKind
	// Number holds the value when Kind is CellNumber.
	Number float64
	// Text holds the value when Kind is CellText.
	Text string
	// Bool holds the value when Kind is CellBool.
	Bool bool
}

// Empty reports whether the cell has no value.
func (v CellValue) Empty() bool {
	return v.Kind == CellEmpty
}

// Raw returns the cell content as a plain Go value for display.
// Numbers are float64, text is string, booleans are bool and empty cells are nil.
func (v CellValue) Raw() interface{} {
	switch v.Kind {
	case CellNumber:
		return v.Number
	case CellText:
		return v.Text
	case CellBool:
		return v.Bool
	default:
		return nil
	}
}

// NumberCell builds a numeric CellValue.
func NumberCell(n float64) CellValue {
	return CellValue{Kind: CellNumber, Number: n}
}

// TextCell builds a textual CellValue.
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}
