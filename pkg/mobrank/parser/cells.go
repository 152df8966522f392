package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/xuri/excelize/v2"
)

// classifyCell turns a raw worksheet value into a typed CellValue using the
// stored cell type. Error cells (e.g. "#DIV/0!") are read as text.
func classifyCell(raw string, cellType excelize.CellType) models.CellValue {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.TextCell(raw)
	case excelize.CellTypeBool:
		return models.CellValue{Kind: models.CellBool, Bool: raw == "1" || strings.EqualFold(raw, "true")}
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns a numeric cell for finite numbers, a text cell otherwise.
func parseValue(s string) models.CellValue {
	if s == "" {
		return models.CellValue{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
