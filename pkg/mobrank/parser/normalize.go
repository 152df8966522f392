package parser

import (
	"strconv"
	"strings"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
)

// NormalizePercent converts a cell to a percentage on the 0-100 scale.
//
// Text is reduced to digits, ',' and '.'; a lone comma is read as the decimal
// separator. Numbers above 1.0 are taken as already being percentages, numbers
// at or below 1.0 as fractions (so 1.0 is 100%). ok is false when the cell is
// not a percentage or the result falls outside [0, 100].
func NormalizePercent(v models.CellValue) (pct float64, ok bool) {
	var n float64
	switch v.Kind {
	case models.CellNumber:
		n = v.Number
	case models.CellText:
		parsed, err := parseDecimalText(v.Text)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if n > 1.0 {
		pct = n
	} else {
		pct = n * 100
	}
	if !(pct >= 0 && pct <= 100) {
		return 0, false
	}
	return pct, true
}

// parseDecimalText extracts a number from loosely formatted text such as
// "87,5%" or " 0.9 ". Signs and other symbols are discarded.
func parseDecimalText(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, s)
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	return strconv.ParseFloat(cleaned, 64)
}
