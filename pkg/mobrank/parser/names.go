package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// nameColumns are the leading columns probed for an entity name (A..D).
var nameColumns = []int{1, 2, 3, 4}

// reservedNames are aggregate row labels that never name an entity.
var reservedNames = map[string]struct{}{
	"total":   {},
	"soma":    {},
	"geral":   {},
	"sum":     {},
	"overall": {},
}

// SyntheticName is the placeholder used for rows without a usable label.
func SyntheticName(row int) string {
	return fmt.Sprintf("Mobilizador %d", row)
}

// ResolveName returns the first text value in columns A..D that is longer
// than 3 characters after trimming and is not an aggregate label. Rows without
// one get SyntheticName(row).
func ResolveName(g Grid, row int) string {
	for _, col := range nameColumns {
		v, err := g.Cell(row, col)
		if err != nil || v.Text == "" {
			continue
		}
		name := strings.TrimSpace(v.Text)
		if utf8.RuneCountInString(name) <= 3 {
			continue
		}
		if _, reserved := reservedNames[strings.ToLower(name)]; reserved {
			continue
		}
		return name
	}
	return SyntheticName(row)
}
