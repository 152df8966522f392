package parser

import (
	"fmt"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
)

// ScanColumns resolves the columns scanned for a group: its declared column
// run when present, otherwise the ranking field's column. A group without any
// usable ranking field scans nothing.
func ScanColumns(schema models.GroupSchema) ([]string, error) {
	field, ok := schema.RankingField()
	if !ok {
		return nil, nil
	}
	if schema.ScanRange != "" {
		return ExpandColumnRange(schema.ScanRange)
	}
	if _, err := ParseColumn(field.Column); err != nil {
		return nil, err
	}
	return []string{field.Column}, nil
}

// ExtractGroup scans every data row of each scan column, keeps cells that
// normalize to a percentage and returns one record per entity name holding
// its highest value. Unreadable cells are skipped.
func ExtractGroup(g Grid, schema models.GroupSchema) ([]models.RawRecord, []string, error) {
	columns, err := ScanColumns(schema)
	if err != nil {
		return nil, nil, fmt.Errorf("group %q: %w", schema.Name, err)
	}

	var records []models.RawRecord
	maxRow := g.MaxRow()
	for _, label := range columns {
		col := ColumnIndex(label)
		for row := 2; row <= maxRow; row++ {
			if rec, ok := scanCell(g, row, col, label); ok {
				records = append(records, rec)
			}
		}
	}

	return Dedupe(records), columns, nil
}

// scanCell reads a single cell into a record. Any fault while reading,
// including a panic from the grid, skips the cell.
func scanCell(g Grid, row, col int, label string) (rec models.RawRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	v, err := g.Cell(row, col)
	if err != nil || v.Empty() {
		return rec, false
	}
	pct, valid := NormalizePercent(v)
	if !valid {
		return rec, false
	}
	return models.RawRecord{
		Name:   ResolveName(g, row),
		Value:  pct,
		Raw:    v.Raw(),
		Row:    row,
		Column: label,
	}, true
}

// Dedupe keeps, per entity name, the record with the highest value. Ties keep
// the first seen record and names keep their first-seen order.
func Dedupe(records []models.RawRecord) []models.RawRecord {
	index := make(map[string]int, len(records))
	unique := make([]models.RawRecord, 0, len(records))
	for _, rec := range records {
		i, seen := index[rec.Name]
		if !seen {
			index[rec.Name] = len(unique)
			unique = append(unique, rec)
			continue
		}
		if unique[i].Value < rec.Value {
			unique[i] = rec
		}
	}
	return unique
}
