package parser

// lastPopulatedRow returns the 1-based index of the last row holding at least
// one non-empty cell, or 0 when every row is blank.
func lastPopulatedRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range rows[rowIdx] {
			if cell != "" {
				return rowIdx + 1
			}
		}
	}
	return 0
}

// countNonEmptyCells counts non-empty cells in the grid.
func countNonEmptyCells(rows [][]string) int {
	count := 0
	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				count++
			}
		}
	}
	return count
}
