package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidColumn indicates a malformed column label or column run.
var ErrInvalidColumn = errors.New("invalid column")

// ColumnIndex converts a column label to its 1-based index (A=1, Z=26, AA=27).
// Labels come from the static group registry; an invalid label yields 0.
func ColumnIndex(label string) int {
	idx, err := ParseColumn(label)
	if err != nil {
		return 0
	}
	return idx
}

// ParseColumn validates a column label and returns its 1-based index.
// Only uppercase letters are accepted.
func ParseColumn(label string) (int, error) {
	if label == "" || strings.ToUpper(label) != label {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, label)
	}
	idx, err := excelize.ColumnNameToNumber(label)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColumn, label, err)
	}
	return idx, nil
}

// ExpandColumnRange expands a column run such as "AB:AG" (or "$S:$U") into
// its individual labels. A single label expands to itself.
func ExpandColumnRange(ref string) ([]string, error) {
	// Remove $ anchors
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		if _, err := ParseColumn(parts[0]); err != nil {
			return nil, err
		}
		return []string{parts[0]}, nil
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: range %q", ErrInvalidColumn, ref)
	}

	start, err := ParseColumn(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := ParseColumn(parts[1])
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: range %q is reversed", ErrInvalidColumn, ref)
	}

	labels := make([]string, 0, end-start+1)
	for col := start; col <= end; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidColumn, err)
		}
		labels = append(labels, name)
	}
	return labels, nil
}
