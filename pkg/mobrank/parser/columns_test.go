package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"A", 1},
		{"G", 7},
		{"Z", 26},
		{"AA", 27},
		{"AB", 28},
		{"AG", 33},
		{"AM", 39},
		{"AZ", 52},
		{"BA", 53},
		{"XFD", 16384},
		{"a", 0},
		{"A1", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ColumnIndex(tt.label); got != tt.expected {
			t.Errorf("ColumnIndex(%q) = %d, expected %d", tt.label, got, tt.expected)
		}
	}
}

func TestParseColumnRejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{"", "ab", "A1", "1", "A-B", "XFE"} {
		_, err := ParseColumn(label)
		assert.Truef(t, errors.Is(err, ErrInvalidColumn), "ParseColumn(%q) err = %v", label, err)
	}
}

func TestExpandColumnRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected []string
	}{
		{"S:U", []string{"S", "T", "U"}},
		{"AB:AG", []string{"AB", "AC", "AD", "AE", "AF", "AG"}},
		{"$Y:$AA", []string{"Y", "Z", "AA"}},
		{"G", []string{"G"}},
		{"M:M", []string{"M"}},
	}

	for _, tt := range tests {
		got, err := ExpandColumnRange(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.expected, got, tt.ref)
	}
}

func TestExpandColumnRangeErrors(t *testing.T) {
	for _, ref := range []string{"U:S", "A:B:C", "A1:B2", ":", "s:u", ""} {
		_, err := ExpandColumnRange(ref)
		assert.ErrorIsf(t, err, ErrInvalidColumn, "ExpandColumnRange(%q)", ref)
	}
}
