package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names accepted by CSVOptions.
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// CSVOptions configures CSV grid loading.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ';'.
	Comma rune
	// Encoding is one of auto, utf-8 or windows-1252. Empty means auto.
	Encoding string
}

// DefaultCSVOptions returns the options used for spreadsheet exports in pt-BR locales.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Comma: ';', Encoding: EncodingAuto}
}

// CSVGrid is a Grid backed by delimited text.
type CSVGrid struct {
	name   string
	rows   [][]string
	maxRow int
	cells  int
}

// ReadCSV loads a delimited file into a grid. Cells that parse as numbers
// are numeric, other non-empty cells are text.
func ReadCSV(name string, r io.Reader, opts CSVOptions) (*CSVGrid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	text, err := decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = ';'
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", name, err)
	}

	return &CSVGrid{
		name:   name,
		rows:   rows,
		maxRow: lastPopulatedRow(rows),
		cells:  countNonEmptyCells(rows),
	}, nil
}

// decode converts raw bytes to UTF-8 text according to the encoding option.
func decode(data []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingAuto:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeWindows1252(data)
	case EncodingUTF8, "utf8":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("csv is not valid utf-8")
		}
		return string(data), nil
	case EncodingWindows1252, "cp1252", "latin1":
		return decodeWindows1252(data)
	default:
		return "", fmt.Errorf("unsupported csv encoding %q", encoding)
	}
}

func decodeWindows1252(data []byte) (string, error) {
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(out), nil
}

// Name returns the grid name.
func (g *CSVGrid) Name() string { return g.name }

// MaxRow returns the last populated row.
func (g *CSVGrid) MaxRow() int { return g.maxRow }

// Populated returns the number of non-empty cells.
func (g *CSVGrid) Populated() int { return g.cells }

// Cell returns the typed value at (row, col).
func (g *CSVGrid) Cell(row, col int) (models.CellValue, error) {
	raw, ok, err := rawAt(g.rows, row, col)
	if err != nil || !ok {
		return models.CellValue{}, err
	}
	return parseValue(raw), nil
}
