package mobrank

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	return opts
}

// newFixtureWorkbook builds a report sheet touching every registered group.
func newFixtureWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	sheet := "Sheet1"
	cells := map[string]interface{}{
		"A1": "Mobilizador", "G1": "% Conexao", "M1": "% Conexao Giro", "S1": "% Atg Agro",
		"Y1": "% Atg Icred", "AB1": "% Conexao Regulariza", "AH1": "% Atg Portfolio",

		"A2": "Ana Souza", "G2": 0.875, "S2": 0.40, "U2": 85, "AB2": "87,5%", "Y2": 0.5, "AH2": 1,
		"A3": "Bruno Lima", "G3": 0.9, "M3": 0.6, "T3": 0.95, "AC3": 0.3, "Y3": 150, "AH3": 0.25,
		"A4": "Total", "G4": 1.0,
		"A5": "Carla Dias", "G5": "abc", "M5": 0.6,
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, ref, v))
	}
	return f
}

func writeFixture(t *testing.T) string {
	t.Helper()

	f := newFixtureWorkbook(t)
	defer f.Close()

	path := filepath.Join(t.TempDir(), "rel6500.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
