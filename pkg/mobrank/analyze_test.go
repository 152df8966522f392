package mobrank

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type ranked struct {
	Name string
	Pct  float64
}

func rankingOf(t *testing.T, r *models.AnalysisResult, group string) []ranked {
	t.Helper()

	g, ok := r.Rankings[group]
	require.True(t, ok, group)
	require.Empty(t, g.Error, group)

	out := make([]ranked, len(g.Ranking))
	for i, e := range g.Ranking {
		assert.Equal(t, i+1, e.Position, group)
		out[i] = ranked{Name: e.Name, Pct: e.AchievementPercent}
	}
	return out
}

func TestAnalyze(t *testing.T) {
	path := writeFixture(t)

	r := Analyze(path, testOptions())
	require.True(t, r.Success, r.Error)
	assert.Equal(t, "rel6500.xlsx", r.Source)
	assert.Equal(t, fixedNow, r.Timestamp)
	assert.Equal(t, schema.Names(), r.GroupOrder)
	assert.Len(t, r.Rankings, 6)

	expected := map[string][]ranked{
		schema.DesembolsoPF: {
			{"Mobilizador 4", 100},
			{"Bruno Lima", 90},
			{"Ana Souza", 87.5},
		},
		schema.DesembolsoGiro: {
			{"Bruno Lima", 60},
			{"Carla Dias", 60},
		},
		schema.DesembolsoAgro: {
			{"Bruno Lima", 95},
			{"Ana Souza", 85},
		},
		schema.RegularizaDividas: {
			{"Ana Souza", 87.5},
			{"Bruno Lima", 30},
		},
		schema.Icred1590: {
			{"Ana Souza", 50},
		},
		schema.PortfolioPriorizado: {
			{"Ana Souza", 100},
			{"Bruno Lima", 25},
		},
	}
	for group, want := range expected {
		if diff := cmp.Diff(want, rankingOf(t, r, group)); diff != "" {
			t.Errorf("%s ranking mismatch (-want +got):\n%s", group, diff)
		}
		assert.Equal(t, len(want), r.Rankings[group].TotalRecords, group)
	}

	agro := r.Rankings[schema.DesembolsoAgro]
	assert.Equal(t, []string{"S", "T", "U"}, agro.ColumnsUsed)
	assert.Equal(t, 85.0, agro.Ranking[1].RawValue)

	reg := r.Rankings[schema.RegularizaDividas]
	assert.Equal(t, "87,5%", reg.Ranking[0].RawValue)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	path := writeFixture(t)

	first := Analyze(path, testOptions())
	second := Analyze(path, testOptions())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	r := Analyze(filepath.Join(t.TempDir(), "missing.xlsx"), testOptions())

	assert.False(t, r.Success)
	assert.True(t, strings.HasPrefix(r.Error, "failed to process spreadsheet: "), r.Error)
	assert.Contains(t, r.Error, ErrOpen.Error())
	assert.NotNil(t, r.Rankings)
	assert.Empty(t, r.Rankings)
	assert.Equal(t, fixedNow, r.Timestamp)
}

func TestAnalyzeNotASpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	r := Analyze(path, testOptions())
	assert.False(t, r.Success)
	assert.NotEmpty(t, r.Error)
}

func TestAnalyzeIsolatesFailingGroup(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	opts := testOptions()
	opts.Logger = zap.New(core)
	opts.Groups = schema.Default()
	opts.Groups[2].ScanRange = "U:S"

	r := Analyze(writeFixture(t), opts)
	require.True(t, r.Success)

	agro := r.Rankings[schema.DesembolsoAgro]
	assert.Equal(t, 0, agro.TotalRecords)
	assert.NotNil(t, agro.Ranking)
	assert.Empty(t, agro.Ranking)
	assert.True(t, strings.HasPrefix(agro.Error, "failed to process group: "), agro.Error)

	ok := 0
	for _, g := range r.Groups() {
		if g.Name != schema.DesembolsoAgro && g.Error == "" && g.TotalRecords > 0 {
			ok++
		}
	}
	assert.Equal(t, 5, ok)

	require.Equal(t, 1, logs.FilterMessage("group failed").Len())
	assert.Equal(t, schema.DesembolsoAgro, logs.All()[0].ContextMap()["group"])
}

func TestAnalyzeReader(t *testing.T) {
	f := newFixtureWorkbook(t)
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	r := AnalyzeReader(bytes.NewReader(buf.Bytes()), testOptions())
	require.True(t, r.Success, r.Error)
	assert.Equal(t, "Sheet1", r.Source)
	assert.Equal(t, 3, r.Rankings[schema.DesembolsoPF].TotalRecords)

	bad := AnalyzeReader(strings.NewReader("garbage"), testOptions())
	assert.False(t, bad.Success)
}

func TestAnalyzeFile(t *testing.T) {
	f := newFixtureWorkbook(t)
	defer f.Close()

	r := AnalyzeFile(f, testOptions())
	require.True(t, r.Success)
	assert.Equal(t, "Sheet1", r.Source)
	assert.Equal(t, 2, r.Rankings[schema.DesembolsoGiro].TotalRecords)
}

func TestAnalyzeCSV(t *testing.T) {
	var b strings.Builder
	b.WriteString("Mobilizador;;;;;;% Conexao\n")
	b.WriteString("Ana Souza;;;;;;87,5%\n")
	b.WriteString("Bruno Lima;;;;;;0,9\n")
	path := filepath.Join(t.TempDir(), "rel6500.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	r := Analyze(path, testOptions())
	require.True(t, r.Success, r.Error)
	assert.Equal(t, "rel6500.csv", r.Source)
	assert.Equal(t, []ranked{{"Bruno Lima", 90}, {"Ana Souza", 87.5}}, rankingOf(t, r, schema.DesembolsoPF))
	assert.Equal(t, MessageNoRecords, r.Rankings[schema.PortfolioPriorizado].Message)
}

type emptyGrid struct{}

func (emptyGrid) Name() string { return "empty" }
func (emptyGrid) MaxRow() int { return 0 }
func (emptyGrid) Cell(int, int) (models.CellValue, error) {
	return models.CellValue{}, nil
}

func TestAnalyzeGridEmpty(t *testing.T) {
	r := AnalyzeGrid(emptyGrid{}, testOptions())
	require.True(t, r.Success)
	assert.Equal(t, "empty", r.Source)
	for _, g := range r.Groups() {
		assert.Equal(t, 0, g.TotalRecords, g.Name)
		assert.NotNil(t, g.Ranking, g.Name)
		assert.Equal(t, MessageNoRecords, g.Message, g.Name)
		assert.Empty(t, g.Error, g.Name)
	}
}

type explodingGrid struct{ rows int }

func (g explodingGrid) Name() string { return "exploding" }
func (g explodingGrid) MaxRow() int { return g.rows }
func (g explodingGrid) Cell(row, col int) (models.CellValue, error) {
	if col == 1 {
		return models.TextCell("Ana Souza"), nil
	}
	if row%2 == 0 {
		panic("corrupt cell")
	}
	return models.NumberCell(0.5), nil
}

func TestAnalyzeGridSkipsPanickingCells(t *testing.T) {
	r := AnalyzeGrid(explodingGrid{rows: 5}, testOptions())
	require.True(t, r.Success)
	for _, g := range r.Groups() {
		require.Empty(t, g.Error, g.Name)
		require.Len(t, g.Ranking, 1, g.Name)
		assert.Equal(t, 50.0, g.Ranking[0].AchievementPercent, g.Name)
	}
}

func TestGroupErrorUnwrap(t *testing.T) {
	err := NewGroupError("g", "extract", ErrInvalidColumn)
	assert.ErrorIs(t, err, ErrInvalidColumn)
	assert.Equal(t, `group "g" (extract): invalid column`, err.Error())
}
