package mobrank

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/parser"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/ranking"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// MessageNoRecords is attached to groups that yielded no record.
const MessageNoRecords = "no records found"

// Analyze ranks every configured group found in the spreadsheet at path.
// Files ending in .csv are read as delimited text, anything else as xlsx.
// It never returns nil; load failures are reported through Success and Error.
func Analyze(path string, opts Options) *models.AnalysisResult {
	source := filepath.Base(path)

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		file, err := os.Open(path)
		if err != nil {
			return failed(opts, source, fmt.Errorf("%w: %v", ErrOpen, err))
		}
		defer file.Close()

		grid, err := parser.ReadCSV(source, file, opts.CSV)
		if err != nil {
			return failed(opts, source, fmt.Errorf("%w: %v", ErrOpen, err))
		}
		return analyzeGrid(grid, source, opts)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return failed(opts, source, fmt.Errorf("%w: %v", ErrOpen, err))
	}
	defer f.Close()

	return analyzeWorkbook(f, source, opts)
}

// AnalyzeReader ranks groups from xlsx content, e.g. an uploaded file.
func AnalyzeReader(r io.Reader, opts Options) *models.AnalysisResult {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return failed(opts, "", fmt.Errorf("%w: %v", ErrOpen, err))
	}
	defer f.Close()

	return analyzeWorkbook(f, "", opts)
}

// AnalyzeFile ranks groups from an already opened workbook.
// The caller keeps ownership of f.
func AnalyzeFile(f *excelize.File, opts Options) *models.AnalysisResult {
	source := ""
	if f.Path != "" {
		source = filepath.Base(f.Path)
	}
	return analyzeWorkbook(f, source, opts)
}

// AnalyzeGrid ranks groups from any grid.
func AnalyzeGrid(g parser.Grid, opts Options) *models.AnalysisResult {
	return analyzeGrid(g, g.Name(), opts)
}

func analyzeWorkbook(f *excelize.File, source string, opts Options) *models.AnalysisResult {
	grid, err := parser.FirstSheet(f)
	if err != nil {
		return failed(opts, source, err)
	}
	if source == "" {
		source = grid.Name()
	}
	return analyzeGrid(grid, source, opts)
}

// analyzeGrid runs extraction and ranking for every group. A failing group is
// recorded in its own result and never stops the remaining groups.
func analyzeGrid(g parser.Grid, source string, opts Options) *models.AnalysisResult {
	log := opts.logger().With(zap.String("source", source))
	groups := opts.groups()

	fields := []zap.Field{zap.String("sheet", g.Name()), zap.Int("max_row", g.MaxRow()), zap.Int("groups", len(groups))}
	if p, ok := g.(interface{ Populated() int }); ok {
		fields = append(fields, zap.Int("cells", p.Populated()))
	}
	log.Debug("processing spreadsheet", fields...)

	result := &models.AnalysisResult{
		Source:     source,
		Rankings:   make(map[string]models.GroupResult, len(groups)),
		GroupOrder: make([]string, 0, len(groups)),
	}

	for _, group := range groups {
		res, err := analyzeGroup(g, group)
		if err != nil {
			log.Warn("group failed", zap.String("group", group.Name), zap.Error(err))
			res = models.GroupResult{
				TotalRecords: 0,
				Ranking:      []models.RankedEntry{},
				Error:        fmt.Sprintf("failed to process group: %v", err),
			}
		} else {
			log.Debug("group ranked",
				zap.String("group", group.Name),
				zap.Int("records", res.TotalRecords),
				zap.Strings("columns", res.ColumnsUsed),
			)
		}
		result.Rankings[group.Name] = res
		result.GroupOrder = append(result.GroupOrder, group.Name)
	}

	result.Success = true
	result.Timestamp = opts.now()
	log.Info("analysis complete", zap.Int("groups", len(result.GroupOrder)))
	return result
}

func analyzeGroup(g parser.Grid, group models.GroupSchema) (res models.GroupResult, err error) {
	component := "extract"
	defer func() {
		if r := recover(); r != nil {
			err = NewGroupError(group.Name, component, fmt.Errorf("panic: %v", r))
		}
	}()

	records, columns, err := parser.ExtractGroup(g, group)
	if err != nil {
		return models.GroupResult{}, NewGroupError(group.Name, component, err)
	}

	component = "rank"
	entries := ranking.Build(records)

	res = models.GroupResult{
		TotalRecords: len(entries),
		Ranking:      entries,
		ColumnsUsed:  columns,
	}
	if len(entries) == 0 {
		res.Message = MessageNoRecords
	}
	return res, nil
}

func failed(opts Options, source string, err error) *models.AnalysisResult {
	opts.logger().Error("analysis failed", zap.String("source", source), zap.Error(err))
	return &models.AnalysisResult{
		Success:    false,
		Source:     source,
		Rankings:   map[string]models.GroupResult{},
		GroupOrder: []string{},
		Timestamp:  opts.now(),
		Error:      fmt.Sprintf("failed to process spreadsheet: %v", err),
	}
}
