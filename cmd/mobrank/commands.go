package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ehmachado/rel6500-go/internal/config"
	"github.com/Ehmachado/rel6500-go/internal/history"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/output"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/parser"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the configured mobilizer groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(cmd, "Group", "Ranking Field", "Scan Columns")
			for _, g := range schema.Default() {
				field, _ := g.RankingField()
				columns, err := parser.ScanColumns(g)
				if err != nil {
					return err
				}
				table.Append([]string{g.Name, fmt.Sprintf("%s (%s)", field.Name, field.Column), strings.Join(columns, ",")})
			}
			table.Render()
			return nil
		},
	}
}

// newTable returns a borderless listing table writing to the command output.
func newTable(cmd *cobra.Command, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			table := newTable(cmd, "Run ID", "Generated", "Source", "Groups", "Status")
			for _, run := range runs {
				status := "ok"
				if !run.Success {
					status = "failed: " + run.Error
				}
				table.Append([]string{run.ID, run.GeneratedAt.Local().Format(time.DateTime), run.Source, strconv.Itoa(run.Groups), status})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 = all)")
	return cmd
}

func newShowCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "show [group]",
		Short: "Print the latest stored ranking of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("top") {
				top = cfg.Output.Top
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			stored, err := store.LatestRanking(cmd.Context(), args[0], top)
			if errors.Is(err, history.ErrNotFound) {
				return fmt.Errorf("no stored ranking for group %q (run analyze --save first)", args[0])
			}
			if err != nil {
				return err
			}

			lang, err := output.ParseLanguage(cfg.Output.Language)
			if err != nil {
				return fmt.Errorf("invalid language %q: %w", cfg.Output.Language, err)
			}
			return output.WriteText(cmd.OutOrStdout(), storedResult(stored), output.TextOptions{Language: lang})
		},
	}
	cmd.Flags().IntVar(&top, "top", output.DefaultTop, "Entries to print (0 = all)")
	return cmd
}

// storedResult wraps a stored group ranking as a one-group analysis result.
func storedResult(s *history.StoredRanking) *models.AnalysisResult {
	g := models.GroupResult{
		TotalRecords: s.TotalRecords,
		Ranking:      s.Entries,
		Error:        s.Error,
	}
	if g.TotalRecords == 0 && g.Error == "" {
		g.Message = mobrank.MessageNoRecords
	}
	return &models.AnalysisResult{
		Success:    true,
		Source:     s.Source,
		Rankings:   map[string]models.GroupResult{s.Group: g},
		GroupOrder: []string{s.Group},
		Timestamp:  s.GeneratedAt,
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	return cmd
}
