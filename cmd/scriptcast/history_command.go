package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptcast/internal/history"
	"scriptcast/internal/textutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Build history is disabled in config.")
				return nil
			}

			store, err := history.Open(cfg.Paths.DataDir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No builds recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				mode := "live"
				if rec.Mock {
					mode = "mock"
				}
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					rec.Title,
					rec.Voice,
					fmt.Sprintf("%d", rec.SegmentCount),
					fmt.Sprintf("%d", rec.CachedCount),
					textutil.FormatChapterOffset(rec.TotalDuration),
					mode,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"When", "Title", "Voice", "Segments", "Cached", "Runtime", "Mode"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of builds to show")
	return cmd
}
