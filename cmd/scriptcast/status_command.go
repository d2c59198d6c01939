package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptcast/internal/deps"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.MediaRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "available"
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						state = status.Detail
					}
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Status", "Purpose"},
				rows,
				nil,
			))
			fmt.Fprintln(cmd.OutOrStdout(), "Missing tools degrade a build to segments and text artifacts; they never fail it.")
			return nil
		},
	}
}
