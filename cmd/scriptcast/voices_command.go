package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVoicesCommand(ctx *commandContext) *cobra.Command {
	var mock bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List the provider's available voices",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.voiceCatalog(mock)
			if err != nil {
				return err
			}
			voices, err := catalog.Voices(cmd.Context())
			if err != nil {
				return err
			}
			if len(voices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No voices available.")
				return nil
			}

			rows := make([][]string, 0, len(voices))
			for _, v := range voices {
				rows = append(rows, []string{v.ID, v.Name, v.Category, v.Language})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Category", "Language"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&mock, "mock", false, "List the offline mock voices")
	return cmd
}
