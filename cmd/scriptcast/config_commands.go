package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scriptcast/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Show the resolved configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolvedPath, exists, err := config.Load(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "Config file: %s\n\n", resolvedPath)
			} else {
				fmt.Fprintf(out, "No config file found (would read %s); showing defaults.\n\n", resolvedPath)
			}
			rows := [][]string{
				{"paths.output_dir", cfg.Paths.OutputDir},
				{"paths.template_dir", cfg.Paths.TemplateDir},
				{"paths.data_dir", cfg.Paths.DataDir},
				{"tts.base_url", cfg.TTS.BaseURL},
				{"tts.model", cfg.TTS.Model},
				{"tts.voice", cfg.TTS.Voice},
				{"tts.format", cfg.TTS.Format},
				{"segmenter.mode", cfg.Segmenter.Mode},
				{"segmenter.max_chars", fmt.Sprintf("%d", cfg.Segmenter.MaxChars)},
				{"segmenter.language", cfg.Segmenter.Language},
				{"media.sync_policy", cfg.Media.SyncPolicy},
				{"history.enabled", fmt.Sprintf("%t", cfg.History.Enabled)},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "path", "", "Configuration file to show")
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if _, err := os.Stat(target); err == nil && !overwrite {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", target)
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", "", "Destination for the sample config")
	cmd.Flags().BoolVar(&overwrite, "force", false, "Overwrite an existing config file")
	return cmd
}
